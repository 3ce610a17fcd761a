// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package set

import (
	"strconv"
	"testing"
)

const numbers = 1000

// BenchmarkSet_Contains measures the lookup done for every bound value of a
// number criterion.
func BenchmarkSet_Contains(b *testing.B) {
	s := New[int]()
	for x := 0; x < numbers; x++ {
		s.Add(x * 2)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Contains(i % (numbers * 2))
	}
}

func BenchmarkSlice_Contains(b *testing.B) {
	s := make([]int, 0, numbers)
	for x := 0; x < numbers; x++ {
		s = append(s, x*2)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := i % (numbers * 2)
		for _, v := range s {
			if v == n {
				break
			}
		}
	}
}

func BenchmarkSet_AddString(b *testing.B) {
	names := make([]string, numbers)
	for x := range names {
		names[x] = "option-" + strconv.Itoa(x)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := New[string]()
		for _, name := range names {
			s.Add(name)
		}
	}
}
