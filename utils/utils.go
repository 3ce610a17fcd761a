// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package utils

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[E constraints.Ordered](a, b E) E {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[E constraints.Ordered](a, b E) E {
	if a > b {
		return a
	}
	return b
}

// Ptr returns a pointer to its argument val.
func Ptr[T any](val T) *T {
	return &val
}
