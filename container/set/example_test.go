// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package set

import "fmt"

func ExampleSet() {
	formats := New("json", "yaml")
	fmt.Println("added toml:", formats.Add("toml"))
	fmt.Println("added json again:", formats.Add("json"))
	formats.Remove("yaml")
	fmt.Println("accepts yaml:", formats.Contains("yaml"))
	fmt.Println("size:", formats.Len())

	// Output:
	// added toml: true
	// added json again: false
	// accepts yaml: false
	// size: 2
}
