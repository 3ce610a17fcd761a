// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	assert.Equal(t, "Khoor, Zruog", transform("caesar", 3, false, "Hello, World"))
	assert.Equal(t, "Hello, World", transform("Caesar", 3, true, "Khoor, Zruog"))
	assert.Equal(t, "Svool", transform("atbash", 0, false, "Hello"))
	assert.Equal(t, "abc", transform("caesar", 0, false, "abc"))
}

func TestIsLetters(t *testing.T) {
	assert.True(t, isLetters("secret"))
	assert.False(t, isLetters("s3cret"))
	assert.False(t, isLetters(""))
}
