// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalSize_NotTerminal(t *testing.T) {
	width, height, err := TerminalSize(&bytes.Buffer{})
	assert.Error(t, err)
	assert.Zero(t, width)
	assert.Zero(t, height)
}
