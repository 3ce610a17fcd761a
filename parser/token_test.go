// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantKinds  []TokenKind
		lastOption int
	}{
		{
			name:       "empty",
			args:       nil,
			wantKinds:  []TokenKind{},
			lastOption: -1,
		},
		{
			name:       "flags and positionals",
			args:       []string{"-a", "x", "--key", "v", "y"},
			wantKinds:  []TokenKind{Flag, Positional, Flag, Positional, Positional},
			lastOption: 2,
		},
		{
			name:       "escape neutralizes next flag",
			args:       []string{"-k", "--", "-x"},
			wantKinds:  []TokenKind{Flag, EscapeToken, Positional},
			lastOption: 0,
		},
		{
			name:       "escape neutralizes only one token",
			args:       []string{"--", "-x", "-y"},
			wantKinds:  []TokenKind{EscapeToken, Positional, Flag},
			lastOption: 2,
		},
		{
			name:       "escaped escape",
			args:       []string{"--", "--", "-x"},
			wantKinds:  []TokenKind{EscapeToken, Positional, Flag},
			lastOption: 2,
		},
		{
			name:       "escape before positional",
			args:       []string{"--", "x"},
			wantKinds:  []TokenKind{EscapeToken, Positional},
			lastOption: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, lastOption := Classify(tt.args)
			assert.Equal(t, tt.wantKinds, kinds(tokens))
			assert.Equal(t, tt.lastOption, lastOption)
		})
	}
}

func TestHelpRequest(t *testing.T) {
	classified := func(args ...string) []Token {
		tokens, _ := Classify(args)
		return tokens
	}

	assert.Equal(t, HelpShown, helpRequest(classified("-a", "-?")))
	assert.Equal(t, HelpShown, helpRequest(classified("--help", "--verbs")))
	assert.Equal(t, VerbsShown, helpRequest(classified("x", "--verbs")))
	assert.Equal(t, Parsed, helpRequest(classified("--", "--help")))
	assert.Equal(t, Parsed, helpRequest(classified("-h")))
}
