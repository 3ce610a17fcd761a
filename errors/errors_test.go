// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "unknown verb",
			err:  &ParseError{Kind: UnknownVerb, Token: "convrt", Suggestion: "convert"},
			want: `the provided verb was not recognised: convrt (did you mean "convert"?)`,
		},
		{
			name: "duplicate",
			err:  &ParseError{Kind: DuplicateOption, Token: "-f / --format"},
			want: "multiple occurrences of an option: -f / --format",
		},
		{
			name: "dangling escape",
			err:  &ParseError{Kind: DanglingEscape, Token: "--"},
			want: "an escape sequence was detected, but not followed by a value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSentinels(t *testing.T) {
	wrapped := Wrap(&ParseError{Kind: MissingValue, Token: "-k"}, "parse")
	assert.True(t, Is(wrapped, ErrParse))
	assert.False(t, Is(wrapped, ErrConfig))
	assert.True(t, IsParseKind(wrapped, MissingValue))
	assert.False(t, IsParseKind(wrapped, UnknownOption))

	assert.True(t, Is(NewConfigError("bad name: %s", "x"), ErrConfig))
	assert.True(t, Is(&ValidationError{Reason: "nope"}, ErrValidation))
}

func TestDetails(t *testing.T) {
	err := fmt.Errorf("outer: %w", &ValidationError{
		Option:   "--format",
		Reason:   "the chosen value was not found in the configured options: xml",
		Criteria: []string{"Options: json, yaml"},
	})
	assert.Equal(t, "Criteria:\n\tOptions: json, yaml\n", Details(err))
	assert.Empty(t, Details(New("plain")))
}

func TestNewAggregate(t *testing.T) {
	assert.Nil(t, NewAggregate(nil))
	assert.Nil(t, NewAggregate([]error{nil, nil}))

	agg := NewAggregate([]error{New("a"), nil, NewConfigError("b"), New("a")})
	assert.Len(t, agg.Errors(), 3)
	assert.Equal(t, "[a, b]", agg.Error())
	assert.True(t, Is(agg, ErrConfig))

	single := NewAggregate([]error{New("only")})
	assert.Equal(t, "only", single.Error())
}
