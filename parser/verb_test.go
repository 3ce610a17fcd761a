// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangtaoking1/verbtree/criteria"
	"github.com/wangtaoking1/verbtree/errors"
)

func TestNewVerb_Invalid(t *testing.T) {
	tests := []struct {
		name string
		verb string
		desc string
	}{
		{name: "empty", verb: ""},
		{name: "escape", verb: "--"},
		{name: "leading dash", verb: "-convert"},
		{name: "too long", verb: strings.Repeat("v", MaxVerbNameLen+1)},
		{name: "bad char", verb: "con vert"},
		{name: "long description", verb: "convert", desc: strings.Repeat("d", MaxDescriptionLen+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVerb(tt.verb, tt.desc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrConfig))
		})
	}

	v, err := NewVerb(strings.Repeat("v", MaxVerbNameLen), "")
	require.NoError(t, err)
	assert.Len(t, v.Name(), MaxVerbNameLen)
	assert.Panics(t, func() { MustVerb("", "") })
}

func TestNewOption_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		full  string
		short rune
	}{
		{name: "too short", full: "f"},
		{name: "too long", full: strings.Repeat("o", MaxOptionNameLen+1)},
		{name: "leading dash", full: "-format"},
		{name: "reserved help", full: "help"},
		{name: "reserved verbs", full: "verbs"},
		{name: "reserved short question", full: "query", short: '?'},
		{name: "reserved short dash", full: "dash", short: '-'},
		{name: "bad char", full: "for.mat"},
		{name: "bad short", full: "format", short: '!'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOption(tt.full, tt.short, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrConfig))
		})
	}

	assert.Panics(t, func() { MustOption("help", 0, "") })
}

func TestVerb_AddOption(t *testing.T) {
	v := MustVerb("convert", "")
	require.NoError(t, v.AddOption(MustOption("format", 'f', "")))

	assert.Error(t, v.AddOption(MustOption("format", 'x', "")), "duplicate full name")
	assert.Error(t, v.AddOption(MustOption("fast", 'f', "")), "duplicate short name")
	assert.Error(t, v.AddOption(nil))
	require.NoError(t, v.AddOption(MustOption("quiet", 0, "")))
	require.NoError(t, v.AddOption(MustOption("silent", 0, "")), "options without short names do not collide")

	other := MustVerb("other", "")
	o, _ := v.Option("format")
	assert.Error(t, other.AddOption(o), "an option belongs to one verb")

	got, ok := v.Option("f")
	require.True(t, ok)
	assert.Same(t, o, got)
	got, ok = v.Option("--format")
	require.True(t, ok)
	assert.Same(t, o, got)
	assert.Len(t, v.Options(), 3)
}

func TestVerb_AddVerb(t *testing.T) {
	root := MustVerb("root", "")
	a := MustVerb("a", "")
	b := MustVerb("b", "")

	require.NoError(t, root.AddVerb(a))
	require.NoError(t, a.AddVerb(b))

	assert.Error(t, root.AddVerb(MustVerb("a", "")), "duplicate name")
	assert.Error(t, b.AddVerb(a), "parent as child")
	assert.Error(t, b.AddVerb(root), "ancestor as child")
	assert.Error(t, a.AddVerb(a), "self as child")
	assert.Error(t, root.AddVerb(b), "verb already attached")
	assert.Error(t, root.AddVerb(nil))

	p := New("tool")
	assert.Error(t, root.AddVerb(p.Root()), "root cannot become a child")

	assert.Equal(t, []*Verb{a, b}, b.Path())
	assert.Same(t, a, b.Parent())
}

func TestOption_AddCriterion(t *testing.T) {
	o := MustOption("count", 'c', "", WithValue())
	c := criteria.TypeCheck(criteria.Int)

	require.NoError(t, o.AddCriterion(c))
	err := o.AddCriterion(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))

	other := MustOption("other", 0, "", WithValue())
	assert.Error(t, other.AddCriterion(c), "criterion bound to another option")
	assert.Error(t, other.AddCriterion(criteria.NumberSet().Add(1).Add(1)))
	assert.Error(t, other.AddCriterion(nil))

	assert.Equal(t, []string{"Type: int"}, o.CriteriaDescriptions())
	assert.Equal(t, "-c / --count", o.DisplayName())
	assert.Empty(t, other.CriteriaDescriptions())

	format := MustOption("format", 'f', "", WithValue())
	good := criteria.StringEnum(false).AddString("json")
	require.Error(t, format.AddCriterion(good, criteria.NumberSet().Add(1).Add(1)))
	assert.Empty(t, format.CriteriaDescriptions())
	assert.Empty(t, good.Owner())

	require.Error(t, format.AddCriterion(good, good))
	assert.Empty(t, format.CriteriaDescriptions())
	assert.Empty(t, good.Owner())

	require.Error(t, format.AddCriterion(good, c))
	assert.Empty(t, good.Owner())

	require.NoError(t, format.AddCriterion(good))
	assert.Equal(t, "-f / --format", good.Owner())
	assert.Equal(t, []string{"Options: json"}, format.CriteriaDescriptions())
	assert.Equal(t, "--other", other.DisplayName())
}
