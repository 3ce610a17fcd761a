// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wangtaoking1/verbtree/errors"
)

func newFlatParser() *Parser {
	p := New("flat", WithOutput(&bytes.Buffer{}))
	_ = p.AddOption(MustOption("key", 'k', "", WithValue()))
	_ = p.AddOption(MustOption("all", 'a', ""))
	_ = p.AddOption(MustOption("name", 'n', "", WithValue(), Required()))

	child := MustVerb("child", "")
	_ = child.AddOption(MustOption("deep", 'd', ""))
	_ = p.AddVerb(child)

	return p
}

type parseResult struct {
	Outcome  Outcome
	Err      string
	Key      string
	All      bool
	Name     string
	Trailing []string
}

func run(p *Parser, args []string) parseResult {
	outcome, err := p.Parse(args)
	r := parseResult{Outcome: outcome, All: p.IsPresent("a"), Trailing: p.TrailingArgs()}
	if err != nil {
		r.Err = err.Error()
	}
	r.Key, _ = p.Value("k")
	r.Name, _ = p.Value("n")
	return r
}

func genArg() gopter.Gen {
	return gen.OneGenOf(
		gen.OneConstOf("-k", "-a", "-n", "--key", "--all", "--name", "--", "-x", "child", "-d"),
		gen.AlphaString(),
	)
}

func TestParserProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("escape binds any flag shaped value literally", prop.ForAll(
		func(suffix string) bool {
			p := newFlatParser()
			value := "-" + suffix
			if _, err := p.Parse([]string{"-n", "x", "-k", Escape, value}); err != nil {
				return false
			}
			got, ok := p.Value("key")
			return ok && got == value && len(p.TrailingArgs()) == 0
		},
		gen.AlphaString(),
	))

	properties.Property("parsing the same arguments twice gives the same result", prop.ForAll(
		func(args []string) bool {
			p := newFlatParser()
			first := run(p, args)
			p.Reset()
			second := run(p, args)
			return reflect.DeepEqual(first, second)
		},
		gen.SliceOfN(6, genArg()),
	))

	properties.Property("without the required option the parse never succeeds", prop.ForAll(
		func(args []string) bool {
			var filtered []string
			for _, a := range args {
				if a != "-n" && a != "--name" && a != "child" {
					filtered = append(filtered, a)
				}
			}
			outcome, err := newFlatParser().Parse(filtered)
			return outcome == Failed && errors.Is(err, errors.ErrParse)
		},
		gen.SliceOfN(6, genArg()),
	))

	properties.Property("child options are unknown at the root", prop.ForAll(
		func(withName bool) bool {
			args := []string{"-d"}
			if withName {
				args = append(args, "-n", "x")
			}
			_, err := newFlatParser().Parse(args)
			return errors.IsParseKind(err, errors.UnknownOption)
		},
		gen.Bool(),
	))

	properties.TestingRun(t)
}
