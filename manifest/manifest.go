// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package manifest declares a verb tree in YAML.
//
//	program: cipher
//	header: A toy cipher tool
//	options:
//	  - name: verbose
//	    short: v
//	verbs:
//	  - name: encrypt
//	    options:
//	      - name: cipher
//	        short: c
//	        valueRequired: true
//	        required: true
//	        criteria:
//	          - oneOf: [caesar, affine, atbash]
//
// Custom predicates cannot be expressed in YAML; attach them to the built
// parser instead.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/wangtaoking1/verbtree/criteria"
	"github.com/wangtaoking1/verbtree/errors"
	"github.com/wangtaoking1/verbtree/parser"
)

// Manifest is the root of a declaration.
type Manifest struct {
	Program  string   `yaml:"program"`
	Header   string   `yaml:"header"`
	Footer   string   `yaml:"footer"`
	AutoHelp bool     `yaml:"autoHelp"`
	Options  []Option `yaml:"options"`
	Verbs    []Verb   `yaml:"verbs"`
}

// Verb declares a verb and everything below it.
type Verb struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Options     []Option `yaml:"options"`
	Verbs       []Verb   `yaml:"verbs"`
}

// Option declares an option.
type Option struct {
	Name          string      `yaml:"name"`
	Short         string      `yaml:"short"`
	Description   string      `yaml:"description"`
	Value         bool        `yaml:"value"`
	Required      bool        `yaml:"required"`
	ValueRequired bool        `yaml:"valueRequired"`
	Criteria      []Criterion `yaml:"criteria"`
}

// Criterion declares one criterion. Exactly one of Type, Numbers/Ranges and
// OneOf must be set; Numbers alone is a number set, any Ranges make it a
// number/range set.
type Criterion struct {
	Type      string   `yaml:"type"`
	Numbers   []int    `yaml:"numbers"`
	Ranges    []Span   `yaml:"ranges"`
	OneOf     []string `yaml:"oneOf"`
	MatchCase bool     `yaml:"matchCase"`
}

// Span is an inclusive integer range.
type Span struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Load decodes a manifest from r. Unknown fields are rejected.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	m := &Manifest{}
	if err := dec.Decode(m); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode manifest")
	}

	return m, nil
}

// Parse decodes a manifest from data.
func Parse(data []byte) (*Manifest, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile decodes the manifest stored at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open manifest")
	}
	defer f.Close()

	return Load(f)
}

// Build creates a parser from the manifest. Every declaration error is
// collected and returned as an errors.Aggregate; the parser is only returned
// when there is none.
func (m *Manifest) Build(opts ...parser.ParserOption) (*parser.Parser, error) {
	opts = append([]parser.ParserOption{
		parser.WithHeader(m.Header),
		parser.WithFooter(m.Footer),
		parser.WithAutoHelp(m.AutoHelp),
	}, opts...)
	p := parser.New(m.Program, opts...)

	b := &builder{}
	b.options(p.Root(), m.Options, p.ProgramName())
	for _, v := range m.Verbs {
		b.verb(p.Root(), v, p.ProgramName())
	}
	if agg := errors.NewAggregate(b.errs); agg != nil {
		return nil, agg
	}

	return p, nil
}

type builder struct {
	errs []error
}

func (b *builder) add(err error, where string) bool {
	if err == nil {
		return false
	}
	b.errs = append(b.errs, errors.Wrap(err, where))
	return true
}

func (b *builder) verb(parent *parser.Verb, decl Verb, path string) {
	where := path + " " + decl.Name
	v, err := parser.NewVerb(decl.Name, decl.Description)
	if b.add(err, where) {
		return
	}
	if b.add(parent.AddVerb(v), where) {
		return
	}

	b.options(v, decl.Options, where)
	for _, child := range decl.Verbs {
		b.verb(v, child, where)
	}
}

func (b *builder) options(v *parser.Verb, decls []Option, path string) {
	for _, decl := range decls {
		where := fmt.Sprintf("%s --%s", path, decl.Name)
		o, err := newOption(decl)
		if b.add(err, where) {
			continue
		}
		for _, c := range decl.Criteria {
			crit, err := newCriterion(c)
			if b.add(err, where) {
				continue
			}
			b.add(o.AddCriterion(crit), where)
		}
		b.add(v.AddOption(o), where)
	}
}

func newOption(decl Option) (*parser.Option, error) {
	var short rune
	if decl.Short != "" {
		r, size := utf8.DecodeRuneInString(decl.Short)
		if size != len(decl.Short) {
			return nil, errors.NewConfigError("short name must be a single character: %q", decl.Short)
		}
		short = r
	}

	var settings []parser.OptionSetting
	if decl.Value {
		settings = append(settings, parser.WithValue())
	}
	if decl.Required {
		settings = append(settings, parser.Required())
	}
	if decl.ValueRequired {
		settings = append(settings, parser.ValueRequired())
	}

	return parser.NewOption(decl.Name, short, decl.Description, settings...)
}

func newCriterion(decl Criterion) (*criteria.Criterion, error) {
	set := 0
	if decl.Type != "" {
		set++
	}
	if len(decl.Numbers) > 0 || len(decl.Ranges) > 0 {
		set++
	}
	if len(decl.OneOf) > 0 {
		set++
	}
	if set != 1 {
		return nil, errors.NewConfigError("a criterion needs exactly one of type, numbers/ranges or oneOf")
	}

	var c *criteria.Criterion
	switch {
	case decl.Type != "":
		t, ok := valueTypes[decl.Type]
		if !ok {
			return nil, errors.NewConfigError("unknown criterion type: %q", decl.Type)
		}
		c = criteria.TypeCheck(t)
	case len(decl.OneOf) > 0:
		c = criteria.StringEnum(decl.MatchCase)
		for _, s := range decl.OneOf {
			c.AddString(s)
		}
	case len(decl.Ranges) > 0:
		c = criteria.NumberRangeSet()
		for _, n := range decl.Numbers {
			c.Add(n)
		}
		for _, r := range decl.Ranges {
			c.AddRange(r.From, r.To)
		}
	default:
		c = criteria.NumberSet()
		for _, n := range decl.Numbers {
			c.Add(n)
		}
	}

	return c, c.Err()
}

var valueTypes = map[string]criteria.ValueType{
	"int":    criteria.Int,
	"double": criteria.Double,
	"string": criteria.String,
}
