// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"strconv"

	"github.com/wangtaoking1/verbtree/errors"
)

// Selected returns the deepest verb resolved by the last parse, the root when
// no verb was given.
func (p *Parser) Selected() *Verb { return p.selected }

// Path returns the names of the verbs resolved by the last parse.
func (p *Parser) Path() []string {
	names := make([]string, 0, len(p.path))
	for _, v := range p.path {
		names = append(names, v.name)
	}
	return names
}

// IsPresent reports whether the option called name appeared in the last
// parse. Options are looked up in the scope of the selected verb; a one
// character name is a short name.
func (p *Parser) IsPresent(name string) bool {
	o, ok := p.selected.Option(name)
	return ok && o.present
}

// Value returns the value bound to the option called name. ok is false when
// the option is unknown in the selected scope or absent.
func (p *Parser) Value(name string) (value string, ok bool) {
	o, found := p.selected.Option(name)
	if !found || !o.present {
		return "", false
	}
	return o.value, true
}

// VerbPresent reports whether the verb called name was part of the last
// parse. The program name matches the root.
func (p *Parser) VerbPresent(name string) bool {
	if p.root.present && p.root.name == name {
		return true
	}
	for _, v := range p.path {
		if v.name == name {
			return true
		}
	}
	return false
}

// TrailingArgs returns the arguments that followed the last option.
func (p *Parser) TrailingArgs() []string {
	return append([]string(nil), p.trailing...)
}

// Scalar lists the types ValueAs can convert to.
type Scalar interface {
	string | int | int64 | float64 | bool
}

// ValueAs converts the value of the option called name to T. For bool,
// options without value report their presence and options with a value parse
// it with strconv.ParseBool. An absent option yields the zero value.
func ValueAs[T Scalar](p *Parser, name string) (T, error) {
	var out T

	o, ok := p.selected.Option(name)
	if !ok {
		return out, errors.Errorf("the specified option was not recognised: %s", optionKey(name))
	}
	if _, isBool := any(out).(bool); !isBool && !o.expectsValue {
		return out, errors.Errorf("the selected option does not accept a parameter: %s", o.DisplayName())
	}
	if !o.present {
		return out, nil
	}

	var (
		converted any
		err       error
	)
	switch any(out).(type) {
	case string:
		converted = o.value
	case int:
		converted, err = strconv.Atoi(o.value)
	case int64:
		converted, err = strconv.ParseInt(o.value, 10, 64)
	case float64:
		converted, err = strconv.ParseFloat(o.value, 64)
	case bool:
		if !o.expectsValue {
			converted = true
		} else {
			converted, err = strconv.ParseBool(o.value)
		}
	}
	if err != nil {
		return out, errors.Wrapf(err, "convert value of %s", o.DisplayName())
	}

	return converted.(T), nil
}
