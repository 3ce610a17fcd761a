// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/wangtaoking1/verbtree/criteria"
	"github.com/wangtaoking1/verbtree/errors"
)

// OptionAction is invoked after a successful parse when its option is present.
type OptionAction func(o *Option) error

// OptionSetting configures an Option at creation time.
type OptionSetting func(*Option)

// WithValue makes the option consume the following argument as its value.
func WithValue() OptionSetting {
	return func(o *Option) {
		o.expectsValue = true
	}
}

// Required makes the parse fail when the option is absent.
func Required() OptionSetting {
	return func(o *Option) {
		o.required = true
	}
}

// ValueRequired makes the parse fail when the option is present with an empty
// value. It implies WithValue.
func ValueRequired() OptionSetting {
	return func(o *Option) {
		o.expectsValue = true
		o.valueRequired = true
	}
}

// Option is a declared flag. It belongs to exactly one Verb.
type Option struct {
	fullName      string
	short         rune
	desc          string
	expectsValue  bool
	required      bool
	valueRequired bool

	present bool
	value   string

	criteria []*criteria.Criterion
	action   OptionAction
	parent   *Verb
}

// NewOption validates and creates an option. short is the single character
// short spelling, 0 for none.
func NewOption(fullName string, short rune, desc string, settings ...OptionSetting) (*Option, error) {
	if err := validateOptionName(fullName, short); err != nil {
		return nil, err
	}
	if err := validateDescription(desc); err != nil {
		return nil, err
	}

	o := &Option{fullName: fullName, short: short, desc: desc}
	for _, s := range settings {
		s(o)
	}

	return o, nil
}

// MustOption is like NewOption but panics on an invalid declaration.
func MustOption(fullName string, short rune, desc string, settings ...OptionSetting) *Option {
	o, err := NewOption(fullName, short, desc, settings...)
	if err != nil {
		panic(err)
	}
	return o
}

// AddCriterion attaches criteria, checked in order against the bound value. A
// criterion instance can be attached to a single option only once. Either
// all of cs are attached or, on error, none of them.
func (o *Option) AddCriterion(cs ...*criteria.Criterion) error {
	seen := make(map[*criteria.Criterion]struct{}, len(cs))
	for _, c := range cs {
		if c == nil {
			return errors.NewConfigError("nil criterion for %s", o.DisplayName())
		}
		if err := c.Err(); err != nil {
			return err
		}
		if _, dup := seen[c]; dup || c.Owner() != "" {
			return errors.NewConfigError("two of the same criteria cannot be added to %s", o.DisplayName())
		}
		seen[c] = struct{}{}
	}

	for _, c := range cs {
		if err := c.Bind(o.DisplayName()); err != nil {
			return err
		}
		o.criteria = append(o.criteria, c)
	}

	return nil
}

// SetAction binds fn to the option. It replaces any previous action.
func (o *Option) SetAction(fn OptionAction) *Option {
	o.action = fn
	return o
}

// Name returns the full name without prefix.
func (o *Option) Name() string { return o.fullName }

// Short returns the short spelling without prefix, 0 when there is none.
func (o *Option) Short() rune { return o.short }

// Description returns the text shown in help pages.
func (o *Option) Description() string { return o.desc }

// ExpectsValue reports whether the option consumes the following argument.
func (o *Option) ExpectsValue() bool { return o.expectsValue }

// IsRequired reports whether the parse fails when the option is absent.
func (o *Option) IsRequired() bool { return o.required }

// IsValueRequired reports whether a present option must carry a non-empty
// value.
func (o *Option) IsValueRequired() bool { return o.valueRequired }

// IsPresent reports whether the option appeared in the last parse.
func (o *Option) IsPresent() bool { return o.present }

// Value returns the bound value, "" when unset.
func (o *Option) Value() string { return o.value }

// Verb returns the verb owning the option, nil before it is added to one.
func (o *Option) Verb() *Verb { return o.parent }

// DisplayName returns the spellings of the option, e.g. "-f / --format".
func (o *Option) DisplayName() string {
	if o.short == 0 {
		return longName(o.fullName)
	}
	return shortName(o.short) + " / " + longName(o.fullName)
}

// CriteriaDescriptions returns the description of every attached criterion.
func (o *Option) CriteriaDescriptions() []string {
	descs := make([]string, 0, len(o.criteria))
	for _, c := range o.criteria {
		descs = append(descs, c.Describe())
	}
	return descs
}

func (o *Option) check() error {
	for _, c := range o.criteria {
		if err := c.Check(o.value); err != nil {
			reason := err.Error()
			var ve *errors.ValidationError
			if errors.As(err, &ve) {
				reason = ve.Reason
			}
			return &errors.ValidationError{
				Option:   o.DisplayName(),
				Reason:   reason,
				Criteria: o.CriteriaDescriptions(),
			}
		}
	}

	return nil
}

func (o *Option) reset() {
	o.present = false
	o.value = ""
}
