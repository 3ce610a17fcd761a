// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/wangtaoking1/verbtree/errors"
)

// VerbAction is invoked after a successful parse when its verb is present.
type VerbAction func(v *Verb) error

// Verb is a node of the command tree. It owns its child verbs and its options;
// options are not inherited by child verbs.
type Verb struct {
	name    string
	desc    string
	present bool
	root    bool

	children   []*Verb
	childIndex map[string]*Verb

	options     []*Option
	optionIndex map[string]*Option

	action VerbAction
	parent *Verb
}

// NewVerb validates and creates a verb.
func NewVerb(name, desc string) (*Verb, error) {
	if err := validateVerbName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(desc); err != nil {
		return nil, err
	}

	return newVerb(name, desc), nil
}

// MustVerb is like NewVerb but panics on an invalid declaration.
func MustVerb(name, desc string) *Verb {
	v, err := NewVerb(name, desc)
	if err != nil {
		panic(err)
	}
	return v
}

func newVerb(name, desc string) *Verb {
	return &Verb{
		name:        name,
		desc:        desc,
		childIndex:  make(map[string]*Verb),
		optionIndex: make(map[string]*Option),
	}
}

// AddVerb appends child to the verbs of v.
func (v *Verb) AddVerb(child *Verb) error {
	switch {
	case child == nil:
		return errors.NewConfigError("nil verb added to %s", v.name)
	case child.root:
		return errors.NewConfigError("the root verb cannot be added as a child: %s", child.name)
	case child.parent != nil:
		return errors.NewConfigError("the verb %s already belongs to %s", child.name, child.parent.name)
	}
	for ancestor := v; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return errors.NewConfigError("cannot add the parent of a verb as its child: %s", child.name)
		}
	}
	if _, ok := v.childIndex[child.name]; ok {
		return errors.NewConfigError("a verb with the same name has already been added: %s", child.name)
	}

	v.children = append(v.children, child)
	v.childIndex[child.name] = child
	child.parent = v

	return nil
}

// AddOption appends o to the options of v. Full and short names must be
// unique within v.
func (v *Verb) AddOption(o *Option) error {
	switch {
	case o == nil:
		return errors.NewConfigError("nil option added to %s", v.name)
	case o.parent != nil:
		return errors.NewConfigError("the option %s already belongs to %s", o.DisplayName(), o.parent.name)
	}

	long := longName(o.fullName)
	if _, ok := v.optionIndex[long]; ok {
		return errors.NewConfigError("an option with the same name has already been added: %s", long)
	}
	if o.short != 0 {
		short := shortName(o.short)
		if _, ok := v.optionIndex[short]; ok {
			return errors.NewConfigError("an option with the same short name has already been added: %s", short)
		}
		v.optionIndex[short] = o
	}
	v.optionIndex[long] = o
	v.options = append(v.options, o)
	o.parent = v

	return nil
}

// SetAction binds fn to the verb. It replaces any previous action.
func (v *Verb) SetAction(fn VerbAction) *Verb {
	v.action = fn
	return v
}

// Name returns the name that selects the verb on the command line.
func (v *Verb) Name() string { return v.name }

// Description returns the text shown in help pages and the verb tree.
func (v *Verb) Description() string { return v.desc }

// IsPresent reports whether the verb appeared in the last parse.
func (v *Verb) IsPresent() bool { return v.present }

// Parent returns the parent verb, nil for a root or a detached verb.
func (v *Verb) Parent() *Verb { return v.parent }

// Verbs returns the child verbs in registration order.
func (v *Verb) Verbs() []*Verb {
	return append([]*Verb(nil), v.children...)
}

// Options returns the options of v in registration order.
func (v *Verb) Options() []*Option {
	return append([]*Option(nil), v.options...)
}

// Verb returns the child verb called name.
func (v *Verb) Verb(name string) (*Verb, bool) {
	child, ok := v.childIndex[name]
	return child, ok
}

// Option looks an option of v up by full or short name. The name may carry
// its prefix ("--format", "-f") or not ("format", "f").
func (v *Verb) Option(name string) (*Option, bool) {
	o, ok := v.optionIndex[optionKey(name)]
	return o, ok
}

// Path returns the verbs from the root down to v, root excluded.
func (v *Verb) Path() []*Verb {
	var path []*Verb
	for n := v; n != nil && n.parent != nil; n = n.parent {
		path = append([]*Verb{n}, path...)
	}
	return path
}

// Reset clears presence and values of v and of everything below it.
func (v *Verb) Reset() {
	v.present = false
	for _, o := range v.options {
		o.reset()
	}
	for _, child := range v.children {
		child.Reset()
	}
}

func (v *Verb) runActions() error {
	if v.present && v.action != nil {
		if err := v.action(v); err != nil {
			return errors.Wrapf(err, "action of verb %s", v.name)
		}
	}
	for _, child := range v.children {
		if err := child.runActions(); err != nil {
			return err
		}
	}

	return nil
}

func optionKey(name string) string {
	switch {
	case len(name) > 0 && name[0] == '-':
		return name
	case len([]rune(name)) == 1:
		return ShortPrefix + name
	default:
		return LongPrefix + name
	}
}
