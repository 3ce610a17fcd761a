// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package criteria implements the validators that can be attached to an
// option to check its bound value.
//
// A Criterion is one of a closed set of variants (type check, number set,
// range, number/range set, string enumeration, custom predicate). The set
// building methods are chainable; a configuration mistake such as adding the
// same number twice is recorded on the criterion and reported by Err, and the
// parser refuses to attach a criterion that carries such an error.
//
//	c := criteria.NumberRangeSet().AddRange(10, 20).Add(7)
//	if err := c.Err(); err != nil {
//		// duplicate entry
//	}
package criteria

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/wangtaoking1/verbtree/container/set"
	"github.com/wangtaoking1/verbtree/errors"
)

// MaxDescriptionLen is the longest description a custom criterion accepts.
const MaxDescriptionLen = 100

// Kind identifies the variant of a Criterion.
type Kind int

const (
	KindTypeCheck Kind = iota + 1
	KindNumberSet
	KindRange
	KindNumberRangeSet
	KindStringEnum
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindTypeCheck:
		return "type"
	case KindNumberSet:
		return "number-set"
	case KindRange:
		return "range"
	case KindNumberRangeSet:
		return "number-range-set"
	case KindStringEnum:
		return "string-enum"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ValueType is the type checked by a type criterion.
type ValueType int

const (
	Int ValueType = iota
	Double
	String
)

func (t ValueType) String() string {
	switch t {
	case Int:
		return "int"
	case Double:
		return "double"
	default:
		return "string"
	}
}

// Predicate decides whether a value passes a custom criterion.
type Predicate func(value string) bool

// span is an inclusive integer range.
type span struct {
	start, end int
}

// Criterion validates a single option value.
type Criterion struct {
	kind Kind

	valueType ValueType

	// numbers keeps insertion order for Describe, numberSet answers Check.
	numbers   []int
	numberSet *set.Set[int]
	ranges    []span

	matchCase      bool
	possibilities  []string
	possibilitySet *set.Set[string]

	errorMsg  string
	desc      string
	predicate Predicate

	owner string
	err   error
}

// TypeCheck creates a criterion that requires the value to parse as t.
func TypeCheck(t ValueType) *Criterion {
	return &Criterion{kind: KindTypeCheck, valueType: t}
}

// NumberSet creates a criterion that requires the value to be one of the
// integers added with Add.
func NumberSet() *Criterion {
	return &Criterion{kind: KindNumberSet, numberSet: set.New[int]()}
}

// Range creates a criterion that requires the value to be an integer in the
// inclusive range [start, end].
func Range(start, end int) *Criterion {
	c := &Criterion{kind: KindRange}
	if start > end {
		c.fail("the range start must not be greater than its end: %d-%d", start, end)
	}
	c.ranges = []span{{start: start, end: end}}

	return c
}

// NumberRangeSet creates a criterion that accepts integers equal to any number
// added with Add or inside any range added with AddRange.
func NumberRangeSet() *Criterion {
	return &Criterion{kind: KindNumberRangeSet, numberSet: set.New[int]()}
}

// StringEnum creates a criterion that requires the value to be one of the
// strings added with AddString. When matchCase is false, both the
// possibilities and the value are case folded. An empty enumeration accepts
// everything.
func StringEnum(matchCase bool) *Criterion {
	return &Criterion{kind: KindStringEnum, matchCase: matchCase, possibilitySet: set.New[string]()}
}

// Custom creates a criterion backed by a caller supplied predicate. errorMsg
// is reported when the predicate returns false, desc is shown in help and
// error output.
func Custom(errorMsg, desc string, predicate Predicate) *Criterion {
	c := &Criterion{kind: KindCustom, errorMsg: errorMsg, desc: desc, predicate: predicate}
	switch {
	case len(desc) > MaxDescriptionLen:
		c.fail("the maximum description length is %d chars", MaxDescriptionLen)
	case predicate == nil:
		c.fail("a custom criterion needs a predicate")
	}

	return c
}

// Add inserts a number into a NumberSet or NumberRangeSet.
func (c *Criterion) Add(number int) *Criterion {
	if c.err != nil {
		return c
	}
	if c.kind != KindNumberSet && c.kind != KindNumberRangeSet {
		c.fail("numbers cannot be added to a %s criterion", c.kind)
		return c
	}
	if !c.numberSet.Add(number) {
		c.fail("the same number cannot be added twice: %d", number)
		return c
	}
	c.numbers = append(c.numbers, number)

	return c
}

// AddRange inserts an inclusive range into a NumberRangeSet.
func (c *Criterion) AddRange(start, end int) *Criterion {
	if c.err != nil {
		return c
	}
	if c.kind != KindNumberRangeSet {
		c.fail("ranges cannot be added to a %s criterion", c.kind)
		return c
	}
	if start > end {
		c.fail("the range start must not be greater than its end: %d-%d", start, end)
		return c
	}
	for _, r := range c.ranges {
		if r.start == start && r.end == end {
			c.fail("the same range cannot be added twice: %d-%d", start, end)
			return c
		}
	}
	c.ranges = append(c.ranges, span{start: start, end: end})

	return c
}

// AddString inserts a possibility into a StringEnum.
func (c *Criterion) AddString(possibility string) *Criterion {
	if c.err != nil {
		return c
	}
	if c.kind != KindStringEnum {
		c.fail("strings cannot be added to a %s criterion", c.kind)
		return c
	}
	v := c.normalize(possibility)
	if !c.possibilitySet.Add(v) {
		c.fail("the same possibility cannot be added twice: %s", possibility)
		return c
	}
	c.possibilities = append(c.possibilities, v)

	return c
}

// Kind returns the variant of the criterion.
func (c *Criterion) Kind() Kind { return c.kind }

// Err returns the first configuration error recorded while building the
// criterion.
func (c *Criterion) Err() error { return c.err }

// Owner returns the name of the option the criterion is bound to, or "" if it
// is not bound yet.
func (c *Criterion) Owner() string { return c.owner }

// Bind attaches the criterion to the named option. A criterion can only be
// bound once, and never while it carries a configuration error.
func (c *Criterion) Bind(owner string) error {
	if c.err != nil {
		return c.err
	}
	if c.owner != "" {
		return errors.NewConfigError("two of the same criteria cannot be added: already bound to %s", c.owner)
	}
	c.owner = owner

	return nil
}

// Describe returns a human readable summary of the rule.
func (c *Criterion) Describe() string {
	switch c.kind {
	case KindTypeCheck:
		return "Type: " + c.valueType.String()
	case KindRange:
		return fmt.Sprintf("Range: %d-%d", c.ranges[0].start, c.ranges[0].end)
	case KindNumberSet, KindNumberRangeSet:
		items := make([]string, 0, len(c.numbers)+len(c.ranges))
		for _, n := range c.numbers {
			items = append(items, strconv.Itoa(n))
		}
		for _, r := range c.ranges {
			items = append(items, fmt.Sprintf("%d-%d", r.start, r.end))
		}
		return strings.TrimSpace("Options: " + strings.Join(items, ", "))
	case KindStringEnum:
		return strings.TrimSpace("Options: " + strings.Join(c.possibilities, ", "))
	case KindCustom:
		return "Custom test: " + c.desc
	default:
		return c.kind.String()
	}
}

// Check validates value. It returns a *errors.ValidationError when the value
// does not satisfy the rule, and the configuration error when the criterion
// carries one.
func (c *Criterion) Check(value string) error {
	if c.err != nil {
		return c.err
	}
	switch c.kind {
	case KindTypeCheck:
		return c.checkType(value)
	case KindNumberSet:
		n, err := strconv.Atoi(value)
		if err != nil {
			return c.reject("failed to parse the number")
		}
		if !c.numberSet.Contains(n) {
			return c.reject("the chosen number is not allowed")
		}
	case KindRange, KindNumberRangeSet:
		n, err := strconv.Atoi(value)
		if err != nil {
			return c.reject("failed to parse the number")
		}
		if !c.inRanges(n) {
			return c.reject("the chosen number was not in the correct range")
		}
	case KindStringEnum:
		v := c.normalize(value)
		if !c.possibilitySet.Empty() && !c.possibilitySet.Contains(v) {
			return c.reject("the chosen value was not found in the configured options: " + v)
		}
	case KindCustom:
		if !c.predicate(value) {
			return c.reject(c.errorMsg)
		}
	}

	return nil
}

func (c *Criterion) checkType(value string) error {
	switch c.valueType {
	case Int:
		if _, err := strconv.Atoi(value); err != nil {
			return c.reject("should be an int")
		}
	case Double:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return c.reject("should be a double")
		}
	}

	return nil
}

func (c *Criterion) inRanges(n int) bool {
	if c.numberSet != nil && c.numberSet.Contains(n) {
		return true
	}
	for _, r := range c.ranges {
		if n >= r.start && n <= r.end {
			return true
		}
	}

	return false
}

func (c *Criterion) normalize(s string) string {
	if c.matchCase {
		return s
	}
	return cases.Fold().String(s)
}

func (c *Criterion) reject(reason string) error {
	return &errors.ValidationError{Reason: reason, Criteria: []string{c.Describe()}}
}

func (c *Criterion) fail(format string, args ...interface{}) {
	if c.err == nil {
		c.err = errors.NewConfigError(format, args...)
	}
}
