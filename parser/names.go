// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/wangtaoking1/verbtree/errors"
)

const (
	// ShortPrefix introduces a short option, e.g. "-f".
	ShortPrefix = "-"
	// LongPrefix introduces a long option, e.g. "--format".
	LongPrefix = "--"
	// Escape neutralizes the flag shape of the token that follows it.
	Escape = "--"

	// HelpName and HelpShort are the reserved spellings of the help option.
	HelpName  = "help"
	HelpShort = '?'
	// VerbsName is the reserved long option that renders the verb tree.
	VerbsName = "verbs"

	MaxVerbNameLen    = 16
	MinOptionNameLen  = 2
	MaxOptionNameLen  = 15
	MaxDescriptionLen = 100
)

func longName(fullName string) string { return LongPrefix + fullName }

func shortName(short rune) string { return ShortPrefix + string(short) }

func isNameChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func validateDescription(desc string) error {
	if len(desc) > MaxDescriptionLen {
		return errors.NewConfigError("the maximum description length is %d chars", MaxDescriptionLen)
	}
	return nil
}

func validateVerbName(name string) error {
	switch {
	case name == "" || name == Escape || name[0] == '-':
		return errors.NewConfigError("verb name cannot be empty or start with '-': %q", name)
	case len(name) > MaxVerbNameLen:
		return errors.NewConfigError("verb name is longer than %d chars: %s", MaxVerbNameLen, name)
	}
	for _, c := range name {
		if !isNameChar(c) {
			return errors.NewConfigError("the verb name (%s) contains an invalid character: %q", name, c)
		}
	}

	return nil
}

func validateOptionName(fullName string, short rune) error {
	switch {
	case len(fullName) < MinOptionNameLen || len(fullName) > MaxOptionNameLen:
		return errors.NewConfigError("the option name must be between %d and %d chars: %q",
			MinOptionNameLen, MaxOptionNameLen, fullName)
	case fullName[0] == '-':
		return errors.NewConfigError("option name cannot start with '-': %s", fullName)
	case fullName == HelpName || fullName == VerbsName:
		return errors.NewConfigError("%s is reserved", longName(fullName))
	}
	for _, c := range fullName {
		if !isNameChar(c) {
			return errors.NewConfigError("the option name (%s) contains an invalid character: %q", longName(fullName), c)
		}
	}

	if short == 0 {
		return nil
	}
	if short == HelpShort || short == '-' {
		return errors.NewConfigError("%s is reserved", shortName(short))
	}
	if !isNameChar(short) {
		return errors.NewConfigError("the short name of %s is not a valid character: %q", longName(fullName), short)
	}

	return nil
}
