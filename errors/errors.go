// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package errors defines the error taxonomy shared by the verb tree packages.
//
// Three families exist: ConfigError is returned while a tree is being
// declared, ParseError and ValidationError are returned by a parse. All of
// them match the corresponding sentinel with Is, so callers can branch on the
// family without knowing the concrete type.
package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrConfig matches every *ConfigError.
	ErrConfig = errors.New("invalid configuration")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse failure")
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failure")
)

// New returns an error with the supplied message and a stack trace.
func New(message string) error { return errors.New(message) }

// Errorf formats according to a format specifier and returns the string as an
// error with a stack trace.
func Errorf(format string, args ...interface{}) error { return errors.Errorf(format, args...) }

// Wrap annotates err with message. It returns nil if err is nil.
func Wrap(err error, message string) error { return errors.Wrap(err, message) }

// Wrapf annotates err with the format specifier. It returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// ConfigError reports an invalid declaration: a bad name, a duplicate
// registration or a reserved-name collision.
type ConfigError struct {
	Reason string
}

// NewConfigError creates a ConfigError with a formatted reason.
func NewConfigError(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string { return e.Reason }

// Is makes ConfigError match ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	UnknownVerb ParseErrorKind = iota + 1
	UnknownOption
	DuplicateOption
	MissingValue
	MissingRequiredOption
	PositionalBeforeOptions
	DanglingEscape
)

var parseErrorKindNames = map[ParseErrorKind]string{
	UnknownVerb:             "UnknownVerb",
	UnknownOption:           "UnknownOption",
	DuplicateOption:         "DuplicateOption",
	MissingValue:            "MissingValue",
	MissingRequiredOption:   "MissingRequiredOption",
	PositionalBeforeOptions: "PositionalBeforeOptions",
	DanglingEscape:          "DanglingEscape",
}

func (k ParseErrorKind) String() string {
	if name, ok := parseErrorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError reports a malformed argument vector.
type ParseError struct {
	Kind ParseErrorKind
	// Token is the offending argument or the display name of the option
	// involved (e.g. "-f / --format").
	Token string
	// Suggestion is the closest known name for unknown verbs and options.
	Suggestion string
	// Criteria holds the descriptions of the option's criteria, when an
	// option is involved.
	Criteria []string
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case UnknownVerb:
		msg = "the provided verb was not recognised: " + e.Token
	case UnknownOption:
		msg = "unrecognised option: " + e.Token
	case DuplicateOption:
		msg = "multiple occurrences of an option: " + e.Token
	case MissingValue:
		msg = "a required argument was not present for the option: " + e.Token
	case MissingRequiredOption:
		msg = "a required option was missing: " + e.Token
	case PositionalBeforeOptions:
		msg = "parameter without option: " + e.Token
	case DanglingEscape:
		msg = "an escape sequence was detected, but not followed by a value"
	default:
		msg = fmt.Sprintf("%s: %s", e.Kind, e.Token)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

// Is makes ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// IsParseKind reports whether err carries a ParseError of the given kind.
func IsParseKind(err error, kind ParseErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

// ValidationError reports a bound value rejected by a criterion.
type ValidationError struct {
	// Option is the display name of the option, empty when the criterion was
	// checked on its own.
	Option   string
	Reason   string
	Criteria []string
}

func (e *ValidationError) Error() string {
	if e.Option == "" {
		return e.Reason
	}
	return e.Option + ": " + e.Reason
}

// Is makes ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Details returns the criteria block shown under a parse or validation error.
// It is empty when err carries no criteria.
func Details(err error) string {
	var criteria []string
	var pe *ParseError
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		criteria = ve.Criteria
	case errors.As(err, &pe):
		criteria = pe.Criteria
	}
	if len(criteria) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Criteria:\n")
	for _, c := range criteria {
		b.WriteString("\t" + c + "\n")
	}

	return b.String()
}
