// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"io"
	"os"

	"github.com/wangtaoking1/verbtree/errors"
	"github.com/wangtaoking1/verbtree/help"
	"github.com/wangtaoking1/verbtree/log"
)

// Outcome tells how a parse ended.
type Outcome int

const (
	// Failed is returned together with an error.
	Failed Outcome = iota
	// Parsed means bindings are available and actions ran.
	Parsed
	// HelpShown means a help page was rendered instead of parsing.
	HelpShown
	// VerbsShown means the verb tree was rendered instead of parsing.
	VerbsShown
)

func (o Outcome) String() string {
	switch o {
	case Parsed:
		return "parsed"
	case HelpShown:
		return "help"
	case VerbsShown:
		return "verbs"
	default:
		return "failed"
	}
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithHeader sets the text shown under the usage line of help pages.
func WithHeader(header string) ParserOption {
	return func(p *Parser) {
		p.header = header
	}
}

// WithFooter sets the text shown at the end of help pages.
func WithFooter(footer string) ParserOption {
	return func(p *Parser) {
		p.footer = footer
	}
}

// WithAutoHelp renders the help page of the selected verb when no argument
// follows the verbs.
func WithAutoHelp(enabled bool) ParserOption {
	return func(p *Parser) {
		p.autoHelp = enabled
	}
}

// WithOutput sets where help pages and verb trees are written. It defaults to
// os.Stdout.
func WithOutput(w io.Writer) ParserOption {
	return func(p *Parser) {
		p.out = w
	}
}

// WithRenderer replaces the default text renderer.
func WithRenderer(r help.Renderer) ParserOption {
	return func(p *Parser) {
		p.renderer = r
	}
}

// Parser parses argument vectors against a verb tree. A Parser is not safe
// for concurrent use and actions must not call Parse on the same Parser.
type Parser struct {
	programName string
	header      string
	footer      string
	autoHelp    bool
	out         io.Writer
	renderer    help.Renderer

	root     *Verb
	selected *Verb
	path     []*Verb
	trailing []string
}

// New creates a parser whose root verb is named after the program.
func New(programName string, opts ...ParserOption) *Parser {
	rootName := programName
	if rootName == "" {
		rootName = "root"
	}
	root := newVerb(rootName, "")
	root.root = true

	p := &Parser{
		programName: rootName,
		out:         os.Stdout,
		renderer:    help.NewTextRenderer(),
		root:        root,
	}
	for _, o := range opts {
		o(p)
	}
	p.selected = root

	return p
}

// Root returns the root verb. Options added to it are the top level options.
func (p *Parser) Root() *Verb { return p.root }

// ProgramName returns the name shown in usage lines.
func (p *Parser) ProgramName() string { return p.programName }

// SetHeader sets the text shown under the usage line of help pages.
func (p *Parser) SetHeader(header string) { p.header = header }

// SetFooter sets the text shown at the end of help pages.
func (p *Parser) SetFooter(footer string) { p.footer = footer }

// SetAutoHelp toggles rendering help when no argument follows the verbs.
func (p *Parser) SetAutoHelp(enabled bool) { p.autoHelp = enabled }

// SetOutput sets where help pages and verb trees are written.
func (p *Parser) SetOutput(w io.Writer) { p.out = w }

// AddVerb adds a top level verb.
func (p *Parser) AddVerb(v *Verb) error { return p.root.AddVerb(v) }

// AddOption adds a top level option.
func (p *Parser) AddOption(o *Option) error { return p.root.AddOption(o) }

// Reset clears every presence flag, value and trailing argument while keeping
// the tree.
func (p *Parser) Reset() {
	p.root.Reset()
	p.selected = p.root
	p.path = nil
	p.trailing = nil
}

// Parse parses args, which exclude the program name.
//
// Verbs are resolved first, then the remaining arguments are classified and
// bound to the options of the deepest verb. Required options and criteria are
// checked before any action runs. A help or verbs request renders output and
// returns HelpShown or VerbsShown without binding anything. On error all
// bindings are cleared.
func (p *Parser) Parse(args []string) (Outcome, error) {
	p.Reset()

	outcome, err := p.parse(args)
	if err != nil {
		log.Debug("parse failed", "error", err)
		p.Reset()
		return Failed, err
	}
	if outcome != Parsed {
		p.Reset()
	}

	return outcome, nil
}

func (p *Parser) parse(args []string) (Outcome, error) {
	rest, err := p.resolveVerbs(args)
	if err != nil {
		return Failed, err
	}
	if len(rest) == 0 && p.autoHelp {
		return HelpShown, p.RenderHelp(p.selected)
	}

	tokens, lastOption := Classify(rest)
	log.Debug("arguments classified", "verb", p.selected.name, "count", len(tokens), "lastOption", lastOption)

	switch helpRequest(tokens) {
	case HelpShown:
		return HelpShown, p.RenderHelp(p.selected)
	case VerbsShown:
		return VerbsShown, p.RenderVerbTree()
	}

	p.root.present = true
	if err := p.bind(tokens, lastOption); err != nil {
		return Failed, err
	}
	if err := p.checkRequired(); err != nil {
		return Failed, err
	}
	if err := p.validate(); err != nil {
		return Failed, err
	}
	if err := p.dispatch(); err != nil {
		return Failed, err
	}
	log.Debug("parse finished", "verb", p.selected.name, "trailing", len(p.trailing))

	return Parsed, nil
}

// resolveVerbs walks down the tree while leading arguments name child verbs
// and returns the arguments left over.
func (p *Parser) resolveVerbs(args []string) ([]string, error) {
	i := 0
	for ; i < len(args) && !isFlagShaped(args[i]) && len(p.selected.children) > 0; i++ {
		child, ok := p.selected.childIndex[args[i]]
		if !ok {
			return nil, &errors.ParseError{
				Kind:       errors.UnknownVerb,
				Token:      args[i],
				Suggestion: suggestVerb(args[i], p.selected),
			}
		}
		child.present = true
		p.selected = child
		p.path = append(p.path, child)
		log.Debug("verb resolved", "verb", child.name)
	}

	return args[i:], nil
}

func (p *Parser) bind(tokens []Token, lastOption int) error {
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.Kind {
		case EscapeToken:
			if i == len(tokens)-1 {
				return &errors.ParseError{Kind: errors.DanglingEscape, Token: t.Text}
			}
		case Flag:
			o, ok := p.selected.optionIndex[t.Text]
			if !ok {
				return &errors.ParseError{
					Kind:       errors.UnknownOption,
					Token:      t.Text,
					Suggestion: suggestOption(t.Text, p.selected),
				}
			}
			if o.present {
				return &errors.ParseError{Kind: errors.DuplicateOption, Token: o.DisplayName()}
			}
			o.present = true
			if !o.expectsValue {
				log.Debug("option bound", "option", o.DisplayName())
				continue
			}

			j := i + 1
			if j < len(tokens) && tokens[j].Kind == EscapeToken {
				j++
			}
			if j >= len(tokens) || tokens[j].Kind != Positional {
				return &errors.ParseError{
					Kind:     errors.MissingValue,
					Token:    t.Text,
					Criteria: o.CriteriaDescriptions(),
				}
			}
			tokens[j].Kind = Value
			o.value = tokens[j].Text
			i = j
			log.Debug("option bound", "option", o.DisplayName(), "value", o.value)
		default:
			if i <= lastOption {
				return &errors.ParseError{Kind: errors.PositionalBeforeOptions, Token: t.Text}
			}
			p.trailing = append(p.trailing, t.Text)
		}
	}

	return nil
}

func (p *Parser) checkRequired() error {
	for _, o := range p.selected.options {
		missing := (o.required && !o.present) || (o.present && o.valueRequired && o.value == "")
		if missing {
			return &errors.ParseError{
				Kind:     errors.MissingRequiredOption,
				Token:    o.DisplayName(),
				Criteria: o.CriteriaDescriptions(),
			}
		}
	}

	return nil
}

func (p *Parser) validate() error {
	for _, o := range p.selected.options {
		if !o.present || o.value == "" {
			continue
		}
		if err := o.check(); err != nil {
			return err
		}
	}

	return nil
}

// dispatch runs verb actions root to leaf, then the actions of the present
// options of the selected verb in registration order.
func (p *Parser) dispatch() error {
	if err := p.root.runActions(); err != nil {
		return err
	}
	for _, o := range p.selected.options {
		if o.present && o.action != nil {
			if err := o.action(o); err != nil {
				return errors.Wrapf(err, "action of option %s", o.DisplayName())
			}
		}
	}

	return nil
}
