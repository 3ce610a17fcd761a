// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

/*
Package parser implements a hierarchical command line parser.

A program declares a tree of verbs (sub-commands). Every verb owns a set of
options, and options may carry a value checked by criteria. Parse turns an
argument vector into presence flags, bound values and trailing arguments:

	p := parser.New("tool", parser.WithAutoHelp(true))
	convert := parser.MustVerb("convert", "Convert a document")
	format := parser.MustOption("format", 'f', "Output format", parser.ValueRequired(), parser.Required())
	_ = format.AddCriterion(criteria.StringEnum(false).AddString("json").AddString("yaml"))
	_ = convert.AddOption(format)
	_ = p.AddVerb(convert)

	outcome, err := p.Parse(os.Args[1:])

Parsing happens in phases:

  - leading arguments naming child verbs select the verb, as long as the
    current verb has children;
  - the remaining arguments are classified. "--" neutralizes the flag shape
    of the token after it, and arguments after the last flag are trailing
    arguments;
  - "-?", "--help" and "--verbs" render output and stop the parse;
  - flags are matched against the options of the selected verb only, and
    options expecting a value consume the next argument;
  - required options are checked, then criteria run on bound values;
  - verb actions run root to leaf, then option actions of the selected verb.

Any error is final for the parse and leaves no binding behind. Help and verb
tree requests are not errors; they are reported through the Outcome.
*/
package parser
