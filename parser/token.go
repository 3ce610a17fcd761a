// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import "strings"

// TokenKind classifies an argument after verb resolution.
type TokenKind int

const (
	// Positional is a plain argument; it becomes a Value when an option
	// consumes it.
	Positional TokenKind = iota
	Flag
	Value
	EscapeToken
)

func (k TokenKind) String() string {
	switch k {
	case Flag:
		return "flag"
	case Value:
		return "value"
	case EscapeToken:
		return "escape"
	default:
		return "positional"
	}
}

// Token is a classified argument.
type Token struct {
	Text string
	Kind TokenKind
}

func isFlagShaped(arg string) bool {
	return strings.HasPrefix(arg, ShortPrefix)
}

// Classify marks every argument as Flag, EscapeToken or Positional and returns
// the index of the last flag, -1 when there is none.
//
// An escape token neutralizes exactly one following flag shaped token, which
// is then Positional. Arguments after the last flag are trailing arguments.
func Classify(args []string) ([]Token, int) {
	tokens := make([]Token, len(args))
	for i, arg := range args {
		switch {
		case arg == Escape:
			tokens[i] = Token{Text: arg, Kind: EscapeToken}
		case isFlagShaped(arg):
			tokens[i] = Token{Text: arg, Kind: Flag}
		default:
			tokens[i] = Token{Text: arg, Kind: Positional}
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind == EscapeToken && tokens[i+1].Kind != Positional {
			tokens[i+1].Kind = Positional
		}
	}

	lastOption := -1
	for i, t := range tokens {
		if t.Kind == Flag {
			lastOption = i
		}
	}

	return tokens, lastOption
}

// helpRequest reports which reserved output a flag asks for, Parsed when
// there is no such flag.
func helpRequest(tokens []Token) Outcome {
	for _, t := range tokens {
		if t.Kind != Flag {
			continue
		}
		switch t.Text {
		case shortName(HelpShort), longName(HelpName):
			return HelpShown
		case longName(VerbsName):
			return VerbsShown
		}
	}

	return Parsed
}
