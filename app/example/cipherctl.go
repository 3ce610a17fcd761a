// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/wangtaoking1/verbtree/app"
	"github.com/wangtaoking1/verbtree/criteria"
	"github.com/wangtaoking1/verbtree/log"
	"github.com/wangtaoking1/verbtree/manifest"
	"github.com/wangtaoking1/verbtree/parser"
)

const tree = `
program: cipherctl
header: Encrypt and decrypt text with classical ciphers.
footer: Settings are read from cipherctl.yaml or CIPHERCTL_CONFIG.
autoHelp: true
verbs:
  - name: text
    description: Work on the trailing arguments
    verbs:
      - name: encrypt
        description: Encrypt the text
        options: &cipherOptions
          - name: cipher
            short: c
            description: Cipher to use
            required: true
            valueRequired: true
            criteria:
              - oneOf: [caesar, atbash]
          - name: shift
            short: s
            description: Caesar shift
            value: true
            criteria:
              - type: int
              - numbers: [0]
                ranges:
                  - {from: 1, to: 25}
      - name: decrypt
        description: Decrypt the text
        options: *cipherOptions
`

func main() {
	m, err := manifest.Parse([]byte(tree))
	if err != nil {
		panic(err)
	}
	p, err := m.Build()
	if err != nil {
		panic(err)
	}

	// the key option has no YAML form since it needs a custom predicate
	keyed := parser.MustOption("key", 'k', "Letters only key, reported back", parser.ValueRequired())
	if err := keyed.AddCriterion(criteria.Custom("the key must only hold letters", "letters only", isLetters)); err != nil {
		panic(err)
	}
	text, _ := p.Root().Verb("text")
	encrypt, _ := text.Verb("encrypt")
	if err := encrypt.AddOption(keyed); err != nil {
		panic(err)
	}

	application := app.NewApp("cipherctl",
		"cipher ctl",
		app.WithDescription("A classical cipher tool driven by a verb tree"),
		app.WithParser(p),
		app.WithSilence(),
		app.WithRunFunc(run),
	)

	application.Run()
}

func run(p *parser.Parser) error {
	cipher, _ := p.Value("cipher")
	shift := 3
	if p.IsPresent("shift") {
		var err error
		if shift, err = parser.ValueAs[int](p, "shift"); err != nil {
			return err
		}
	}
	if key, ok := p.Value("key"); ok {
		log.Infof("using key %s", key)
	}

	input := strings.Join(p.TrailingArgs(), " ")
	fmt.Println(transform(cipher, shift, p.VerbPresent("decrypt"), input))

	return nil
}
