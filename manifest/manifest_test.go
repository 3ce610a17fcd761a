// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangtaoking1/verbtree/errors"
	"github.com/wangtaoking1/verbtree/parser"
)

const cipherManifest = `
program: cipher
header: A toy cipher tool
footer: See the project page for more.
options:
  - name: verbose
    short: v
    description: Print more
verbs:
  - name: encrypt
    description: Encrypt a file
    options:
      - name: cipher
        short: c
        description: Cipher to use
        required: true
        valueRequired: true
        criteria:
          - oneOf: [caesar, affine, atbash]
      - name: shift
        short: s
        description: Caesar shift
        value: true
        criteria:
          - type: int
          - numbers: [0]
            ranges:
              - {from: 1, to: 25}
    verbs:
      - name: file
        description: Encrypt a file in place
  - name: decrypt
    description: Decrypt a file
`

func buildCipher(t *testing.T) *parser.Parser {
	t.Helper()

	m, err := Parse([]byte(cipherManifest))
	require.NoError(t, err)
	p, err := m.Build(parser.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	return p
}

func TestParse(t *testing.T) {
	m, err := Parse([]byte(cipherManifest))
	require.NoError(t, err)

	assert.Equal(t, "cipher", m.Program)
	assert.Equal(t, "A toy cipher tool", m.Header)
	require.Len(t, m.Verbs, 2)
	assert.Equal(t, "encrypt", m.Verbs[0].Name)
	require.Len(t, m.Verbs[0].Options, 2)
	assert.True(t, m.Verbs[0].Options[0].ValueRequired)
	assert.Equal(t, []Span{{From: 1, To: 25}}, m.Verbs[0].Options[1].Criteria[1].Ranges)
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte("program: x\nverbz: []\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	m, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Program)
}

func TestBuild(t *testing.T) {
	p := buildCipher(t)

	assert.Equal(t, "cipher", p.ProgramName())
	encrypt, ok := p.Root().Verb("encrypt")
	require.True(t, ok)
	_, ok = encrypt.Verb("file")
	assert.True(t, ok)
	cipher, ok := encrypt.Option("c")
	require.True(t, ok)
	assert.True(t, cipher.IsRequired())
	assert.True(t, cipher.ExpectsValue())
	assert.Equal(t, []string{"Options: caesar, affine, atbash"}, cipher.CriteriaDescriptions())

	outcome, err := p.Parse([]string{"encrypt", "-c", "Caesar", "--shift", "3", "in.txt"})
	require.NoError(t, err)
	assert.Equal(t, parser.Parsed, outcome)
	assert.Equal(t, []string{"in.txt"}, p.TrailingArgs())
	shift, err := parser.ValueAs[int](p, "shift")
	require.NoError(t, err)
	assert.Equal(t, 3, shift)

	_, err = p.Parse([]string{"encrypt", "-c", "caesar", "-s", "30"})
	assert.True(t, errors.Is(err, errors.ErrValidation))

	_, err = p.Parse([]string{"encrypt", "-s", "3"})
	assert.True(t, errors.IsParseKind(err, errors.MissingRequiredOption))
}

func TestBuildCollectsErrors(t *testing.T) {
	m := &Manifest{
		Program: "bad",
		Options: []Option{
			{Name: "help"},
			{Name: "ok", Short: "ab"},
			{Name: "fine", Criteria: []Criterion{{Type: "float"}}},
			{Name: "mixed", Value: true, Criteria: []Criterion{{Type: "int", OneOf: []string{"a"}}}},
		},
		Verbs: []Verb{
			{Name: "run"},
			{Name: "run"},
			{Name: "nums", Options: []Option{
				{Name: "num", Value: true, Criteria: []Criterion{{Numbers: []int{1, 1}}}},
			}},
		},
	}

	p, err := m.Build()
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))

	var agg errors.Aggregate
	require.True(t, errors.As(err, &agg))
	assert.Len(t, agg.Errors(), 6)
	assert.True(t, strings.Contains(err.Error(), "bad run"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cipher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cipherManifest), 0o600))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cipher", m.Program)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
