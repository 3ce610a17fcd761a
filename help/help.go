// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package help renders help pages and verb trees.
//
// The parser describes what to render with plain data (Page, Node) and calls
// a Renderer, so hosts can replace the text layout without touching parsing.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/wangtaoking1/verbtree/utils"
	"github.com/wangtaoking1/verbtree/utils/term"
)

const (
	defaultWidth = 80
	maxWidth     = 120
	minDescWidth = 20
)

// Entry is one option line of a help page.
type Entry struct {
	// Short is the short spelling without prefix, 0 when the option has none.
	Short       rune
	Long        string
	Description string
}

// Page is everything shown by a help page.
type Page struct {
	ProgramName string
	// Path holds the names of the resolved verbs below the root.
	Path        []string
	Description string
	// HasVerbs reports whether the verb the page is about has child verbs.
	HasVerbs bool
	Header   string
	Footer   string
	Entries  []Entry
}

// Node is a verb in a verb tree.
type Node struct {
	Name        string
	Description string
	Children    []*Node
}

// Renderer renders help pages and verb trees.
type Renderer interface {
	RenderHelp(w io.Writer, page *Page) error
	RenderTree(w io.Writer, root *Node) error
}

// Reserved lines shown at the end of every option list.
var reservedEntries = []Entry{
	{Long: "verbs", Description: "Open the verbs tree"},
	{Short: '?', Long: "help", Description: "Open this help message"},
}

// TextRenderer is the default Renderer. It lays option lines out as a table
// and wraps descriptions to the terminal width.
type TextRenderer struct {
	// Width is the output width. When zero it is detected from the writer
	// and capped at 120 columns.
	Width int
}

var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer returns a TextRenderer that detects the output width.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// RenderHelp writes the usage line, header, options and footer of page.
func (r *TextRenderer) RenderHelp(w io.Writer, page *Page) error {
	var b strings.Builder

	usage := []string{page.ProgramName}
	usage = append(usage, page.Path...)
	if page.HasVerbs {
		usage = append(usage, "[verbs]")
	}
	usage = append(usage, "[options]", "[args]")
	fmt.Fprintf(&b, "%s %s\n", heading("Usage:"), strings.Join(usage, " "))
	if page.Header != "" {
		fmt.Fprintf(&b, "%s\n", page.Header)
	}

	if len(page.Path) > 0 {
		fmt.Fprintf(&b, "\nSelected verb pattern: %s\n", strings.Join(append([]string{page.ProgramName}, page.Path...), " "))
		if page.Description != "" {
			fmt.Fprintf(&b, "Verb description: %s\n", page.Description)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", heading("Options:"))
	entries := make([]Entry, 0, len(page.Entries)+len(reservedEntries))
	entries = append(entries, page.Entries...)
	entries = append(entries, reservedEntries...)
	fmt.Fprintln(&b, r.optionTable(w, entries))

	if page.Footer != "" {
		fmt.Fprintf(&b, "%s\n", page.Footer)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTree draws root and all of its descendants with box drawing glyphs.
func (r *TextRenderer) RenderTree(w io.Writer, root *Node) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: (program name)\n", root.Name)
	for i, child := range root.Children {
		writeNode(&b, child, "    ", i == len(root.Children)-1)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, n *Node, prefix string, isLast bool) {
	branch := "├──"
	if isLast {
		branch = "└──"
	}
	if n.Description != "" {
		fmt.Fprintf(b, "%s%s %s: (%s)\n", prefix, branch, n.Name, n.Description)
	} else {
		fmt.Fprintf(b, "%s%s %s\n", prefix, branch, n.Name)
	}

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}
	for i, child := range n.Children {
		writeNode(b, child, childPrefix, i == len(n.Children)-1)
	}
}

func (r *TextRenderer) optionTable(w io.Writer, entries []Entry) *uitable.Table {
	table := uitable.New()
	table.Separator = "    "
	table.Wrap = true

	flagWidth := 0
	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = spelling(e)
		flagWidth = utils.Max(flagWidth, len(rows[i]))
	}
	descWidth := utils.Max(r.width(w)-flagWidth-len(table.Separator), minDescWidth)
	table.MaxColWidth = uint(utils.Max(descWidth, flagWidth))

	for i, e := range entries {
		table.AddRow(rows[i], e.Description)
	}

	return table
}

func (r *TextRenderer) width(w io.Writer) int {
	if r.Width > 0 {
		return r.Width
	}
	if cols, _, err := term.TerminalSize(w); err == nil && cols > 0 {
		return utils.Min(cols, maxWidth)
	}

	return defaultWidth
}

func spelling(e Entry) string {
	if e.Short != 0 {
		return fmt.Sprintf("    -%c, --%s", e.Short, e.Long)
	}
	return "        --" + e.Long
}

func heading(s string) string {
	return color.New(color.Bold).Sprint(s)
}
