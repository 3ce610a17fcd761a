// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"github.com/wangtaoking1/verbtree/help"
)

// HelpPage describes the help page of v.
func (p *Parser) HelpPage(v *Verb) *help.Page {
	page := &help.Page{
		ProgramName: p.programName,
		HasVerbs:    len(v.children) > 0,
		Header:      p.header,
		Footer:      p.footer,
	}
	if !v.root {
		page.Description = v.desc
		for _, n := range v.Path() {
			page.Path = append(page.Path, n.name)
		}
	}
	for _, o := range v.options {
		page.Entries = append(page.Entries, help.Entry{Short: o.short, Long: o.fullName, Description: o.desc})
	}

	return page
}

// VerbTree describes the whole verb tree.
func (p *Parser) VerbTree() *help.Node {
	return treeNode(p.root)
}

func treeNode(v *Verb) *help.Node {
	n := &help.Node{Name: v.name, Description: v.desc}
	for _, child := range v.children {
		n.Children = append(n.Children, treeNode(child))
	}
	return n
}

// RenderHelp writes the help page of v to the parser output.
func (p *Parser) RenderHelp(v *Verb) error {
	if v == nil {
		v = p.root
	}
	return p.renderer.RenderHelp(p.out, p.HelpPage(v))
}

// RenderVerbTree writes the verb tree to the parser output.
func (p *Parser) RenderVerbTree() error {
	return p.renderer.RenderTree(p.out, p.VerbTree())
}
