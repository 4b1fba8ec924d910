package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra/doc"
	"github.com/ttvtimotheus/CodonScope/cmd"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootCmdHeader = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childCmdHeader = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docType codes whether the command is a child, the root, etc
type docType int

const (
	root docType = iota
	child
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType  docType
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"codonscope": {
		root,
		"codonscope",
		0,
		"",
	},
	"codonscope_fold": {
		child,
		"fold",
		0,
		"codonscope",
	},
	"codonscope_seq": {
		child,
		"seq",
		1,
		"codonscope",
	},
	"codonscope_orfs": {
		child,
		"orfs",
		2,
		"codonscope",
	},
	"codonscope_digest": {
		child,
		"digest",
		3,
		"codonscope",
	},
	"codonscope_primers": {
		child,
		"primers",
		4,
		"codonscope",
	},
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs() {
	if err := doc.GenMarkdownTreeCustom(cmd.RootCmd, "./docs", filePrepender, linkHandler); err != nil {
		fmt.Println(err.Error())
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	switch m.docType {
	case root:
		return fmt.Sprintf(rootCmdHeader, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childCmdHeader, m.title, m.parent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "codonscope" {
		return "/"
	}
	return base
}
