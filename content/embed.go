// Package content embeds the markdown pages served inside the page shell.
package content

import "embed"

// Pages holds pages/*.md.
//
//go:embed pages/*.md
var Pages embed.FS

// PagesDir is the directory within Pages that holds the markdown files.
const PagesDir = "pages"
