// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// linter is the name used in nolint directives.
const linter = "ifacecapture"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{file: file, handle: handle, generated: ast.IsGenerated(file)}
}

// Valid returns true if the [CurrentFile] was created from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint reports whether the file is excluded by a nolint directive in its package documentation.
func (c CurrentFile) NoLint() bool {
	return c.file != nil && DocHasNoLint(c.file.Doc)
}

// NoLintComment checks if pos is followed by a //nolint:ifacecapture comment on the same line.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil || c.handle == nil {
		return false
	}

	line := c.line(pos)

	// find the first comment starting after pos
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(g *ast.CommentGroup, p token.Pos) int { return int(g.Pos() - p) })

	for _, group := range c.file.Comments[i:] {
		for _, comment := range group.List {
			switch l := c.line(comment.Pos()); {
			case l > line:
				return false // past this line

			case l == line && CommentHasNoLint(comment):
				return true
			}
		}
	}

	return false
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// DocHasNoLint checks the last line of a doc comment for a nolint directive.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	if doc == nil || len(doc.List) == 0 {
		return false
	}

	return CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:ifacecapture` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	for name := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(name)); l == linter || l == "all" {
			return true
		}
	}

	return false
}
