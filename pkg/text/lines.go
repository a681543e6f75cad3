// Copyright 2026 walteh LLC
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

package text

import "strings"

// 📄 document is a raw text split into lines, remembering how it was terminated
type document struct {
	lines       []string
	eol         string // line separator used when joining, "\n" or "\r\n"
	trailingEOL bool   // whether the raw text ended in a line terminator
}

// 🔪 splitDocument splits content into lines the way a line reader would:
// a final terminator does not open an extra empty line and a trailing "\r" is not part of the line
func splitDocument(content string) document {
	doc := document{
		eol:         "\n",
		trailingEOL: strings.HasSuffix(content, "\n"),
	}
	if strings.Contains(content, "\r\n") {
		doc.eol = "\r\n"
	}
	if content == "" {
		return doc
	}

	doc.lines = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range doc.lines {
		doc.lines[i] = strings.TrimSuffix(line, "\r")
	}
	return doc
}

// 🧵 join rebuilds text from lines, restoring the original trailing terminator state
func (d document) join(lines []string) string {
	out := strings.Join(lines, d.eol)
	if d.trailingEOL {
		if !strings.HasSuffix(out, "\n") {
			out += d.eol
		}
		return out
	}
	for strings.HasSuffix(out, "\n") {
		out = strings.TrimSuffix(strings.TrimSuffix(out, "\n"), "\r")
	}
	return out
}

// isBlank reports whether a line has no visible characters
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// frontmatterEnd returns the index of the line closing a frontmatter block that opens at line 0,
// or -1 if the document has no complete frontmatter
func frontmatterEnd(lines []string, isDelimiter func(string) bool) int {
	if len(lines) == 0 || !isDelimiter(lines[0]) {
		return -1
	}
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			return i
		}
	}
	return -1
}
