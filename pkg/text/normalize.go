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

// 🚧 fence markers, in the order they are tested
var fenceMarkers = []string{"```", "~~~"}

// 📐 Normalize rewrites the spacing of a markdown document.
//
// Runs of blank lines collapse to one, and headings, list groups and code fences
// are separated from their neighbours by exactly one blank line. Frontmatter is left
// untouched. Code fence contents are left untouched except for blank lines directly
// inside the opening or closing fence line, which are removed. The presence of a
// trailing newline is preserved.
func Normalize(content string) string {
	doc := splitDocument(content)
	n := &normalizer{
		lines:          doc.lines,
		out:            make([]string, 0, len(doc.lines)+8),
		frontmatterEnd: frontmatterEnd(doc.lines, isFrontmatterLine),
		fenceOpenedAt:  -1,
		blankRunEnd:    -1,
	}
	for i := range n.lines {
		n.step(i)
	}
	return doc.join(n.out)
}

// 🔁 normalizer holds the scan state of a single Normalize call
type normalizer struct {
	lines []string
	out   []string

	frontmatterEnd int // index of the closing frontmatter line, -1 when there is none
	inFrontmatter  bool

	fence         string // marker of the open fence, empty when no fence is open
	fenceOpenedAt int    // len(out) right after the opening fence line was emitted

	// lookahead cache for the blank run currently being scanned inside a fence
	blankRunEnd  int
	blankRunDrop bool
}

func (n *normalizer) step(i int) {
	line := n.lines[i]

	switch {
	case i == 0 && n.frontmatterEnd > 0:
		n.inFrontmatter = true
		n.emit(line)
	case n.inFrontmatter:
		n.emit(line)
		if i == n.frontmatterEnd {
			n.inFrontmatter = false
			n.separateAfter(i)
		}
	case n.fence != "":
		n.fenceLine(i, line)
	default:
		n.bodyLine(i, line)
	}
}

// 🧱 fenceLine handles a line while a code fence is open
func (n *normalizer) fenceLine(i int, line string) {
	if closesFence(strings.TrimSpace(line), n.fence) {
		n.fence = ""
		n.emit(line)
		n.separateAfter(i)
		return
	}

	if isBlank(line) && (len(n.out) == n.fenceOpenedAt || n.blankBeforeFenceEnd(i)) {
		return
	}
	n.emit(line)
}

// 🔭 blankBeforeFenceEnd reports whether the blank run containing line i is followed by the
// closing fence line, or by the end of the document for a fence that is never closed
func (n *normalizer) blankBeforeFenceEnd(i int) bool {
	if i < n.blankRunEnd {
		return n.blankRunDrop
	}

	j := i + 1
	for j < len(n.lines) && isBlank(n.lines[j]) {
		j++
	}
	n.blankRunEnd = j
	n.blankRunDrop = j == len(n.lines) || closesFence(strings.TrimSpace(n.lines[j]), n.fence)
	return n.blankRunDrop
}

// 📝 bodyLine handles a line outside frontmatter and code fences
func (n *normalizer) bodyLine(i int, line string) {
	trimmed := strings.TrimSpace(line)

	if marker := openingFence(trimmed); marker != "" {
		n.separateBefore()
		n.fence = marker
		n.emit(line)
		n.fenceOpenedAt = len(n.out)
		return
	}

	heading := isHeading(trimmed)
	item := isListItem(trimmed)
	groupStart := item && (i == 0 || !isListItem(strings.TrimSpace(n.lines[i-1])))
	groupEnd := item && (i+1 == len(n.lines) || !isListItem(strings.TrimSpace(n.lines[i+1])))

	if heading || groupStart {
		n.separateBefore()
	}

	if trimmed != "" || !n.lastEmittedBlank() {
		n.emit(line)
	}

	if heading || groupEnd {
		n.separateAfter(i)
	}
}

func (n *normalizer) emit(line string) {
	n.out = append(n.out, line)
}

func (n *normalizer) lastEmittedBlank() bool {
	return len(n.out) > 0 && isBlank(n.out[len(n.out)-1])
}

// 🪧 separate emits a blank separator line when the neighbouring line exists and is not blank
func (n *normalizer) separate(neighbour string, exists bool) {
	if exists && !isBlank(neighbour) {
		n.emit("")
	}
}

// separateBefore separates the next emitted line from the output written so far
func (n *normalizer) separateBefore() {
	if len(n.out) == 0 {
		return
	}
	n.separate(n.out[len(n.out)-1], true)
}

// separateAfter separates line i from the input line that follows it
func (n *normalizer) separateAfter(i int) {
	if i+1 >= len(n.lines) {
		return
	}
	n.separate(n.lines[i+1], true)
}

func isFrontmatterLine(line string) bool {
	return strings.TrimSpace(line) == "---"
}

// openingFence returns the fence marker a trimmed line opens with, if any
func openingFence(trimmed string) string {
	for _, marker := range fenceMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return marker
		}
	}
	return ""
}

// closesFence reports whether a trimmed line closes a fence opened with marker.
// A longer run of the marker character still closes, and so does any trailing text.
func closesFence(trimmed, marker string) bool {
	return strings.HasPrefix(trimmed, marker) && len(trimmed) >= len(marker)
}

// isHeading reports whether a trimmed line starts with one to six '#' characters
func isHeading(trimmed string) bool {
	hashes := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
	return hashes >= 1 && hashes <= 6
}

// isListItem reports whether a trimmed line is a bullet or numbered list item
func isListItem(trimmed string) bool {
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "+ ") {
		return true
	}
	return trimmed != "" && trimmed[0] >= '0' && trimmed[0] <= '9' && strings.Contains(trimmed, ". ")
}
