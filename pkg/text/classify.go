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

// 🕳️ Emptiness describes whether a document has any content worth keeping
type Emptiness int

const (
	NotEmpty      Emptiness = iota
	EmptyDocument           // nothing but whitespace
	EmptyBody               // frontmatter followed by nothing but whitespace
)

// String returns a string representation of Emptiness
func (e Emptiness) String() string {
	switch e {
	case EmptyDocument:
		return "completely empty"
	case EmptyBody:
		return "empty body with frontmatter"
	default:
		return "not empty"
	}
}

// ⚖️ Verdict is the classifier's decision for a document
type Verdict int

const (
	VerdictNormalize Verdict = iota // keep the document and normalize it
	VerdictDelete                   // remove the document
	VerdictSkip                     // keep the document exactly as it is
)

// String returns a string representation of Verdict
func (v Verdict) String() string {
	switch v {
	case VerdictDelete:
		return "delete"
	case VerdictSkip:
		return "skip"
	default:
		return "normalize"
	}
}

// 🔍 DetectEmptiness reports whether content is empty, or is only frontmatter.
// Frontmatter must open with a line of exactly "---" and close with the next such line.
func DetectEmptiness(content string) Emptiness {
	if strings.TrimSpace(content) == "" {
		return EmptyDocument
	}

	lines := splitDocument(content).lines
	end := frontmatterEnd(lines, func(line string) bool { return line == "---" })
	if end < 0 {
		return NotEmpty
	}
	for _, line := range lines[end+1:] {
		if !isBlank(line) {
			return NotEmpty
		}
	}
	return EmptyBody
}

// ⚖️ Classify decides what to do with a document before it is normalized.
// Empty documents are deleted only when allowDelete is set, otherwise they are left alone.
func Classify(content string, allowDelete bool) Verdict {
	return verdictFor(DetectEmptiness(content), allowDelete)
}

func verdictFor(e Emptiness, allowDelete bool) Verdict {
	if e == NotEmpty {
		return VerdictNormalize
	}
	if allowDelete {
		return VerdictDelete
	}
	return VerdictSkip
}
