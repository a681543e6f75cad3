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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapse_blank_runs",
			input: "Line 1\n\n\n\nLine 2\n\nLine 3\n\n\n",
			want:  "Line 1\n\nLine 2\n\nLine 3\n",
		},
		{
			name:  "already_normal",
			input: "Line 1\nLine 2\n\nLine 3",
			want:  "Line 1\nLine 2\n\nLine 3",
		},
		{
			name:  "no_trailing_newline_stays_absent",
			input: "Line 1\n\n\nLine 2",
			want:  "Line 1\n\nLine 2",
		},
		{
			name:  "empty_input",
			input: "",
			want:  "",
		},
		{
			name:  "leading_and_trailing_blank_runs",
			input: "\n\n\nText\n\n\n",
			want:  "\nText\n",
		},
		{
			name:  "frontmatter_is_opaque",
			input: "---\nA\n\n\n\nB\n---\n\nX",
			want:  "---\nA\n\n\n\nB\n---\n\nX",
		},
		{
			name:  "frontmatter_body_collapsed",
			input: "---\ntitle: Test\n\n\n\nauthor: Me\n---\n\n\n\nContent here\n\n\n\nMore content",
			want:  "---\ntitle: Test\n\n\n\nauthor: Me\n---\n\nContent here\n\nMore content",
		},
		{
			name:  "frontmatter_separated_from_body",
			input: "---\ntitle: x\n---\nBody\n",
			want:  "---\ntitle: x\n---\n\nBody\n",
		},
		{
			name:  "unterminated_frontmatter_is_body",
			input: "---\ntitle: x\n\n\nBody\n# Head",
			want:  "---\ntitle: x\n\nBody\n\n# Head",
		},
		{
			name:  "delimiter_after_first_line_is_content",
			input: "Intro\n---\ntitle: x\n---\nBody",
			want:  "Intro\n---\ntitle: x\n---\nBody",
		},
		{
			name:  "backtick_fence_interior_preserved",
			input: "Some text\n\n\n\n```rust\nfn main() {\n\n\n\n    println!(\"Hello\");\n}\n```\n\n\n\nMore text",
			want:  "Some text\n\n```rust\nfn main() {\n\n\n\n    println!(\"Hello\");\n}\n```\n\nMore text",
		},
		{
			name:  "tilde_fence_interior_preserved",
			input: "Some text\n\n\n\n~~~python\ndef hello():\n\n\n\n    print(\"Hello\")\n~~~\n\n\n\nMore text",
			want:  "Some text\n\n~~~python\ndef hello():\n\n\n\n    print(\"Hello\")\n~~~\n\nMore text",
		},
		{
			name:  "frontmatter_and_fences_combined",
			input: "---\ntitle: Test\n\n\n\nauthor: Me\n---\n\n\n\nSome text\n\n\n\n```rust\nfn test() {\n\n\n\n    // code\n}\n```\n\n\n\nEnd",
			want:  "---\ntitle: Test\n\n\n\nauthor: Me\n---\n\nSome text\n\n```rust\nfn test() {\n\n\n\n    // code\n}\n```\n\nEnd",
		},
		{
			name:  "fence_boundary_blanks_dropped",
			input: "Text\n```\n\ncode line\n\n```\nText",
			want:  "Text\n\n```\ncode line\n```\n\nText",
		},
		{
			name:  "fence_internal_blanks_kept",
			input: "Text\n```\nline1\n\n\nline2\n```\nText",
			want:  "Text\n\n```\nline1\n\n\nline2\n```\n\nText",
		},
		{
			name:  "fence_gets_separators",
			input: "Text\n```rust\nfn main() {}\n```\nText",
			want:  "Text\n\n```rust\nfn main() {}\n```\n\nText",
		},
		{
			// the first line starting with the marker closes the fence, so the
			// second ``` opens a new fence that runs to the end of the document
			name:  "same_marker_line_closes_fence",
			input: "```\ncode\n```inner\nmore code\n```\n\n\n\ntext",
			want:  "```\ncode\n```inner\n\nmore code\n\n```\ntext",
		},
		{
			name:  "longer_closing_marker_closes",
			input: "Text\n```\ncode\n`````\nText",
			want:  "Text\n\n```\ncode\n`````\n\nText",
		},
		{
			name:  "other_marker_and_markdown_inside_fence_is_content",
			input: "Text\n```go\n- not a list\n~~~\n# not a heading\n```\nText",
			want:  "Text\n\n```go\n- not a list\n~~~\n# not a heading\n```\n\nText",
		},
		{
			name:  "unterminated_fence_drops_trailing_blanks",
			input: "Text\n```\ncode\n\n\n\n",
			want:  "Text\n\n```\ncode\n",
		},
		{
			name:  "heading_spacing",
			input: "Text\n# Heading\nMore text",
			want:  "Text\n\n# Heading\n\nMore text",
		},
		{
			name:  "seven_hashes_is_not_a_heading",
			input: "Text\n####### Not a heading\nMore text",
			want:  "Text\n####### Not a heading\nMore text",
		},
		{
			name:  "headings_and_lists",
			input: "Text\n# Heading1\nText\n- item1\n- item2\nText\n1. item3\n2. item4\nText\n* item5\n* item6\nText\n+ item7\n+ item8\nText",
			want:  "Text\n\n# Heading1\n\nText\n\n- item1\n- item2\n\nText\n\n1. item3\n2. item4\n\nText\n\n* item5\n* item6\n\nText\n\n+ item7\n+ item8\n\nText",
		},
		{
			name:  "existing_separators_not_doubled",
			input: "Text\n\n# Heading\n\nText\n\n- item\n\nText",
			want:  "Text\n\n# Heading\n\nText\n\n- item\n\nText",
		},
		{
			name:  "list_group_separated_once",
			input: "Text\n- A\n- B\n- C\nText",
			want:  "Text\n\n- A\n- B\n- C\n\nText",
		},
		{
			name:  "mixed_list_markers_form_one_group",
			input: "Text\n- A\n* B\n+ C\n1. D\n2. E\nText",
			want:  "Text\n\n- A\n* B\n+ C\n1. D\n2. E\n\nText",
		},
		{
			name:  "indented_list_items",
			input: "Text\n  - indented\n  - items\nText",
			want:  "Text\n\n  - indented\n  - items\n\nText",
		},
		{
			name:  "blank_line_splits_list_groups",
			input: "- a\n\n- b",
			want:  "- a\n\n- b",
		},
		{
			name:  "document_structure",
			input: "# Title\nText\n## Section\n- a\n- b\n## Next",
			want:  "# Title\n\nText\n\n## Section\n\n- a\n- b\n\n## Next",
		},
		{
			name:  "adjacent_elements_share_one_separator",
			input: "Text\n- a\n```\ncode\n```\n# H\n1. one\n2. two",
			want:  "Text\n\n- a\n\n```\ncode\n```\n\n# H\n\n1. one\n2. two",
		},
		{
			name:  "crlf_line_endings_kept",
			input: "Text\r\n# Heading\r\n\r\n\r\nMore\r\n",
			want:  "Text\r\n\r\n# Heading\r\n\r\nMore\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalizing twice should not change the result")
		})
	}
}

func TestNormalizeGeneratedDocuments(t *testing.T) {
	alphabet := []string{"", "  ", "text", "# H", "####### x", "- a", "1. b", "```", "```go", "~~~", "---"}

	var generate func(prefix []string, depth int)
	generate = func(prefix []string, depth int) {
		for _, suffix := range []string{"", "\n"} {
			input := strings.Join(prefix, "\n") + suffix
			once := Normalize(input)
			require.Equal(t, once, Normalize(once), "not idempotent for %q", input)
			require.Equal(t, strings.HasSuffix(input, "\n"), strings.HasSuffix(once, "\n"), "trailing newline changed for %q", input)
		}
		if depth == 0 {
			return
		}
		for _, line := range alphabet {
			generate(append(prefix[:len(prefix):len(prefix)], line), depth-1)
		}
	}
	generate(nil, 4)
}

func TestNormalizeCollapsesBlankRuns(t *testing.T) {
	alphabet := []string{"", "  ", "\t", "text", "# H", "- a", "1. b"}

	var generate func(prefix []string, depth int)
	generate = func(prefix []string, depth int) {
		input := strings.Join(prefix, "\n")
		lines := strings.Split(strings.TrimSuffix(Normalize(input), "\n"), "\n")
		for i := 1; i < len(lines); i++ {
			if isBlank(lines[i-1]) && isBlank(lines[i]) {
				t.Fatalf("blank run survived in %q: %q", input, lines)
			}
		}
		if depth == 0 {
			return
		}
		for _, line := range alphabet {
			generate(append(prefix[:len(prefix):len(prefix)], line), depth-1)
		}
	}
	generate(nil, 5)
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{
		"",
		"Text\n# Heading\nMore text",
		"---\nA\n\n\n\nB\n---\n\nX",
		"Text\n```\n\ncode line\n\n```\nText",
		"Text\n- A\n- B\n- C\nText\n",
		"```\ncode\n```inner\nmore code\n```\n\n\n\ntext",
		"a\r\n\r\n\r\nb\r\n",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent:\ninput: %q\nonce:  %q\ntwice: %q", input, once, twice)
		}
		if strings.HasSuffix(input, "\n") != strings.HasSuffix(once, "\n") {
			t.Fatalf("trailing newline changed: %q -> %q", input, once)
		}
	})
}
