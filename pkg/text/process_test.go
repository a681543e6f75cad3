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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		allowDelete   bool
		wantAction    Action
		wantContent   string
		wantEmptiness Emptiness
	}{
		{
			name:          "whitespace_document_deleted",
			content:       "\n\n   \n",
			allowDelete:   true,
			wantAction:    ActionDeleted,
			wantEmptiness: EmptyDocument,
		},
		{
			name:          "whitespace_document_kept_without_permission",
			content:       "\n\n   \n",
			wantAction:    ActionUnchanged,
			wantContent:   "\n\n   \n",
			wantEmptiness: EmptyDocument,
		},
		{
			name:          "frontmatter_only_deleted",
			content:       "---\ntitle: x\n---\n\n\n",
			allowDelete:   true,
			wantAction:    ActionDeleted,
			wantEmptiness: EmptyBody,
		},
		{
			// skipped documents are not normalized, even though the blank run would collapse
			name:          "frontmatter_only_kept_without_permission",
			content:       "---\ntitle: x\n---\n\n\n",
			wantAction:    ActionUnchanged,
			wantContent:   "---\ntitle: x\n---\n\n\n",
			wantEmptiness: EmptyBody,
		},
		{
			name:        "normalized_document_modified",
			content:     "Text\n# Heading\nMore text",
			wantAction:  ActionModified,
			wantContent: "Text\n\n# Heading\n\nMore text",
		},
		{
			name:        "normal_form_unchanged",
			content:     "Text\n\n# Heading\n\nMore text\n",
			allowDelete: true,
			wantAction:  ActionUnchanged,
			wantContent: "Text\n\n# Heading\n\nMore text\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Process(tt.content, tt.allowDelete)
			assert.Equal(t, tt.wantAction, got.Action, "got %s", got.Action)
			assert.Equal(t, tt.wantEmptiness, got.Emptiness)
			if tt.wantAction != ActionDeleted {
				assert.Equal(t, tt.wantContent, got.Content)
			} else {
				assert.Empty(t, got.Content)
			}
		})
	}
}
