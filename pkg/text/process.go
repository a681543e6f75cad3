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

// 🎬 Action is the outcome of processing a single document
type Action int

const (
	ActionUnchanged Action = iota
	ActionModified
	ActionDeleted
)

// String returns a string representation of Action
func (a Action) String() string {
	switch a {
	case ActionModified:
		return "modified"
	case ActionDeleted:
		return "deleted"
	default:
		return "unchanged"
	}
}

// 📦 Result holds the outcome of Process
type Result struct {
	Action    Action
	Content   string    // rewritten content, only meaningful for ActionModified
	Emptiness Emptiness // why a document was deleted or skipped
}

// 🏭 Process classifies and normalizes a document.
//
// A deleted document produces no content. A document is reported as modified only
// when the normalized text differs from the input.
func Process(content string, allowDelete bool) Result {
	emptiness := DetectEmptiness(content)
	switch verdictFor(emptiness, allowDelete) {
	case VerdictDelete:
		return Result{Action: ActionDeleted, Emptiness: emptiness}
	case VerdictSkip:
		return Result{Action: ActionUnchanged, Content: content, Emptiness: emptiness}
	}

	normalized := Normalize(content)
	if normalized == content {
		return Result{Action: ActionUnchanged, Content: content}
	}
	return Result{Action: ActionModified, Content: normalized}
}
