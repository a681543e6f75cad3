package status

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestDefaultFileFormatter tests the default file formatter implementation
func TestDefaultFileFormatter(t *testing.T) {
	tests := []struct {
		name string
		info FileInfo
		want string
	}{
		{
			name: "modified_file",
			info: FileInfo{Path: "a.md", Status: StatusModified},
			want: "📝 Modified a.md",
		},
		{
			name: "dry_run_modified_file",
			info: FileInfo{Path: "a.md", Status: StatusModified, DryRun: true},
			want: "📝 Would modify a.md",
		},
		{
			name: "deleted_file_with_reason",
			info: FileInfo{Path: "b.md", Status: StatusDeleted, Reason: "completely empty"},
			want: "🗑️  Deleted b.md (completely empty)",
		},
		{
			name: "dry_run_deleted_file",
			info: FileInfo{Path: "b.md", Status: StatusDeleted, DryRun: true},
			want: "🗑️  Would delete b.md",
		},
		{
			name: "failed_file",
			info: FileInfo{Path: "c.md", Status: StatusError},
			want: "❌ Failed c.md",
		},
		{
			name: "unchanged_file",
			info: FileInfo{Path: "d.md", Status: StatusUnchanged},
			want: "👍 Unchanged d.md",
		},
	}

	formatter := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.FormatFileOperation(tt.info))
		})
	}
}

func TestDefaultFileFormatter_FormatProgress(t *testing.T) {
	formatter := NewDefaultFileFormatter()

	assert.Equal(t, "⏳ Progress: 1/4 (25%)", formatter.FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", formatter.FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", formatter.FormatProgress(0, 0))
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	formatter := NewDefaultFileFormatter()

	assert.Empty(t, formatter.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", formatter.FormatError(fmt.Errorf("boom")))
}
