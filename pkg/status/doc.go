/*
Package status owns the file system side of a formatting run and keeps score.

	            +-------------+
	            |   Status    |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	|   Files   |           |   Tally   |
	| (Storage) |           | (Summary) |
	+-----------+           +-----------+

🎯 Purpose:
  - Read documents and replace them atomically
  - Delete empty documents
  - Record what happened to each document and count the outcomes

⚡ Key Responsibilities:
  - File system operations (FileManager)
  - Per-file status and progress (StatusReporter)
  - Message formatting (FileFormatter)

A Manager is shared by all workers of a run. Each document path is touched by
exactly one worker, so file operations need no locking; only the tally does.

🔍 Example:

	mgr := status.New("")
	content, err := mgr.ReadFile(ctx, "README.md")
	...
	mgr.TrackFile(ctx, status.FileInfo{Path: "README.md", Status: status.StatusModified})
	fmt.Println(mgr.Summary().Modified)
*/
package status
