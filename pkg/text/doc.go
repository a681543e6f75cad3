/*
Package text implements the markdown whitespace normalizer at the heart of mdfmt.

	+------------+     +--------------+
	|  Classify  | --> |  Normalize   |
	| (emptiness)|     | (line state) |
	+------------+     +--------------+

🎯 Purpose:
  - Decide whether a document is empty (or frontmatter only) and should be deleted
  - Rewrite blank-line spacing around headings, list groups and code fences
  - Leave frontmatter and code fence contents alone

🔄 Flow:
 1. Process receives the raw text of one document
 2. Classify checks for an empty document or an empty body after frontmatter
 3. Normalize runs a single forward pass over the lines
 4. The caller writes, deletes or skips based on the returned Action

Everything in this package is a pure function of its input. It does no I/O and
keeps no state between calls, so documents can be processed concurrently.

🔍 Example:

	res := text.Process("Text\n# Heading\nMore text", false)
	// res.Action == text.ActionModified
	// res.Content == "Text\n\n# Heading\n\nMore text"
*/
package text
