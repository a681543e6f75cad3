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

/*
Package operation turns a list of document paths into on-disk changes.

	+-------------+
	|    Files    |
	|  (finder)   |
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (errgroup)  |
	+------+------+
	       |
	+------+------+
	| text.Process|
	+------+------+
	       |
	+------+------+
	|   status    |
	| write/delete|
	+-------------+

🎯 Purpose:
- Runs the format operation over every discovered document
- Applies the deletion policy chosen by the user
- Reports intended changes instead of applying them in a dry run

🔄 Flow:
1. Read the document through status.FileManager
2. Classify and normalize it with text.Process
3. Write it atomically, delete it, or leave it alone
4. Track the outcome and print one line per document

⚡ Failures:
A document that cannot be read, written or deleted is tracked with
status.StatusError and the run moves on. Only cancellation stops the run early.

🔍 Example:

	op, err := operation.NewFormatOperation(operation.Options{
		Config:    cfg,
		Files:     files,
		StatusMgr: status.New(""),
		Logger:    log.New(os.Stdout, cfg.Verbose),
	})
	if err != nil {
		return err
	}
	err = op.Execute(ctx)
*/
package operation
