/*
Package config resolves the settings of a formatting run.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |           |           |
	+-----+-----+ +---+----+ +----+----+ +----+----+
	| Defaults  | |  YAML  | |   HCL   | |  JSON   |
	+-----------+ +--------+ +---------+ +---------+

🎯 Purpose:
  - Provide defaults (all CPUs, ".md" documents, nothing deleted)
  - Read an optional .mdfmt.{yaml,yml,hcl,json} file from the target directory
  - Validate concurrency, extensions and ignore patterns

🔄 Flow:
 1. Discover looks for a config file in the directory being formatted
 2. The matching Parser decodes it into a File, where unset keys stay nil
 3. File.Apply layers it over Default()
 4. The command layers explicitly set flags on top and validates again

🔍 Example (.mdfmt.hcl):

	delete      = true
	concurrency = cpus * 2
	ignore      = ["vendor/**", "docs/CHANGELOG.md"]
*/
package config
