/*
Package operation implements the core placement engine for organizing files.

	+-------------+
	|  Discovery  |
	|  (Listing)  |
	+------+------+
	       |
	+------+------+
	|  Placement  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Report    |
	| (Outcomes)  |
	+------+------+

🎯 Purpose:
- Orchestrates classify → ensure folder → resolve name → transfer per file
- Records one placement outcome per processed file
- Keeps per-file failures local: a failed file never aborts the run

🔄 Flow:
1. Validates source and destination access (fatal on failure)
2. Discovers candidate files in the source directory
3. Places each file under destination/Category[/Subcategory]
4. Reports outcomes via the report package and console/audit loggers

🤝 Interfaces:
- rules.Table: extension classification
- report.Reporter: outcome accumulation and summary
- report.RunLog: append-only audit log

📝 Design Philosophy:
The placement engine stays I/O-focused and returns structured records; all
formatting and rendering lives in the report and log packages so the core can
be tested against a plain temp directory without mocking.
*/
package operation
