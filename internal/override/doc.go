// Package override provides the manual override table: a fixed mapping from
// record name to a canonical field body, applied as a final
// exact-replacement pass over generated source.
//
// The table exists because upstream schema-to-record resolution loses or
// misassigns fields for a handful of known record shapes. It is a finite
// correction list, not an algorithm: the embedded default table carries the
// hand-corrected bodies, and a custom YAML table can replace it per run.
//
// Table file structure:
//
//	version: "1"
//	records:
//	  - name: ChatRequest
//	    body: |
//	      request_id: str
//	      input: str
//	      logging_level: Optional[str] = None
//
// Bodies use the same "name: type" / "name: type = default" convention as
// the generated source, one field per line, unindented.
package override
