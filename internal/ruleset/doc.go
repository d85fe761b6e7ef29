// Package ruleset loads YAML convention/rule documents into an immutable,
// insertion-ordered rule set.
//
// A document carries two lists, either of which may be empty:
//
//	conventions:
//	  - id: node-no-var
//	    domain: nodejs
//	    category: style
//	    text: Never use var, prefer const and let.
//	rules:
//	  - id: node-no-var
//	    kind: query
//	    pattern: (variable_declaration) @decl
//	    severity: error
//
// Rule fields left out are derived from the source convention: the glob from
// the domain's default, the query grammar from the domain, the message from
// the convention's first line. Loading is a pure parse — any failure aborts
// the whole load with the convrules error taxonomy, no partial sets.
package ruleset
