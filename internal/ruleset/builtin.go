package ruleset

import _ "embed"

// builtinCatalog is the starter convention catalog shipped with the tool.
// Checkable rules cover a small subset of it; the rest is prose-only and
// serves the query side (rules list/show, prompt rendering).
//
//go:embed builtin.yaml
var builtinCatalog []byte
