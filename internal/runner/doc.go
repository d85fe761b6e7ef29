// Package runner drives a full conformance run: walk the targets, scan files
// through a bounded worker pool, aggregate the findings.
//
// The pipeline is a single linear progression — load, scan, report — with
// file scans embarrassingly parallel in the middle: the rule set is immutable,
// each file owns its result buffer, and the collector is the sole join point.
// A file failing to read never cancels the run; it is recorded as an io-error
// finding and the remaining files proceed.
package runner
