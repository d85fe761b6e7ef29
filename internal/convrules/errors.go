package convrules

import "fmt"

// InvalidRuleError reports a malformed rule at load time. Fatal: the load
// aborts, no partial rule set is produced.
type InvalidRuleError struct {
	RuleID string
	Reason string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule %q: %s", e.RuleID, e.Reason)
}

// DuplicateRuleError reports two rules sharing an identifier while declaring
// conflicting severities. Re-declaration with an identical severity is not an
// error (the later pattern wins), so this only fires on a severity conflict.
// Fatal: the load aborts.
type DuplicateRuleError struct {
	RuleID string
	First  Severity
	Second Severity
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf(
		"duplicate rule %q: conflicting severities %s and %s",
		e.RuleID, e.First, e.Second,
	)
}
