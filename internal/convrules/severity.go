package convrules

import (
	"encoding"
	"fmt"
)

// Severity grades a rule violation. Values are ordered: info < warning < error.
type Severity int

const (
	severityInvalid Severity = iota

	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityValueMap = map[Severity]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	v, ok := severityValueMap[s]
	if !ok {
		return fmt.Sprintf("severity-invalid(%d)", s)
	}

	return v
}

// Valid reports whether s is one of the three allowed levels.
func (s Severity) Valid() bool {
	_, ok := severityValueMap[s]
	return ok
}

// AtLeast reports whether s is at least as severe as the threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s >= threshold
}

var _ encoding.TextUnmarshaler = (*Severity)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Severity) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range severityValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}

func (s Severity) MarshalText() ([]byte, error) {
	v, ok := severityValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Severity(%d)", s)
	}

	return []byte(v), nil
}
