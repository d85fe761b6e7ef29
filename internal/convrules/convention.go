package convrules

import (
	"fmt"
	"strings"
)

// Convention is one documented guideline. It is a plain value: validated on
// construction and never mutated.
type Convention struct {
	// ID is the stable identifier, e.g. "py-no-bare-except".
	ID string
	// Domain the guideline belongs to.
	Domain Domain
	// Category is a free-form grouping such as "style" or "security".
	Category string
	// Text is the guideline itself, prose form.
	Text string
	// Example is an optional illustrative snippet.
	Example string
}

// NewConvention validates and builds a Convention.
func NewConvention(id string, domain Domain, category, text, example string) (Convention, error) {
	if strings.TrimSpace(id) == "" {
		return Convention{}, fmt.Errorf("convention identifier cannot be empty")
	}
	if !domain.Valid() {
		return Convention{}, fmt.Errorf("convention %q: invalid domain", id)
	}
	if strings.TrimSpace(text) == "" {
		return Convention{}, fmt.Errorf("convention %q: text cannot be empty", id)
	}

	return Convention{
		ID:       id,
		Domain:   domain,
		Category: category,
		Text:     text,
		Example:  example,
	}, nil
}

// Summary gives the first line of the convention text. It is used as the
// default rule message.
func (c Convention) Summary() string {
	text := strings.TrimSpace(c.Text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}

	return text
}
