package runner

import (
	"sync"

	"github.com/sirkon/convlint/internal/engine"
)

// collector gathers per-file finding batches as workers complete. It is the
// only piece of shared mutable state in a run.
type collector struct {
	mu       sync.Mutex
	findings []engine.Finding
}

func (c *collector) add(batch []engine.Finding) {
	if len(batch) == 0 {
		return
	}
	c.mu.Lock()
	c.findings = append(c.findings, batch...)
	c.mu.Unlock()
}

// snapshot returns a copy of everything collected so far.
func (c *collector) snapshot() []engine.Finding {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]engine.Finding, len(c.findings))
	copy(out, c.findings)

	return out
}
