package watch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebounceCoalescesBursts(t *testing.T) {
	var mu sync.Mutex
	var got []string

	w := New(nil, func(path string) {
		mu.Lock()
		got = append(got, path)
		mu.Unlock()
	}, nil)

	// An editor save burst on one file plus a single change on another.
	w.schedule("a.js")
	w.schedule("a.js")
	w.schedule("a.js")
	w.schedule("b.js")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, 10*debounceWindow, debounceWindow/4)

	mu.Lock()
	defer mu.Unlock()
	require.ElementsMatch(t, []string{"a.js", "b.js"}, got)
}
