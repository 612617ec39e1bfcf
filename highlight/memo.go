package highlight

import (
	"sync"

	"github.com/katalvlaran/stepwalk/steps"
)

// Memo caches the Table of the most recent sequence, keyed by pointer.
// A Sequence is immutable once produced, so pointer identity is enough.
type Memo struct {
	mu     sync.Mutex
	lines  Lines
	seq    *steps.Sequence
	table  Table
	builds int
}

// NewMemo returns a Memo mapping with lines.
func NewMemo(lines Lines) *Memo {
	return &Memo{lines: lines}
}

// Get returns the table for seq, rebuilding it only when seq differs from the
// last sequence seen.
func (m *Memo) Get(seq *steps.Sequence) Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.table != nil && m.seq == seq {
		return m.table
	}
	m.seq = seq
	m.table = Map(seq, m.lines)
	m.builds++

	return m.table
}

// Builds reports how many times Get had to rebuild a table.
func (m *Memo) Builds() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.builds
}
