package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Signups           uint64
	TokensIssued      uint64
	TodosCreated      uint64
	TodosDeleted      uint64
	AuditLinesWritten uint64
}

// InMemoryRecorder stores counters in memory. Used in tests and exposed
// for local inspection.
type InMemoryRecorder struct {
	signups           atomic.Uint64
	tokensIssued      atomic.Uint64
	todosCreated      atomic.Uint64
	todosDeleted      atomic.Uint64
	auditLinesWritten atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		Signups:           m.signups.Load(),
		TokensIssued:      m.tokensIssued.Load(),
		TodosCreated:      m.todosCreated.Load(),
		TodosDeleted:      m.todosDeleted.Load(),
		AuditLinesWritten: m.auditLinesWritten.Load(),
	}
}

func (m *InMemoryRecorder) IncSignup() { m.signups.Add(1) }
func (m *InMemoryRecorder) IncTokenIssued() { m.tokensIssued.Add(1) }
func (m *InMemoryRecorder) IncTodoDeleted() { m.todosDeleted.Add(1) }

func (m *InMemoryRecorder) IncTodoCreated(count int) {
	if count > 0 {
		m.todosCreated.Add(uint64(count))
	}
}

func (m *InMemoryRecorder) IncAuditLineWritten() { m.auditLinesWritten.Add(1) }
