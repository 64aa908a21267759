// Package metrics provides lightweight application counters.
package metrics

// Recorder records application events. Implementations must be safe for
// concurrent use.
type Recorder interface {
	IncSignup()
	IncTokenIssued()
	IncTodoCreated(count int)
	IncTodoDeleted()
	IncAuditLineWritten()
}
