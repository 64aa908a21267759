package audit

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/ticklist/ticklist/internal/metrics"
)

// queueSize bounds the number of records waiting to be written. Enqueue
// blocks when full, so a slow disk stalls only the requests producing
// records, never corrupts the log.
const queueSize = 256

// Writer appends audit records to a log file from a single background
// goroutine. Appends are serialized, so concurrent requests never
// interleave within a line, and every enqueued record is eventually
// written.
type Writer struct {
	file    *os.File
	queue   chan Record
	done    chan struct{}
	logger  *slog.Logger
	metrics metrics.Recorder

	closeOnce sync.Once
}

// NewWriter opens (or creates) the audit log at path in append mode and
// starts the writer goroutine.
func NewWriter(path string, logger *slog.Logger, recorder metrics.Recorder) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	w := &Writer{
		file:    file,
		queue:   make(chan Record, queueSize),
		done:    make(chan struct{}),
		logger:  logger.With("component", "audit.writer"),
		metrics: recorder,
	}

	go w.run()

	return w, nil
}

// Enqueue hands a record to the background writer. It does not wait for
// the write to complete; when the queue is full it blocks until space
// frees up, which stalls only the calling request.
func (w *Writer) Enqueue(record Record) {
	w.queue <- record
}

// Close drains pending records and closes the log file. Safe to call more
// than once.
func (w *Writer) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.queue)
		<-w.done
		err = w.file.Close()
	})
	return err
}

func (w *Writer) run() {
	defer close(w.done)

	for record := range w.queue {
		if _, err := w.file.WriteString(record.Line()); err != nil {
			// An audit line lost to disk errors must not fail the
			// request that produced it.
			w.logger.Error("failed to append audit line",
				slog.String("path", record.Path),
				slog.Int("status_code", record.StatusCode),
				slog.String("error", err.Error()),
			)
			continue
		}
		w.metrics.IncAuditLineWritten()
	}
}
