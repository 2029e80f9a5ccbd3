package core

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// historyEntry is one executed input line.
type historyEntry struct {
	// Timestamp of the line in RFC 3339 form.
	Timestamp string `json:"timestamp"`
	// Line holds the raw input, before splitting or tokenization.
	Line string `json:"line"`
}

// HistorySink appends one JSON line per executed input line. A nil
// sink records nothing.
type HistorySink struct {
	w      io.Writer
	stderr io.Writer
	now    func() time.Time
	failed bool
}

// NewHistorySink writes entries to w and failure reports to stderr.
func NewHistorySink(w io.Writer, stderr io.Writer) *HistorySink {
	return &HistorySink{w: w, stderr: stderr, now: time.Now}
}

// Record writes one entry. The first write failure is reported to
// stderr and disables the sink; it never interrupts the session.
func (h *HistorySink) Record(line string) {
	if h == nil || h.failed || line == "" {
		return
	}

	entry, err := json.Marshal(historyEntry{
		Timestamp: h.now().Format(time.RFC3339),
		Line:      line,
	})
	if err == nil {
		_, err = fmt.Fprintf(h.w, "%s\n", entry)
	}
	if err != nil {
		h.failed = true
		fmt.Fprintf(h.stderr, "history error: %v\n", err)
	}
}
