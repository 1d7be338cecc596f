package report

import (
	"bufio"
	"flight-route-service/internal/domain"
	"fmt"
	"io"
)

// Writer emits one line per search result: the waypoints followed by the
// cost with five decimals, or "No possible solution.".
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (r *Writer) Write(result domain.RouteResult) error {
	if _, err := fmt.Fprintln(r.w, result.String()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// WriteError emits the line of a mission that could not be planned, so that
// line n of the output still belongs to mission n.
func (r *Writer) WriteError(missionErr error) error {
	if _, err := fmt.Fprintf(r.w, "Error: %v\n", missionErr); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// Flush must be called once all results are written.
func (r *Writer) Flush() error {
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}
	return nil
}
