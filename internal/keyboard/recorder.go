package keyboard

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Event is one call received by a Recorder.
type Event struct {
	Op       string
	Text     string
	Interval time.Duration
	Key      Key
}

// Recorder is a Platform that prints and records keystrokes instead of
// injecting them. It backs --dry-run.
type Recorder struct {
	out    io.Writer
	titles Platform

	Events []Event
}

// NewRecorder returns a Recorder writing to out. Window titles are looked up
// through titles when it is non-nil; otherwise the title is empty.
func NewRecorder(out io.Writer, titles Platform) *Recorder {
	return &Recorder{out: out, titles: titles}
}

func (r *Recorder) ActiveWindowTitle(ctx context.Context) (string, error) {
	if r.titles == nil {
		return "", nil
	}
	return r.titles.ActiveWindowTitle(ctx)
}

func (r *Recorder) TypeString(ctx context.Context, text string, interval time.Duration) error {
	r.Events = append(r.Events, Event{Op: "type", Text: text, Interval: interval})
	fmt.Fprintf(r.out, "[dry-run] type %q (interval %s)\n", text, interval)
	return nil
}

func (r *Recorder) PressKey(ctx context.Context, key Key) error {
	r.Events = append(r.Events, Event{Op: "press", Key: key})
	fmt.Fprintf(r.out, "[dry-run] press %s\n", key)
	return nil
}

var _ Platform = (*Recorder)(nil)
