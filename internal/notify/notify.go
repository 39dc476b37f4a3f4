// Package notify surfaces user-visible notifications.
package notify

import (
	"context"
	"fmt"
	"io"

	"pulljira/internal/log"
)

// Options controls how a notification is presented.
type Options struct {
	// Dismissable marks a notification the user can dismiss and move on from.
	Dismissable bool
}

// Notifier accepts user-visible error notifications.
type Notifier interface {
	AddError(message string, opts Options)
}

// WriterNotifier prints notifications to a writer, usually stderr, and
// records them in the log.
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a notifier that writes to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// AddError implements Notifier.
func (n *WriterNotifier) AddError(message string, opts Options) {
	log.Debug(context.Background(), map[string]interface{}{"dismissable": opts.Dismissable}, "notification: %s", message)
	fmt.Fprintf(n.w, "error: %s\n", message)
}
