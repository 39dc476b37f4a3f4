// Package pull appends the tasks of a Jira query to the note open for editing.
package pull

import (
	"context"

	"github.com/pkg/errors"

	"pulljira/internal/config"
	pullerrors "pulljira/internal/errors"
	"pulljira/internal/log"
	"pulljira/internal/note"
	"pulljira/internal/notify"
	"pulljira/internal/output"
	"pulljira/internal/service"
)

// NoteStore exposes the note open for editing and accepts edits to it.
type NoteStore interface {
	// EditingNote returns the active note, or nil when none is open.
	EditingNote() (*note.Note, error)
	// UpdateBody replaces the body of the active note.
	UpdateBody(body string)
	// SetChanged marks the editor as having unsaved changes.
	SetChanged(changed bool)
}

// Puller wires the collaborators of a pull.
type Puller struct {
	Settings config.Store
	Notifier notify.Notifier
	Notes    NoteStore
	Service  service.Service
}

// Fetch resolves the settings and returns the markdown block for the query.
// Nothing is fetched when a setting is missing.
func (p *Puller) Fetch(ctx context.Context) (string, error) {
	settings, err := config.Resolve(p.Settings, p.Notifier)
	if err != nil {
		return "", err
	}

	tasks, err := p.Service.FetchTasks(ctx, settings)
	if err != nil {
		return "", err
	}
	log.Debug(ctx, map[string]interface{}{"org": settings.Organization}, "pulled %d tasks", len(tasks))

	return output.Markdown(tasks), nil
}

// Pull appends the markdown block for the query to the active note, separated
// from the existing body by a blank line, and marks the note as changed. On
// any error the note is left untouched.
func (p *Puller) Pull(ctx context.Context) error {
	markdown, err := p.Fetch(ctx)
	if err != nil {
		return err
	}

	n, err := p.Notes.EditingNote()
	if err != nil {
		return errors.Wrap(err, "failed to read the active note")
	}
	if n == nil {
		return pullerrors.ErrNoActiveNote
	}

	p.Notes.UpdateBody(Append(n.Body, markdown))
	p.Notes.SetChanged(true)
	log.Info(ctx, map[string]interface{}{"note": n.Path}, "appended tasks to note")
	return nil
}

// Append returns body followed by two newlines and markdown.
func Append(body, markdown string) string {
	return body + "\n\n" + markdown
}
