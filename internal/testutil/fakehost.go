package testutil

import (
	"pulljira/internal/config"
	"pulljira/internal/note"
	"pulljira/internal/notify"
)

// MapStore is a config.Store backed by a map. Keys missing from the map are
// absent.
type MapStore map[string]string

// Get implements config.Store.
func (m MapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// CompleteStore returns a MapStore holding every pull setting.
func CompleteStore(token, query, org string) MapStore {
	return MapStore{
		config.Key(config.FieldToken):        token,
		config.Key(config.FieldQuery):        query,
		config.Key(config.FieldOrganization): org,
	}
}

// Notification is a recorded notify.Notifier call.
type Notification struct {
	Message string
	Options notify.Options
}

// FakeNotifier records notifications.
type FakeNotifier struct {
	Errors []Notification
}

// AddError implements notify.Notifier.
func (f *FakeNotifier) AddError(message string, opts notify.Options) {
	f.Errors = append(f.Errors, Notification{Message: message, Options: opts})
}

// FakeNoteStore is an in-memory note store that counts mutations.
type FakeNoteStore struct {
	Note    *note.Note
	Changed bool

	// Error injection for testing
	EditingNoteErr error

	UpdateCalls int
	ChangeCalls int
}

// NewFakeNoteStore creates a store with an open note holding body.
func NewFakeNoteStore(body string) *FakeNoteStore {
	return &FakeNoteStore{Note: &note.Note{Path: "note.md", Body: body}}
}

// EditingNote implements pull.NoteStore.
func (f *FakeNoteStore) EditingNote() (*note.Note, error) {
	if f.EditingNoteErr != nil {
		return nil, f.EditingNoteErr
	}
	return f.Note, nil
}

// UpdateBody implements pull.NoteStore.
func (f *FakeNoteStore) UpdateBody(body string) {
	f.UpdateCalls++
	if f.Note != nil {
		f.Note.Body = body
	}
}

// SetChanged implements pull.NoteStore.
func (f *FakeNoteStore) SetChanged(changed bool) {
	f.ChangeCalls++
	f.Changed = changed
}

// Mutations returns the number of effects applied to the store.
func (f *FakeNoteStore) Mutations() int {
	return f.UpdateCalls + f.ChangeCalls
}
