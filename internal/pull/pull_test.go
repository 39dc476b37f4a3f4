package pull_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulljira/internal/backend/jiracloud"
	"pulljira/internal/config"
	pullerrors "pulljira/internal/errors"
	"pulljira/internal/pull"
	"pulljira/internal/testutil"
)

func newPuller(store config.Store, svc *testutil.FakeService, notes *testutil.FakeNoteStore) (*pull.Puller, *testutil.FakeNotifier) {
	notifier := &testutil.FakeNotifier{}
	return &pull.Puller{
		Settings: store,
		Notifier: notifier,
		Notes:    notes,
		Service:  svc,
	}, notifier
}

func TestPull_AppendsToActiveNote(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "url")
	notes := testutil.NewFakeNoteStore("Notes:")

	p, notifier := newPuller(testutil.CompleteStore("tok", "project = AB", "acme"), svc, notes)
	require.NoError(t, p.Pull(context.Background()))

	assert.Equal(t, "Notes:\n\n- [ ] [A](url)\n", notes.Note.Body)
	assert.True(t, notes.Changed)
	assert.Empty(t, notifier.Errors)
	assert.Equal(t, []config.Settings{{Token: "tok", Query: "project = AB", Organization: "acme"}}, svc.Calls())
}

func TestPull_EmptyResultStillAppendsSeparator(t *testing.T) {
	svc := testutil.NewFakeService()
	notes := testutil.NewFakeNoteStore("Notes:")

	p, _ := newPuller(testutil.CompleteStore("tok", "q", "acme"), svc, notes)
	require.NoError(t, p.Pull(context.Background()))

	assert.Equal(t, "Notes:\n\n", notes.Note.Body)
	assert.True(t, notes.Changed)
}

func TestPull_MissingSettings(t *testing.T) {
	tests := []struct {
		name    string
		store   testutil.MapStore
		missing string
	}{
		{"all missing", testutil.MapStore{}, config.FieldToken},
		{"token missing", testutil.MapStore{
			config.Key(config.FieldQuery):        "q",
			config.Key(config.FieldOrganization): "acme",
		}, config.FieldToken},
		{"query missing", testutil.MapStore{
			config.Key(config.FieldToken):        "tok",
			config.Key(config.FieldOrganization): "acme",
		}, config.FieldQuery},
		{"org missing", testutil.MapStore{
			config.Key(config.FieldToken): "tok",
			config.Key(config.FieldQuery): "q",
		}, config.FieldOrganization},
		{"query and org missing", testutil.MapStore{
			config.Key(config.FieldToken): "tok",
		}, config.FieldQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			notes := testutil.NewFakeNoteStore("Notes:")

			p, notifier := newPuller(tt.store, svc, notes)
			err := p.Pull(context.Background())
			require.Error(t, err)
			require.True(t, pullerrors.IsMissingConfiguration(err))
			assert.Equal(t, tt.missing, err.(pullerrors.MissingConfigurationError).Field)

			assert.Empty(t, svc.Calls(), "no fetch may happen without settings")
			assert.Zero(t, notes.Mutations())
			assert.Equal(t, "Notes:", notes.Note.Body)
			require.Len(t, notifier.Errors, 1)
			assert.True(t, notifier.Errors[0].Options.Dismissable)
		})
	}
}

func TestPull_NoActiveNote(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "url")
	notes := &testutil.FakeNoteStore{}

	p, _ := newPuller(testutil.CompleteStore("tok", "q", "acme"), svc, notes)
	err := p.Pull(context.Background())
	require.Error(t, err)
	assert.True(t, pullerrors.IsNoActiveNote(err))
	assert.Zero(t, notes.Mutations())
}

func TestPull_NoteReadFailure(t *testing.T) {
	svc := testutil.NewFakeService()
	notes := testutil.NewFakeNoteStore("Notes:")
	notes.EditingNoteErr = assert.AnError

	p, _ := newPuller(testutil.CompleteStore("tok", "q", "acme"), svc, notes)
	err := p.Pull(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read the active note")
	assert.Zero(t, notes.Mutations())
}

func TestPull_FetchFailureLeavesNoteUntouched(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.FetchTasksErr = pullerrors.NewHTTPError(http.StatusUnauthorized, "")
	notes := testutil.NewFakeNoteStore("Notes:")

	p, notifier := newPuller(testutil.CompleteStore("tok", "q", "acme"), svc, notes)
	err := p.Pull(context.Background())
	require.Error(t, err)
	assert.True(t, pullerrors.IsHTTP(err))
	assert.Equal(t, "Notes:", notes.Note.Body)
	assert.Zero(t, notes.Mutations())
	assert.Empty(t, notifier.Errors)
}

func TestPull_AgainstJiraServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Basic dG9r" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issues":[{"key":"AB-1","fields":{"summary":"Fix bug"}},{"key":"AB-2","fields":{"summary":"Add feature"}}]}`))
	}))
	defer server.Close()

	notes := testutil.NewFakeNoteStore("Notes:")
	p := &pull.Puller{
		Settings: testutil.CompleteStore("dG9r", "project = AB", "acme"),
		Notifier: &testutil.FakeNotifier{},
		Notes:    notes,
		Service:  jiracloud.NewWithHTTPClient(server.Client(), server.URL),
	}
	require.NoError(t, p.Pull(context.Background()))

	assert.Equal(t, "Notes:\n\n"+
		"- [ ] [Fix bug](https://acme.atlassian.net/browse/AB-1)\n"+
		"- [ ] [Add feature](https://acme.atlassian.net/browse/AB-2)\n", notes.Note.Body)

	notes = testutil.NewFakeNoteStore("Notes:")
	p.Notes = notes
	p.Settings = testutil.CompleteStore("wrong", "project = AB", "acme")
	err := p.Pull(context.Background())
	require.Error(t, err)
	assert.True(t, pullerrors.IsHTTP(err))
	assert.Equal(t, "Notes:", notes.Note.Body)
	assert.Zero(t, notes.Mutations())
}

func TestAppend(t *testing.T) {
	assert.Equal(t, "Notes:\n\n- [ ] [A](url)\n", pull.Append("Notes:", "- [ ] [A](url)\n"))
	assert.Equal(t, "\n\n", pull.Append("", ""))
}
