package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pulljira/internal/cli"
	"pulljira/internal/commands"
	"pulljira/internal/config"
	"pulljira/internal/exitcode"
	"pulljira/internal/service"
	"pulljira/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsPrintsHelp(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "pulljira 0.1.0\n" {
		t.Errorf("expected 'pulljira 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"pull", "--note"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -note\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NamespacedPull(t *testing.T) {
	dir := t.TempDir()
	notePath := filepath.Join(dir, "today.md")
	settings := "pull-jira-tasks:\n  token: dG9r\n  jql_query: project = AB\n  org_name: acme\n"
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(settings), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	svc := testutil.NewFakeService()
	svc.AddTask("Fix bug", "https://acme.atlassian.net/browse/AB-1")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(),
		[]string{"pull-jira-tasks:pull", "--config", dir, "--note", notePath}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	data, err := os.ReadFile(notePath)
	if err != nil {
		t.Fatalf("failed to read note: %v", err)
	}
	expected := "\n\n- [ ] [Fix bug](https://acme.atlassian.net/browse/AB-1)\n"
	if string(data) != expected {
		t.Errorf("expected %q, got %q", expected, string(data))
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, errors.New("boom")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"pull", "--config", t.TempDir()}, &stdout, &stderr)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr.String() != "error: backend error: boom\n" {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}
