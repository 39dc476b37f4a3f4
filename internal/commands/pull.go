package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"pulljira/internal/config"
	"pulljira/internal/exitcode"
	"pulljira/internal/note"
	"pulljira/internal/notify"
	"pulljira/internal/pull"
	"pulljira/internal/service"
)

func init() {
	Register(&PullCmd{})
}

// PullCmd implements the pull command.
type PullCmd struct {
	notePath string
	dryRun   bool
}

// SetNotePath sets the note to append to (for testing).
func (c *PullCmd) SetNotePath(path string) {
	c.notePath = path
}

// SetDryRun sets dry-run mode (for testing).
func (c *PullCmd) SetDryRun(dryRun bool) {
	c.dryRun = dryRun
}

func (c *PullCmd) Name() string       { return "pull" }
func (c *PullCmd) Aliases() []string  { return nil }
func (c *PullCmd) Synopsis() string   { return "Append Jira tasks to the active note" }
func (c *PullCmd) Usage() string      { return "pulljira pull [--note <path>] [--dry-run]" }
func (c *PullCmd) NeedsService() bool { return true }

func (c *PullCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.notePath, "note", "", "")
	fs.BoolVar(&c.dryRun, "dry-run", false, "")
}

func (c *PullCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	store, err := config.Open(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	notePath := c.notePath
	if notePath == "" {
		notePath, _ = store.Get(config.NoteKey)
	}
	notes := note.NewFileStore(notePath)

	p := &pull.Puller{
		Settings: store,
		Notifier: notify.NewWriterNotifier(errOut),
		Notes:    notes,
		Service:  svc,
	}

	if c.dryRun {
		markdown, err := p.Fetch(ctx)
		if err != nil {
			return reportError(errOut, err)
		}
		fmt.Fprint(out, markdown)
		return exitcode.Success
	}

	if err := p.Pull(ctx); err != nil {
		return reportError(errOut, err)
	}
	if err := notes.Save(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
