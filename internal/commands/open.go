package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"pulljira/internal/config"
	"pulljira/internal/exitcode"
	"pulljira/internal/service"
)

func init() {
	Register(&OpenCmd{})
	Register(&CloseCmd{})
	Register(&NoteCmd{})
}

// OpenCmd makes a markdown file the active note.
type OpenCmd struct{}

func (c *OpenCmd) Name() string       { return "open" }
func (c *OpenCmd) Aliases() []string  { return nil }
func (c *OpenCmd) Synopsis() string   { return "Set the active note" }
func (c *OpenCmd) Usage() string      { return "pulljira open <path>" }
func (c *OpenCmd) NeedsService() bool { return false }

func (c *OpenCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *OpenCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: note path required")
		return exitcode.UserError
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid note path: %v\n", err)
		return exitcode.UserError
	}

	store, err := config.Open(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}
	store.Set(config.NoteKey, path)
	return saveStore(cfg, store, out, errOut)
}

// CloseCmd clears the active note.
type CloseCmd struct{}

func (c *CloseCmd) Name() string       { return "close" }
func (c *CloseCmd) Aliases() []string  { return nil }
func (c *CloseCmd) Synopsis() string   { return "Clear the active note" }
func (c *CloseCmd) Usage() string      { return "pulljira close" }
func (c *CloseCmd) NeedsService() bool { return false }

func (c *CloseCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CloseCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	store, err := config.Open(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	if _, ok := store.Get(config.NoteKey); !ok {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no active note")
		}
		return exitcode.Success
	}

	store.Unset(config.NoteKey)
	return saveStore(cfg, store, out, errOut)
}

// NoteCmd prints the path of the active note.
type NoteCmd struct{}

func (c *NoteCmd) Name() string       { return "note" }
func (c *NoteCmd) Aliases() []string  { return nil }
func (c *NoteCmd) Synopsis() string   { return "Print the active note" }
func (c *NoteCmd) Usage() string      { return "pulljira note" }
func (c *NoteCmd) NeedsService() bool { return false }

func (c *NoteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *NoteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	store, err := config.Open(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	path, ok := store.Get(config.NoteKey)
	if !ok || path == "" {
		fmt.Fprintln(errOut, "error: no active note (run: pulljira open <path>)")
		return exitcode.UserError
	}
	fmt.Fprintln(out, path)
	return exitcode.Success
}
