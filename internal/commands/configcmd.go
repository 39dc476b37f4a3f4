package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"pulljira/internal/config"
	"pulljira/internal/exitcode"
	"pulljira/internal/service"
)

func init() {
	Register(&ConfigCmd{})
}

// ConfigCmd implements the config command.
// Handles `pulljira config`, `pulljira config set <field> <value...>` and
// `pulljira config unset <field>`.
type ConfigCmd struct{}

func (c *ConfigCmd) Name() string       { return "config" }
func (c *ConfigCmd) Aliases() []string  { return nil }
func (c *ConfigCmd) Synopsis() string   { return "Show or change settings" }
func (c *ConfigCmd) Usage() string      { return "pulljira config [set <field> <value...> | unset <field>]" }
func (c *ConfigCmd) NeedsService() bool { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ConfigCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	store, err := config.Open(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	if len(args) == 0 {
		c.show(store, out)
		return exitcode.Success
	}

	switch args[0] {
	case "set":
		if len(args) < 3 {
			fmt.Fprintln(errOut, "error: usage: pulljira config set <field> <value...>")
			return exitcode.UserError
		}
		d, ok := config.Lookup(args[1])
		if !ok {
			fmt.Fprintf(errOut, "error: unknown setting: %s\n", args[1])
			return exitcode.UserError
		}
		store.Set(d.Key(), strings.Join(args[2:], " "))
	case "unset":
		if len(args) != 2 {
			fmt.Fprintln(errOut, "error: usage: pulljira config unset <field>")
			return exitcode.UserError
		}
		d, ok := config.Lookup(args[1])
		if !ok {
			fmt.Fprintf(errOut, "error: unknown setting: %s\n", args[1])
			return exitcode.UserError
		}
		store.Unset(d.Key())
	default:
		fmt.Fprintf(errOut, "error: unknown config action: %s\n", args[0])
		return exitcode.UserError
	}

	return saveStore(cfg, store, out, errOut)
}

// show prints every declared setting with its current state.
func (c *ConfigCmd) show(store config.Store, out io.Writer) {
	for _, d := range config.Declarations {
		v, ok := store.Get(d.Key())
		switch {
		case !ok:
			v = "(not set)"
		case d.Field == config.FieldToken:
			v = mask(v)
		}
		fmt.Fprintf(out, "%s = %s\n", d.Key(), v)
		fmt.Fprintf(out, "    %s (%s): %s\n", d.Title, d.Type, d.Description)
	}
}

// mask hides all but the last four characters of a credential.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// saveStore writes the settings file, creating the config directory first.
func saveStore(cfg *config.Config, store *config.FileStore, out, errOut io.Writer) int {
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.ConfigError
	}
	if err := store.Save(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
