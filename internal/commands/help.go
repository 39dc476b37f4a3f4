package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"pulljira/internal/config"
	"pulljira/internal/exitcode"
	"pulljira/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "pulljira help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  pulljira pull [common flags] [--note <path>] [--dry-run]
                                       Append Jira tasks to the active note
  pulljira config [common flags]       Show settings
  pulljira config set <field> <value...>
  pulljira config unset <field>
  pulljira open [common flags] <path>  Set the active note
  pulljira close [common flags]        Clear the active note
  pulljira note [common flags]         Print the active note
  pulljira help
  pulljira version

Every command is also available as pull-jira-tasks:<command>.

Settings:
  token       Base64 of "your-email@example.com:your-api-token"
  jql_query   JQL query to run
  org_name    Atlassian site name (<org_name>.atlassian.net)

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
