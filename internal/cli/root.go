package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/gemsmith/pkg/version"
)

// helpTemplate prefixes root help with the command list heading.
const helpTemplate = `{{if not .HasParent}}%s commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}  {{rpad .Name .NamePadding }} {{.Short}}
{{end}}{{end}}
{{end}}{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`

// NewRootCommand builds the command tree around d.
func NewRootCommand(d *Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:   "gemsmith",
		Short: "A command line interface for smithing Ruby gems.",
		Long: `Gemsmith generates Ruby gem skeletons with optional CLI, Rails engine,
test, lint and CI support, and packages existing gems.`,
		Version:       version.GetVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				d.setVerbose(cmd.ErrOrStderr())
			}
			d.ensure()
		},
	}

	root.PersistentFlags().Bool("verbose", false, "Print debug logs to stderr")
	root.SetVersionTemplate(version.GetLabel() + "\n")
	root.SetHelpTemplate(fmt.Sprintf(helpTemplate, version.GetLabel()))

	root.AddCommand(
		newGenerateCommand(d),
		newOpenCommand(d),
		newReadCommand(d),
		newConfigCommand(d),
		newVersionCommand(d),
		newBuildCommand(d),
		newInstallCommand(d),
		newCleanCommand(d),
		newValidateCommand(d),
	)

	return root
}

// Execute runs the command tree with real dependencies.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand(NewDependencies())
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newVersionCommand(d *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show gem version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			d.printer(cmd).Plain(version.GetLabel())
		},
	}
}
