package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/modu-ai/gemsmith/internal/defs"
	"github.com/modu-ai/gemsmith/internal/tools"
)

// readmeWidth is the word wrap of rendered READMEs.
const readmeWidth = 100

func newOpenCommand(d *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "open <name>",
		Aliases: []string{"o"},
		Short:   "Open a gem in default editor.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := d.printer(cmd)

			dir, err := tools.NewLocator(d.Runner).InstallDir(ctx, args[0])
			if err != nil {
				return fail(p, fmt.Sprintf("Unable to find gem: %s.", args[0]), err)
			}
			if err := d.Launcher.Edit(ctx, dir); err != nil {
				return fail(p, fmt.Sprintf("Unable to open gem: %v", err), err)
			}
			return nil
		},
	}
}

func newReadCommand(d *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "read <name>",
		Aliases: []string{"r"},
		Short:   "Open a gem in default browser.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if printOnly, _ := cmd.Flags().GetBool("print"); printOnly {
				return printReadme(cmd, d, args[0])
			}

			ctx := cmd.Context()
			p := d.printer(cmd)

			homepage, err := tools.NewLocator(d.Runner).Homepage(ctx, args[0])
			if err != nil {
				return fail(p, fmt.Sprintf("Unable to find gem: %s.", args[0]), err)
			}
			if homepage == "" {
				return fail(p, "Gem home page is not defined.", nil)
			}
			if err := d.Launcher.Browse(ctx, homepage); err != nil {
				return fail(p, fmt.Sprintf("Unable to open home page: %v", err), err)
			}
			return nil
		},
	}
	cmd.Flags().Bool("print", false, "Render the gem README in the terminal instead")
	return cmd
}

// printReadme renders the installed gem's README.md with glamour.
func printReadme(cmd *cobra.Command, d *Dependencies, name string) error {
	p := d.printer(cmd)

	dir, err := tools.NewLocator(d.Runner).InstallDir(cmd.Context(), name)
	if err != nil {
		return fail(p, fmt.Sprintf("Unable to find gem: %s.", name), err)
	}

	source, err := util.ReadFile(osfs.New(dir, osfs.WithBoundOS()), defs.ReadmeMD)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fail(p, "Gem README is not defined.", err)
		}
		return fail(p, fmt.Sprintf("Unable to read README: %v", err), err)
	}

	style := glamour.WithAutoStyle()
	if d.theme().NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(readmeWidth))
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(string(source))
	if err != nil {
		return fmt.Errorf("render README: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
