package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/gemsmith/internal/config"
)

func newConfigCommand(d *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"c"},
		Short:   "Manage gem configuration.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			edit, _ := cmd.Flags().GetBool("edit")
			info, _ := cmd.Flags().GetBool("info")
			settings, _ := cmd.Flags().GetBool("settings")

			switch {
			case edit:
				return editConfig(cmd, d)
			case info:
				return configInfo(cmd, d)
			case settings:
				return printSettings(cmd, d)
			default:
				return cmd.Help()
			}
		},
	}

	cmd.Flags().BoolP("edit", "e", false, "Edit gem configuration.")
	cmd.Flags().BoolP("info", "i", false, "Print gem configuration.")
	cmd.Flags().BoolP("settings", "s", false, "Print resolved settings as YAML.")
	cmd.MarkFlagsMutuallyExclusive("edit", "info", "settings")

	return cmd
}

func editConfig(cmd *cobra.Command, d *Dependencies) error {
	p := d.printer(cmd)

	path, _, err := d.ConfigPath()
	if err != nil {
		return fail(p, fmt.Sprintf("Unable to locate configuration: %v", err), err)
	}
	if err := d.Launcher.Edit(cmd.Context(), path); err != nil {
		return fail(p, fmt.Sprintf("Unable to edit configuration: %v", err), err)
	}
	return nil
}

func configInfo(cmd *cobra.Command, d *Dependencies) error {
	p := d.printer(cmd)

	path, exists, err := d.ConfigPath()
	if err != nil || !exists {
		p.Plain("Configuration doesn't exist.")
		return nil
	}
	p.Plain(path)
	return nil
}

// printSettings dumps defaults merged with the user configuration.
func printSettings(cmd *cobra.Command, d *Dependencies) error {
	p := d.printer(cmd)

	user, err := d.userConfig()
	if err != nil {
		return fail(p, err.Error(), err)
	}
	s := user.Apply(config.DiscoverDefaults(cmd.Context(), d.Now(), d.Git, d.Logger))

	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
