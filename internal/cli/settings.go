package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or modify preferences",
		Long:  "Display the stored preferences, or use subcommands to read or change one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.store.GetAllSettings()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  Preferences (%s)\n\n", a.cfg.DBPath)
			for _, s := range settings {
				fmt.Fprintf(out, "  %-14s %s\n", s.Key, s.Value)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.store.GetSetting(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a preference",
		Long: "Change a preference. Valid keys and values:\n" +
			"  time_format  24h | 12h\n" +
			"  mark_missed  true | false\n" +
			"  start_view   tracker | calendar",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := a.store.SetSetting(key, value); err != nil {
				return err
			}
			log.Info().Str("key", key).Str("value", value).Msg("[cli] setting changed")
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	return cmd
}
