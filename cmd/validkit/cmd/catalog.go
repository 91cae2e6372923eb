package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocalesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locales of the message catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEngine(cmd, opts)
			if err != nil {
				return err
			}
			for _, locale := range e.Locales() {
				marker := " "
				if locale == e.Locale() {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, locale)
			}
			return nil
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [locale]",
		Short: "Print the messages of a locale as JSON",
		Long: `Print the messages of a locale as a nested JSON document.
Without an argument the default locale is exported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(cmd, opts)
			if err != nil {
				return err
			}

			locale := e.Locale()
			if len(args) == 1 {
				locale = args[0]
			}

			doc, err := e.Catalog().ExportJSON(locale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}
