package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/pkg/sanitizer"
)

var formatters = map[string]func(string) string{
	"document": sanitizer.Compose(strings.TrimSpace, sanitizer.FormatDocument),
	"cpf":      sanitizer.Compose(strings.TrimSpace, sanitizer.FormatCPF),
	"cnpj":     sanitizer.Compose(strings.TrimSpace, sanitizer.FormatCNPJ),
	"cep":      sanitizer.Compose(strings.TrimSpace, sanitizer.FormatCEP),
	"phone":    sanitizer.Compose(strings.TrimSpace, sanitizer.FormatPhone),
	"email":    sanitizer.NormalizeEmail,
}

func formatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <kind> <value>",
		Short: "Print a value in its canonical written form",
		Long: fmt.Sprintf(`Print a value in its canonical written form, for example
"11144477735" as "111.444.777-35". Values with an unexpected digit count are
printed unchanged. The value is not validated.

Kinds: %s`, strings.Join(formatterNames(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, ok := formatters[args[0]]
			if !ok {
				return fmt.Errorf("unknown format kind %q (want one of %s)", args[0], strings.Join(formatterNames(), ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), format(args[1]))
			return nil
		},
	}
}
