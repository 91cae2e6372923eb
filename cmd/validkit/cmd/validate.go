package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

type validateCommand struct {
	use   string
	kind  validator.Kind
	short string
}

var validateCommands = []validateCommand{
	{"document", validator.KindDocument, "Validate a CPF or CNPJ, chosen by digit count"},
	{"cpf", validator.KindCPF, "Validate a CPF"},
	{"cnpj", validator.KindCNPJ, "Validate a CNPJ"},
	{"agency", validator.KindAgency, "Validate a bank agency number"},
	{"account", validator.KindAccount, "Validate a bank account number"},
	{"digit", validator.KindCheckDigit, "Validate a bank account check digit"},
	{"phone", validator.KindPhone, "Validate a Brazilian phone number"},
	{"email", validator.KindEmail, "Validate an e-mail address"},
	{"password", validator.KindPassword, "Validate a password against the configured policy"},
	{"cep", validator.KindCEP, "Validate a CEP"},
}

func newValidateCmd(opts *rootOptions, c validateCommand) *cobra.Command {
	return &cobra.Command{
		Use:   c.use + " <value>",
		Short: c.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(cmd, opts)
			if err != nil {
				return err
			}

			res, err := e.Validate(cmd.Context(), c.kind, args[0])
			if err != nil {
				return err
			}

			if err := printResult(cmd.OutOrStdout(), res, opts.json); err != nil {
				return err
			}
			if !res.Success() {
				return ErrInvalidValue
			}
			return nil
		},
	}
}

func printResult(w io.Writer, res validator.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Message() != "" {
		if _, err := fmt.Fprintln(w, res.Message()); err != nil {
			return err
		}
	}
	for _, fe := range res.Errors() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Message); err != nil {
			return err
		}
	}
	return nil
}
