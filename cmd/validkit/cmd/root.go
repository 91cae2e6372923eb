// Package cmd implements the validkit command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit"
	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
)

// ErrInvalidValue is returned when the validated value fails. The result
// has already been printed.
var ErrInvalidValue = errors.New("invalid value")

type rootOptions struct {
	locale   string
	messages string
	json     bool
}

// NewRootCmd builds the validkit command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "validkit",
		Short: "Validate Brazilian documents, bank data and contact details",
		Long: `validkit validates CPF and CNPJ numbers, bank agency and account data,
phones, e-mails, passwords and CEPs, with localized messages.

Examples:
  validkit cpf 111.444.777-35
  validkit --locale en email joao@example
  validkit --json password 'Abcdef1!'
  validkit export pt_br`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.locale, "locale", "l", "", "message locale (default: APP_LOCALE)")
	root.PersistentFlags().StringVarP(&opts.messages, "messages", "m", "", "directory with message catalogs (default: embedded)")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	for _, c := range validateCommands {
		root.AddCommand(newValidateCmd(opts, c))
	}
	root.AddCommand(newLocalesCmd(opts), newExportCmd(opts), newFormatCmd())

	return root
}

// Execute runs the command line with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// newEngine builds an engine from the environment and the global flags.
func newEngine(cmd *cobra.Command, opts *rootOptions) (*validkit.Engine, error) {
	cfg, err := validkit.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.messages != "" {
		cfg.MessagesDir = opts.messages
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	e, err := validkit.New(cmd.Context(), cfg, validkit.WithLogger(log))
	if err != nil {
		return nil, err
	}

	if opts.locale != "" {
		locale := i18n.Negotiate(opts.locale, e.Locales(), "")
		if locale == "" {
			return nil, fmt.Errorf("%w: %s", i18n.ErrLocaleNotFound, opts.locale)
		}
		if err := e.SetLocale(locale); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func newLogger(cfg validkit.Config, w io.Writer) (*slog.Logger, error) {
	format := logger.Format(strings.ToLower(cfg.LogFormat))
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, "validkit"),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(format),
		logger.WithOutput(w),
	), nil
}
