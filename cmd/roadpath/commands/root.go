package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackroad/roadpath/internal/version"
	"github.com/blackroad/roadpath/pkg/log"
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.GetVersionString(),
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", defaultLogFormat(), "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}

		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewParseCmd())
	cmd.AddCommand(NewNormalizeCmd())
	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewRelativeCmd())
	cmd.AddCommand(NewCommonCmd())
	cmd.AddCommand(NewGlobCmd())
	cmd.AddCommand(NewExpandCmd())
	cmd.AddCommand(NewScratchCmd())

	return cmd
}

// defaultLogFormat picks logfmt when stderr is not a terminal, so that
// redirected logs stay machine-readable.
func defaultLogFormat() string {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return log.FormatText
	}

	return log.FormatLogfmt
}
