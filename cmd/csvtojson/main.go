package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"csvtojson/pkg/config"
	"csvtojson/pkg/converter"
	"csvtojson/pkg/logging"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvtojson [flags] <filename> <lines>",
		Short: "Convert a CSV file into a JSON array of records",
		Long: `csvtojson reads a CSV file whose first line is the header and writes
its rows as a JSON array of objects to a sibling file with a .json extension.
The lines argument is accepted for compatibility and is not used; see --max-rows.`,
		Args: func(_ *cobra.Command, args []string) error {
			return cfg.SetArgs(args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			w, closeLog, err := logging.Open(cfg.LogPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()
			logging.Setup(w, cfg.LogFormat, cfg.Verbose)

			ctx := cmd.Context()
			res, err := converter.Convert(ctx, cfg.Filename, cfg.Lines,
				converter.WithOutput(cfg.Output),
				converter.WithEncoding(cfg.Encoding),
				converter.WithTypes(cfg.TypeMode()),
				converter.WithNumbers(cfg.NumberMode()),
				converter.WithMaxRows(cfg.MaxRows),
				converter.WithVerify(cfg.Verify),
			)
			if err != nil {
				slog.DebugContext(ctx, "Conversion failed", slog.String("input", cfg.Filename), slog.Any("error", err))
				return err
			}
			slog.DebugContext(ctx, "Done", slog.String("output", res.Output), slog.Int("rows", res.Rows))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", config.ErrInvalidArgument, err)
	})
	cfg.BindFlags(cmd.Flags())
	return cmd
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(config.Default())
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	color.New(color.FgRed, color.Bold).Fprint(stderr, "error:")
	fmt.Fprintf(stderr, " %v\n", err)
	if errors.Is(err, config.ErrInvalidArgument) || errors.Is(err, converter.ErrInvalidOption) {
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	return exitError
}

func main() {
	if fd := os.Stderr.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
