// Package main provides the superbutton CLI, which writes the Super Button
// workbook, the dummy input archive and example CSVs without the web server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"uplcompare/internal/config"
	apierrors "uplcompare/internal/errors"
	"uplcompare/internal/exporter"
	"uplcompare/internal/infrastructure"
	"uplcompare/internal/services"
	"uplcompare/internal/validation"
	"uplcompare/pkg/contracts"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cli holds what every subcommand shares
type cli struct {
	stdout   io.Writer
	stderr   io.Writer
	cfgFile  string
	logLevel string
	logger   *slog.Logger
	files    *validation.FileValidator
	export   *services.ExportService
	guide    *services.GuideService
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "superbutton",
		Short:         "Export UPL comparison tables to a single workbook",
		Version:       contracts.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// One trace id per invocation ties the log lines together
			cmd.SetContext(infrastructure.EnsureTraceID(cmd.Context()))
			return c.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "YAML config file (default: built-in defaults)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(c.exportCmd(), c.sampleCmd(), c.dummyCmd(), c.csvCmd())
	return root
}

// setup loads the configuration and builds the services
func (c *cli) setup() error {
	cfg := config.Default()
	if c.cfgFile != "" {
		loaded, err := config.LoadFile(c.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
	}

	c.logger = infrastructure.NewLogger(cfg.Logging, c.stderr)
	c.files = validation.NewFileValidator(c.logger)

	workbook := exporter.NewWorkbook(exporter.Options{
		FileName:     cfg.Export.FileName,
		ColumnWidth:  cfg.Export.ColumnWidth,
		FreezeHeader: cfg.Export.FreezeHeader,
		MaxRows:      cfg.Export.MaxRowsPerSheet,
	}, c.logger)

	c.export = services.NewExportService(workbook, nil, nil, c.logger)
	c.guide = services.NewGuideService(workbook, c.logger)
	return nil
}

func (c *cli) exportCmd() *cobra.Command {
	var input, output string
	var sheets []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build the workbook from a JSON export request",
		Long: `Reads {"datasets": {...}, "sheets": [...]} and writes one sheet per
selected dataset. --sheet replaces the selection stored in the request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := c.openInput(input)
			if err != nil {
				return err
			}
			defer in.Close()

			req, err := c.export.ReadRequest(in)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sheet") {
				req.Sheets = sheets
			}

			artifact, err := c.export.Export(cmd.Context(), req)
			return c.write(cmd.Context(), artifact, err, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Export request JSON file, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", exporter.DefaultFileName, "Output xlsx path")
	cmd.Flags().StringSliceVarP(&sheets, "sheet", "s", nil, "Selected sheet, repeatable")
	return cmd
}

func (c *cli) sampleCmd() *cobra.Command {
	var output string
	var sheets []string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Build the workbook from the built-in example tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("sheet") {
				sheets = services.KnownKinds()
			}
			artifact, err := c.export.ExportSamples(cmd.Context(), sheets)
			return c.write(cmd.Context(), artifact, err, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", exporter.DefaultFileName, "Output xlsx path")
	cmd.Flags().StringSliceVarP(&sheets, "sheet", "s", nil, "Selected sheet, repeatable (default: all kinds)")
	return cmd
}

func (c *cli) dummyCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dummy",
		Short: "Write the zip of per-round input workbooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifact, err := c.guide.DummyArchive(cmd.Context())
			return c.write(cmd.Context(), artifact, err, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", exporter.DummyArchiveName, "Output zip path")
	return cmd
}

func (c *cli) csvCmd() *cobra.Command {
	var output string
	var display bool

	cmd := &cobra.Command{
		Use:   "csv KIND",
		Short: "Write one example table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := c.stdout
			if output != "" && output != "-" {
				if err := c.files.ValidateOutputFile(output, ".csv"); err != nil {
					return err
				}
				f, err := os.Create(output)
				if err != nil {
					return apierrors.NewStorageError("failed to create output", err).WithContext("path", output)
				}
				defer f.Close()
				out = f
			}
			return c.guide.WriteCSV(cmd.Context(), out, args[0], display)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output CSV path, - for stdout")
	cmd.Flags().BoolVar(&display, "display", false, "Keep the on-screen number format")
	return cmd
}

// write stores artifact at path. A nil artifact means nothing was selected.
func (c *cli) write(ctx context.Context, artifact *exporter.Artifact, err error, path string) error {
	if err != nil {
		return err
	}
	if artifact == nil {
		fmt.Fprintln(c.stdout, "no sheets selected, nothing written")
		return nil
	}

	if err := c.files.ValidateOutputFile(path, filepath.Ext(artifact.FileName)); err != nil {
		return err
	}
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return apierrors.NewStorageError("failed to write output", err).WithContext("path", path)
	}

	c.logger.InfoContext(ctx, "file written",
		slog.String("path", path),
		slog.Any("entries", artifact.Sheets),
		slog.Int("bytes", artifact.Size()))
	fmt.Fprintf(c.stdout, "wrote %s (%d bytes)\n", path, artifact.Size())
	return nil
}

// openInput opens the request file, or stdin for -
func (c *cli) openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	if err := c.files.ValidateInputFile(path, ".json"); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}
