// Package main provides the CLI entry point for socialcalc-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/models"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/xlsx"
)

var (
	outputPath string
	pretty     bool
	source     string
	crlf       bool
	verbose    bool
	mimeOut    bool
	// The xlsx commands keep separate sheet flags since their defaults differ.
	exportSheet string
	importSheet string

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "socialcalc",
		Short: "Read, write and convert SocialCalc spreadsheet saves",
		Long: `socialcalc-go parses SocialCalc save files (bare or wrapped in the
control's MIME envelope), writes them back, and converts them to and from
JSON and Excel workbooks.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	rootCmd.PersistentFlags().StringVar(&source, "source", "auto", "Input format: auto, plain, or mime")
	rootCmd.PersistentFlags().BoolVar(&crlf, "crlf", false, "Write CRLF line endings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")

	parseCmd := &cobra.Command{
		Use:   "parse [input]",
		Short: "Parse a save and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	formatCmd := &cobra.Command{
		Use:   "format [input.json]",
		Short: "Write a JSON sheet back as a save",
		Args:  cobra.ExactArgs(1),
		RunE:  runFormat,
	}
	formatCmd.Flags().BoolVar(&mimeOut, "mime", false, "Wrap the save in the MIME envelope")

	checkCmd := &cobra.Command{
		Use:   "check [input]",
		Short: "Verify that a save survives a format and re-parse unchanged",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	toXLSXCmd := &cobra.Command{
		Use:   "to-xlsx [input] -o output.xlsx",
		Short: "Convert a save to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runToXLSX,
	}
	toXLSXCmd.Flags().StringVar(&exportSheet, "sheet", xlsx.DefaultSheetName, "Worksheet name")

	fromXLSXCmd := &cobra.Command{
		Use:   "from-xlsx [input.xlsx]",
		Short: "Convert one worksheet of an Excel workbook to a save",
		Args:  cobra.ExactArgs(1),
		RunE:  runFromXLSX,
	}
	fromXLSXCmd.Flags().StringVar(&importSheet, "sheet", "", "Worksheet name (default: the active sheet)")
	fromXLSXCmd.Flags().BoolVar(&mimeOut, "mime", false, "Wrap the save in the MIME envelope")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "Summarize a save as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(parseCmd, formatCmd, checkCmd, toXLSXCmd, fromXLSXCmd, inspectCmd)
	return rootCmd
}

// options builds pipeline options from the global flags. The envelope
// choice is left to the source mode unless --mime was given.
func options(cmd *cobra.Command) (socialcalc.Options, error) {
	opts := socialcalc.DefaultOptions()

	src, ok := socialcalc.ParseSource(source)
	if !ok {
		return opts, fmt.Errorf("invalid source: %s (must be auto, plain, or mime)", source)
	}
	opts.Source = src
	if crlf {
		opts.LineEnding = "\r\n"
	}
	if cmd.Flags().Changed("mime") {
		opts.Envelope = &mimeOut
	}
	return opts, nil
}

func load(cmd *cobra.Command, path string) (*models.Sheet, socialcalc.Options, error) {
	opts, err := options(cmd)
	if err != nil {
		return nil, opts, err
	}

	sheet, err := socialcalc.Load(path, opts)
	if err != nil {
		return nil, opts, err
	}
	logger.Debug("loaded sheet", "path", path, "cells", len(sheet.Cells), "cols", sheet.LastCol, "rows", sheet.LastRow)
	return sheet, opts, nil
}

// writeOutput writes data to the --output file, or stdout.
func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Debug("wrote output", "path", outputPath, "bytes", len(data))
	return nil
}

func withNewline(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data
}
