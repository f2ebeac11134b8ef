package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/ukaji3/socialcalc-go/pkg/socialcalc"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/codec"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/inspect"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/output"
	"github.com/ukaji3/socialcalc-go/pkg/socialcalc/xlsx"
)

// errRoundTrip is returned by check when a save does not survive a round trip.
var errRoundTrip = errors.New("save does not round-trip")

func runParse(cmd *cobra.Command, args []string) error {
	sheet, _, err := load(cmd, args[0])
	if err != nil {
		return err
	}

	jsonData, err := output.ToJSON(sheet, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, withNewline(jsonData))
}

func runFormat(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	sheet, err := output.FromJSON(data)
	if err != nil {
		return fmt.Errorf("invalid JSON sheet: %w", err)
	}

	text, err := socialcalc.Save(sheet, opts)
	if err != nil {
		return fmt.Errorf("format failed: %w", err)
	}
	return writeOutput(cmd, withNewline([]byte(text)))
}

func runCheck(cmd *cobra.Command, args []string) error {
	sheet, opts, err := load(cmd, args[0])
	if err != nil {
		return err
	}
	snapshot, err := sheet.Clone()
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	text, err := codec.FormatWithOptions(sheet, codec.FormatOptions{LineEnding: opts.LineEnding})
	if err != nil {
		return fmt.Errorf("format failed: %w", err)
	}
	again, err := codec.Parse(text)
	if err != nil {
		return fmt.Errorf("re-parse failed: %w", err)
	}

	if !reflect.DeepEqual(sheet, snapshot) {
		logger.Warn("format modified the sheet", "path", args[0])
		return fmt.Errorf("%s: %w", args[0], errRoundTrip)
	}
	if !reflect.DeepEqual(snapshot, again) {
		logger.Warn("round trip changed the sheet", "path", args[0])
		return fmt.Errorf("%s: %w", args[0], errRoundTrip)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d cells)\n", args[0], len(sheet.Cells))
	return nil
}

func runToXLSX(cmd *cobra.Command, args []string) error {
	if outputPath == "" {
		return errors.New("to-xlsx needs an output file (-o)")
	}

	sheet, _, err := load(cmd, args[0])
	if err != nil {
		return err
	}

	opts := xlsx.DefaultExportOptions()
	if exportSheet != "" {
		opts.SheetName = exportSheet
	}
	if err := xlsx.ExportFile(sheet, outputPath, opts); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	logger.Debug("wrote workbook", "path", outputPath, "sheet", opts.SheetName)
	return nil
}

func runFromXLSX(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(args[0]); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", args[0])
	}
	sheet, err := xlsx.ImportFile(args[0], importSheet)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	logger.Debug("imported worksheet", "path", args[0], "cells", len(sheet.Cells))

	text, err := socialcalc.Save(sheet, opts)
	if err != nil {
		return fmt.Errorf("format failed: %w", err)
	}
	return writeOutput(cmd, withNewline([]byte(text)))
}

func runInspect(cmd *cobra.Command, args []string) error {
	sheet, _, err := load(cmd, args[0])
	if err != nil {
		return err
	}

	summary := inspect.Summarize(sheet)
	for _, d := range summary.DanglingStyles {
		logger.Info("dangling style index", "cell", d.Cell, "attr", d.Attr, "index", d.Index)
	}

	jsonData, err := output.SummaryToJSON(&summary, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, withNewline(jsonData))
}
