package main

import (
	"fmt"
	"io"
	"os"

	"tabspect/adapters/csvfile"
	"tabspect/adapters/excel"
	"tabspect/domain/dataset"
	"tabspect/internal"
	"tabspect/internal/config"
	"tabspect/internal/profile"
	"tabspect/internal/render"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		internal.DefaultLogger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	rootCmd := newRootCmd(cfg)
	rootCmd.AddCommand(
		newCSVCmd(cfg),
		newExcelCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabspect",
		Short: "Inspect CSV files and xlsx workbooks from the terminal",
		Long: `tabspect loads a CSV file and an xlsx workbook, prints row samples,
column listings and row counts, and exits.

File locations come from --csv/--excel flags or the CSV_FILE/EXCEL_FILE
environment variables (a .env file is honored). Relative paths are
resolved against --base-dir / BASE_DIR.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath, err := cfg.Paths.CSVPath()
			if err != nil {
				return err
			}
			excelPath, err := cfg.Paths.ExcelPath()
			if err != nil {
				return err
			}
			sheet, _ := cmd.Flags().GetString("sheet")

			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "=== Reading CSV File ===")
			ds, err := inspectCSV(out, csvPath, cfg.Output)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "=== Reading Excel File ===")
			wb, err := inspectWorkbook(out, excelPath, sheet, cfg.Output)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Total CSV Rows: %d\n", ds.RowCount())
			fmt.Fprintf(out, "Total Excel Rows: %d\n", wb.Table.RowCount())
			fmt.Fprintf(out, "Excel Sheet Names: %s\n", render.List(wb.SheetNames))
			return nil
		},
	}

	registerPathFlags(cmd, cfg)
	return cmd
}

func newCSVCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv [file]",
		Short: "Inspect a single CSV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Paths.CSVFile = args[0]
			}
			path, err := cfg.Paths.CSVPath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ds, err := inspectCSV(out, path, cfg.Output)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nTotal CSV Rows: %d\n", ds.RowCount())
			return nil
		},
	}

	registerPathFlags(cmd, cfg)
	return cmd
}

func newExcelCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excel [file]",
		Short: "Inspect a single xlsx workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Paths.ExcelFile = args[0]
			}
			path, err := cfg.Paths.ExcelPath()
			if err != nil {
				return err
			}
			sheet, _ := cmd.Flags().GetString("sheet")

			out := cmd.OutOrStdout()
			wb, err := inspectWorkbook(out, path, sheet, cfg.Output)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nTotal Excel Rows: %d\n", wb.Table.RowCount())
			fmt.Fprintf(out, "Excel Sheet Names: %s\n", render.List(wb.SheetNames))
			return nil
		},
	}

	registerPathFlags(cmd, cfg)
	return cmd
}

// registerPathFlags wires the shared flags into cfg so environment values
// act as flag defaults
func registerPathFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.Paths.BaseDir, "base-dir", cfg.Paths.BaseDir, "Directory relative input paths resolve against")
	cmd.Flags().StringVar(&cfg.Paths.CSVFile, "csv", cfg.Paths.CSVFile, "CSV file to inspect")
	cmd.Flags().StringVar(&cfg.Paths.ExcelFile, "excel", cfg.Paths.ExcelFile, "xlsx workbook to inspect")
	cmd.Flags().String("sheet", "", "Sheet to load (default: first sheet)")
	cmd.Flags().IntVar(&cfg.Output.SampleRows, "sample", cfg.Output.SampleRows, "Number of sample rows to print")
	cmd.Flags().BoolVar(&cfg.Output.Stats, "stats", cfg.Output.Stats, "Print numeric column summaries")
}

func inspectCSV(out io.Writer, path string, output config.OutputConfig) (*dataset.Dataset, error) {
	internal.DefaultLogger.Debug("inspecting CSV file %s", path)
	ds, err := csvfile.NewReader(path).Load()
	if err != nil {
		return nil, err
	}

	render.CSVSample(out, ds, output.SampleRows)
	fmt.Fprintln(out)
	render.Columns(out, "CSV", ds.Headers)
	if output.Stats {
		render.Summaries(out, "CSV", profile.SummarizeColumns(ds.Headers, ds.Column))
	}
	return ds, nil
}

func inspectWorkbook(out io.Writer, path, sheet string, output config.OutputConfig) (*excel.Workbook, error) {
	internal.DefaultLogger.Debug("inspecting workbook %s", path)
	wb, err := excel.NewReader(path).ReadSheet(sheet)
	if err != nil {
		return nil, err
	}

	render.TableSample(out, &wb.Table, output.SampleRows)
	fmt.Fprintln(out)
	render.Columns(out, "Excel", wb.Table.Headers)
	if output.Stats {
		render.Summaries(out, "Excel", profile.SummarizeColumns(wb.Table.Headers, wb.Table.Column))
	}
	return wb, nil
}
