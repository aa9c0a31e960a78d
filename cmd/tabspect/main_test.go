package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tabspect/internal/config"
	"tabspect/internal/errors"
)

func writeCSVFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "stock.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n4,5,6\n"), 0o644))
	return path
}

func writeExcelFixture(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"item", "qty"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"flour", 12}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"sugar", 7}))

	path := filepath.Join(dir, "tool.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func runCommand(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	cmd.AddCommand(newCSVCmd(cfg), newExcelCmd(cfg))

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInspectBothFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathConfig{
			CSVFile:   writeCSVFixture(t, dir),
			ExcelFile: writeExcelFixture(t, dir),
		},
		Output: config.OutputConfig{SampleRows: 5},
	}

	out, err := runCommand(t, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Reading CSV File ===")
	assert.Contains(t, out, `Row 1: {"a": "1", "b": "2", "c": "3"}`)
	assert.Contains(t, out, `CSV Columns: ["a", "b", "c"]`)
	assert.Contains(t, out, "=== Reading Excel File ===")
	assert.Contains(t, out, `Excel Columns: ["item", "qty"]`)
	assert.Contains(t, out, "Total CSV Rows: 2")
	assert.Contains(t, out, "Total Excel Rows: 2")
	assert.Contains(t, out, `Excel Sheet Names: ["Sheet1"]`)
}

func TestInspectBaseDirResolution(t *testing.T) {
	dir := t.TempDir()
	writeCSVFixture(t, dir)
	writeExcelFixture(t, dir)
	cfg := &config.Config{
		Paths: config.PathConfig{
			BaseDir:   dir,
			CSVFile:   "stock.csv",
			ExcelFile: "tool.xlsx",
		},
		Output: config.OutputConfig{SampleRows: 5},
	}

	out, err := runCommand(t, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Total CSV Rows: 2")
}

func TestInspectMissingConfig(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{SampleRows: 5}}

	_, err := runCommand(t, cfg)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestInspectMissingFileAborts(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathConfig{
			CSVFile:   filepath.Join(dir, "absent.csv"),
			ExcelFile: writeExcelFixture(t, dir),
		},
		Output: config.OutputConfig{SampleRows: 5},
	}

	out, err := runCommand(t, cfg)
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileNotFound, errors.GetCode(err))
	// the workbook is never reached
	assert.NotContains(t, out, "=== Reading Excel File ===")
}

func TestCSVSubcommand(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Output: config.OutputConfig{SampleRows: 5}}

	out, err := runCommand(t, cfg, "csv", writeCSVFixture(t, dir))
	require.NoError(t, err)

	assert.Contains(t, out, `Row 2: {"a": "4", "b": "5", "c": "6"}`)
	assert.Contains(t, out, "Total CSV Rows: 2")
	assert.NotContains(t, out, "Excel")
}

func TestExcelSubcommand(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Output: config.OutputConfig{SampleRows: 5}}

	out, err := runCommand(t, cfg, "excel", writeExcelFixture(t, dir))
	require.NoError(t, err)

	assert.Contains(t, out, "Excel Sample (First 5 rows):")
	assert.Contains(t, out, "Total Excel Rows: 2")
	assert.Contains(t, out, `Excel Sheet Names: ["Sheet1"]`)
}

func TestStatsOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathConfig{
			CSVFile:   writeCSVFixture(t, dir),
			ExcelFile: writeExcelFixture(t, dir),
		},
		Output: config.OutputConfig{SampleRows: 5, Stats: true},
	}

	out, err := runCommand(t, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "CSV Numeric Columns:")
	assert.Contains(t, out, "Excel Numeric Columns:")
	assert.Contains(t, out, "qty")
}

func TestSampleFlagLimitsRows(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathConfig{
			CSVFile:   writeCSVFixture(t, dir),
			ExcelFile: writeExcelFixture(t, dir),
		},
		Output: config.OutputConfig{SampleRows: 1},
	}

	out, err := runCommand(t, cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "Row 1:")
	assert.NotContains(t, out, "Row 2:")
}
