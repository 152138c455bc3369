// Package export は社員一覧をダウンロード用のファイルに書き出します。
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"github.com/ogurasousui/codex-employee-list/internal/core/view"
	"github.com/xuri/excelize/v2"
)

// Format は出力形式です。
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName は XLSX 出力のシート名です。
const SheetName = "Employees"

var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Header は出力ファイルの見出し行です。
var Header = []string{"Name", "Income", "Employee ID"}

// ParseFormat は大文字小文字と前後の空白を無視して Format を解釈します。空なら CSV です。
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(FormatCSV):
		return FormatCSV, nil
	case string(FormatXLSX):
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// ContentType は Format に対応する MIME タイプを返します。
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// FileName はダウンロード時のファイル名を返します。
func (f Format) FileName() string {
	return "employees." + string(f)
}

// Write は format に応じて records を w に書き出します。
func Write(w io.Writer, format Format, records []*employee.Employee) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatXLSX:
		return WriteXLSX(w, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteCSV は見出し付きの CSV を書き出します。文字列中のダブルクォートは二重化されます。
func WriteCSV(w io.Writer, records []*employee.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for _, emp := range records {
		if emp == nil {
			continue
		}
		if err := cw.Write([]string{emp.Name, view.IncomeText(emp.Income), emp.BusinessID}); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush csv: %w", err)
	}
	return nil
}

// WriteXLSX は Employees シートを持つ XLSX を書き出します。収入は数値セルになります。
func WriteXLSX(w io.Writer, records []*employee.Employee) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	header := make([]any, 0, len(Header))
	for _, h := range Header {
		header = append(header, h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("export: write xlsx header: %w", err)
	}

	row := 2
	for _, emp := range records {
		if emp == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		values := []any{emp.Name, emp.Income, emp.BusinessID}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("export: write xlsx row %d: %w", row, err)
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write xlsx: %w", err)
	}
	return nil
}
