package ingest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook materializes every sheet of a workbook as a row matrix,
// preserving workbook sheet order. It first tries the modern xlsx format and
// falls back to legacy BIFF .xls, since the source reports show up in both.
func ReadWorkbook(r io.Reader) ([]Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo: %w", err)
	}

	if sheets, err := readXLSX(bytes.NewReader(data)); err == nil {
		return sheets, nil
	}

	sheets, err := readXLS(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("formato de libro no soportado (se esperaba .xlsx o .xls): %w", err)
	}
	return sheets, nil
}

func readXLSX(r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

func readXLS(r io.ReadSeeker) ([]Sheet, error) {
	workbook, err := xls.OpenReader(r)
	if err != nil {
		return nil, err
	}

	var sheets []Sheet
	for _, sheet := range workbook.GetSheets() {
		var rows [][]string
		for _, row := range sheet.GetRows() {
			var cells []string
			for _, cell := range row.GetCols() {
				cells = append(cells, cell.GetString())
			}
			rows = append(rows, cells)
		}
		sheets = append(sheets, Sheet{Name: sheet.GetName(), Rows: rows})
	}
	return sheets, nil
}

// cellAt guards against the ragged rows both readers produce: trailing empty
// cells are simply absent from the slice.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
