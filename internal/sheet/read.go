package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Options controls how a sheet is turned into a Table.
type Options struct {
	// Sheet selects a worksheet by name. Empty means the first sheet.
	// Ignored for CSV.
	Sheet string
	// SkipRows is the number of leading rows dropped before the header row.
	SkipRows int
}

// Read loads path into a Table. The format is chosen by extension:
// .xlsx/.xlsm (Office Open XML), .xls (BIFF8) or .csv.
//
// The first SkipRows rows are discarded, the next row is the header and
// everything after it is data. A file with no row after the skipped block
// yields an empty table.
func Read(path string, opts Options) (*Table, error) {
	var (
		records [][]string
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		records, err = readXLSX(path, opts.Sheet)
	case ".xls":
		records, err = readXLS(path, opts.Sheet)
	case ".csv":
		records, err = readCSVFile(path)
	default:
		return nil, fmt.Errorf("read %s: %w: %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return fromRecords(records, opts.SkipRows), nil
}

func fromRecords(records [][]string, skip int) *Table {
	if skip < 0 {
		skip = 0
	}
	if len(records) <= skip {
		return NewTable(nil, nil, skip+1)
	}
	return NewTable(records[skip], records[skip+1:], skip+2)
}

func readXLSX(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return rows, nil
}

func readXLS(path, sheetName string) ([][]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	var ws *xls.WorkSheet
	for i := 0; i < wb.NumSheets(); i++ {
		s := wb.GetSheet(i)
		if s == nil {
			continue
		}
		if sheetName == "" || s.Name == sheetName {
			ws = s
			break
		}
	}
	if ws == nil {
		if sheetName == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("sheet %q not found", sheetName)
	}

	records := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		records = append(records, cells)
	}

	return records, nil
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return readCSV(f)
}

// readCSV reads every record; rows may have differing widths.
// A UTF-8 byte order mark on the first cell is dropped.
// encoding/csv ignores empty lines, so they do not count toward SkipRows.
func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}

	return records, nil
}
