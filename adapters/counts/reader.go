package counts

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sigdetect/domain/sdt"
	"sigdetect/internal"
	"sigdetect/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Column headers recognised in a count table (case-insensitive)
const (
	ColumnID                = "id"
	ColumnHits              = "hits"
	ColumnMisses            = "misses"
	ColumnFalseAlarms       = "false_alarms"
	ColumnCorrectRejections = "correct_rejections"
)

var requiredColumns = []string{ColumnHits, ColumnMisses, ColumnFalseAlarms, ColumnCorrectRejections}

// Row is one labelled record from a count table
type Row struct {
	ID     string     `json:"id"`
	Record sdt.Record `json:"-"`
}

// tableRow is a row's cells with its 1-based line in the source file
type tableRow struct {
	line  int
	cells []string
}

// TableReader reads hit/miss/false-alarm/correct-rejection tables from CSV or Excel files
type TableReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	strict   bool
	logger   *internal.Logger
}

// NewTableReader picks the format from the file extension; anything but .csv is read as xlsx
func NewTableReader(filePath string, strict bool) *TableReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &TableReader{
		filePath: filePath,
		fileType: fileType,
		strict:   strict,
		logger:   internal.NewDefaultLogger("CountReader"),
	}
}

// WithLogger replaces the default stderr logger
func (r *TableReader) WithLogger(logger *internal.Logger) *TableReader {
	r.logger = logger
	return r
}

// ReadRows reads the table into labelled records
func (r *TableReader) ReadRows() ([]Row, error) {
	r.logger.Info("Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.InputRead(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}

	var (
		rows []tableRow
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSV()
	default:
		rows, err = r.readExcel()
	}
	if err != nil {
		return nil, err
	}

	return r.processRows(rows)
}

// readExcel reads the first sheet of the workbook; GetRows keeps empty rows so
// the slice index tracks the sheet row
func (r *TableReader) readExcel() ([]tableRow, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.InputRead("failed to open Excel file", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InputRead("Excel file has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.InputRead(fmt.Sprintf("failed to read sheet %s", sheets[0]), err)
	}
	r.logger.Debug("Sheet %s read in %.2fms (%d rows)", sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	result := make([]tableRow, len(rows))
	for i, cells := range rows {
		result[i] = tableRow{line: i + 1, cells: cells}
	}
	return result, nil
}

// readCSV records each row's file line, since encoding/csv drops blank lines
func (r *TableReader) readCSV() ([]tableRow, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.InputRead("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []tableRow
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.InputRead("failed to read CSV file", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, tableRow{line: line, cells: cells})
	}
	r.logger.Debug("CSV file read (%d rows)", len(rows))
	return rows, nil
}

// processRows maps headers to columns and parses each data row into a record
func (r *TableReader) processRows(rows []tableRow) ([]Row, error) {
	if len(rows) < 2 {
		return nil, errors.InputRead("count table must have a header row and at least one data row", nil)
	}

	header := rows[0].cells
	index := make(map[string]int, len(header))
	for i, name := range header {
		// Excel prefixes UTF-8 CSV exports with a byte order mark
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.InputRead(fmt.Sprintf("missing required column %q", col), nil)
		}
	}

	result := make([]Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		cells := rows[i].cells
		rowNum := rows[i].line
		if isBlank(cells) {
			r.logger.Debug("Skipping blank row %d", rowNum)
			continue
		}

		values := make([]float64, len(requiredColumns))
		for j, col := range requiredColumns {
			v, err := parseCount(cell(cells, index[col]))
			if err != nil {
				return nil, errors.InputRead(fmt.Sprintf("row %d column %s", rowNum, col), err)
			}
			values[j] = v
		}

		rec := sdt.New(values[0], values[1], values[2], values[3])
		if r.strict {
			if err := rec.Validate(); err != nil {
				return nil, errors.Wrapf(err, "row %d", rowNum)
			}
		}

		id := fmt.Sprintf("row-%d", rowNum)
		if col, ok := index[ColumnID]; ok {
			if v := cell(cells, col); v != "" {
				id = v
			}
		}
		result = append(result, Row{ID: id, Record: rec})
	}

	r.logger.Info("Parsed %d records from %s", len(result), filepath.Base(r.filePath))
	return result, nil
}

func cell(cells []string, col int) string {
	if col < len(cells) {
		return strings.TrimSpace(cells[col])
	}
	return ""
}

// Empty cells count as zero, matching a tally that was never incremented.
// NaN and Inf parse but are refused: a rate built on them is undefined.
func parseCount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("count must be finite, got %q", s)
	}
	return v, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
