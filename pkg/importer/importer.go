package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/millworks/prodtrack/dao/model"
)

// Headers is the fixed spreadsheet column order shared by the export
// template and the import parser.
var Headers = []string{
	"Project No",
	"Project Name",
	"Customer Name",
	"Owner",
	"Project Date",
	"Target Date",
	"Dispatch Month",
	"Production Stage",
	"Remarks",
}

// ErrNoData is returned for a file with no data rows.
var ErrNoData = errors.New("the file is empty or has no data")

// Record is one parsed spreadsheet row. Row is the 1-based spreadsheet row
// number (the header is row 1). A row that fails to parse carries Err and a
// nil Project; the rest of the file is still parsed.
type Record struct {
	Row     int
	Project *model.Project
	Err     error
}

// Report is the per-row outcome of a bulk import. A failed row never aborts
// the batch and never rolls back previously imported rows.
type Report struct {
	Total    int       `json:"total"`
	Imported int       `json:"imported"`
	Failed   []Failure `json:"failed"`
}

type Failure struct {
	Row       int    `json:"row"`
	ProjectNo string `json:"projectNo,omitempty"`
	Error     string `json:"error"`
}

// Parse reads a CSV rendition of the spreadsheet. Missing optional columns
// default to empty; the "Dispatch Month" column is ignored and always
// recomputed from the parsed target date.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoData
		}
		return nil, err
	}
	header = lo.Map(header, func(h string, _ int) string {
		return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	})
	columns := indexColumns(header)

	var records []Record
	rowNum := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			records = append(records, Record{Row: rowNum, Err: err})
			continue
		}
		records = append(records, parseRow(row, columns, rowNum))
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	return columns
}

func parseRow(row []string, columns map[string]int, rowNum int) Record {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	projectDate, err := parseCellDate(cell("Project Date"), "Project Date", rowNum, true)
	if err != nil {
		return Record{Row: rowNum, Err: err}
	}
	targetDate, err := parseCellDate(cell("Target Date"), "Target Date", rowNum, false)
	if err != nil {
		return Record{Row: rowNum, Err: err}
	}

	return Record{
		Row: rowNum,
		Project: &model.Project{
			ID:              uuid.NewString(),
			ProjectNo:       cell("Project No"),
			ProjectName:     cell("Project Name"),
			CustomerName:    cell("Customer Name"),
			Owner:           cell("Owner"),
			ProjectDate:     projectDate,
			TargetDate:      targetDate,
			DispatchMonth:   model.DispatchMonth(targetDate),
			ProductionStage: cell("Production Stage"),
			Remarks:         cell("Remarks"),
		},
	}
}
