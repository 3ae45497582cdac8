package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/millworks/prodtrack/dao/model"
)

// dayMonthYear matches the spreadsheet date grammar: day-month-year with
// 2-or-4-digit year and "-", "/" or "." separators.
var dayMonthYear = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{2,4})$`)

// excelEpochOffset is the number of days between the Excel serial epoch
// (1900 system) and the Unix epoch.
const excelEpochOffset = 25569

// parseCellDate parses a spreadsheet date cell. Accepted forms are the
// day-month-year grammar, an Excel serial number, or an ISO date. rowNum is
// the 1-based spreadsheet row (the header is row 1) used in error messages.
func parseCellDate(cell, fieldName string, rowNum int, required bool) (model.Date, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		if required {
			return model.Date{}, fmt.Errorf("%s is missing in row %d. Please use DD-MM-YYYY format", fieldName, rowNum)
		}
		return model.Date{}, nil
	}

	if parts := dayMonthYear.FindStringSubmatch(cell); parts != nil {
		day, _ := strconv.Atoi(parts[1])
		month, _ := strconv.Atoi(parts[2])
		year, _ := strconv.Atoi(parts[3])
		if year < 100 {
			if year > 50 {
				year += 1900
			} else {
				year += 2000
			}
		}
		d := model.NewDate(year, time.Month(month), day)
		// time.Date normalizes overflow (e.g. 31-02), which would
		// silently accept a bad cell.
		if month < 1 || month > 12 || d.Day() != day || int(d.Month()) != month {
			return model.Date{}, invalidCell(cell, fieldName, rowNum)
		}
		return d, nil
	}

	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		t := time.Unix(int64((serial-excelEpochOffset)*86400+0.5), 0).UTC()
		return model.NewDate(t.Year(), t.Month(), t.Day()), nil
	}

	if d, err := model.ParseDate(cell); err == nil {
		return d, nil
	}
	return model.Date{}, invalidCell(cell, fieldName, rowNum)
}

func invalidCell(cell, fieldName string, rowNum int) error {
	return fmt.Errorf("invalid %s in row %d: %q. Please use DD-MM-YYYY format", fieldName, rowNum, cell)
}
