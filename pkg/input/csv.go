package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/pkg/errors"
)

var columns = []string{"pid", "burst", "arrival", "priority"}

// InputFormatError reports a field that could not be turned into a process record.
type InputFormatError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *InputFormatError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %s: invalid value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}

var (
	ErrFieldCount    = errors.New("expected 3 or 4 fields: pid,burst,arrival[,priority]")
	ErrEmptyPID      = errors.New("pid must not be empty")
	ErrNonPositive   = errors.New("burst must be positive")
	ErrNegativeValue = errors.New("value must not be negative")
)

// LoadProcesses reads pid,burst,arrival[,priority] rows. A leading header row and
// lines starting with '#' are skipped. Rows are numbered from 1.
func LoadProcesses(r io.Reader) ([]scheduler.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var processes []scheduler.Process
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading CSV")
		}
		if row == 1 && isHeader(record) {
			continue
		}
		p, err := parseRecord(row, record)
		if err != nil {
			return nil, err
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// LoadFile opens path and delegates to LoadProcesses.
func LoadFile(path string) ([]scheduler.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return LoadProcesses(f)
}

func isHeader(record []string) bool {
	return len(record) >= 2 && strings.EqualFold(strings.TrimSpace(record[1]), "burst")
}

func parseRecord(row int, record []string) (scheduler.Process, error) {
	if len(record) < 3 || len(record) > 4 {
		return scheduler.Process{}, &InputFormatError{Row: row, Err: ErrFieldCount}
	}
	p := scheduler.Process{ID: strings.TrimSpace(record[0])}
	if p.ID == "" {
		return scheduler.Process{}, &InputFormatError{Row: row, Column: columns[0], Err: ErrEmptyPID}
	}

	values := make([]int, len(record))
	for i := 1; i < len(record); i++ {
		raw := strings.TrimSpace(record[i])
		v, err := strconv.Atoi(raw)
		if err != nil {
			return scheduler.Process{}, &InputFormatError{Row: row, Column: columns[i], Value: raw, Err: err}
		}
		values[i] = v
	}
	p.Burst, p.Arrival = values[1], values[2]
	if len(record) == 4 {
		p.Priority = values[3]
	}

	if p.Burst <= 0 {
		return scheduler.Process{}, &InputFormatError{Row: row, Column: "burst", Value: record[1], Err: ErrNonPositive}
	}
	if p.Arrival < 0 {
		return scheduler.Process{}, &InputFormatError{Row: row, Column: "arrival", Value: record[2], Err: ErrNegativeValue}
	}
	return p, nil
}
