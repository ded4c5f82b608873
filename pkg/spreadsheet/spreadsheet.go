// Package spreadsheet reads project schedules from xlsx workbooks and
// writes the matching starter template.
//
// The import contract is lenient by design: only the first sheet is read,
// column headers are matched case-insensitively, rows missing either date
// are skipped silently, and an unparseable Level falls back to 2. A failed
// row never aborts the import.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vanderheijden86/gantry/pkg/dateparse"
	"github.com/vanderheijden86/gantry/pkg/debug"
	"github.com/vanderheijden86/gantry/pkg/model"
)

// Column headers recognized in the first row. Matching ignores case and
// surrounding whitespace, which also covers the "Project Item" variant.
const (
	colTitle = "project item"
	colStart = "start date"
	colEnd   = "end date"
	colLevel = "level"
)

// Read loads the schedule rows from the workbook at path.
func Read(path string) ([]model.Item, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return readWorkbook(f)
}

// ReadFrom loads the schedule rows from workbook bytes.
func ReadFrom(r io.Reader) ([]model.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) ([]model.Item, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	var items []model.Item
	for n, row := range rows[1:] {
		it, ok := parseRow(row, idx)
		if !ok {
			debug.Log("import: skipping row %d (missing or unparseable dates)", n+2)
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// headerIndex maps the known column names to their positions. Missing
// columns map to -1 and the affected cells read as empty.
func headerIndex(header []string) map[string]int {
	idx := map[string]int{colTitle: -1, colStart: -1, colEnd: -1, colLevel: -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, known := idx[key]; known {
			idx[key] = i
		}
	}
	return idx
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRow builds one timeline item from a data row. Rows without both
// dates, or whose dates do not parse, are rejected wholesale so no
// partial-row data reaches the schedule.
func parseRow(row []string, idx map[string]int) (model.Item, bool) {
	rawStart := cell(row, idx[colStart])
	rawEnd := cell(row, idx[colEnd])
	if rawStart == "" || rawEnd == "" {
		return model.Item{}, false
	}
	start, err := dateparse.ParseCell(rawStart)
	if err != nil {
		return model.Item{}, false
	}
	end, err := dateparse.ParseCell(rawEnd)
	if err != nil {
		return model.Item{}, false
	}

	level := 2
	if raw := cell(row, idx[colLevel]); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			level = n
		}
	}

	it := model.ItemForLevel(level)
	it.Title = cell(row, idx[colTitle])
	if it.Title == "" {
		it.Title = "Untitled"
	}
	it.Start = start
	it.End = end
	return it, true
}

// templateRows is the static sample content of the starter workbook. It is
// a fixture demonstrating the expected column layout, not a computed
// artifact.
var templateRows = [][]interface{}{
	{"Project item", "Start Date", "End Date", "Level"},
	{"Project Phase 1", "2026-02-01", "2026-04-30", 1},
	{"Design & Planning", "2026-02-01", "2026-02-28", 2},
	{"Requirements Gathering", "2026-02-01", "2026-02-15", 3},
	{"UI/UX Design", "2026-02-16", "2026-02-28", 3},
	{"Development", "2026-03-01", "2026-04-15", 2},
	{"Testing & QA", "2026-04-16", "2026-04-30", 2},
}

// TemplateSheetName is the sheet the starter template is written to.
const TemplateSheetName = "Timeline Data"

// WriteTemplate writes the starter workbook to path.
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), TemplateSheetName); err != nil {
		return fmt.Errorf("naming template sheet: %w", err)
	}
	for i, row := range templateRows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TemplateSheetName, ref, &row); err != nil {
			return fmt.Errorf("writing template row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving template: %w", err)
	}
	return nil
}
