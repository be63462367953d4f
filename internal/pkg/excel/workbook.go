package excel

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
)

// Excel caps sheet names at 31 characters.
const maxSheetNameLen = 31

var sheetNameSanitizer = regexp.MustCompile(`[\\/:*?\[\]]`)

// SheetNamer hands out workbook-unique sheet names: sanitized, truncated to
// the Excel limit, and de-duplicated with -1, -2, ... suffixes. The suffix
// counts against the limit, so the base is truncated further when needed.
type SheetNamer struct {
	used map[string]bool
}

func NewSheetNamer() *SheetNamer {
	return &SheetNamer{used: make(map[string]bool)}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func (n *SheetNamer) Name(base string) string {
	if base == "" {
		base = "Sheet"
	}
	safeBase := sheetNameSanitizer.ReplaceAllString(base, "-")

	name := truncateRunes(safeBase, maxSheetNameLen)
	if name == "" {
		name = "Sheet"
	}
	if !n.used[name] {
		n.used[name] = true
		return name
	}

	for i := 1; ; i++ {
		suffix := fmt.Sprintf("-%d", i)
		candidate := truncateRunes(safeBase, maxSheetNameLen-len(suffix)) + suffix
		if !n.used[candidate] {
			n.used[candidate] = true
			return candidate
		}
	}
}

// Workbook wraps an excelize file and appends header+rows sheets to it.
// Sheets with no data rows still get emitted, with a single "no data"
// placeholder row, so an export never drops a group silently.
type Workbook struct {
	file   *excelize.File
	namer  *SheetNamer
	sheets int
}

func NewWorkbook() *Workbook {
	return &Workbook{
		file:  excelize.NewFile(),
		namer: NewSheetNamer(),
	}
}

// AppendSheet adds one sheet named from base. Returns the final sheet name.
func (w *Workbook) AppendSheet(base string, headers []string, rows [][]interface{}) (string, error) {
	name := w.namer.Name(base)

	if w.sheets == 0 {
		// Reuse the default sheet excelize creates with every new file.
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return "", fmt.Errorf("failed to rename default sheet: %w", err)
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}
	w.sheets++

	if len(rows) == 0 {
		headers = []string{"หมายเหตุ"}
		rows = [][]interface{}{{"ไม่พบข้อมูล"}}
	}

	headerStyle, err := w.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := w.file.SetCellValue(name, cell, header); err != nil {
			return "", fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := w.file.SetCellStyle(name, cell, cell, headerStyle); err != nil {
			return "", fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	for r, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return "", err
			}
			if err := w.file.SetCellValue(name, cell, value); err != nil {
				return "", fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	return name, nil
}

func (w *Workbook) File() *excelize.File {
	return w.file
}
