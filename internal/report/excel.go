// Package report renders harvested grid snapshots into formatted Excel
// workbooks: title and subtitle banner, styled header row, bordered data
// cells, frozen panes and an auto-filter over the data range.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/saptools/sapgui-cli/internal/model"
)

// Layout rows. Data starts below the headers.
const (
	titleRow    = 1
	subtitleRow = 2
	headerRow   = 4
)

const (
	accentColor   = "1F4E79"
	subtitleColor = "666666"

	minColWidth = 10
	maxColWidth = 50
)

// Meta is the workbook banner: a title, and a subtitle that defaults to a
// generation timestamp when empty. Titles maps column identifiers to
// display headers; unmapped columns use the identifier itself.
type Meta struct {
	Title    string
	Subtitle string
	Titles   map[string]string
}

// WriteWorkbook renders one snapshot into a single-sheet workbook at path.
func WriteWorkbook(path string, meta Meta, snap model.GridSnapshot) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := writeBanner(f, sheet, meta, len(snap.Columns)); err != nil {
		return err
	}
	if err := writeTable(f, sheet, meta, snap); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeBanner(f *excelize.File, sheet string, meta Meta, width int) error {
	if width < 1 {
		width = 1
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14, Bold: true, Color: accentColor},
	})
	if err != nil {
		return err
	}
	if err := f.MergeCell(sheet, cell(1, titleRow), cell(width, titleRow)); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell(1, titleRow), meta.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, cell(1, titleRow), cell(width, titleRow), titleStyle); err != nil {
		return err
	}

	subtitle := meta.Subtitle
	if subtitle == "" {
		subtitle = "Generated " + time.Now().Format("2006-01-02 15:04")
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10, Italic: true, Color: subtitleColor},
	})
	if err != nil {
		return err
	}
	if err := f.MergeCell(sheet, cell(1, subtitleRow), cell(width, subtitleRow)); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell(1, subtitleRow), subtitle); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell(1, subtitleRow), cell(width, subtitleRow), subtitleStyle)
}

func writeTable(f *excelize.File, sheet string, meta Meta, snap model.GridSnapshot) error {
	if len(snap.Columns) == 0 {
		return nil
	}

	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 11, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{accentColor}},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center", Horizontal: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    border,
	})
	if err != nil {
		return err
	}

	for i, col := range snap.Columns {
		header := col
		if t, ok := meta.Titles[col]; ok && t != "" {
			header = t
		}
		if err := f.SetCellValue(sheet, cell(i+1, headerRow), header); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, columnWidth(col, header, snap.Rows)); err != nil {
			return err
		}
	}

	for r, row := range snap.Rows {
		for i, col := range snap.Columns {
			if err := f.SetCellValue(sheet, cell(i+1, headerRow+1+r), row[col]); err != nil {
				return err
			}
		}
	}

	last := cell(len(snap.Columns), headerRow+len(snap.Rows))
	if err := f.SetCellStyle(sheet, cell(1, headerRow), cell(len(snap.Columns), headerRow), headerStyle); err != nil {
		return err
	}
	if len(snap.Rows) > 0 {
		if err := f.SetCellStyle(sheet, cell(1, headerRow+1), last, dataStyle); err != nil {
			return err
		}
	}

	if err := f.AutoFilter(sheet, cell(1, headerRow)+":"+last, nil); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: cell(1, headerRow+1),
		ActivePane:  "bottomLeft",
	})
}

// columnWidth sizes a column to its longest value, clamped to a readable
// range.
func columnWidth(col, header string, rows []model.Row) float64 {
	longest := len(header)
	for _, row := range rows {
		if n := len(row[col]); n > longest {
			longest = n
		}
	}
	width := longest + 2
	if width < minColWidth {
		width = minColWidth
	}
	if width > maxColWidth {
		width = maxColWidth
	}
	return float64(width)
}

// cell builds an A1-style reference from 1-based coordinates.
func cell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}
