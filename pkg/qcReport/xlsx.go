package qcReport

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"QcmlReport/pkg/qcml"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

const GeneralStatsSheet = "General Statistics"

// low and high colours of the ColorBrewer scales used by the modules
var colorScales = map[string][2]string{
	"Blues":   {"#DEEBF7", "#3182BD"},
	"GnBu":    {"#E0F3DB", "#43A2CA"},
	"Greens":  {"#E5F5E0", "#31A354"},
	"Greys":   {"#F0F0F0", "#636363"},
	"PuBu":    {"#ECE7F2", "#2B8CBE"},
	"PuRd":    {"#E7E1EF", "#DD1C77"},
	"Purples": {"#EFEDF5", "#756BB1"},
	"RdBu":    {"#EF8A62", "#67A9CF"},
	"RdYlGn":  {"#FC8D59", "#91CF60"},
	"Reds":    {"#FEE0D2", "#DE2D26"},
	"YlGn":    {"#F7FCB9", "#31A354"},
	"YlGnBu":  {"#EDF8B1", "#2C7FB8"},
	"YlOrRd":  {"#FFEDA0", "#F03B20"},
}

func GetCellName(col, row int) string {
	return simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row))
}

func SetCellValue(xlsx *excelize.File, sheet string, col, row int, value interface{}) {
	simpleUtil.CheckErr(xlsx.SetCellValue(sheet, GetCellName(col, row), value))
}

func SetCellStr(xlsx *excelize.File, sheet string, col, row int, value string) {
	simpleUtil.CheckErr(xlsx.SetCellStr(sheet, GetCellName(col, row), value))
}

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, GetCellName(col, row), &value))
}

// NumFmt is the custom number format of a header: thousands separator, fixed
// decimals and the suffix as literal text.
func NumFmt(h *Header) string {
	var numFmt = "#,##0"
	if h.Decimals > 0 {
		numFmt += "." + strings.Repeat("0", h.Decimals)
	}
	if h.Suffix != "" {
		numFmt += `" ` + strings.ReplaceAll(h.Suffix, `"`, "") + `"`
	}
	return numFmt
}

// column is one rendered table column.
type column struct {
	title  string
	key    string
	header *Header
	data   *Dataset
}

// Workbook renders table sections into one spreadsheet, one sheet per table.
type Workbook struct {
	xlsx   *excelize.File
	styles map[string]int
	head   int
	sheets []string
}

func NewWorkbook() *Workbook {
	var wb = &Workbook{
		xlsx:   excelize.NewFile(),
		styles: make(map[string]int),
	}
	wb.head = simpleUtil.HandleError(wb.xlsx.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	}))
	return wb
}

func (wb *Workbook) style(h *Header) int {
	var numFmt = NumFmt(h)
	if id, ok := wb.styles[numFmt]; ok {
		return id
	}
	var id = simpleUtil.HandleError(wb.xlsx.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}))
	wb.styles[numFmt] = id
	return id
}

// Sheets lists the sheets added so far.
func (wb *Workbook) Sheets() []string {
	return append([]string(nil), wb.sheets...)
}

// SheetName of a table section, within the spreadsheet limit of 31 characters.
func SheetName(m *Module, s *Section) string {
	var name = m.Name + " " + s.Name
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

// AddTable writes a table section of m into its own sheet.
func (wb *Workbook) AddTable(m *Module, s *Section) {
	var columns []column
	for _, k := range s.Table.Headers.Keys() {
		var h, _ = s.Table.Headers.Get(k)
		if h.Hidden {
			continue
		}
		columns = append(columns, column{title: h.Title, key: k, header: h, data: s.Table.Data})
	}
	var note = fmt.Sprintf("%s %s\n%s", m.Name, m.Info, m.Href)
	if text := s.DescriptionText(); text != "" {
		note += "\n\n" + text
	}
	wb.writeSheet(SheetName(m, s), note, s.Table.Data.Samples(), columns)
}

// AddGeneralStats combines the general statistics columns of all modules.
func (wb *Workbook) AddGeneralStats(modules []*Module) {
	var (
		samples []string
		seen    = make(map[string]bool)
		columns []column
	)
	for _, m := range modules {
		for _, s := range m.Data.Samples() {
			if !seen[s] {
				seen[s] = true
				samples = append(samples, s)
			}
		}
		for _, k := range m.GeneralStats.Keys() {
			var h, _ = m.GeneralStats.Get(k)
			columns = append(columns, column{title: h.Namespace + ": " + h.Title, key: k, header: h, data: m.Data})
		}
	}
	if len(columns) == 0 {
		return
	}
	wb.writeSheet(GeneralStatsSheet, "", samples, columns)
}

// writeSheet fills one sheet; note and header descriptions become comments
// on the title row.
func (wb *Workbook) writeSheet(sheet, note string, samples []string, columns []column) {
	var xlsx = wb.xlsx
	simpleUtil.HandleError(xlsx.NewSheet(sheet))
	wb.sheets = append(wb.sheets, sheet)
	slog.Debug("write sheet", slog.Group("sheet", "name", sheet, "samples", len(samples), "columns", len(columns)))

	var title = []interface{}{"Sample"}
	for _, c := range columns {
		title = append(title, c.title)
	}
	SetRow(xlsx, sheet, 1, 1, title)
	simpleUtil.CheckErr(xlsx.SetCellStyle(sheet, GetCellName(1, 1), GetCellName(len(title), 1), wb.head))
	simpleUtil.CheckErr(xlsx.SetColWidth(sheet, "A", "A", 24))
	if note != "" {
		wb.comment(sheet, GetCellName(1, 1), "", note)
	}
	for j, c := range columns {
		if c.header.Description != "" {
			wb.comment(sheet, GetCellName(j+2, 1), c.header.Namespace, c.header.Description)
		}
	}

	for i, s := range samples {
		SetCellStr(xlsx, sheet, 1, i+2, s)
	}

	for j, c := range columns {
		var (
			col    = j + 2
			values []float64
		)
		for i, s := range samples {
			var m, ok = c.data.Get(s)
			if !ok {
				continue
			}
			var v qcml.Value
			if v, ok = m.Get(c.key); !ok {
				continue
			}
			if !v.Numeric {
				SetCellStr(xlsx, sheet, col, i+2, v.Text)
				continue
			}
			var f = c.header.Modify(v.Number)
			values = append(values, f)
			SetCellValue(xlsx, sheet, col, i+2, f)
		}
		if len(samples) == 0 {
			continue
		}
		var first, last = GetCellName(col, 2), GetCellName(col, len(samples)+1)
		simpleUtil.CheckErr(xlsx.SetCellStyle(sheet, first, last, wb.style(c.header)))
		wb.colorScale(sheet, first+":"+last, c.header, values)
	}
}

func (wb *Workbook) comment(sheet, cell, author, text string) {
	if author == "" {
		author = "qcML"
	}
	simpleUtil.CheckErr(wb.xlsx.AddComment(sheet, excelize.Comment{
		Author: author,
		Cell:   cell,
		Text:   text,
		Width:  240,
		Height: 80,
	}))
}

// colorScale shades a column between the bounds of its header scale.
func (wb *Workbook) colorScale(sheet, rangeRef string, h *Header, values []float64) {
	var colors, ok = colorScales[h.Scale]
	if !ok {
		return
	}
	lo, hi, ok := h.ScaleBounds(values)
	if !ok {
		return
	}
	simpleUtil.CheckErr(wb.xlsx.SetConditionalFormat(sheet, rangeRef, []excelize.ConditionalFormatOptions{
		{
			Type:     "2_color_scale",
			Criteria: "=",
			MinType:  "num",
			MaxType:  "num",
			MinValue: strconv.FormatFloat(lo, 'f', -1, 64),
			MaxValue: strconv.FormatFloat(hi, 'f', -1, 64),
			MinColor: colors[0],
			MaxColor: colors[1],
		},
	}))
}

// Save drops the default sheet when tables were added and writes the workbook.
func (wb *Workbook) Save(path string) error {
	if len(wb.sheets) > 0 {
		if idx, err := wb.xlsx.GetSheetIndex(wb.sheets[0]); err == nil {
			wb.xlsx.SetActiveSheet(idx)
		}
		if err := wb.xlsx.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	if err := wb.xlsx.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	slog.Info("save xlsx", "path", path, "sheets", len(wb.sheets))
	return nil
}

func (wb *Workbook) Close() error {
	return wb.xlsx.Close()
}
