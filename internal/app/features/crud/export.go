package crud

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ServeExport downloads the filtered list, every page up to the export cap,
// as a spreadsheet.
func (c *Controller[T, In]) ServeExport(w http.ResponseWriter, r *http.Request) {
	q := c.query(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Export(), c.deps.Log, c.def.Key+" export")
	defer cancel()

	items, total, err := c.def.Resource.ListAll(ctx, auth.Token(r), backend.PageQuery{
		Size:    100,
		Filters: q.Filters,
	}, c.deps.ExportMaxRows)
	if err != nil {
		if c.unauthorized(w, r, err) {
			return
		}
		c.deps.ErrLog.LogBackendError(w, r, "export "+c.def.Key, err,
			"Nothing to export.", q.Href(c.def.base()))
		return
	}
	if total > int64(len(items)) {
		c.deps.Log.Info("export truncated", zap.Int("rows", len(items)), zap.Int64("total", total))
	}

	f, err := c.workbook(items)
	if err != nil {
		c.deps.ErrLog.LogServerError(w, r, "build export", err, "The export could not be built.", q.Href(c.def.base()))
		return
	}
	defer f.Close()

	name := fmt.Sprintf("%s-%s.xlsx", c.def.Key, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := f.Write(w); err != nil {
		c.deps.Log.Warn("write export", zap.Error(err))
	}
}

// workbook lays out items one row per record under a bold header row.
// Numbers stay numeric so the sheet can total them.
func (c *Controller[T, In]) workbook(items []T) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := sheetName(c.def.Plural)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]any, 0, len(c.def.Columns)+1)
	header = append(header, "ID")
	for _, col := range c.def.Columns {
		header = append(header, col.Label)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		f.Close()
		return nil, err
	}

	for i, it := range items {
		row := make([]any, 0, len(header))
		row = append(row, c.def.ID(it))
		for _, col := range c.def.Columns {
			row = append(row, exportValue(col.Kind, col.Value(it)))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// sheetName trims a title to Excel's 31 character sheet name limit.
func sheetName(title string) string {
	r := []rune(title)
	if len(r) > 31 {
		r = r[:31]
	}
	if len(r) == 0 {
		return "Sheet1"
	}
	return string(r)
}
