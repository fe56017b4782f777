package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/xuri/excelize/v2"
	"p9e.in/treeflow/logging"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/pkg/form"
	"p9e.in/treeflow/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// column is one spreadsheet column: its header and how to read a row.
type column[T any] struct {
	Header string
	Value  func(T) interface{}
}

func opt[T any](p *T) interface{} {
	if p == nil {
		return ""
	}
	return *p
}

func optDate(d *models.Date) interface{} {
	if d == nil {
		return ""
	}
	return d.String()
}

var censusTreeSheet = []column[models.CensusTreeRow]{
	{"ID", func(r models.CensusTreeRow) interface{} { return r.ArbolID }},
	{"Comuna", func(r models.CensusTreeRow) interface{} { return opt(r.Comuna) }},
	{"Calle", func(r models.CensusTreeRow) interface{} { return opt(r.Calle) }},
	{"Altura", func(r models.CensusTreeRow) interface{} { return r.Altura }},
	{"Referencia", func(r models.CensusTreeRow) interface{} { return opt(r.Referencia) }},
	{"Especie", func(r models.CensusTreeRow) interface{} { return opt(r.Especie) }},
	{"Altura árbol", func(r models.CensusTreeRow) interface{} { return opt(r.AlturaArbol) }},
	{"DAP", func(r models.CensusTreeRow) interface{} { return opt(r.Dap) }},
	{"Estado fitosanitario", func(r models.CensusTreeRow) interface{} { return opt(r.EstadoFitosanitario) }},
	{"Fase vital", func(r models.CensusTreeRow) interface{} { return opt(r.FaseVital) }},
	{"Inclinación", func(r models.CensusTreeRow) interface{} { return opt(r.Inclinacion) }},
	{"Ahuecamiento", func(r models.CensusTreeRow) interface{} { return opt(r.Ahuecamiento) }},
	{"Estado plantera", func(r models.CensusTreeRow) interface{} { return opt(r.EstadoPlantera) }},
	{"Ancho acera", func(r models.CensusTreeRow) interface{} { return opt(r.AnchoAcera) }},
	{"Observaciones", func(r models.CensusTreeRow) interface{} { return opt(r.Observaciones) }},
	{"Foto", func(r models.CensusTreeRow) interface{} { return opt(r.Foto) }},
	{"Fecha censado", func(r models.CensusTreeRow) interface{} { return optDate(r.FechaCensado) }},
}

var maintenanceOrderSheet = []column[models.MaintenanceOrderRow]{
	{"Mantenimiento", func(r models.MaintenanceOrderRow) interface{} { return r.MantenimientoID }},
	{"Comuna", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Comuna) }},
	{"Calle", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Calle) }},
	{"Altura", func(r models.MaintenanceOrderRow) interface{} { return r.Altura }},
	{"Referencia", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Referencia) }},
	{"Especie", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Especie) }},
	{"Tarea", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Tarea) }},
	{"Item", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Item) }},
	{"Observaciones", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Observaciones) }},
	{"Orden", func(r models.MaintenanceOrderRow) interface{} { return opt(r.OrdenID) }},
	{"Estado", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Estado) }},
	{"ARME", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Arme) }},
	{"Contratista", func(r models.MaintenanceOrderRow) interface{} { return opt(r.Contratista) }},
	{"Fecha límite", func(r models.MaintenanceOrderRow) interface{} { return optDate(r.FechaLimite) }},
}

// ExportCensusTrees downloads the filtered census listing as a spreadsheet.
// @Summary      Export census trees
// @Tags         arboles
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/arboles-censados/export [get]
func (h *Handler) ExportCensusTrees(w http.ResponseWriter, r *http.Request) {
	rows, err := h.loadCensusTrees(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeXLSX(w, r, "arboles_censados", "Árboles censados", censusTreeSheet, rows)
}

// ExportMaintenanceOrders downloads the maintenance and work-order report.
func (h *Handler) ExportMaintenanceOrders(w http.ResponseWriter, r *http.Request) {
	rows, err := h.loadMaintenanceOrders(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeXLSX(w, r, "mantenimientos_ordenes", "Mantenimientos y órdenes", maintenanceOrderSheet, rows)
}

// writeXLSX sends rows as an attachment named <name>_<timestamp>.xlsx.
func writeXLSX[T any](w http.ResponseWriter, r *http.Request, name, title string, cols []column[T], rows []T) {
	f, err := createExcelFile(title, cols, rows)
	if err != nil {
		respondError(w, r, apperr.Database("No se pudo generar el archivo", err))
		return
	}
	defer f.Close()

	buffer, err := f.WriteToBuffer()
	if err != nil {
		respondError(w, r, apperr.Database("No se pudo generar el archivo", err))
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", sanitizeFilename(name), time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buffer.Bytes()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("write export")
	}
}

// createExcelFile lays out a single sheet: title, generation time, a header
// row on row 4 and one row per record from row 5.
func createExcelFile[T any](title string, cols []column[T], rows []T) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Reporte"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generado: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}
	for colIdx, c := range cols {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, c.Header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		colName, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	for rowIdx, row := range rows {
		for colIdx, c := range cols {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			if err := f.SetCellValue(sheetName, cell, c.Value(row)); err != nil {
				return nil, err
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

func sanitizeFilename(filename string) string {
	replacements := map[rune]rune{
		'/': '_', '\\': '_', ':': '_', '*': '_', '?': '_',
		'"': '_', '<': '_', '>': '_', '|': '_', ' ': '_',
	}

	result := []rune{}
	for _, char := range filename {
		if replacement, exists := replacements[char]; exists {
			result = append(result, replacement)
		} else {
			result = append(result, char)
		}
	}
	return string(result)
}

// CensusTreesGeoJSON returns the filtered census trees that have
// coordinates as a FeatureCollection of points.
// @Summary      Census trees as GeoJSON
// @Tags         arboles
// @Produce      json
// @Param        area  query  string  false  "Polygon as {coordinates:[{lat,lng}]}"
// @Success      200  {object}  object
// @Failure      400  {object}  apperr.Body
// @Router       /api/arboles-censados/geojson [get]
func (h *Handler) CensusTreesGeoJSON(w http.ResponseWriter, r *http.Request) {
	rows, err := h.loadMappedCensusTrees(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	fc := censusTreeFeatures(rows)
	body, err := fc.MarshalJSON()
	if err != nil {
		respondError(w, r, apperr.Database("No se pudo generar el GeoJSON", err))
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// loadMappedCensusTrees keeps the filtered trees that have coordinates and,
// when ?area= is given, lie inside that polygon.
func (h *Handler) loadMappedCensusTrees(r *http.Request) ([]models.CensusTreeRow, error) {
	area, err := utils.ParseArea(r.URL.Query().Get("area"))
	if err != nil {
		return nil, apperr.Validation("Área inválida", map[string]interface{}{
			"fields": []form.FieldError{{Field: "area", Rule: "polygon"}},
			"error":  err.Error(),
		})
	}

	rows, err := h.loadCensusTrees(r)
	if err != nil {
		return nil, err
	}
	mapped := rows[:0]
	for _, row := range rows {
		if row.Latitud == nil || row.Longitud == nil {
			continue
		}
		if utils.InArea(area, row.Latitud, row.Longitud) {
			mapped = append(mapped, row)
		}
	}
	return mapped, nil
}

func censusTreeFeatures(rows []models.CensusTreeRow) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, row := range rows {
		feature := geojson.NewFeature(orb.Point{*row.Longitud, *row.Latitud})
		feature.ID = row.ArbolID
		feature.Properties = geojson.Properties{
			"arbol_id":             row.ArbolID,
			"comuna":               opt(row.Comuna),
			"calle":                opt(row.Calle),
			"altura":               row.Altura,
			"referencia":           opt(row.Referencia),
			"especie":              opt(row.Especie),
			"estado_fitosanitario": opt(row.EstadoFitosanitario),
			"fase_vital":           opt(row.FaseVital),
			"foto":                 opt(row.Foto),
			"fecha_censado":        optDate(row.FechaCensado),
		}
		fc.Append(feature)
	}
	return fc
}
