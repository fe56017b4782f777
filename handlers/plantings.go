package handlers

import (
	"net/http"

	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/pkg/filter"
	"p9e.in/treeflow/pkg/form"
)

const msgPlantingNotFound = "Plantación no encontrada"

var plantingRules = form.Rules{
	"comuna_id":             "required,int64",
	"calle_id":              "required,int64",
	"altura":                "required,int64",
	"referencia_id":         "required,int64",
	"tipo_plantacion_id":    "required,int64",
	"especie_id":            "required,int64",
	"dimension_plantera_id": "required,int64",
	"observaciones":         "omitempty,max=250",
	"latitud":               "omitempty,latitude",
	"longitud":              "omitempty,longitude",
}

var plantingColumns = []string{
	"comuna_id", "calle_id", "altura", "referencia_id", "tipo_plantacion_id", "especie_id",
	"dimension_plantera_id", "observaciones", "foto", "latitud", "longitud",
}

func plantingFromForm(v form.Values, foto *string) models.Planting {
	return models.Planting{
		ComunaID:            v.Int64("comuna_id"),
		CalleID:             v.Int64("calle_id"),
		Altura:              v.Int64("altura"),
		ReferenciaID:        v.Int64("referencia_id"),
		TipoPlantacionID:    v.Int64("tipo_plantacion_id"),
		EspecieID:           v.Int64("especie_id"),
		DimensionPlanteraID: v.Int64("dimension_plantera_id"),
		Observaciones:       v.OptString("observaciones"),
		Foto:                foto,
		Latitud:             v.OptFloat64("latitud"),
		Longitud:            v.OptFloat64("longitud"),
	}
}

// CreatePlanting records a new planting with an optional photo.
// @Summary      Register a planting
// @Tags         plantaciones
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  Response
// @Failure      400  {object}  apperr.Body
// @Router       /api/plantaciones [post]
func (h *Handler) CreatePlanting(w http.ResponseWriter, r *http.Request) {
	v, err := parseForm(r, plantingRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	foto, err := h.savePhoto(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	p := plantingFromForm(v, foto)
	if err := h.db.WithContext(r.Context()).Create(&p).Error; err != nil {
		respondError(w, r, apperr.FromDB("Error al registrar la plantación", err))
		return
	}
	respondCreated(w, "Plantación registrada exitosamente", createdID{ID: p.ID})
}

func (h *Handler) ListPlantings(w http.ResponseWriter, r *http.Request) {
	q := h.db.WithContext(r.Context()).
		Table("plantaciones AS p").
		Select(`p.id AS plantacion_id, c.nombre AS comuna, ca.nombre AS calle, p.altura,
			r.descripcion AS referencia, tp.tipo AS tipo_plantacion, e.nombre AS especie,
			dp.dimension AS dimension_plantera, p.observaciones, p.foto, p.latitud, p.longitud,
			p.created_at AS fecha_plantacion`).
		Joins("LEFT JOIN comunas c ON p.comuna_id = c.id").
		Joins("LEFT JOIN calles ca ON p.calle_id = ca.id").
		Joins("LEFT JOIN referencias r ON p.referencia_id = r.id").
		Joins("LEFT JOIN tipos_plantacion tp ON p.tipo_plantacion_id = tp.id").
		Joins("LEFT JOIN especies e ON p.especie_id = e.id").
		Joins("LEFT JOIN dimensiones_plantera dp ON p.dimension_plantera_id = dp.id")

	rows := []models.PlantingRow{}
	if err := filter.Plantings.Apply(q, r.URL.Query()).Order("p.id").Scan(&rows).Error; err != nil {
		respondError(w, r, apperr.Database("Error al obtener las plantaciones", err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) GetPlanting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var p models.Planting
	if err := h.db.WithContext(r.Context()).First(&p, id).Error; err != nil {
		respondError(w, r, findError(msgPlantingNotFound, err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdatePlanting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	v, err := parseForm(r, plantingRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	foto, err := h.photoOrField(r, v)
	if err != nil {
		respondError(w, r, err)
		return
	}

	p := plantingFromForm(v, foto)
	if err := h.updateByID(r, &models.Planting{}, &p, id, msgPlantingNotFound, plantingColumns...); err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, "Plantación actualizada exitosamente")
}

func (h *Handler) DeletePlanting(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, &models.Planting{}, msgPlantingNotFound, "Plantación eliminada exitosamente")
}
