package handlers

import (
	"net/http"

	"gorm.io/gorm"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/pkg/filter"
	"p9e.in/treeflow/pkg/form"
)

const msgTreeNotFound = "Árbol no encontrado"

var censusTreeRules = form.Rules{
	"comuna_id":               "required,int64",
	"calle_id":                "required,int64",
	"altura":                  "required,int64",
	"referencia_id":           "required,int64",
	"especie_id":              "required,int64",
	"altura_arbol":            "required,numeric",
	"dap":                     "required,numeric",
	"estado_fitosanitario_id": "required,int64",
	"fase_vital_id":           "required,int64",
	"inclinacion_id":          "required,int64",
	"ahuecamiento_id":         "required,int64",
	"estado_plantera_id":      "required,int64",
	"ancho_acera_id":          "required,int64",
	"observaciones":           "required,max=250",
	"latitud":                 "omitempty,latitude",
	"longitud":                "omitempty,longitude",
}

// On update only the address and species are mandatory.
var censusTreeUpdateRules = censusTreeRules.Merge(form.Rules{
	"referencia_id":           "omitempty,int64",
	"altura_arbol":            "omitempty,numeric",
	"dap":                     "omitempty,numeric",
	"estado_fitosanitario_id": "omitempty,int64",
	"fase_vital_id":           "omitempty,int64",
	"inclinacion_id":          "omitempty,int64",
	"ahuecamiento_id":         "omitempty,int64",
	"estado_plantera_id":      "omitempty,int64",
	"ancho_acera_id":          "omitempty,int64",
	"observaciones":           "omitempty,max=250",
})

var censusTreeColumns = []string{
	"comuna_id", "calle_id", "altura", "referencia_id", "especie_id", "altura_arbol", "dap",
	"estado_fitosanitario_id", "fase_vital_id", "inclinacion_id", "ahuecamiento_id",
	"estado_plantera_id", "ancho_acera_id", "observaciones", "foto", "latitud", "longitud",
}

func censusTreeFromForm(v form.Values, foto *string) models.CensusTree {
	return models.CensusTree{
		ComunaID:              v.Int64("comuna_id"),
		CalleID:               v.Int64("calle_id"),
		Altura:                v.Int64("altura"),
		ReferenciaID:          v.OptInt64("referencia_id"),
		EspecieID:             v.Int64("especie_id"),
		AlturaArbol:           v.OptFloat64("altura_arbol"),
		Dap:                   v.OptFloat64("dap"),
		EstadoFitosanitarioID: v.OptInt64("estado_fitosanitario_id"),
		FaseVitalID:           v.OptInt64("fase_vital_id"),
		InclinacionID:         v.OptInt64("inclinacion_id"),
		AhuecamientoID:        v.OptInt64("ahuecamiento_id"),
		EstadoPlanteraID:      v.OptInt64("estado_plantera_id"),
		AnchoAceraID:          v.OptInt64("ancho_acera_id"),
		Observaciones:         v.OptString("observaciones"),
		Foto:                  foto,
		Latitud:               v.OptFloat64("latitud"),
		Longitud:              v.OptFloat64("longitud"),
	}
}

// CreateCensusTree registers a surveyed tree with an optional photo.
// @Summary      Register a census tree
// @Tags         arboles
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  Response
// @Failure      400  {object}  apperr.Body
// @Router       /api/arboles [post]
func (h *Handler) CreateCensusTree(w http.ResponseWriter, r *http.Request) {
	v, err := parseForm(r, censusTreeRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	foto, err := h.savePhoto(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	tree := censusTreeFromForm(v, foto)
	if err := h.db.WithContext(r.Context()).Create(&tree).Error; err != nil {
		respondError(w, r, apperr.FromDB("Hubo un problema al registrar el árbol", err))
		return
	}
	respondCreated(w, "Árbol registrado exitosamente", createdID{ID: tree.ID})
}

// censusTreeQuery selects the census listing with every lookup label
// resolved and the request filters applied.
func (h *Handler) censusTreeQuery(r *http.Request) *gorm.DB {
	q := h.db.WithContext(r.Context()).
		Table("arboles AS a").
		Select(`a.id AS arbol_id, c.nombre AS comuna, ca.nombre AS calle, a.altura,
			r.descripcion AS referencia, e.nombre AS especie, a.altura_arbol, a.dap,
			ef.estado AS estado_fitosanitario, fv.fase AS fase_vital, i.nivel AS inclinacion,
			ah.nivel AS ahuecamiento, ep.estado AS estado_plantera, aa.ancho AS ancho_acera,
			a.observaciones, a.foto, a.latitud, a.longitud, a.created_at AS fecha_censado`).
		Joins("LEFT JOIN comunas c ON a.comuna_id = c.id").
		Joins("LEFT JOIN calles ca ON a.calle_id = ca.id").
		Joins("LEFT JOIN referencias r ON a.referencia_id = r.id").
		Joins("LEFT JOIN especies e ON a.especie_id = e.id").
		Joins("LEFT JOIN estados_fitosanitarios ef ON a.estado_fitosanitario_id = ef.id").
		Joins("LEFT JOIN fases_vitales fv ON a.fase_vital_id = fv.id").
		Joins("LEFT JOIN inclinaciones i ON a.inclinacion_id = i.id").
		Joins("LEFT JOIN ahuecamientos ah ON a.ahuecamiento_id = ah.id").
		Joins("LEFT JOIN estados_plantera ep ON a.estado_plantera_id = ep.id").
		Joins("LEFT JOIN ancho_acera aa ON a.ancho_acera_id = aa.id")
	return filter.CensusTrees.Apply(q, r.URL.Query()).Order("a.id")
}

func (h *Handler) loadCensusTrees(r *http.Request) ([]models.CensusTreeRow, error) {
	rows := []models.CensusTreeRow{}
	if err := h.censusTreeQuery(r).Scan(&rows).Error; err != nil {
		return nil, apperr.Database("Error al obtener los datos de árboles censados", err)
	}
	return rows, nil
}

// ListCensusTrees returns the filtered census listing.
// @Summary      List census trees
// @Tags         arboles
// @Produce      json
// @Param        comuna_id                query  int  false  "Commune"
// @Param        calle_id                 query  int  false  "Street"
// @Param        especie_id               query  int  false  "Species"
// @Param        estado_fitosanitario_id  query  int  false  "Health state"
// @Param        nivel_inclinaciones_id   query  int  false  "Lean level"
// @Param        nivel_ahuecamientos_id   query  int  false  "Hollowing level"
// @Success      200  {array}  models.CensusTreeRow
// @Router       /api/arboles-censados [get]
func (h *Handler) ListCensusTrees(w http.ResponseWriter, r *http.Request) {
	rows, err := h.loadCensusTrees(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// ListCensusTreeSummaries is the short address listing used when picking a
// tree for maintenance.
func (h *Handler) ListCensusTreeSummaries(w http.ResponseWriter, r *http.Request) {
	q := h.db.WithContext(r.Context()).
		Table("arboles AS a").
		Select(`a.id AS arbol_id, c.nombre AS comuna, ca.nombre AS calle, a.altura,
			r.descripcion AS referencia, e.nombre AS especie`).
		Joins("LEFT JOIN comunas c ON a.comuna_id = c.id").
		Joins("LEFT JOIN calles ca ON a.calle_id = ca.id").
		Joins("LEFT JOIN referencias r ON a.referencia_id = r.id").
		Joins("LEFT JOIN especies e ON a.especie_id = e.id")

	rows := []models.CensusTreeSummary{}
	if err := filter.CensusTreeLookup.Apply(q, r.URL.Query()).Order("a.id").Scan(&rows).Error; err != nil {
		respondError(w, r, apperr.Database("Error al filtrar árboles", err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) GetCensusTree(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var tree models.CensusTree
	if err := h.db.WithContext(r.Context()).First(&tree, id).Error; err != nil {
		respondError(w, r, findError(msgTreeNotFound, err))
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

// UpdateCensusTree replaces the editable fields of a tree. Optional fields
// left out of the request are cleared.
func (h *Handler) UpdateCensusTree(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	v, err := parseForm(r, censusTreeUpdateRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	foto, err := h.photoOrField(r, v)
	if err != nil {
		respondError(w, r, err)
		return
	}

	tree := censusTreeFromForm(v, foto)
	if err := h.updateByID(r, &models.CensusTree{}, &tree, id, msgTreeNotFound, censusTreeColumns...); err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, "Árbol actualizado exitosamente")
}

func (h *Handler) DeleteCensusTree(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, &models.CensusTree{}, msgTreeNotFound, "Árbol eliminado exitosamente")
}
