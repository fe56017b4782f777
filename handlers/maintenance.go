package handlers

import (
	"net/http"

	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/pkg/form"
)

const msgMaintenanceNotFound = "Mantenimiento no encontrado"

var maintenanceRules = form.Rules{
	"arbol_id":      "required,int64",
	"tarea_id":      "required,int64",
	"item_id":       "required,int64",
	"observaciones": "omitempty,max=300",
}

func maintenanceFromForm(v form.Values, foto *string) models.Maintenance {
	return models.Maintenance{
		ArbolID:       v.Int64("arbol_id"),
		TareaID:       v.Int64("tarea_id"),
		ItemID:        v.Int64("item_id"),
		Observaciones: v.OptString("observaciones"),
		Foto:          foto,
	}
}

// CreateMaintenance logs a task against a census tree.
// @Summary      Register maintenance
// @Tags         mantenimientos
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  Response
// @Failure      400  {object}  apperr.Body
// @Router       /api/mantenimientos [post]
func (h *Handler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	v, err := parseForm(r, maintenanceRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	foto, err := h.savePhoto(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	m := maintenanceFromForm(v, foto)
	if err := h.db.WithContext(r.Context()).Create(&m).Error; err != nil {
		respondError(w, r, apperr.FromDB("Error al registrar el mantenimiento", err))
		return
	}
	respondCreated(w, "Mantenimiento registrado exitosamente", createdID{ID: m.ID})
}

// ListMaintenance returns every maintenance record, newest first, with the
// tree's address and the task and item labels.
// @Summary      List maintenance
// @Tags         mantenimientos
// @Produce      json
// @Success      200  {array}  models.MaintenanceRow
// @Router       /api/mantenimiento [get]
func (h *Handler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	rows := []models.MaintenanceRow{}
	err := h.db.WithContext(r.Context()).
		Table("mantenimientos AS m").
		Select(`m.id, m.arbol_id, c.nombre AS comuna, ca.nombre AS calle, a.altura,
			r.descripcion AS referencia, e.nombre AS especie, m.tarea_id, t.descripcion AS tarea,
			m.item_id, i.descripcion AS item, m.observaciones, m.foto, m.created_at`).
		Joins("INNER JOIN arboles a ON m.arbol_id = a.id").
		Joins("INNER JOIN tareas t ON m.tarea_id = t.id").
		Joins("INNER JOIN items i ON m.item_id = i.id").
		Joins("LEFT JOIN comunas c ON a.comuna_id = c.id").
		Joins("LEFT JOIN calles ca ON a.calle_id = ca.id").
		Joins("LEFT JOIN referencias r ON a.referencia_id = r.id").
		Joins("LEFT JOIN especies e ON a.especie_id = e.id").
		Order("m.created_at DESC, m.id DESC").
		Scan(&rows).Error
	if err != nil {
		respondError(w, r, apperr.Database("Error al obtener mantenimientos", err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var m models.Maintenance
	if err := h.db.WithContext(r.Context()).First(&m, id).Error; err != nil {
		respondError(w, r, findError(msgMaintenanceNotFound, err))
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	v, err := parseForm(r, maintenanceRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	foto, err := h.photoOrField(r, v)
	if err != nil {
		respondError(w, r, err)
		return
	}

	m := maintenanceFromForm(v, foto)
	err = h.updateByID(r, &models.Maintenance{}, &m, id, msgMaintenanceNotFound,
		"arbol_id", "tarea_id", "item_id", "observaciones", "foto")
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, "Mantenimiento actualizado exitosamente")
}

func (h *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, &models.Maintenance{}, msgMaintenanceNotFound, "Mantenimiento eliminado exitosamente")
}
