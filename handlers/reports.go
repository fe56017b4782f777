package handlers

import (
	"net/http"

	"gorm.io/gorm"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/pkg/filter"
)

// maintenanceOrderQuery joins every maintenance record with its tree and,
// when one exists, its work order.
func (h *Handler) maintenanceOrderQuery(r *http.Request) *gorm.DB {
	q := h.db.WithContext(r.Context()).
		Table("mantenimientos AS m").
		Select(`m.id AS mantenimiento_id, a.comuna_id, c.nombre AS comuna, a.calle_id,
			ca.nombre AS calle, a.altura, r.descripcion AS referencia, a.especie_id,
			e.nombre AS especie, m.tarea_id, t.descripcion AS tarea, m.item_id,
			i.descripcion AS item, m.observaciones, a.foto, o.id AS orden_id, o.estado_id,
			es.nombre AS estado, o.arme, o.contratista_id, co.nombre AS contratista,
			o.fecha_limite`).
		Joins("JOIN arboles a ON m.arbol_id = a.id").
		Joins("LEFT JOIN comunas c ON a.comuna_id = c.id").
		Joins("LEFT JOIN calles ca ON a.calle_id = ca.id").
		Joins("LEFT JOIN referencias r ON a.referencia_id = r.id").
		Joins("LEFT JOIN especies e ON a.especie_id = e.id").
		Joins("LEFT JOIN ordenes o ON m.id = o.mantenimiento_id").
		Joins("LEFT JOIN estados es ON o.estado_id = es.id").
		Joins("LEFT JOIN contratistas co ON o.contratista_id = co.id").
		Joins("LEFT JOIN tareas t ON m.tarea_id = t.id").
		Joins("LEFT JOIN items i ON m.item_id = i.id")
	return filter.MaintenanceOrders.Apply(q, r.URL.Query()).Order("m.id, o.id")
}

func (h *Handler) loadMaintenanceOrders(r *http.Request) ([]models.MaintenanceOrderRow, error) {
	rows := []models.MaintenanceOrderRow{}
	if err := h.maintenanceOrderQuery(r).Scan(&rows).Error; err != nil {
		return nil, apperr.Database("Error al obtener los datos combinados", err)
	}
	return rows, nil
}

// ListMaintenanceOrders is the combined maintenance and work-order report.
// @Summary      Maintenance with work orders
// @Tags         reportes
// @Produce      json
// @Param        comuna_id       query  int     false  "Commune"
// @Param        calle_id        query  int     false  "Street"
// @Param        tarea_id        query  int     false  "Task"
// @Param        item_id         query  int     false  "Item"
// @Param        estado_id       query  int     false  "Order status"
// @Param        contratista_id  query  int     false  "Contractor"
// @Param        estado          query  string  false  "Comma-separated status names"
// @Success      200  {array}  models.MaintenanceOrderRow
// @Router       /api/mantenimientos-ordenes [get]
func (h *Handler) ListMaintenanceOrders(w http.ResponseWriter, r *http.Request) {
	rows, err := h.loadMaintenanceOrders(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
