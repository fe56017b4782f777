package handlers

import (
	"net/http"
	"time"

	"gorm.io/gorm"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/pkg/filter"
	"p9e.in/treeflow/pkg/form"
)

const (
	msgOrderNotFound = "La orden no existe."
	msgArmeTaken     = "El número de ARME ya está asignado a otra orden."
)

var workOrderCreateRules = form.Rules{
	"mantenimiento_id": "required,int64",
	"estado_id":        "required,int64",
	"arme":             "required,int64",
	"contratista_id":   "required,int64",
	"fecha_limite":     "required",
}

var workOrderUpdateRules = form.Rules{
	"estado_id":      "required,int64",
	"contratista_id": "required,int64",
	"fecha_limite":   "required",
	"arme":           "omitempty,int64",
}

var contractorUpdateRules = form.Rules{
	"estado_id": "required,int64",
	"arme":      "omitempty,int64",
}

// dueDate parses fecha_limite and returns the day after it, which is what
// gets stored.
func dueDate(v form.Values) (*models.Date, error) {
	d, err := models.ParseDate(v["fecha_limite"])
	if err != nil {
		return nil, apperr.Validation(msgRequiredFields, map[string]interface{}{
			"fields": []form.FieldError{{Field: "fecha_limite", Rule: "datetime"}},
		})
	}
	return ptr(d.AddDays(1)), nil
}

// checkArme fails with 409 when another order already uses arme. exceptID
// is the order being updated, or zero on create. The check and the write
// that follows are not atomic.
func (h *Handler) checkArme(r *http.Request, arme *int64, exceptID int64) error {
	if arme == nil {
		return nil
	}
	q := h.db.WithContext(r.Context()).Model(&models.WorkOrder{}).Where("arme = ?", *arme)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return apperr.Database("Error al verificar el número de ARME", err)
	}
	if n > 0 {
		return apperr.Conflict(msgArmeTaken)
	}
	return nil
}

// ListWorkOrders returns the filtered order list with status and contractor names.
// @Summary      List work orders
// @Tags         ordenes
// @Produce      json
// @Param        estado_id       query  int     false  "Status"
// @Param        contratista_id  query  int     false  "Contractor"
// @Param        fecha_limite    query  string  false  "Due date (YYYY-MM-DD)"
// @Success      200  {array}  models.WorkOrderRow
// @Router       /api/ordenes [get]
func (h *Handler) ListWorkOrders(w http.ResponseWriter, r *http.Request) {
	rows := []models.WorkOrderRow{}
	q := filter.WorkOrders.Apply(h.workOrderQuery(r), r.URL.Query())
	if err := q.Order("o.id").Scan(&rows).Error; err != nil {
		respondError(w, r, apperr.Database("Error al obtener las órdenes", err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var rows []models.WorkOrderRow
	if err := h.workOrderQuery(r).Where("o.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		respondError(w, r, apperr.Database("Error al obtener la orden", err))
		return
	}
	if len(rows) == 0 {
		respondError(w, r, apperr.NotFound(msgOrderNotFound))
		return
	}
	writeJSON(w, http.StatusOK, rows[0])
}

func (h *Handler) workOrderQuery(r *http.Request) *gorm.DB {
	return h.db.WithContext(r.Context()).
		Table("ordenes AS o").
		Select(`o.id, o.mantenimiento_id, o.estado_id, e.nombre AS estado, o.arme,
			o.contratista_id, c.nombre AS contratista, o.fecha_limite, o.fecha_asignacion`).
		Joins("JOIN estados e ON o.estado_id = e.id").
		Joins("LEFT JOIN contratistas c ON o.contratista_id = c.id")
}

// CreateWorkOrder assigns a maintenance task to a contractor.
// @Summary      Create a work order
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Success      201  {object}  Response{data=models.WorkOrder}
// @Failure      400  {object}  apperr.Body
// @Failure      409  {object}  apperr.Body
// @Router       /api/ordenes [post]
func (h *Handler) CreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	v, err := parseForm(r, workOrderCreateRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	due, err := dueDate(v)
	if err != nil {
		respondError(w, r, err)
		return
	}
	arme := v.OptInt64("arme")
	if err := h.checkArme(r, arme, 0); err != nil {
		respondError(w, r, err)
		return
	}

	order := models.WorkOrder{
		MantenimientoID: v.Int64("mantenimiento_id"),
		EstadoID:        v.Int64("estado_id"),
		Arme:            arme,
		ContratistaID:   v.OptInt64("contratista_id"),
		FechaLimite:     due,
		FechaAsignacion: ptr(models.NewDate(time.Now())),
	}
	if err := h.db.WithContext(r.Context()).Create(&order).Error; err != nil {
		respondError(w, r, apperr.FromDB("Error al crear la orden", err))
		return
	}
	respondCreated(w, "Orden creada exitosamente", order)
}

// UpdateWorkOrder rewrites the status, contractor, due date and ARME of an
// order. An absent arme clears it.
// @Summary      Update a work order
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        id   path  int  true  "Order id"
// @Success      200  {object}  Response
// @Failure      404  {object}  apperr.Body
// @Failure      409  {object}  apperr.Body
// @Router       /api/ordenes/{id} [put]
func (h *Handler) UpdateWorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	v, err := parseForm(r, workOrderUpdateRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	due, err := dueDate(v)
	if err != nil {
		respondError(w, r, err)
		return
	}
	arme := v.OptInt64("arme")
	if err := h.checkArme(r, arme, id); err != nil {
		respondError(w, r, err)
		return
	}

	order := models.WorkOrder{
		EstadoID:      v.Int64("estado_id"),
		ContratistaID: v.OptInt64("contratista_id"),
		FechaLimite:   due,
		Arme:          arme,
	}
	err = h.updateByID(r, &models.WorkOrder{}, &order, id, msgOrderNotFound,
		"estado_id", "contratista_id", "fecha_limite", "arme")
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, "Orden actualizada exitosamente.")
}

// UpdateWorkOrderByContractor lets the assigned company move an order
// through its states and record the ARME number.
func (h *Handler) UpdateWorkOrderByContractor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	v, err := parseForm(r, contractorUpdateRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	arme := v.OptInt64("arme")
	if err := h.checkArme(r, arme, id); err != nil {
		respondError(w, r, err)
		return
	}

	order := models.WorkOrder{EstadoID: v.Int64("estado_id"), Arme: arme}
	if err := h.updateByID(r, &models.WorkOrder{}, &order, id, msgOrderNotFound, "estado_id", "arme"); err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, "Orden actualizada correctamente")
}

func (h *Handler) DeleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, &models.WorkOrder{}, msgOrderNotFound, "Orden eliminada exitosamente")
}
