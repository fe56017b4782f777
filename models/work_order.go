package models

// WorkOrder assigns a maintenance task to a contractor. Arme is the
// business order number; its uniqueness is checked by the handlers.
type WorkOrder struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	MantenimientoID int64  `gorm:"not null;index" json:"mantenimiento_id"`
	EstadoID        int64  `gorm:"not null;index" json:"estado_id"`
	Arme            *int64 `gorm:"index" json:"arme"`
	ContratistaID   *int64 `gorm:"index" json:"contratista_id"`
	FechaLimite     *Date  `json:"fecha_limite"`
	FechaAsignacion *Date  `json:"fecha_asignacion"`
}

func (WorkOrder) TableName() string { return "ordenes" }

// WorkOrderRow is a work order with status and contractor names.
type WorkOrderRow struct {
	ID              int64   `json:"id"`
	MantenimientoID int64   `json:"mantenimiento_id"`
	EstadoID        int64   `json:"estado_id"`
	Estado          string  `json:"estado"`
	Arme            *int64  `json:"arme"`
	ContratistaID   *int64  `json:"contratista_id"`
	Contratista     *string `json:"contratista"`
	FechaLimite     *Date   `json:"fecha_limite"`
	FechaAsignacion *Date   `json:"fecha_asignacion"`
}

// Order statuses seeded by AutoMigrate.
var DefaultOrderStatuses = []string{"Encomendado", "En proceso", "Finalizado", "Cancelado"}
