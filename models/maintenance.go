package models

import "time"

// Maintenance is a task logged against a census tree.
type Maintenance struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	ArbolID       int64     `gorm:"not null;index" json:"arbol_id"`
	TareaID       int64     `gorm:"not null" json:"tarea_id"`
	ItemID        int64     `gorm:"not null" json:"item_id"`
	Observaciones *string   `gorm:"size:300" json:"observaciones"`
	Foto          *string   `gorm:"size:255" json:"foto"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Maintenance) TableName() string { return "mantenimientos" }

// MaintenanceRow is a maintenance record with its tree's address and the
// task and item labels.
type MaintenanceRow struct {
	ID            int64     `json:"id"`
	ArbolID       int64     `json:"arbol_id"`
	Comuna        *string   `json:"comuna"`
	Calle         *string   `json:"calle"`
	Altura        int64     `json:"altura"`
	Referencia    *string   `json:"referencia"`
	Especie       *string   `json:"especie"`
	TareaID       int64     `json:"tarea_id"`
	Tarea         string    `json:"tarea"`
	ItemID        int64     `json:"item_id"`
	Item          string    `json:"item"`
	Observaciones *string   `json:"observaciones"`
	Foto          *string   `json:"foto"`
	CreatedAt     time.Time `json:"created_at"`
}

// MaintenanceOrderRow is one line of the combined maintenance/work-order
// report. Order columns are nil for maintenance without an order.
type MaintenanceOrderRow struct {
	MantenimientoID int64   `json:"mantenimiento_id"`
	ComunaID        int64   `json:"comuna_id"`
	Comuna          *string `json:"comuna"`
	CalleID         int64   `json:"calle_id"`
	Calle           *string `json:"calle"`
	Altura          int64   `json:"altura"`
	Referencia      *string `json:"referencia"`
	EspecieID       int64   `json:"especie_id"`
	Especie         *string `json:"especie"`
	TareaID         int64   `json:"tarea_id"`
	Tarea           *string `json:"tarea"`
	ItemID          int64   `json:"item_id"`
	Item            *string `json:"item"`
	Observaciones   *string `json:"observaciones"`
	Foto            *string `json:"foto"`
	OrdenID         *int64  `json:"orden_id"`
	EstadoID        *int64  `json:"estado_id"`
	Estado          *string `json:"estado"`
	Arme            *int64  `json:"arme"`
	ContratistaID   *int64  `json:"contratista_id"`
	Contratista     *string `json:"contratista"`
	FechaLimite     *Date   `json:"fecha_limite"`
}
