package models

import "time"

// Planting is a newly planted tree. It never turns into a CensusTree.
type Planting struct {
	ID                  int64     `gorm:"primaryKey" json:"id"`
	ComunaID            int64     `gorm:"not null;index" json:"comuna_id"`
	CalleID             int64     `gorm:"not null;index" json:"calle_id"`
	Altura              int64     `gorm:"not null" json:"altura"`
	ReferenciaID        int64     `gorm:"not null" json:"referencia_id"`
	TipoPlantacionID    int64     `gorm:"not null" json:"tipo_plantacion_id"`
	EspecieID           int64     `gorm:"not null;index" json:"especie_id"`
	DimensionPlanteraID int64     `gorm:"not null" json:"dimension_plantera_id"`
	Observaciones       *string   `gorm:"size:250" json:"observaciones"`
	Foto                *string   `gorm:"size:255" json:"foto"`
	Latitud             *float64  `json:"latitud"`
	Longitud            *float64  `json:"longitud"`
	CreatedAt           time.Time `json:"created_at"`
}

func (Planting) TableName() string { return "plantaciones" }

type PlantingRow struct {
	PlantacionID      int64    `json:"plantacion_id"`
	Comuna            *string  `json:"comuna"`
	Calle             *string  `json:"calle"`
	Altura            int64    `json:"altura"`
	Referencia        *string  `json:"referencia"`
	TipoPlantacion    *string  `json:"tipo_plantacion"`
	Especie           *string  `json:"especie"`
	DimensionPlantera *string  `json:"dimension_plantera"`
	Observaciones     *string  `json:"observaciones"`
	Foto              *string  `json:"foto"`
	Latitud           *float64 `json:"latitud,omitempty"`
	Longitud          *float64 `json:"longitud,omitempty"`
	FechaPlantacion   *Date    `json:"fecha_plantacion"`
}
