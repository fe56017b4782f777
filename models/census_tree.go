package models

import "time"

// CensusTree is a surveyed street tree.
type CensusTree struct {
	ID                    int64     `gorm:"primaryKey" json:"id"`
	ComunaID              int64     `gorm:"not null;index" json:"comuna_id"`
	CalleID               int64     `gorm:"not null;index" json:"calle_id"`
	Altura                int64     `gorm:"not null" json:"altura"`
	ReferenciaID          *int64    `json:"referencia_id"`
	EspecieID             int64     `gorm:"not null;index" json:"especie_id"`
	AlturaArbol           *float64  `gorm:"type:decimal(4,2)" json:"altura_arbol"`
	Dap                   *float64  `gorm:"type:decimal(4,2)" json:"dap"`
	EstadoFitosanitarioID *int64    `json:"estado_fitosanitario_id"`
	FaseVitalID           *int64    `json:"fase_vital_id"`
	InclinacionID         *int64    `json:"inclinacion_id"`
	AhuecamientoID        *int64    `json:"ahuecamiento_id"`
	EstadoPlanteraID      *int64    `json:"estado_plantera_id"`
	AnchoAceraID          *int64    `json:"ancho_acera_id"`
	Observaciones         *string   `gorm:"size:250" json:"observaciones"`
	Foto                  *string   `gorm:"size:255" json:"foto"`
	Latitud               *float64  `json:"latitud"`
	Longitud              *float64  `json:"longitud"`
	CreatedAt             time.Time `json:"created_at"`
}

func (CensusTree) TableName() string { return "arboles" }

// CensusTreeRow is one line of the census listing with lookup labels resolved.
type CensusTreeRow struct {
	ArbolID             int64    `json:"arbol_id"`
	Comuna              *string  `json:"comuna"`
	Calle               *string  `json:"calle"`
	Altura              int64    `json:"altura"`
	Referencia          *string  `json:"referencia"`
	Especie             *string  `json:"especie"`
	AlturaArbol         *float64 `json:"altura_arbol"`
	Dap                 *float64 `json:"dap"`
	EstadoFitosanitario *string  `json:"estado_fitosanitario"`
	FaseVital           *string  `json:"fase_vital"`
	Inclinacion         *string  `json:"inclinacion"`
	Ahuecamiento        *string  `json:"ahuecamiento"`
	EstadoPlantera      *string  `json:"estado_plantera"`
	AnchoAcera          *string  `json:"ancho_acera"`
	Observaciones       *string  `json:"observaciones"`
	Foto                *string  `json:"foto"`
	Latitud             *float64 `json:"latitud,omitempty"`
	Longitud            *float64 `json:"longitud,omitempty"`
	FechaCensado        *Date    `json:"fecha_censado"`
}

// CensusTreeSummary is the short listing used to pick a tree by address.
type CensusTreeSummary struct {
	ArbolID    int64   `json:"arbol_id"`
	Comuna     *string `json:"comuna"`
	Calle      *string `json:"calle"`
	Altura     int64   `json:"altura"`
	Referencia *string `json:"referencia"`
	Especie    *string `json:"especie"`
}
