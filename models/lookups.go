package models

// Lookup tables hold static reference data: an id and one label column
// whose name differs per table.

type NamedLookup struct {
	ID     int64  `gorm:"primaryKey"`
	Nombre string `gorm:"size:150;not null"`
}

type DescribedLookup struct {
	ID          int64  `gorm:"primaryKey"`
	Descripcion string `gorm:"size:250;not null"`
}

type StateLookup struct {
	ID     int64  `gorm:"primaryKey"`
	Estado string `gorm:"size:100;not null"`
}

type PhaseLookup struct {
	ID   int64  `gorm:"primaryKey"`
	Fase string `gorm:"size:100;not null"`
}

type LevelLookup struct {
	ID    int64  `gorm:"primaryKey"`
	Nivel string `gorm:"size:100;not null"`
}

type WidthLookup struct {
	ID    int64  `gorm:"primaryKey"`
	Ancho string `gorm:"size:100;not null"`
}

type DimensionLookup struct {
	ID        int64  `gorm:"primaryKey"`
	Dimension string `gorm:"size:100;not null"`
}

type TypeLookup struct {
	ID   int64  `gorm:"primaryKey"`
	Tipo string `gorm:"size:100;not null"`
}

// Lookup describes one reference table and the route that lists it.
type Lookup struct {
	Path   string
	Table  string
	Column string
	Model  interface{}
}

// LookupItem is scanned from "SELECT id, <column> AS label".
type LookupItem struct {
	ID    int64
	Label string
}

// JSON renders the item with the table's own label column name.
func (i LookupItem) JSON(column string) map[string]interface{} {
	return map[string]interface{}{"id": i.ID, column: i.Label}
}

var Lookups = []Lookup{
	{Path: "comunas", Table: "comunas", Column: "nombre", Model: &NamedLookup{}},
	{Path: "calles", Table: "calles", Column: "nombre", Model: &NamedLookup{}},
	{Path: "referencias", Table: "referencias", Column: "descripcion", Model: &DescribedLookup{}},
	{Path: "especies", Table: "especies", Column: "nombre", Model: &NamedLookup{}},
	{Path: "estados-fitosanitarios", Table: "estados_fitosanitarios", Column: "estado", Model: &StateLookup{}},
	{Path: "fases-vitales", Table: "fases_vitales", Column: "fase", Model: &PhaseLookup{}},
	{Path: "inclinaciones", Table: "inclinaciones", Column: "nivel", Model: &LevelLookup{}},
	{Path: "ahuecamientos", Table: "ahuecamientos", Column: "nivel", Model: &LevelLookup{}},
	{Path: "estados-plantera", Table: "estados_plantera", Column: "estado", Model: &StateLookup{}},
	{Path: "ancho_acera", Table: "ancho_acera", Column: "ancho", Model: &WidthLookup{}},
	{Path: "dimensiones-plantera", Table: "dimensiones_plantera", Column: "dimension", Model: &DimensionLookup{}},
	{Path: "tipos-plantacion", Table: "tipos_plantacion", Column: "tipo", Model: &TypeLookup{}},
	{Path: "tareas", Table: "tareas", Column: "descripcion", Model: &DescribedLookup{}},
	{Path: "items", Table: "items", Column: "descripcion", Model: &DescribedLookup{}},
	{Path: "estados", Table: "estados", Column: "nombre", Model: &NamedLookup{}},
	{Path: "contratistas", Table: "contratistas", Column: "nombre", Model: &NamedLookup{}},
}
