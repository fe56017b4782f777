// Package filter turns optional query-string parameters into bound WHERE
// conditions for the list endpoints.
//
// Each endpoint declares a fixed Set of parameters. A parameter that is
// present and well formed adds one equality (or IN) condition; anything
// else is skipped, so a request can only ever narrow the result.
package filter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Kind is the syntax a parameter value must have to be used.
type Kind int

const (
	// Int accepts base-10 integers.
	Int Kind = iota
	// Date accepts YYYY-MM-DD.
	Date
	// List accepts comma-separated non-empty strings and matches any of them.
	List
)

// Field maps a query parameter to a qualified column.
type Field struct {
	Param  string
	Column string
	Kind   Kind
}

// Condition is one bound predicate.
type Condition struct {
	SQL string
	Arg interface{}
}

// Set is the enumerated parameter list of one endpoint.
type Set []Field

// Conditions returns the predicates for the parameters present and valid in q,
// in declaration order.
func (s Set) Conditions(q url.Values) []Condition {
	var conds []Condition
	for _, f := range s {
		raw := strings.TrimSpace(q.Get(f.Param))
		if raw == "" {
			continue
		}
		switch f.Kind {
		case Int:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				continue
			}
			conds = append(conds, Condition{SQL: f.Column + " = ?", Arg: n})
		case Date:
			d, err := time.Parse("2006-01-02", raw)
			if err != nil {
				continue
			}
			conds = append(conds, Condition{SQL: f.Column + " = ?", Arg: d.Format("2006-01-02")})
		case List:
			values := splitList(raw)
			if len(values) == 0 {
				continue
			}
			conds = append(conds, Condition{SQL: f.Column + " IN ?", Arg: values})
		}
	}
	return conds
}

// Apply appends the conditions for q to db. All conditions are AND-combined.
func (s Set) Apply(db *gorm.DB, q url.Values) *gorm.DB {
	for _, c := range s.Conditions(q) {
		db = db.Where(c.SQL, c.Arg)
	}
	return db
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Endpoint parameter sets.
var (
	CensusTrees = Set{
		{Param: "comuna_id", Column: "a.comuna_id", Kind: Int},
		{Param: "calle_id", Column: "a.calle_id", Kind: Int},
		{Param: "especie_id", Column: "a.especie_id", Kind: Int},
		{Param: "estado_fitosanitario_id", Column: "a.estado_fitosanitario_id", Kind: Int},
		{Param: "nivel_inclinaciones_id", Column: "a.inclinacion_id", Kind: Int},
		{Param: "nivel_ahuecamientos_id", Column: "a.ahuecamiento_id", Kind: Int},
	}

	CensusTreeLookup = Set{
		{Param: "comuna_id", Column: "a.comuna_id", Kind: Int},
		{Param: "calle_id", Column: "a.calle_id", Kind: Int},
		{Param: "altura", Column: "a.altura", Kind: Int},
		{Param: "referencia_id", Column: "a.referencia_id", Kind: Int},
		{Param: "especie_id", Column: "a.especie_id", Kind: Int},
	}

	Plantings = Set{
		{Param: "comuna_id", Column: "p.comuna_id", Kind: Int},
		{Param: "calle_id", Column: "p.calle_id", Kind: Int},
		{Param: "especie_id", Column: "p.especie_id", Kind: Int},
		{Param: "tipo_plantacion_id", Column: "p.tipo_plantacion_id", Kind: Int},
	}

	WorkOrders = Set{
		{Param: "estado_id", Column: "o.estado_id", Kind: Int},
		{Param: "contratista_id", Column: "o.contratista_id", Kind: Int},
		{Param: "fecha_limite", Column: "o.fecha_limite", Kind: Date},
	}

	MaintenanceOrders = Set{
		{Param: "comuna_id", Column: "a.comuna_id", Kind: Int},
		{Param: "calle_id", Column: "a.calle_id", Kind: Int},
		{Param: "tarea_id", Column: "m.tarea_id", Kind: Int},
		{Param: "item_id", Column: "m.item_id", Kind: Int},
		{Param: "estado_id", Column: "o.estado_id", Kind: Int},
		{Param: "contratista_id", Column: "o.contratista_id", Kind: Int},
		{Param: "estado", Column: "es.nombre", Kind: List},
	}
)
