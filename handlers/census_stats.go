package handlers

import (
	"net/http"

	"p9e.in/treeflow/models"
	"p9e.in/treeflow/utils"
)

type censusStats struct {
	Total          int            `json:"total"`
	PorEspecie     []utils.Count  `json:"por_especie"`
	PorEstado      []utils.Count  `json:"por_estado_fitosanitario"`
	PorComuna      []utils.Count  `json:"por_comuna"`
	AlturaArbol    *utils.Summary `json:"altura_arbol"`
	Dap            *utils.Summary `json:"dap"`
	ConCoordenadas int            `json:"con_coordenadas"`
}

// CensusTreeStats summarises the filtered census: counts per species,
// health state and commune, and the height and DAP distributions.
// @Summary      Census statistics
// @Tags         arboles
// @Produce      json
// @Param        comuna_id   query  int  false  "Commune"
// @Param        especie_id  query  int  false  "Species"
// @Success      200  {object}  censusStats
// @Router       /api/arboles-censados/estadisticas [get]
func (h *Handler) CensusTreeStats(w http.ResponseWriter, r *http.Request) {
	rows, err := h.loadCensusTrees(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summarizeCensus(rows))
}

func summarizeCensus(rows []models.CensusTreeRow) censusStats {
	var especies, estados, comunas []string
	var alturas, daps []float64
	mapped := 0

	label := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	for _, row := range rows {
		especies = append(especies, label(row.Especie))
		estados = append(estados, label(row.EstadoFitosanitario))
		comunas = append(comunas, label(row.Comuna))
		if row.AlturaArbol != nil {
			alturas = append(alturas, *row.AlturaArbol)
		}
		if row.Dap != nil {
			daps = append(daps, *row.Dap)
		}
		if row.Latitud != nil && row.Longitud != nil {
			mapped++
		}
	}

	return censusStats{
		Total:          len(rows),
		PorEspecie:     utils.Tally(especies),
		PorEstado:      utils.Tally(estados),
		PorComuna:      utils.Tally(comunas),
		AlturaArbol:    utils.Summarize(alturas),
		Dap:            utils.Summarize(daps),
		ConCoordenadas: mapped,
	}
}
