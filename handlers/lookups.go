package handlers

import (
	"fmt"
	"net/http"

	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
)

// ListLookup serves one reference table as [{"id":..,"<column>":..}].
func (h *Handler) ListLookup(l models.Lookup) http.HandlerFunc {
	selectCols := fmt.Sprintf("id, %s AS label", l.Column)
	return func(w http.ResponseWriter, r *http.Request) {
		var items []models.LookupItem
		err := h.db.WithContext(r.Context()).Table(l.Table).Select(selectCols).Order("id").Scan(&items).Error
		if err != nil {
			respondError(w, r, apperr.Database("Error al obtener "+l.Path, err))
			return
		}

		out := make([]map[string]interface{}, 0, len(items))
		for _, it := range items {
			out = append(out, it.JSON(l.Column))
		}
		writeJSON(w, http.StatusOK, out)
	}
}
