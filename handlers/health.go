package handlers

import (
	"context"
	"net/http"
	"time"
)

type healthResp struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health reports whether the database answers a ping.
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  healthResp
// @Failure      503  {object}  healthResp
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResp{Status: "degraded", Database: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, healthResp{Status: "ok", Database: "ok"})
}
