package handler

import "net/http"

func (h *Handlers) DashboardStats(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Stats.Dashboard(r.Context())
	if err != nil {
		h.log.InternalError("stats.dashboard: aggregation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
