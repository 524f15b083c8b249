package handler

import (
	"errors"
	"net/http"
	"strings"

	hearingsdomain "law-office-go/internal/domain/hearings"
)

type hearingRequest struct {
	ProcessID    uint   `json:"process_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Observations string `json:"observations"`
}

type hearingListResponse struct {
	Hearings   []hearingsdomain.HearingWithProcess `json:"hearings"`
	Pagination pagination                          `json:"pagination"`
}

func (h *Handlers) ListHearings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit, offset, err := parsePage(query, 20)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	processID, err := parseOptionalUint(query.Get("process_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid process_id")
		return
	}

	status := strings.TrimSpace(query.Get("status"))
	if status != "" && !hearingsdomain.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid status")
		return
	}

	filter := hearingsdomain.ListFilter{
		ProcessID: processID,
		Date:      strings.TrimSpace(query.Get("date")),
		Status:    status,
		Limit:     limit,
		Offset:    offset,
	}

	items, total, err := h.Hearings.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("hearings.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if items == nil {
		items = []hearingsdomain.HearingWithProcess{}
	}

	writeJSON(w, http.StatusOK, hearingListResponse{
		Hearings:   items,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *Handlers) GetHearing(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	hearing, err := h.Hearings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, hearingsdomain.ErrHearingNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "hearing not found")
			return
		}
		h.log.InternalError("hearings.get: get failed", err, "hearing_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, hearing)
}

func (h *Handlers) CreateHearing(w http.ResponseWriter, r *http.Request) {
	var req hearingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if req.ProcessID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "process_id is required")
		return
	}
	if strings.TrimSpace(req.Date) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "date is required")
		return
	}
	if status := strings.TrimSpace(req.Status); status != "" && !hearingsdomain.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid status")
		return
	}

	created, err := h.Hearings.Create(r.Context(), toHearingInput(req))
	if err != nil {
		if errors.Is(err, hearingsdomain.ErrProcessNotFound) {
			h.log.BusinessError("hearings.create: process not found", err, "process_id", req.ProcessID)
			writeError(w, http.StatusBadRequest, "invalid_request", "process not found")
			return
		}
		h.log.InternalError("hearings.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateHearing(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req hearingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Date) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "date is required")
		return
	}
	if status := strings.TrimSpace(req.Status); status != "" && !hearingsdomain.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid status")
		return
	}

	updated, err := h.Hearings.Update(r.Context(), id, toHearingInput(req))
	if err != nil {
		if errors.Is(err, hearingsdomain.ErrHearingNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "hearing not found")
			return
		}
		h.log.InternalError("hearings.update: update failed", err, "hearing_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteHearing(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Hearings.Delete(r.Context(), id); err != nil {
		if errors.Is(err, hearingsdomain.ErrHearingNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "hearing not found")
			return
		}
		h.log.InternalError("hearings.delete: delete failed", err, "hearing_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "hearing deleted"})
}

func toHearingInput(req hearingRequest) hearingsdomain.Input {
	return hearingsdomain.Input{
		ProcessID:    req.ProcessID,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Type:         req.Type,
		Status:       req.Status,
		Observations: req.Observations,
	}
}
