package handler

import (
	"errors"
	"net/http"
	"strings"

	processesdomain "law-office-go/internal/domain/processes"
)

type processRequest struct {
	ClientID      uint   `json:"client_id"`
	ProcessNumber string `json:"process_number"`
	ProcessType   string `json:"process_type"`
	Status        string `json:"status"`
	Description   string `json:"description"`
	InitialDate   string `json:"initial_date"`
	FinalDate     string `json:"final_date"`
	ValueCents    *int64 `json:"value_cents"`
	Observations  string `json:"observations"`
}

type processListResponse struct {
	Processes  []processesdomain.ProcessWithClient `json:"processes"`
	Pagination pagination                          `json:"pagination"`
}

func (h *Handlers) ListProcesses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit, offset, err := parsePage(query, 20)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	status := strings.TrimSpace(query.Get("status"))
	if status != "" && !processesdomain.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid status")
		return
	}

	filter := processesdomain.ListFilter{
		Search: strings.TrimSpace(query.Get("search")),
		Status: status,
		Limit:  limit,
		Offset: offset,
	}

	items, total, err := h.Processes.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("processes.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if items == nil {
		items = []processesdomain.ProcessWithClient{}
	}

	writeJSON(w, http.StatusOK, processListResponse{
		Processes:  items,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *Handlers) GetProcess(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	process, err := h.Processes.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, processesdomain.ErrProcessNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "process not found")
			return
		}
		h.log.InternalError("processes.get: get failed", err, "process_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, process)
}

func (h *Handlers) CreateProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if req.ClientID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "client_id is required")
		return
	}
	if strings.TrimSpace(req.ProcessType) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "process_type is required")
		return
	}
	if status := strings.TrimSpace(req.Status); status != "" && !processesdomain.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid status")
		return
	}

	created, err := h.Processes.Create(r.Context(), toProcessInput(req))
	if err != nil {
		switch {
		case errors.Is(err, processesdomain.ErrClientNotFound):
			h.log.BusinessError("processes.create: client not found", err, "client_id", req.ClientID)
			writeError(w, http.StatusBadRequest, "invalid_request", "client not found")
		case errors.Is(err, processesdomain.ErrProcessNumberTaken):
			h.log.BusinessError("processes.create: number taken", err)
			writeError(w, http.StatusBadRequest, "conflict", "process number already registered")
		default:
			h.log.InternalError("processes.create: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateProcess(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req processRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.ProcessType) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "process_type is required")
		return
	}
	if status := strings.TrimSpace(req.Status); status != "" && !processesdomain.ValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid status")
		return
	}

	updated, err := h.Processes.Update(r.Context(), id, toProcessInput(req))
	if err != nil {
		switch {
		case errors.Is(err, processesdomain.ErrProcessNotFound):
			writeError(w, http.StatusNotFound, "not_found", "process not found")
		case errors.Is(err, processesdomain.ErrProcessNumberTaken):
			h.log.BusinessError("processes.update: number taken", err, "process_id", id)
			writeError(w, http.StatusBadRequest, "conflict", "process number already registered")
		default:
			h.log.InternalError("processes.update: update failed", err, "process_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteProcess(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Processes.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, processesdomain.ErrProcessNotFound):
			writeError(w, http.StatusNotFound, "not_found", "process not found")
		case errors.Is(err, processesdomain.ErrProcessHasHearings):
			h.log.BusinessError("processes.delete: has hearings", err, "process_id", id)
			writeError(w, http.StatusBadRequest, "conflict", "process has linked hearings")
		default:
			h.log.InternalError("processes.delete: delete failed", err, "process_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "process deleted"})
}

func toProcessInput(req processRequest) processesdomain.Input {
	return processesdomain.Input{
		ClientID:      req.ClientID,
		ProcessNumber: req.ProcessNumber,
		ProcessType:   req.ProcessType,
		Status:        req.Status,
		Description:   req.Description,
		InitialDate:   req.InitialDate,
		FinalDate:     req.FinalDate,
		ValueCents:    req.ValueCents,
		Observations:  req.Observations,
	}
}
