package handler

import (
	"errors"
	"net/http"
	"strings"

	clientsdomain "law-office-go/internal/domain/clients"
)

type clientRequest struct {
	Name               string `json:"name"`
	CPF                string `json:"cpf"`
	RG                 string `json:"rg"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	City               string `json:"city"`
	State              string `json:"state"`
	CEP                string `json:"cep"`
	BirthDate          string `json:"birth_date"`
	ProcessType        string `json:"process_type"`
	ProcessNumber      string `json:"process_number"`
	ProtocolNumber     string `json:"protocol_number"`
	INSSPassword       string `json:"inss_password"`
	LawyerName         string `json:"lawyer_name"`
	Indication         string `json:"indication"`
	RegistrationDate   string `json:"registration_date"`
	ContractValueCents *int64 `json:"contract_value_cents"`
	PhotoURL           string `json:"photo_url"`
}

type clientListResponse struct {
	Clients    []clientsdomain.Client `json:"clients"`
	Pagination pagination             `json:"pagination"`
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit, offset, err := parsePage(query, 20)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	filter := clientsdomain.ListFilter{
		Search: strings.TrimSpace(query.Get("search")),
		Limit:  limit,
		Offset: offset,
	}

	items, total, err := h.Clients.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("clients.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if items == nil {
		items = []clientsdomain.Client{}
	}

	writeJSON(w, http.StatusOK, clientListResponse{
		Clients:    items,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *Handlers) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	client, err := h.Clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, clientsdomain.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "client not found")
			return
		}
		h.log.InternalError("clients.get: get failed", err, "client_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, client)
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	created, err := h.Clients.Create(r.Context(), toClientInput(req))
	if err != nil {
		if errors.Is(err, clientsdomain.ErrCPFTaken) {
			h.log.BusinessError("clients.create: cpf taken", err)
			writeError(w, http.StatusBadRequest, "conflict", "cpf already registered")
			return
		}
		h.log.InternalError("clients.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	updated, err := h.Clients.Update(r.Context(), id, toClientInput(req))
	if err != nil {
		switch {
		case errors.Is(err, clientsdomain.ErrClientNotFound):
			writeError(w, http.StatusNotFound, "not_found", "client not found")
		case errors.Is(err, clientsdomain.ErrCPFTaken):
			h.log.BusinessError("clients.update: cpf taken", err, "client_id", id)
			writeError(w, http.StatusBadRequest, "conflict", "cpf already registered")
		default:
			h.log.InternalError("clients.update: update failed", err, "client_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Clients.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, clientsdomain.ErrClientNotFound):
			writeError(w, http.StatusNotFound, "not_found", "client not found")
		case errors.Is(err, clientsdomain.ErrClientHasChildren):
			h.log.BusinessError("clients.delete: has processes", err, "client_id", id)
			writeError(w, http.StatusBadRequest, "conflict", "client has linked processes")
		default:
			h.log.InternalError("clients.delete: delete failed", err, "client_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "client deleted"})
}

func toClientInput(req clientRequest) clientsdomain.Input {
	return clientsdomain.Input{
		Name:               req.Name,
		CPF:                req.CPF,
		RG:                 req.RG,
		Phone:              req.Phone,
		Email:              req.Email,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		CEP:                req.CEP,
		BirthDate:          req.BirthDate,
		ProcessType:        req.ProcessType,
		ProcessNumber:      req.ProcessNumber,
		ProtocolNumber:     req.ProtocolNumber,
		INSSPassword:       req.INSSPassword,
		LawyerName:         req.LawyerName,
		Indication:         req.Indication,
		RegistrationDate:   req.RegistrationDate,
		ContractValueCents: req.ContractValueCents,
		PhotoURL:           req.PhotoURL,
	}
}
