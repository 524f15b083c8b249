package handler

import (
	"errors"
	"net/http"
	"strings"

	appointmentsdomain "law-office-go/internal/domain/appointments"
)

type appointmentRequest struct {
	ClientID        *uint  `json:"client_id"`
	ClientName      string `json:"client_name"`
	CPF             string `json:"cpf"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	ProtocolNumber  string `json:"protocol_number"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	AppointmentType string `json:"appointment_type"`
	Location        string `json:"location"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
}

type appointmentListResponse struct {
	Appointments []appointmentsdomain.Appointment `json:"appointments"`
	Pagination   pagination                       `json:"pagination"`
}

func (h *Handlers) ListAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit, offset, err := parsePage(query, 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	filter := appointmentsdomain.ListFilter{
		Search: strings.TrimSpace(query.Get("search")),
		Status: strings.TrimSpace(query.Get("status")),
		Limit:  limit,
		Offset: offset,
	}

	items, total, err := h.Appointments.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("appointments.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if items == nil {
		items = []appointmentsdomain.Appointment{}
	}

	writeJSON(w, http.StatusOK, appointmentListResponse{
		Appointments: items,
		Pagination:   newPagination(page, limit, total),
	})
}

func (h *Handlers) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	appointment, err := h.Appointments.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, appointmentsdomain.ErrAppointmentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "appointment not found")
			return
		}
		h.log.InternalError("appointments.get: get failed", err, "appointment_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, appointment)
}

func (h *Handlers) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.ClientName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "client_name is required")
		return
	}

	created, err := h.Appointments.Create(r.Context(), toAppointmentInput(req))
	if err != nil {
		if errors.Is(err, appointmentsdomain.ErrAppointmentExists) {
			h.log.BusinessError("appointments.create: duplicate", err)
			writeError(w, http.StatusBadRequest, "conflict", "client already has an appointment")
			return
		}
		h.log.InternalError("appointments.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req appointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.ClientName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "client_name is required")
		return
	}

	updated, err := h.Appointments.Update(r.Context(), id, toAppointmentInput(req))
	if err != nil {
		if errors.Is(err, appointmentsdomain.ErrAppointmentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "appointment not found")
			return
		}
		h.log.InternalError("appointments.update: update failed", err, "appointment_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Appointments.Delete(r.Context(), id); err != nil {
		if errors.Is(err, appointmentsdomain.ErrAppointmentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "appointment not found")
			return
		}
		h.log.InternalError("appointments.delete: delete failed", err, "appointment_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "appointment deleted"})
}

func toAppointmentInput(req appointmentRequest) appointmentsdomain.Input {
	return appointmentsdomain.Input{
		ClientID:        req.ClientID,
		ClientName:      req.ClientName,
		CPF:             req.CPF,
		Phone:           req.Phone,
		Email:           req.Email,
		ProtocolNumber:  req.ProtocolNumber,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		AppointmentType: req.AppointmentType,
		Location:        req.Location,
		Status:          req.Status,
		Notes:           req.Notes,
	}
}
