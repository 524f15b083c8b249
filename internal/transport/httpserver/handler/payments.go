package handler

import (
	"errors"
	"net/http"
	"strings"

	paymentsdomain "law-office-go/internal/domain/payments"
)

type paymentRequest struct {
	ClientID uint `json:"client_id"`
	// Accepted for API compatibility but ignored; the stored name always
	// comes from the clients table.
	ClientName    string `json:"client_name"`
	PaymentDate   string `json:"payment_date"`
	AmountCents   int64  `json:"amount_cents"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	PaymentType   string `json:"payment_type"`
	Description   string `json:"description"`
	ReceiptNumber string `json:"receipt_number"`
}

type paymentListResponse struct {
	Payments   []paymentsdomain.Payment `json:"payments"`
	Pagination pagination               `json:"pagination"`
}

func (h *Handlers) ListPayments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit, offset, err := parsePage(query, 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	filter := paymentsdomain.ListFilter{
		Search: strings.TrimSpace(query.Get("search")),
		Status: strings.TrimSpace(query.Get("status")),
		Limit:  limit,
		Offset: offset,
	}

	items, total, err := h.Payments.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("payments.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if items == nil {
		items = []paymentsdomain.Payment{}
	}

	writeJSON(w, http.StatusOK, paymentListResponse{
		Payments:   items,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	payment, err := h.Payments.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, paymentsdomain.ErrPaymentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "payment not found")
			return
		}
		h.log.InternalError("payments.get: get failed", err, "payment_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if msg := validatePaymentRequest(req); msg != "" {
		writeError(w, http.StatusBadRequest, "invalid_request", msg)
		return
	}

	created, err := h.Payments.Create(r.Context(), toPaymentInput(req))
	if err != nil {
		if errors.Is(err, paymentsdomain.ErrClientNotFound) {
			writeError(w, http.StatusBadRequest, "invalid_request", "client not found")
			return
		}
		h.log.InternalError("payments.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if msg := validatePaymentRequest(req); msg != "" {
		writeError(w, http.StatusBadRequest, "invalid_request", msg)
		return
	}

	updated, err := h.Payments.Update(r.Context(), id, toPaymentInput(req))
	if err != nil {
		switch {
		case errors.Is(err, paymentsdomain.ErrPaymentNotFound):
			writeError(w, http.StatusNotFound, "not_found", "payment not found")
		case errors.Is(err, paymentsdomain.ErrClientNotFound):
			writeError(w, http.StatusBadRequest, "invalid_request", "client not found")
		default:
			h.log.InternalError("payments.update: update failed", err, "payment_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Payments.Delete(r.Context(), id); err != nil {
		if errors.Is(err, paymentsdomain.ErrPaymentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "payment not found")
			return
		}
		h.log.InternalError("payments.delete: delete failed", err, "payment_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "payment deleted"})
}

func validatePaymentRequest(req paymentRequest) string {
	if req.ClientID == 0 {
		return "client_id is required"
	}
	if strings.TrimSpace(req.PaymentDate) == "" {
		return "payment_date is required"
	}
	if req.AmountCents <= 0 {
		return "amount_cents must be positive"
	}
	return ""
}

func toPaymentInput(req paymentRequest) paymentsdomain.Input {
	return paymentsdomain.Input{
		ClientID:      req.ClientID,
		PaymentDate:   req.PaymentDate,
		AmountCents:   req.AmountCents,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		PaymentType:   req.PaymentType,
		Description:   req.Description,
		ReceiptNumber: req.ReceiptNumber,
	}
}
