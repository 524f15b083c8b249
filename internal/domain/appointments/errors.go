package appointments

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentExists   = errors.New("client already has an appointment")
)
