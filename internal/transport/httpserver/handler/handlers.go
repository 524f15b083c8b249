package handler

import (
	appointmentsdomain "law-office-go/internal/domain/appointments"
	authdomain "law-office-go/internal/domain/auth"
	clientsdomain "law-office-go/internal/domain/clients"
	gallerydomain "law-office-go/internal/domain/gallery"
	hearingsdomain "law-office-go/internal/domain/hearings"
	paymentsdomain "law-office-go/internal/domain/payments"
	processesdomain "law-office-go/internal/domain/processes"
	statsdomain "law-office-go/internal/domain/stats"
	"law-office-go/pkg/logger"
)

type Handlers struct {
	Auth         *authdomain.Service
	Clients      *clientsdomain.Service
	Processes    *processesdomain.Service
	Hearings     *hearingsdomain.Service
	Appointments *appointmentsdomain.Service
	Payments     *paymentsdomain.Service
	Stats        *statsdomain.Service
	Gallery      *gallerydomain.Service

	maxUploadBytes int64
	log            logger.Logger
}

type Config struct {
	Auth         *authdomain.Service
	Clients      *clientsdomain.Service
	Processes    *processesdomain.Service
	Hearings     *hearingsdomain.Service
	Appointments *appointmentsdomain.Service
	Payments     *paymentsdomain.Service
	Stats        *statsdomain.Service
	Gallery      *gallerydomain.Service

	MaxUploadBytes int64
	Log            logger.Logger
}

func New(cfg Config) *Handlers {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 5 << 20
	}

	return &Handlers{
		Auth:           cfg.Auth,
		Clients:        cfg.Clients,
		Processes:      cfg.Processes,
		Hearings:       cfg.Hearings,
		Appointments:   cfg.Appointments,
		Payments:       cfg.Payments,
		Stats:          cfg.Stats,
		Gallery:        cfg.Gallery,
		maxUploadBytes: maxUpload,
		log:            cfg.Log,
	}
}
