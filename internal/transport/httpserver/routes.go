package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"law-office-go/internal/config"
	"law-office-go/internal/transport/httpserver/handler"
	authmw "law-office-go/internal/transport/httpserver/middleware"
	"law-office-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, verifier authmw.TokenVerifier, galleryDir string, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":    "not_found",
				"message": "route not found",
			},
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Post("/auth/login", handlers.Login)

		auth := authmw.NewBearerAuth(verifier, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/verify", handlers.Verify)
			r.With(authmw.RequireAdmin).Post("/auth/register", handlers.Register)

			r.Get("/clients", handlers.ListClients)
			r.Post("/clients", handlers.CreateClient)
			r.Get("/clients/{id}", handlers.GetClient)
			r.Put("/clients/{id}", handlers.UpdateClient)
			r.Delete("/clients/{id}", handlers.DeleteClient)

			r.Get("/processes", handlers.ListProcesses)
			r.Post("/processes", handlers.CreateProcess)
			r.Get("/processes/{id}", handlers.GetProcess)
			r.Put("/processes/{id}", handlers.UpdateProcess)
			r.Delete("/processes/{id}", handlers.DeleteProcess)

			r.Get("/hearings", handlers.ListHearings)
			r.Post("/hearings", handlers.CreateHearing)
			r.Get("/hearings/{id}", handlers.GetHearing)
			r.Put("/hearings/{id}", handlers.UpdateHearing)
			r.Delete("/hearings/{id}", handlers.DeleteHearing)

			r.Get("/agendamentos-inss", handlers.ListAppointments)
			r.Post("/agendamentos-inss", handlers.CreateAppointment)
			r.Get("/agendamentos-inss/{id}", handlers.GetAppointment)
			r.Put("/agendamentos-inss/{id}", handlers.UpdateAppointment)
			r.Delete("/agendamentos-inss/{id}", handlers.DeleteAppointment)

			r.Get("/payments", handlers.ListPayments)
			r.Post("/payments", handlers.CreatePayment)
			r.Get("/payments/{id}", handlers.GetPayment)
			r.Put("/payments/{id}", handlers.UpdatePayment)
			r.Delete("/payments/{id}", handlers.DeletePayment)

			r.Post("/upload-photo", handlers.UploadPhoto)
			r.Get("/galeria", handlers.ListGallery)
			r.Delete("/galeria/{filename}", handlers.DeletePhoto)

			r.Get("/stats/dashboard", handlers.DashboardStats)
		})
	})

	// Stored photos are public by URL; the upload and delete endpoints stay
	// behind auth.
	fileServer := http.StripPrefix("/galeria/", http.FileServer(http.Dir(galleryDir)))
	r.Get("/galeria/*", fileServer.ServeHTTP)

	return r
}
