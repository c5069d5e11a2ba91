package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/playershyan/iSafe-sub001/internal/config"
	"github.com/playershyan/iSafe-sub001/internal/transport/httpserver/handler"
	appmw "github.com/playershyan/iSafe-sub001/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(appmw.NewCORS(cfg.CORS.AllowedOrigins))
	r.Use(appmw.ClientID)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/search", handlers.SearchUnified)

		r.Get("/shelters", handlers.ListShelters)
		r.Post("/shelters", handlers.CreateShelter)
		r.Get("/shelters/{code}", handlers.GetShelterByCode)
		r.Get("/shelters/{shelter_id}/persons", handlers.ListPersonsByShelter)

		r.Post("/persons", handlers.RegisterPerson)
		r.Get("/persons/{id}", handlers.GetPerson)
		r.Patch("/persons/{id}/health", handlers.UpdatePersonHealth)

		r.Post("/reports", handlers.FileReport)
		r.Get("/reports/mine", handlers.ListMyReports)
		r.Get("/reports/poster/{poster_code}", handlers.GetReportByPosterCode)
		r.Post("/reports/{id}/found", handlers.MarkReportFound)

		r.Post("/matches", handlers.ConfirmMatch)
	})

	return r
}
