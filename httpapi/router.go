package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type handlers struct {
	svc RaffleService
	db  Pinger
}

// NewRouter builds the HTTP API. Routes acting on behalf of a seller require
// the X-Seller-ID header.
func NewRouter(svc RaffleService, db Pinger) http.Handler {
	h := &handlers{svc: svc, db: db}

	r := chi.NewRouter()
	r.Use(Logging, Recoverer)

	r.Get("/healthz", h.health)

	r.Route("/sellers", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Get("/", h.findSellerByName)
		r.Get("/search", h.searchSellers)
		r.Get("/{sellerID}", h.getSeller)
		r.Get("/{sellerID}/raffles", h.getSellerRaffles)
	})

	r.Route("/raffles", func(r chi.Router) {
		r.Get("/", h.listRaffles)
		r.With(RequireSeller).Post("/", h.createRaffle)

		r.Route("/{raffleID}", func(r chi.Router) {
			r.Get("/", h.getRaffle)
			r.Get("/summary", h.getRaffleSummary)
			r.Get("/members", h.getMembers)
			r.Get("/numbers", h.searchNumbers)
			r.Get("/numbers/all", h.getAllNumbers)

			r.Group(func(r chi.Router) {
				r.Use(RequireSeller)
				r.Put("/state", h.setRaffleState)
				r.Get("/role", h.getRole)
				r.Put("/members/{sellerID}", h.assignMember)
				r.Delete("/members/{sellerID}", h.removeMember)
				r.Post("/numbers", h.registerNumber)
				r.Post("/messages", h.postMessage)
				r.Get("/messages", h.getChatHistory)
			})
		})
	})

	r.Get("/numbers/{numberID}", h.getNumber)

	return r
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeSuccess(w, map[string]string{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorEnvelope{Error: apiError{Code: "unavailable", Message: "database unreachable"}})
		return
	}
	writeSuccess(w, map[string]string{"status": "ok"})
}
