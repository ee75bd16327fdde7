package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"raffler/domain"
)

type loginRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	seller, err := h.svc.Login(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, toSellerResponse(seller))
}

func (h *handlers) findSellerByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		writeError(w, r, fmt.Errorf("%w: name query parameter is required", domain.ErrInvalidInput))
		return
	}

	seller, err := h.svc.FindSellerByName(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if seller == nil {
		writeError(w, r, fmt.Errorf("%w: seller %q", domain.ErrNotFound, name))
		return
	}
	writeSuccess(w, toSellerResponse(seller))
}

func (h *handlers) searchSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.svc.SearchSellers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, toSellerResponses(sellers))
}

func (h *handlers) getSeller(w http.ResponseWriter, r *http.Request) {
	sellerID, err := pathID(r, "sellerID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	seller, err := h.svc.GetSeller(r.Context(), sellerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if seller == nil {
		writeError(w, r, notFound("seller", sellerID))
		return
	}
	writeSuccess(w, toSellerResponse(seller))
}

func (h *handlers) getSellerRaffles(w http.ResponseWriter, r *http.Request) {
	sellerID, err := pathID(r, "sellerID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	raffles, err := h.svc.GetRafflesForSeller(r.Context(), sellerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]raffleWithRoleResponse, 0, len(raffles))
	for _, rw := range raffles {
		out = append(out, raffleWithRoleResponse{Raffle: toRaffleResponse(rw.Raffle), Role: string(rw.Role)})
	}
	writeSuccess(w, out)
}
