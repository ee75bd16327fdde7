package httpapi

import (
	"fmt"
	"net/http"

	"raffler/domain"
	"raffler/domain/entities"

	"github.com/shopspring/decimal"
)

type initialMemberRequest struct {
	SellerID int64  `json:"seller_id" validate:"required,gt=0"`
	Role     string `json:"role" validate:"required"`
}

type createRaffleRequest struct {
	AmountOfNumbers int                    `json:"amount_of_numbers"`
	Price           string                 `json:"price" validate:"required"`
	Members         []initialMemberRequest `json:"members" validate:"dive"`
}

type setStateRequest struct {
	State string `json:"state" validate:"required"`
}

func (h *handlers) createRaffle(w http.ResponseWriter, r *http.Request) {
	var req createRaffleRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: price must be a decimal number", domain.ErrInvalidInput))
		return
	}

	members := make([]entities.InitialMembership, 0, len(req.Members))
	for _, m := range req.Members {
		role, err := entities.ParseRole(m.Role)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
			return
		}
		members = append(members, entities.InitialMembership{SellerID: m.SellerID, Role: role})
	}

	raffleID, err := h.svc.CreateRaffle(r.Context(), SellerIDFromContext(r.Context()), req.AmountOfNumbers, price, members)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, idResponse{ID: raffleID})
}

func (h *handlers) listRaffles(w http.ResponseWriter, r *http.Request) {
	raffles, err := h.svc.ListRaffles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, toRaffleResponses(raffles))
}

func (h *handlers) getRaffle(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	raffle, err := h.svc.GetRaffle(r.Context(), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if raffle == nil {
		writeError(w, r, notFound("raffle", raffleID))
		return
	}
	writeSuccess(w, toRaffleResponse(raffle))
}

func (h *handlers) getRaffleSummary(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := h.svc.GetRaffleSummary(r.Context(), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if summary == nil {
		writeError(w, r, notFound("raffle", raffleID))
		return
	}
	writeSuccess(w, raffleSummaryResponse{
		Raffle:      toRaffleResponse(summary.Raffle),
		NumbersSold: summary.NumbersSold,
		Revenue:     summary.Revenue.String(),
	})
}

func (h *handlers) setRaffleState(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req setStateRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	state, err := entities.ParseRaffleState(req.State)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	if err := h.svc.SetRaffleState(r.Context(), SellerIDFromContext(r.Context()), raffleID, state); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
