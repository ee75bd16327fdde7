package httpapi

import (
	"fmt"
	"net/http"

	"raffler/domain"
	"raffler/domain/entities"
)

type assignMemberRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *handlers) getMembers(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	members, err := h.svc.GetMembers(r.Context(), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, memberResponse{Seller: toSellerResponse(m.Seller), Role: string(m.Role)})
	}
	writeSuccess(w, out)
}

// getRole returns the caller's role on the raffle, null when not a member
func (h *handlers) getRole(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	role, err := h.svc.GetRole(r.Context(), SellerIDFromContext(r.Context()), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := roleResponse{}
	if role != nil {
		value := string(*role)
		resp.Role = &value
	}
	writeSuccess(w, resp)
}

func (h *handlers) assignMember(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	sellerID, err := pathID(r, "sellerID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req assignMemberRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	role, err := entities.ParseRole(req.Role)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	membershipID, err := h.svc.AssignMember(r.Context(), SellerIDFromContext(r.Context()), sellerID, raffleID, role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, idResponse{ID: membershipID})
}

func (h *handlers) removeMember(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	sellerID, err := pathID(r, "sellerID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.RemoveMember(r.Context(), SellerIDFromContext(r.Context()), sellerID, raffleID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
