package httpapi

import (
	"net/http"
)

type registerNumberRequest struct {
	Number       string `json:"number" validate:"required"`
	BuyerName    string `json:"buyer_name" validate:"required"`
	BuyerContact string `json:"buyer_contact"`
}

func (h *handlers) registerNumber(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req registerNumberRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	numberID, err := h.svc.RegisterNumber(r.Context(), SellerIDFromContext(r.Context()), raffleID, req.Number, req.BuyerName, req.BuyerContact)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, idResponse{ID: numberID})
}

func (h *handlers) searchNumbers(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := queryInt(r, "page", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	pageSize, err := queryInt(r, "pageSize", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.svc.SearchNumbers(r.Context(), raffleID, r.URL.Query().Get("q"), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, numberPageResponse{
		Results:  toNumberResponses(result.Results),
		Page:     result.Page,
		PageSize: result.PageSize,
		IsDone:   result.IsDone,
		NextPage: result.NextPage,
	})
}

func (h *handlers) getAllNumbers(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	numbers, err := h.svc.GetNumbersForRaffle(r.Context(), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, toNumberResponses(numbers))
}

func (h *handlers) getNumber(w http.ResponseWriter, r *http.Request) {
	numberID, err := pathID(r, "numberID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	number, err := h.svc.GetNumber(r.Context(), numberID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if number == nil {
		writeError(w, r, notFound("number", numberID))
		return
	}
	writeSuccess(w, toNumberResponse(number))
}
