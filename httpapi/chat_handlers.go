package httpapi

import (
	"net/http"
)

type postMessageRequest struct {
	Message string `json:"message"`
}

func (h *handlers) postMessage(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req postMessageRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	messageID, err := h.svc.PostMessage(r.Context(), SellerIDFromContext(r.Context()), raffleID, req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, idResponse{ID: messageID})
}

// getChatHistory returns the raffle chat; non-members get an empty list
func (h *handlers) getChatHistory(w http.ResponseWriter, r *http.Request) {
	raffleID, err := pathID(r, "raffleID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	messages, err := h.svc.GetChatHistory(r.Context(), SellerIDFromContext(r.Context()), raffleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, toChatMessageResponses(messages))
}
