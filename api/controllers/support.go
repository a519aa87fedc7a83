package controllers

import (
	"net/http"
	"time"

	"github.com/ledgerline/backend/api/responses"
	"github.com/ledgerline/backend/api/validators"
	"github.com/ledgerline/backend/internal/insights"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
	"github.com/ledgerline/backend/pkg/logger"
)

type SupportChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type SupportChatResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SupportChat returns the assistant's reply to a dashboard message.
func SupportChat(gen insights.Generator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gen == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "insight generator unavailable"))
			return
		}
		if _, err := authedUser(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req SupportChatRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		reply, err := gen.ChatReply(r.Context(), req.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "chat reply"))
			return
		}
		responses.WriteSuccess(w, SupportChatResponse{
			Message:   reply,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
