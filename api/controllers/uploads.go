package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ledgerline/backend/api/responses"
	"github.com/ledgerline/backend/internal/insights"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
	"github.com/ledgerline/backend/pkg/logger"
)

type ReceiptUploadRequest struct {
	Filename string `json:"filename,omitempty"`
}

// ReceiptUpload simulates receipt processing and returns the extracted
// expense fields.
func ReceiptUpload(gen insights.Generator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gen == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "insight generator unavailable"))
			return
		}
		if _, err := authedUser(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		// The body is optional; an empty upload falls back to the demo
		// receipt, matching the simulated processing flow.
		var req ReceiptUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body"))
			return
		}
		extraction, err := gen.ExtractReceipt(r.Context(), req.Filename)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "extract receipt"))
			return
		}
		responses.WriteSuccess(w, extraction)
	}
}
