package controllers

import (
	"math"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/api/responses"
	"github.com/ledgerline/backend/api/validators"
	"github.com/ledgerline/backend/internal/storage"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
	"github.com/ledgerline/backend/pkg/logger"
)

type CreateInvoiceRequest struct {
	ClientID      int             `json:"clientId" validate:"required,gt=0"`
	InvoiceNumber string          `json:"invoiceNumber" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Status        string          `json:"status" validate:"required"`
	DueDate       time.Time       `json:"dueDate" validate:"required"`
	Description   *string         `json:"description,omitempty"`
}

type UpdateInvoiceRequest struct {
	ClientID      *int             `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	InvoiceNumber *string          `json:"invoiceNumber,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Status        *string          `json:"status,omitempty"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

// InvoiceList returns the caller's invoices, optionally filtered by client.
func InvoiceList(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		clientID, err := validators.ParseQueryInt(r, "clientId", 0, 0, math.MaxInt)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.ListInvoices(userID, clientID))
	}
}

func InvoiceDetail(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "invoiceId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		invoice, ok := store.GetInvoice(id, userID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "invoice not found"))
			return
		}
		responses.WriteSuccess(w, invoice)
	}
}

func InvoiceCreate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req CreateInvoiceRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		invoice := store.CreateInvoice(userID, storage.InsertInvoice{
			ClientID:      req.ClientID,
			InvoiceNumber: req.InvoiceNumber,
			Amount:        req.Amount,
			Status:        req.Status,
			DueDate:       req.DueDate,
			Description:   req.Description,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, invoice)
	}
}

func InvoiceUpdate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "invoiceId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req UpdateInvoiceRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		invoice, ok := store.UpdateInvoice(id, userID, storage.UpdateInvoice{
			ClientID:      req.ClientID,
			InvoiceNumber: req.InvoiceNumber,
			Amount:        req.Amount,
			Status:        req.Status,
			DueDate:       req.DueDate,
			Description:   req.Description,
		})
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "invoice not found"))
			return
		}
		responses.WriteSuccess(w, invoice)
	}
}

func InvoiceDelete(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "invoiceId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !store.DeleteInvoice(id, userID) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "invoice not found"))
			return
		}
		responses.WriteNoContent(w)
	}
}
