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

type CreateExpenseRequest struct {
	ClientID    int             `json:"clientId" validate:"required,gt=0"`
	Vendor      string          `json:"vendor" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status" validate:"required"`
	ReceiptURL  *string         `json:"receiptUrl,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
}

type UpdateExpenseRequest struct {
	ClientID    *int             `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	Vendor      *string          `json:"vendor,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Status      *string          `json:"status,omitempty"`
	ReceiptURL  *string          `json:"receiptUrl,omitempty"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
}

func ExpenseList(store storage.Store, logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteSuccess(w, store.ListExpenses(userID, clientID))
	}
}

func ExpenseDetail(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "expenseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		expense, ok := store.GetExpense(id, userID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "expense not found"))
			return
		}
		responses.WriteSuccess(w, expense)
	}
}

func ExpenseCreate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req CreateExpenseRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		expense := store.CreateExpense(userID, storage.InsertExpense{
			ClientID:    req.ClientID,
			Vendor:      req.Vendor,
			Amount:      req.Amount,
			Category:    req.Category,
			Description: req.Description,
			Status:      req.Status,
			ReceiptURL:  req.ReceiptURL,
			DueDate:     req.DueDate,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, expense)
	}
}

func ExpenseUpdate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "expenseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req UpdateExpenseRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		expense, ok := store.UpdateExpense(id, userID, storage.UpdateExpense{
			ClientID:    req.ClientID,
			Vendor:      req.Vendor,
			Amount:      req.Amount,
			Category:    req.Category,
			Description: req.Description,
			Status:      req.Status,
			ReceiptURL:  req.ReceiptURL,
			DueDate:     req.DueDate,
		})
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "expense not found"))
			return
		}
		responses.WriteSuccess(w, expense)
	}
}

func ExpenseDelete(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "expenseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !store.DeleteExpense(id, userID) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "expense not found"))
			return
		}
		responses.WriteNoContent(w)
	}
}
