package controllers

import (
	"math"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/api/responses"
	"github.com/ledgerline/backend/api/validators"
	"github.com/ledgerline/backend/internal/storage"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
	"github.com/ledgerline/backend/pkg/logger"
)

type CreateEmployeeRequest struct {
	ClientID   int             `json:"clientId" validate:"required,gt=0"`
	Name       string          `json:"name" validate:"required"`
	Email      string          `json:"email" validate:"required,email"`
	Department *string         `json:"department,omitempty"`
	GrossPay   decimal.Decimal `json:"grossPay" validate:"required"`
	NetPay     decimal.Decimal `json:"netPay" validate:"required"`
	Status     string          `json:"status" validate:"required"`
}

type UpdateEmployeeRequest struct {
	ClientID   *int             `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	Name       *string          `json:"name,omitempty"`
	Email      *string          `json:"email,omitempty" validate:"omitempty,email"`
	Department *string          `json:"department,omitempty"`
	GrossPay   *decimal.Decimal `json:"grossPay,omitempty"`
	NetPay     *decimal.Decimal `json:"netPay,omitempty"`
	Status     *string          `json:"status,omitempty"`
}

func EmployeeList(store storage.Store, logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteSuccess(w, store.ListEmployees(userID, clientID))
	}
}

func EmployeeDetail(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "employeeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		employee, ok := store.GetEmployee(id, userID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found"))
			return
		}
		responses.WriteSuccess(w, employee)
	}
}

func EmployeeCreate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req CreateEmployeeRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		employee := store.CreateEmployee(userID, storage.InsertEmployee{
			ClientID:   req.ClientID,
			Name:       req.Name,
			Email:      req.Email,
			Department: req.Department,
			GrossPay:   req.GrossPay,
			NetPay:     req.NetPay,
			Status:     req.Status,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, employee)
	}
}

func EmployeeUpdate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "employeeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req UpdateEmployeeRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		employee, ok := store.UpdateEmployee(id, userID, storage.UpdateEmployee{
			ClientID:   req.ClientID,
			Name:       req.Name,
			Email:      req.Email,
			Department: req.Department,
			GrossPay:   req.GrossPay,
			NetPay:     req.NetPay,
			Status:     req.Status,
		})
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found"))
			return
		}
		responses.WriteSuccess(w, employee)
	}
}

func EmployeeDelete(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "employeeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !store.DeleteEmployee(id, userID) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found"))
			return
		}
		responses.WriteNoContent(w)
	}
}
