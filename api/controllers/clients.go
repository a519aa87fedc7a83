package controllers

import (
	"net/http"

	"github.com/ledgerline/backend/api/responses"
	"github.com/ledgerline/backend/api/validators"
	"github.com/ledgerline/backend/internal/storage"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
	"github.com/ledgerline/backend/pkg/logger"
)

type CreateClientRequest struct {
	Name         string  `json:"name" validate:"required"`
	BusinessType string  `json:"businessType" validate:"required"`
	TaxID        *string `json:"taxId,omitempty"`
	Industry     *string `json:"industry,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
}

type UpdateClientRequest struct {
	Name         *string `json:"name,omitempty"`
	BusinessType *string `json:"businessType,omitempty"`
	TaxID        *string `json:"taxId,omitempty"`
	Industry     *string `json:"industry,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
}

// ClientList returns every client owned by the caller.
func ClientList(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.ListClients(userID))
	}
}

func ClientDetail(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "clientId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		client, ok := store.GetClient(id, userID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "client not found"))
			return
		}
		responses.WriteSuccess(w, client)
	}
}

func ClientCreate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req CreateClientRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		client := store.CreateClient(userID, storage.InsertClient{
			Name:         req.Name,
			BusinessType: req.BusinessType,
			TaxID:        req.TaxID,
			Industry:     req.Industry,
			Email:        req.Email,
			Phone:        req.Phone,
			Address:      req.Address,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, client)
	}
}

func ClientUpdate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "clientId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req UpdateClientRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		client, ok := store.UpdateClient(id, userID, storage.UpdateClient{
			Name:         req.Name,
			BusinessType: req.BusinessType,
			TaxID:        req.TaxID,
			Industry:     req.Industry,
			Email:        req.Email,
			Phone:        req.Phone,
			Address:      req.Address,
		})
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "client not found"))
			return
		}
		responses.WriteSuccess(w, client)
	}
}

func ClientDelete(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "clientId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !store.DeleteClient(id, userID) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "client not found"))
			return
		}
		responses.WriteNoContent(w)
	}
}
