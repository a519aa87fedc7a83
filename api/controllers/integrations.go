package controllers

import (
	"net/http"

	"github.com/ledgerline/backend/api/responses"
	"github.com/ledgerline/backend/api/validators"
	"github.com/ledgerline/backend/internal/integrations"
	"github.com/ledgerline/backend/internal/storage"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
	"github.com/ledgerline/backend/pkg/logger"
)

type CreateIntegrationRequest struct {
	ClientID    int            `json:"clientId" validate:"required,gt=0"`
	Type        string         `json:"type" validate:"required"`
	Status      string         `json:"status" validate:"required"`
	Credentials map[string]any `json:"credentials,omitempty"`
}

type UpdateIntegrationRequest struct {
	ClientID    *int           `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	Type        *string        `json:"type,omitempty"`
	Status      *string        `json:"status,omitempty"`
	Credentials map[string]any `json:"credentials,omitempty"`
}

type TestIntegrationRequest struct {
	Type   string `json:"type" validate:"required"`
	APIKey string `json:"apiKey" validate:"required"`
}

// IntegrationList returns the caller's integrations for one client.
func IntegrationList(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		clientID, err := validators.ParsePathInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.ListIntegrations(userID, clientID))
	}
}

func IntegrationCreate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req CreateIntegrationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		integration := store.CreateIntegration(userID, storage.InsertIntegration{
			ClientID:    req.ClientID,
			Type:        req.Type,
			Status:      req.Status,
			Credentials: req.Credentials,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, integration)
	}
}

func IntegrationUpdate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req UpdateIntegrationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		integration, ok := store.UpdateIntegration(id, userID, storage.UpdateIntegration{
			ClientID:    req.ClientID,
			Type:        req.Type,
			Status:      req.Status,
			Credentials: req.Credentials,
		})
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "integration not found"))
			return
		}
		responses.WriteSuccess(w, integration)
	}
}

func IntegrationDelete(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !store.DeleteIntegration(id, userID) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "integration not found"))
			return
		}
		responses.WriteNoContent(w)
	}
}

// IntegrationTest runs the simulated vendor handshake for a credential.
func IntegrationTest(tester integrations.ConnectionTester, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if tester == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "connection tester unavailable"))
			return
		}
		if _, err := authedUser(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req TestIntegrationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := tester.Test(r.Context(), req.Type, req.APIKey)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
