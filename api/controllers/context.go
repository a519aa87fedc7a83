package controllers

import (
	"net/http"

	"github.com/ledgerline/backend/api/middleware"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
)

// authedUser returns the user id seeded by the auth middleware.
func authedUser(r *http.Request) (int, error) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	return userID, nil
}
