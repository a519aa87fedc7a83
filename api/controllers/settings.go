package controllers

import (
	"net/http"

	"github.com/ledgerline/backend/api/responses"
	"github.com/ledgerline/backend/api/validators"
	"github.com/ledgerline/backend/internal/storage"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
	"github.com/ledgerline/backend/pkg/logger"
)

type UpdateSettingsRequest struct {
	AIAlerts           *bool   `json:"aiAlerts,omitempty"`
	AutoCategorize     *bool   `json:"autoCategorize,omitempty"`
	SmartReminders     *bool   `json:"smartReminders,omitempty"`
	EmailNotifications *bool   `json:"emailNotifications,omitempty"`
	WeeklyReports      *bool   `json:"weeklyReports,omitempty"`
	Theme              *string `json:"theme,omitempty"`
	DateFormat         *string `json:"dateFormat,omitempty"`
	Currency           *string `json:"currency,omitempty"`
	SessionTimeout     *string `json:"sessionTimeout,omitempty"`
}

// SettingsFetch returns the caller's preference row; absent rows 404 so
// the first write stays an explicit upsert.
func SettingsFetch(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		settings, ok := store.GetSettings(userID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "settings not found"))
			return
		}
		responses.WriteSuccess(w, settings)
	}
}

// SettingsUpdate merges the supplied fields, creating the row with
// defaults when the caller has none yet.
func SettingsUpdate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req UpdateSettingsRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		settings := store.UpdateSettings(userID, storage.UpdateSettings{
			AIAlerts:           req.AIAlerts,
			AutoCategorize:     req.AutoCategorize,
			SmartReminders:     req.SmartReminders,
			EmailNotifications: req.EmailNotifications,
			WeeklyReports:      req.WeeklyReports,
			Theme:              req.Theme,
			DateFormat:         req.DateFormat,
			Currency:           req.Currency,
			SessionTimeout:     req.SessionTimeout,
		})
		responses.WriteSuccess(w, settings)
	}
}
