package controllers

import (
	"math"
	"net/http"
	"strings"

	"github.com/ledgerline/backend/api/responses"
	"github.com/ledgerline/backend/api/validators"
	"github.com/ledgerline/backend/internal/insights"
	"github.com/ledgerline/backend/internal/storage"
	pkgerrors "github.com/ledgerline/backend/pkg/errors"
	"github.com/ledgerline/backend/pkg/logger"
)

type GenerateReportRequest struct {
	Type      string          `json:"type" validate:"required"`
	ClientID  *int            `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	DateRange ReportDateRange `json:"dateRange" validate:"required"`
}

type ReportDateRange struct {
	Period string `json:"period" validate:"required"`
}

type UpdateReportRequest struct {
	ClientID *int           `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	Title    *string        `json:"title,omitempty"`
	Type     *string        `json:"type,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

func ReportList(store storage.Store, logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteSuccess(w, store.ListReports(userID, clientID))
	}
}

func ReportDetail(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "reportId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		report, ok := store.GetReport(id, userID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "report not found"))
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// ReportGenerate asks the insight generator for a payload and stores the
// result as a new report titled after its type.
func ReportGenerate(store storage.Store, gen insights.Generator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gen == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "insight generator unavailable"))
			return
		}
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req GenerateReportRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		data, err := gen.ReportData(r.Context(), req.Type, req.DateRange.Period)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate report"))
			return
		}

		title := strings.ToUpper(strings.ReplaceAll(req.Type, "_", " ")) + " Report"
		report := store.CreateReport(userID, storage.InsertReport{
			ClientID: req.ClientID,
			Title:    title,
			Type:     req.Type,
			Data:     data,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, report)
	}
}

func ReportUpdate(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "reportId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req UpdateReportRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		report, ok := store.UpdateReport(id, userID, storage.UpdateReport{
			ClientID: req.ClientID,
			Title:    req.Title,
			Type:     req.Type,
			Data:     req.Data,
		})
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "report not found"))
			return
		}
		responses.WriteSuccess(w, report)
	}
}

func ReportDelete(store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUser(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := validators.ParsePathInt(r, "reportId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !store.DeleteReport(id, userID) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "report not found"))
			return
		}
		responses.WriteNoContent(w)
	}
}
