package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/ledgerline/backend/internal/insights"
	"github.com/ledgerline/backend/internal/storage"
)

type testGenerator struct {
	chatReplyFn      func(ctx context.Context, message string) (string, error)
	reportDataFn     func(ctx context.Context, reportType, period string) (map[string]any, error)
	extractReceiptFn func(ctx context.Context, filename string) (*insights.ReceiptExtraction, error)
}

func (g *testGenerator) ChatReply(ctx context.Context, message string) (string, error) {
	if g.chatReplyFn != nil {
		return g.chatReplyFn(ctx, message)
	}
	return "", nil
}

func (g *testGenerator) ReportData(ctx context.Context, reportType, period string) (map[string]any, error) {
	if g.reportDataFn != nil {
		return g.reportDataFn(ctx, reportType, period)
	}
	return map[string]any{}, nil
}

func (g *testGenerator) ExtractReceipt(ctx context.Context, filename string) (*insights.ReceiptExtraction, error) {
	if g.extractReceiptFn != nil {
		return g.extractReceiptFn(ctx, filename)
	}
	return &insights.ReceiptExtraction{}, nil
}

func TestReportGenerateStoresGeneratedPayload(t *testing.T) {
	store := storage.NewMemStore()
	user := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})

	gen := &testGenerator{
		reportDataFn: func(_ context.Context, reportType, period string) (map[string]any, error) {
			if reportType != "profit_loss" {
				t.Fatalf("unexpected type %q", reportType)
			}
			if period != "last_quarter" {
				t.Fatalf("unexpected period %q", period)
			}
			return map[string]any{"type": reportType, "period": period}, nil
		},
	}

	body := `{"type":"profit_loss","dateRange":{"period":"last_quarter"}}`
	req := authedRequest(http.MethodPost, "/api/v1/reports/generate", body, user.ID)
	resp := httptest.NewRecorder()
	ReportGenerate(store, gen, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var report storage.Report
	decodeData(t, resp, &report)
	if report.Title != "PROFIT LOSS Report" {
		t.Fatalf("unexpected title %q", report.Title)
	}
	if report.Type != "profit_loss" {
		t.Fatalf("unexpected type %q", report.Type)
	}
	if report.ClientID != nil {
		t.Fatalf("clientId must stay nil when omitted, got %v", report.ClientID)
	}
	if report.Data["period"] != "last_quarter" {
		t.Fatalf("generated data must be stored, got %v", report.Data)
	}

	stored, ok := store.GetReport(report.ID, user.ID)
	if !ok {
		t.Fatal("generated report missing from the store")
	}
	if stored.Title != report.Title {
		t.Fatalf("stored title mismatch: %q", stored.Title)
	}
}

func TestReportGenerateRequiresPeriod(t *testing.T) {
	store := storage.NewMemStore()
	user := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})

	req := authedRequest(http.MethodPost, "/api/v1/reports/generate", `{"type":"profit_loss","dateRange":{}}`, user.ID)
	resp := httptest.NewRecorder()
	ReportGenerate(store, &testGenerator{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing period, got %d", resp.Code)
	}
}

func TestReportDataOverwrittenWholeOnUpdate(t *testing.T) {
	store := storage.NewMemStore()
	user := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})
	report := store.CreateReport(user.ID, storage.InsertReport{
		Title: "CASH FLOW Report",
		Type:  "cash_flow",
		Data:  map[string]any{"old": true, "keep": "no"},
	})

	body := `{"data":{"new":true}}`
	req := authedRequest(http.MethodPatch, "/api/v1/reports/"+strconv.Itoa(report.ID), body, user.ID)
	req = addRouteParam(req, "reportId", strconv.Itoa(report.ID))
	resp := httptest.NewRecorder()
	ReportUpdate(store, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated storage.Report
	decodeData(t, resp, &updated)
	if _, stale := updated.Data["old"]; stale {
		t.Fatalf("report data must be replaced whole, got %v", updated.Data)
	}
	if updated.Data["new"] != true {
		t.Fatalf("expected new payload, got %v", updated.Data)
	}
	if updated.Title != "CASH FLOW Report" {
		t.Fatalf("title must survive a data-only update, got %q", updated.Title)
	}
}

func TestReportDeleteCrossOwner(t *testing.T) {
	store := storage.NewMemStore()
	owner := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})
	other := store.CreateUser(storage.InsertUser{Username: "other", Password: "pw12345678", Email: "other@example.com", Name: "Other"})
	report := store.CreateReport(owner.ID, storage.InsertReport{Title: "TAX SUMMARY Report", Type: "tax_summary", Data: map[string]any{}})

	req := authedRequest(http.MethodDelete, "/api/v1/reports/"+strconv.Itoa(report.ID), "", other.ID)
	req = addRouteParam(req, "reportId", strconv.Itoa(report.ID))
	resp := httptest.NewRecorder()
	ReportDelete(store, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("cross-owner delete must 404, got %d", resp.Code)
	}
	if _, ok := store.GetReport(report.ID, owner.ID); !ok {
		t.Fatal("report must survive a cross-owner delete attempt")
	}
}
