package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerline/backend/api/middleware"
	"github.com/ledgerline/backend/internal/storage"
	"github.com/ledgerline/backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func bodyReader(body string) io.Reader {
	return strings.NewReader(body)
}

func authedRequest(method, target string, body string, userID int) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	return req
}

func addRouteParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func TestClientCreateAndDetail(t *testing.T) {
	store := storage.NewMemStore()
	user := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})

	req := authedRequest(http.MethodPost, "/api/v1/clients", `{"name":"Acme Corp","businessType":"LLC","industry":"Manufacturing"}`, user.ID)
	resp := httptest.NewRecorder()
	ClientCreate(store, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created storage.Client
	decodeData(t, resp, &created)
	if created.ID == 0 || created.Name != "Acme Corp" || created.UserID != user.ID {
		t.Fatalf("unexpected created client %+v", created)
	}

	detailReq := authedRequest(http.MethodGet, "/api/v1/clients/"+strconv.Itoa(created.ID), "", user.ID)
	detailReq = addRouteParam(detailReq, "clientId", strconv.Itoa(created.ID))
	detailResp := httptest.NewRecorder()
	ClientDetail(store, testLogger())(detailResp, detailReq)

	if detailResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", detailResp.Code)
	}
	var fetched storage.Client
	decodeData(t, detailResp, &fetched)
	if fetched.ID != created.ID {
		t.Fatalf("expected client %d, got %d", created.ID, fetched.ID)
	}
}

func TestClientCreateValidation(t *testing.T) {
	store := storage.NewMemStore()
	user := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})

	req := authedRequest(http.MethodPost, "/api/v1/clients", `{"businessType":"LLC"}`, user.ID)
	resp := httptest.NewRecorder()
	ClientCreate(store, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", resp.Code)
	}
}

func TestClientDetailHidesOtherOwners(t *testing.T) {
	store := storage.NewMemStore()
	owner := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})
	other := store.CreateUser(storage.InsertUser{Username: "other", Password: "pw12345678", Email: "other@example.com", Name: "Other"})
	client := store.CreateClient(owner.ID, storage.InsertClient{Name: "Acme Corp", BusinessType: "LLC"})

	req := authedRequest(http.MethodGet, "/api/v1/clients/"+strconv.Itoa(client.ID), "", other.ID)
	req = addRouteParam(req, "clientId", strconv.Itoa(client.ID))
	resp := httptest.NewRecorder()
	ClientDetail(store, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("cross-owner read must 404, got %d", resp.Code)
	}
}

func TestClientUpdatePreservesUnsuppliedFields(t *testing.T) {
	store := storage.NewMemStore()
	user := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})
	industry := "Manufacturing"
	client := store.CreateClient(user.ID, storage.InsertClient{Name: "Acme Corp", BusinessType: "LLC", Industry: &industry})

	req := authedRequest(http.MethodPatch, "/api/v1/clients/"+strconv.Itoa(client.ID), `{"name":"Acme Corporation"}`, user.ID)
	req = addRouteParam(req, "clientId", strconv.Itoa(client.ID))
	resp := httptest.NewRecorder()
	ClientUpdate(store, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated storage.Client
	decodeData(t, resp, &updated)
	if updated.Name != "Acme Corporation" {
		t.Fatalf("expected renamed client, got %q", updated.Name)
	}
	if updated.Industry == nil || *updated.Industry != industry {
		t.Fatalf("unsupplied industry must survive the merge, got %v", updated.Industry)
	}
	if updated.BusinessType != "LLC" {
		t.Fatalf("unsupplied businessType must survive the merge, got %q", updated.BusinessType)
	}
}

func TestClientDelete(t *testing.T) {
	store := storage.NewMemStore()
	user := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})
	client := store.CreateClient(user.ID, storage.InsertClient{Name: "Acme Corp", BusinessType: "LLC"})

	req := authedRequest(http.MethodDelete, "/api/v1/clients/"+strconv.Itoa(client.ID), "", user.ID)
	req = addRouteParam(req, "clientId", strconv.Itoa(client.ID))
	resp := httptest.NewRecorder()
	ClientDelete(store, testLogger())(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	again := authedRequest(http.MethodDelete, "/api/v1/clients/"+strconv.Itoa(client.ID), "", user.ID)
	again = addRouteParam(again, "clientId", strconv.Itoa(client.ID))
	resp = httptest.NewRecorder()
	ClientDelete(store, testLogger())(resp, again)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("second delete must 404, got %d", resp.Code)
	}
}

func TestClientListScopedToOwner(t *testing.T) {
	store := storage.NewMemStore()
	owner := store.CreateUser(storage.InsertUser{Username: "owner", Password: "pw12345678", Email: "owner@example.com", Name: "Owner"})
	other := store.CreateUser(storage.InsertUser{Username: "other", Password: "pw12345678", Email: "other@example.com", Name: "Other"})
	store.CreateClient(owner.ID, storage.InsertClient{Name: "Mine", BusinessType: "LLC"})
	store.CreateClient(other.ID, storage.InsertClient{Name: "Theirs", BusinessType: "LLC"})

	req := authedRequest(http.MethodGet, "/api/v1/clients", "", owner.ID)
	resp := httptest.NewRecorder()
	ClientList(store, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var clients []storage.Client
	decodeData(t, resp, &clients)
	if len(clients) != 1 || clients[0].Name != "Mine" {
		t.Fatalf("expected only the owner's client, got %+v", clients)
	}
}

func TestClientListRequiresUserContext(t *testing.T) {
	store := storage.NewMemStore()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	resp := httptest.NewRecorder()
	ClientList(store, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user context, got %d", resp.Code)
	}
}
