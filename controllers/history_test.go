package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"devmeup/controllers"
	"devmeup/models"
	"devmeup/routes"
	"devmeup/services"
)

type mockHistoryService struct {
	entries    []models.HistoryEntry
	err        error
	lastEmail  string
	lastID     string
	lastQuery  string
	created    models.HistoryEntry
	emailCalls int
}

func (m *mockHistoryService) GetHistoryByEmail(_ context.Context, email string) ([]models.HistoryEntry, error) {
	m.emailCalls++
	m.lastEmail = email
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockHistoryService) GetHistory(_ context.Context, identifier string) ([]models.HistoryEntry, error) {
	m.lastID = identifier
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockHistoryService) CreateEntry(_ context.Context, identifier, query, response string) (models.HistoryEntry, error) {
	m.lastID = identifier
	m.lastQuery = query
	if m.err != nil {
		return models.HistoryEntry{}, m.err
	}
	return m.created, nil
}

type mockPinger struct {
	now time.Time
	err error
}

func (m *mockPinger) Ping(_ context.Context) (time.Time, error) {
	return m.now, m.err
}

func newTestRouter(svc *mockHistoryService, pinger *mockPinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.Register(router, controllers.NewHealthController(pinger), controllers.NewHistoryController(svc))
	return router
}

func TestGetHistoryByEmailReturnsArray(t *testing.T) {
	svc := &mockHistoryService{entries: []models.HistoryEntry{
		{ID: 1, Query: "foo", FormData: map[string]interface{}{"input": "foo"}},
	}}
	router := newTestRouter(svc, &mockPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history/user%40example.com", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user@example.com", svc.lastEmail, "path identifier must be percent-decoded")

	var body []models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	require.Equal(t, "foo", body[0].Query)
}

func TestGetHistoryByEmailDecodesExactlyOnce(t *testing.T) {
	// %2540 decodes to the literal "%40"; a second unescape would turn it
	// into "@" and corrupt the identifier
	svc := &mockHistoryService{entries: []models.HistoryEntry{}}
	router := newTestRouter(svc, &mockPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history/a%2540b@example.com", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "a%40b@example.com", svc.lastEmail)
}

func TestGetHistoryByEmailInvalidInput(t *testing.T) {
	svc := &mockHistoryService{err: &services.Error{
		Code:    services.ErrorInvalidInput,
		Message: "identifier is not a valid email",
	}}
	router := newTestRouter(svc, &mockPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history/not-an-email", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "not a valid email")
}

func TestGetHistoryByEmailStoreFailure(t *testing.T) {
	svc := &mockHistoryService{err: &services.Error{
		Code:    services.ErrorStoreUnavailable,
		Message: "failed to fetch history",
	}}
	router := newTestRouter(svc, &mockPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history/user%40example.com", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"failed to fetch history"}`, w.Body.String())
}

func TestGetHistoryByQueryString(t *testing.T) {
	svc := &mockHistoryService{entries: []models.HistoryEntry{}}
	router := newTestRouter(svc, &mockPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history?identifier=user-123", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-123", svc.lastID)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestGetHistoryMissingIdentifier(t *testing.T) {
	svc := &mockHistoryService{}
	router := newTestRouter(svc, &mockPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, svc.emailCalls)
}

func TestCreateHistoryEntry(t *testing.T) {
	svc := &mockHistoryService{created: models.HistoryEntry{
		ID:        42,
		Query:     "write a poem",
		CreatedBy: "user@example.com",
	}}
	router := newTestRouter(svc, &mockPinger{})

	payload := bytes.NewBufferString(`{"identifier":"user@example.com","query":"write a poem","response":"Roses are red"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/history", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "user@example.com", svc.lastID)
	require.Equal(t, "write a poem", svc.lastQuery)

	var body models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, uint(42), body.ID)
}

func TestCreateHistoryEntryBadBody(t *testing.T) {
	svc := &mockHistoryService{}
	router := newTestRouter(svc, &mockPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/history", bytes.NewBufferString(`{`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
