package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webhook-dispatcher/internal/core/domain"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/internal/core/ports/mocks"
	"webhook-dispatcher/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testToken = "test-token"

var handlerNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

type handlerTestDeps struct {
	router     *gin.Engine
	admin      *mocks.MockWebhookAdminService
	dispatcher *mocks.MockDispatcherService
	teamID     uuid.UUID
}

func setupHandlers(t *testing.T) *handlerTestDeps {
	ctrl := gomock.NewController(t)
	d := &handlerTestDeps{
		admin:      mocks.NewMockWebhookAdminService(ctrl),
		dispatcher: mocks.NewMockDispatcherService(ctrl),
		teamID:     uuid.New(),
	}

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate(testToken).Return(&ports.TokenClaims{TeamID: d.teamID}, nil).AnyTimes()
	tokenSvc.EXPECT().Validate(gomock.Not(testToken)).Return(nil, errors.New("invalid")).AnyTimes()

	d.router = SetupRouter(RouterDeps{
		AdminSvc:      d.admin,
		DispatcherSvc: d.dispatcher,
		TokenSvc:      tokenSvc,
		Logger:        zerolog.Nop(),
	})
	return d
}

func (d *handlerTestDeps) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has a data object: %s", w.Body.String())
	return data
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

func newWebhook(teamID uuid.UUID) *domain.Webhook {
	return &domain.Webhook{
		ID:         uuid.New(),
		TeamID:     teamID,
		URL:        "https://example.com/hooks",
		SecretEnc:  "sealed-secret",
		EventTypes: []string{domain.EventEmailBounced},
		Status:     domain.WebhookStatusActive,
		CreatedAt:  handlerNow,
		UpdatedAt:  handlerNow,
	}
}

// --- Auth ---

func TestRoutes_RequireBearerToken(t *testing.T) {
	d := setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/webhooks", nil)
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/webhooks", nil)
	req.Header.Set("Authorization", "Bearer other")
	w = httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Webhooks ---

func TestCreateWebhook_Success(t *testing.T) {
	d := setupHandlers(t)
	wh := newWebhook(d.teamID)

	d.admin.EXPECT().CreateWebhook(gomock.Any(), d.teamID, ports.CreateWebhookRequest{
		URL:        "https://example.com/hooks",
		EventTypes: []string{domain.EventEmailBounced},
	}).Return(&ports.CreatedWebhook{Webhook: wh, Secret: "whsec_abc"}, nil)

	w := d.do(http.MethodPost, "/api/v1/webhooks", map[string]any{
		"url":         "https://example.com/hooks",
		"event_types": []string{domain.EventEmailBounced},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, wh.ID.String(), data["id"])
	assert.Equal(t, "whsec_abc", data["secret"])
	assert.Equal(t, "ACTIVE", data["status"])
	assert.NotContains(t, w.Body.String(), "sealed-secret")
}

func TestCreateWebhook_ValidationError(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing url", map[string]any{}},
		{"bad scheme", map[string]any{"url": "javascript:alert(1)"}},
		{"unknown event", map[string]any{"url": "https://example.com", "event_types": []string{"invoice.paid"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupHandlers(t)
			w := d.do(http.MethodPost, "/api/v1/webhooks", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "WH_000", decodeErrorCode(t, w))
		})
	}
}

func TestListWebhooks(t *testing.T) {
	d := setupHandlers(t)
	d.admin.EXPECT().ListWebhooks(gomock.Any(), d.teamID).
		Return([]domain.Webhook{*newWebhook(d.teamID), *newWebhook(d.teamID)}, nil)

	w := d.do(http.MethodGet, "/api/v1/webhooks", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestGetWebhook_NotFound(t *testing.T) {
	d := setupHandlers(t)
	id := uuid.New()
	d.admin.EXPECT().GetWebhook(gomock.Any(), id, d.teamID).Return(nil, apperror.ErrNotFound("Webhook"))

	w := d.do(http.MethodGet, "/api/v1/webhooks/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "WH_001", decodeErrorCode(t, w))
}

func TestGetWebhook_MalformedID(t *testing.T) {
	d := setupHandlers(t)

	w := d.do(http.MethodGet, "/api/v1/webhooks/not-a-uuid", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendTest_Accepted(t *testing.T) {
	d := setupHandlers(t)
	webhookID, callID := uuid.New(), uuid.New()
	d.dispatcher.EXPECT().TestWebhook(gomock.Any(), webhookID, d.teamID).Return(callID, nil)

	w := d.do(http.MethodPost, "/api/v1/webhooks/"+webhookID.String()+"/test", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, callID.String(), decodeData(t, w)["call_id"])
}

func TestSendTest_InactiveWebhook(t *testing.T) {
	d := setupHandlers(t)
	webhookID := uuid.New()
	d.dispatcher.EXPECT().TestWebhook(gomock.Any(), webhookID, d.teamID).Return(uuid.Nil, apperror.ErrWebhookNotActive())

	w := d.do(http.MethodPost, "/api/v1/webhooks/"+webhookID.String()+"/test", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "WH_003", decodeErrorCode(t, w))
}

func TestActivateWebhook(t *testing.T) {
	d := setupHandlers(t)
	wh := newWebhook(d.teamID)
	gomock.InOrder(
		d.dispatcher.EXPECT().ActivateWebhook(gomock.Any(), wh.ID, d.teamID).Return(nil),
		d.admin.EXPECT().GetWebhook(gomock.Any(), wh.ID, d.teamID).Return(wh, nil),
	)

	w := d.do(http.MethodPost, "/api/v1/webhooks/"+wh.ID.String()+"/activate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ACTIVE", decodeData(t, w)["status"])
}

func TestDisableWebhook(t *testing.T) {
	d := setupHandlers(t)
	wh := newWebhook(d.teamID)
	wh.Status = domain.WebhookStatusManuallyDisabled
	d.admin.EXPECT().DisableWebhook(gomock.Any(), wh.ID, d.teamID).Return(nil)
	d.admin.EXPECT().GetWebhook(gomock.Any(), wh.ID, d.teamID).Return(wh, nil)

	w := d.do(http.MethodPost, "/api/v1/webhooks/"+wh.ID.String()+"/disable", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MANUALLY_DISABLED", decodeData(t, w)["status"])
}

func TestRotateSecret(t *testing.T) {
	d := setupHandlers(t)
	id := uuid.New()
	d.admin.EXPECT().RotateSecret(gomock.Any(), id, d.teamID).Return("whsec_new", nil)

	w := d.do(http.MethodPost, "/api/v1/webhooks/"+id.String()+"/rotate-secret", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "whsec_new", decodeData(t, w)["secret"])
}

func TestListCalls(t *testing.T) {
	d := setupHandlers(t)
	webhookID := uuid.New()
	lastErr := "webhook responded with HTTP 500"
	d.dispatcher.EXPECT().ListCalls(gomock.Any(), webhookID, d.teamID, 25).Return([]domain.WebhookCall{
		{ID: uuid.New(), WebhookID: webhookID, Type: domain.EventEmailSent, Status: domain.CallStatusFailed, Attempt: 6, LastError: &lastErr},
	}, nil)

	w := d.do(http.MethodGet, "/api/v1/webhooks/"+webhookID.String()+"/calls?limit=25", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.EqualValues(t, 1, data["count"])
	item := data["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "FAILED", item["status"])
	assert.Equal(t, lastErr, item["last_error"])
}

func TestListCalls_DefaultLimit(t *testing.T) {
	d := setupHandlers(t)
	webhookID := uuid.New()
	d.dispatcher.EXPECT().ListCalls(gomock.Any(), webhookID, d.teamID, 0).Return(nil, nil)

	w := d.do(http.MethodGet, "/api/v1/webhooks/"+webhookID.String()+"/calls", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeData(t, w)["count"])
}

func TestListCalls_InvalidLimit(t *testing.T) {
	d := setupHandlers(t)

	w := d.do(http.MethodGet, "/api/v1/webhooks/"+uuid.NewString()+"/calls?limit=1000", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Calls ---

func TestGetCall(t *testing.T) {
	d := setupHandlers(t)
	call := &domain.WebhookCall{ID: uuid.New(), WebhookID: uuid.New(), TeamID: d.teamID, Type: domain.EventContactCreated, Status: domain.CallStatusDelivered, Attempt: 1}
	d.dispatcher.EXPECT().GetCall(gomock.Any(), call.ID, d.teamID).Return(call, nil)

	w := d.do(http.MethodGet, "/api/v1/calls/"+call.ID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "DELIVERED", data["status"])
	assert.EqualValues(t, 1, data["attempt"])
}

func TestRetryCall(t *testing.T) {
	d := setupHandlers(t)
	id := uuid.New()
	d.dispatcher.EXPECT().RetryCall(gomock.Any(), id, d.teamID).Return(nil)

	w := d.do(http.MethodPost, "/api/v1/calls/"+id.String()+"/retry", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, id.String(), decodeData(t, w)["call_id"])
}

func TestRetryCall_NotRetryable(t *testing.T) {
	d := setupHandlers(t)
	id := uuid.New()
	d.dispatcher.EXPECT().RetryCall(gomock.Any(), id, d.teamID).Return(apperror.ErrCallNotRetryable())

	w := d.do(http.MethodPost, "/api/v1/calls/"+id.String()+"/retry", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "WH_002", decodeErrorCode(t, w))
}

// --- Events ---

func TestEmitEvent(t *testing.T) {
	d := setupHandlers(t)
	d.dispatcher.EXPECT().
		Emit(gomock.Any(), d.teamID, domain.EventEmailBounced, json.RawMessage(`{"id":"email_1"}`), gomock.Any()).
		Do(func(ctx context.Context, _ uuid.UUID, _ string, _ any, opts ...ports.EmitOption) {
			var o ports.EmitOptions
			for _, opt := range opts {
				opt(&o)
			}
			assert.Equal(t, "evt_42", o.EventID)
		})

	w := d.do(http.MethodPost, "/api/v1/events", map[string]any{
		"type":     domain.EventEmailBounced,
		"event_id": "evt_42",
		"data":     json.RawMessage(`{"id":"email_1"}`),
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestEmitEvent_RejectsReservedType(t *testing.T) {
	d := setupHandlers(t)

	w := d.do(http.MethodPost, "/api/v1/events", map[string]any{"type": domain.EventWebhookTest})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health ---

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(context.Context) error { return f.err }
func (f fakeChecker) Name() string               { return f.name }

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/healthy", HealthCheck(fakeChecker{name: "postgresql"}, fakeChecker{name: "redis"}))
	r.GET("/degraded", HealthCheck(fakeChecker{name: "postgresql"}, fakeChecker{name: "redis", err: errors.New("connection refused")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthy", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/degraded", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
