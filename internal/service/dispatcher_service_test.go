package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"webhook-dispatcher/internal/core/domain"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/internal/core/ports/mocks"
	"webhook-dispatcher/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherTestDeps struct {
	svc      *DispatcherServiceImpl
	webhooks *mocks.MockWebhookRepository
	calls    *mocks.MockCallRepository
	queue    *mocks.MockJobQueue
	ctrl     *gomock.Controller
}

var dispatcherNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func setupDispatcher(t *testing.T) *dispatcherTestDeps {
	ctrl := gomock.NewController(t)
	d := &dispatcherTestDeps{
		webhooks: mocks.NewMockWebhookRepository(ctrl),
		calls:    mocks.NewMockCallRepository(ctrl),
		queue:    mocks.NewMockJobQueue(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewDispatcherService(d.webhooks, d.calls, d.queue, zerolog.Nop())
	d.svc.now = func() time.Time { return dispatcherNow }
	return d
}

// ==================== Emit Tests ====================

func TestDispatcher_Emit_FansOutToEveryMatchingWebhook(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teamID := uuid.New()
	whA := domain.Webhook{ID: uuid.New(), TeamID: teamID, Status: domain.WebhookStatusActive}
	whB := domain.Webhook{ID: uuid.New(), TeamID: teamID, Status: domain.WebhookStatusActive}

	d.webhooks.EXPECT().ListActiveForEvent(ctx, teamID, domain.EventEmailDelivered).Return([]domain.Webhook{whA, whB}, nil)

	var created []*domain.WebhookCall
	d.calls.EXPECT().Create(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, c *domain.WebhookCall) (bool, error) {
			created = append(created, c)
			return true, nil
		})
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Times(2).Return(true, nil)

	d.svc.Emit(ctx, teamID, domain.EventEmailDelivered, domain.EmailEventData{ID: "email_1", Status: "DELIVERED"})

	require.Len(t, created, 2)
	for _, c := range created {
		assert.Equal(t, domain.CallStatusPending, c.Status)
		assert.Equal(t, 0, c.Attempt)
		assert.Equal(t, teamID, c.TeamID)
		assert.Equal(t, domain.EventEmailDelivered, c.Type)
		assert.Contains(t, c.Payload, `"id":"email_1"`)
	}
	assert.NotEqual(t, created[0].ID, created[1].ID)
}

func TestDispatcher_Emit_JobIDIsCallID(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := domain.Webhook{ID: uuid.New(), TeamID: uuid.New(), Status: domain.WebhookStatusActive}
	wantID := CallIDFor("evt_1", wh.ID)

	d.webhooks.EXPECT().ListActiveForEvent(ctx, wh.TeamID, domain.EventContactCreated).Return([]domain.Webhook{wh}, nil)
	d.calls.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WebhookCall) (bool, error) {
		assert.Equal(t, wantID, c.ID)
		return true, nil
	})
	d.queue.EXPECT().Enqueue(ctx, wantID.String()).Return(true, nil)

	d.svc.Emit(ctx, wh.TeamID, domain.EventContactCreated, map[string]any{"id": "c_1"}, ports.WithEventID("evt_1"))
}

func TestDispatcher_Emit_NoMatchesHasNoSideEffects(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teamID := uuid.New()
	d.webhooks.EXPECT().ListActiveForEvent(ctx, teamID, domain.EventDomainVerified).Return(nil, nil)

	d.svc.Emit(ctx, teamID, domain.EventDomainVerified, domain.DomainEventData{ID: 1})
}

func TestDispatcher_Emit_SwallowsErrors(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teamID := uuid.New()
	whA := domain.Webhook{ID: uuid.New(), TeamID: teamID}
	whB := domain.Webhook{ID: uuid.New(), TeamID: teamID}

	d.webhooks.EXPECT().ListActiveForEvent(ctx, teamID, domain.EventEmailOpened).Return([]domain.Webhook{whA, whB}, nil)
	gomock.InOrder(
		d.calls.EXPECT().Create(ctx, gomock.Any()).Return(false, errors.New("db down")),
		d.calls.EXPECT().Create(ctx, gomock.Any()).Return(true, nil),
	)
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(false, errors.New("redis down"))

	assert.NotPanics(t, func() {
		d.svc.Emit(ctx, teamID, domain.EventEmailOpened, map[string]any{"id": "e"})
	})
}

func TestDispatcher_Emit_ListErrorIsSwallowed(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teamID := uuid.New()
	d.webhooks.EXPECT().ListActiveForEvent(ctx, teamID, gomock.Any()).Return(nil, errors.New("db down"))

	d.svc.Emit(ctx, teamID, domain.EventEmailSent, nil)
}

func TestDispatcher_Emit_RejectsWrongPayloadFamily(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	// No repository expectations: the event is dropped before lookup.
	d.svc.Emit(context.Background(), uuid.New(), domain.EventEmailBounced, domain.ContactEventData{ID: "c"})
}

func TestDispatcher_Emit_UnserializablePayloadFallsBackToEmptyObject(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := domain.Webhook{ID: uuid.New(), TeamID: uuid.New()}

	d.webhooks.EXPECT().ListActiveForEvent(ctx, wh.TeamID, "custom.event").Return([]domain.Webhook{wh}, nil)
	d.calls.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WebhookCall) (bool, error) {
		assert.Equal(t, "{}", c.Payload)
		return true, nil
	})
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(true, nil)

	d.svc.Emit(ctx, wh.TeamID, "custom.event", map[string]any{"bad": make(chan int)})
}

type explodingPayload struct{}

func (explodingPayload) MarshalJSON() ([]byte, error) {
	panic("marshal exploded")
}

func TestDispatcher_Emit_TypedNilPayloadDoesNotPanic(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := domain.Webhook{ID: uuid.New(), TeamID: uuid.New()}

	d.webhooks.EXPECT().ListActiveForEvent(ctx, wh.TeamID, domain.EventEmailSent).Return([]domain.Webhook{wh}, nil)
	d.calls.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WebhookCall) (bool, error) {
		assert.Equal(t, "{}", c.Payload)
		return true, nil
	})
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(true, nil)

	assert.NotPanics(t, func() {
		d.svc.Emit(ctx, wh.TeamID, domain.EventEmailSent, (*domain.EmailEventData)(nil))
	})
}

func TestDispatcher_Emit_PanickingMarshalerFallsBackToEmptyObject(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := domain.Webhook{ID: uuid.New(), TeamID: uuid.New()}

	d.webhooks.EXPECT().ListActiveForEvent(ctx, wh.TeamID, "custom.event").Return([]domain.Webhook{wh}, nil)
	d.calls.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WebhookCall) (bool, error) {
		assert.Equal(t, "{}", c.Payload)
		return true, nil
	})
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(true, nil)

	assert.NotPanics(t, func() {
		d.svc.Emit(ctx, wh.TeamID, "custom.event", explodingPayload{})
	})
}

func TestDispatcher_Emit_RecoversFromStoragePanic(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teamID := uuid.New()
	d.webhooks.EXPECT().ListActiveForEvent(ctx, teamID, domain.EventEmailSent).DoAndReturn(
		func(context.Context, uuid.UUID, string) ([]domain.Webhook, error) {
			panic("driver bug")
		})

	assert.NotPanics(t, func() {
		d.svc.Emit(ctx, teamID, domain.EventEmailSent, map[string]any{"id": "e"})
	})
}

func TestDispatcher_Emit_SameEventIDIsIdempotent(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := domain.Webhook{ID: uuid.New(), TeamID: uuid.New()}
	var ids []uuid.UUID

	d.webhooks.EXPECT().ListActiveForEvent(ctx, wh.TeamID, domain.EventEmailSent).Times(2).Return([]domain.Webhook{wh}, nil)
	gomock.InOrder(
		d.calls.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WebhookCall) (bool, error) {
			ids = append(ids, c.ID)
			return true, nil
		}),
		d.calls.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WebhookCall) (bool, error) {
			ids = append(ids, c.ID)
			return false, nil
		}),
	)
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Times(2).Return(true, nil)

	d.svc.Emit(ctx, wh.TeamID, domain.EventEmailSent, nil, ports.WithEventID("evt_42"))
	d.svc.Emit(ctx, wh.TeamID, domain.EventEmailSent, nil, ports.WithEventID("evt_42"))

	require.Len(t, ids, 2)
	assert.Equal(t, ids[0], ids[1])
}

// ==================== TestWebhook Tests ====================

func TestDispatcher_TestWebhook_QueuesSentinelCall(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := &domain.Webhook{ID: uuid.New(), TeamID: uuid.New(), Status: domain.WebhookStatusActive}

	var created *domain.WebhookCall
	d.webhooks.EXPECT().GetByID(ctx, wh.ID).Return(wh, nil)
	d.calls.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.WebhookCall) (bool, error) {
		created = c
		return true, nil
	})
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(true, nil)

	callID, err := d.svc.TestWebhook(ctx, wh.ID, wh.TeamID)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, callID)
	assert.Equal(t, domain.EventWebhookTest, created.Type)

	var payload domain.TestEventData
	require.NoError(t, json.Unmarshal([]byte(created.Payload), &payload))
	assert.True(t, payload.Test)
	assert.Equal(t, wh.ID.String(), payload.WebhookID)
	assert.True(t, payload.SentAt.Equal(dispatcherNow))
}

func TestDispatcher_TestWebhook_OtherTeamIsNotFound(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := &domain.Webhook{ID: uuid.New(), TeamID: uuid.New(), Status: domain.WebhookStatusActive}
	d.webhooks.EXPECT().GetByID(ctx, wh.ID).Return(wh, nil)

	_, err := d.svc.TestWebhook(ctx, wh.ID, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound("Webhook"))
}

func TestDispatcher_TestWebhook_Disabled(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := &domain.Webhook{ID: uuid.New(), TeamID: uuid.New(), Status: domain.WebhookStatusManuallyDisabled}
	d.webhooks.EXPECT().GetByID(ctx, wh.ID).Return(wh, nil)

	_, err := d.svc.TestWebhook(ctx, wh.ID, wh.TeamID)
	assert.ErrorIs(t, err, apperror.ErrWebhookNotActive())
}

func TestDispatcher_TestWebhook_QueueFailure(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := &domain.Webhook{ID: uuid.New(), TeamID: uuid.New(), Status: domain.WebhookStatusActive}
	d.webhooks.EXPECT().GetByID(ctx, wh.ID).Return(wh, nil)
	d.calls.EXPECT().Create(ctx, gomock.Any()).Return(true, nil)
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(false, errors.New("redis down"))

	_, err := d.svc.TestWebhook(ctx, wh.ID, wh.TeamID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_002", appErr.Code)
}

// ==================== RetryCall Tests ====================

func TestDispatcher_RetryCall_FailedCallIsRequeued(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := &domain.Webhook{ID: uuid.New(), TeamID: uuid.New(), Status: domain.WebhookStatusActive}
	call := &domain.WebhookCall{ID: uuid.New(), WebhookID: wh.ID, TeamID: wh.TeamID, Status: domain.CallStatusFailed, Attempt: 6}

	d.calls.EXPECT().GetByID(ctx, call.ID).Return(call, nil)
	d.webhooks.EXPECT().GetByID(ctx, wh.ID).Return(wh, nil)
	d.calls.EXPECT().ResetForRetry(ctx, call.ID).Return(true, nil)
	d.queue.EXPECT().Enqueue(ctx, call.ID.String()).Return(true, nil)

	assert.NoError(t, d.svc.RetryCall(ctx, call.ID, wh.TeamID))
}

func TestDispatcher_RetryCall_OnlyFailedCalls(t *testing.T) {
	for _, status := range []domain.CallStatus{domain.CallStatusPending, domain.CallStatusInProgress, domain.CallStatusDelivered, domain.CallStatusDiscarded} {
		t.Run(string(status), func(t *testing.T) {
			d := setupDispatcher(t)
			defer d.ctrl.Finish()

			ctx := context.Background()
			teamID := uuid.New()
			call := &domain.WebhookCall{ID: uuid.New(), TeamID: teamID, Status: status}
			d.calls.EXPECT().GetByID(ctx, call.ID).Return(call, nil)

			err := d.svc.RetryCall(ctx, call.ID, teamID)
			assert.ErrorIs(t, err, apperror.ErrCallNotRetryable())
		})
	}
}

func TestDispatcher_RetryCall_LostRace(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := &domain.Webhook{ID: uuid.New(), TeamID: uuid.New(), Status: domain.WebhookStatusActive}
	call := &domain.WebhookCall{ID: uuid.New(), WebhookID: wh.ID, TeamID: wh.TeamID, Status: domain.CallStatusFailed}

	d.calls.EXPECT().GetByID(ctx, call.ID).Return(call, nil)
	d.webhooks.EXPECT().GetByID(ctx, wh.ID).Return(wh, nil)
	d.calls.EXPECT().ResetForRetry(ctx, call.ID).Return(false, nil)

	assert.ErrorIs(t, d.svc.RetryCall(ctx, call.ID, wh.TeamID), apperror.ErrCallNotRetryable())
}

func TestDispatcher_RetryCall_DisabledWebhook(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := &domain.Webhook{ID: uuid.New(), TeamID: uuid.New(), Status: domain.WebhookStatusAutoDisabled}
	call := &domain.WebhookCall{ID: uuid.New(), WebhookID: wh.ID, TeamID: wh.TeamID, Status: domain.CallStatusFailed}

	d.calls.EXPECT().GetByID(ctx, call.ID).Return(call, nil)
	d.webhooks.EXPECT().GetByID(ctx, wh.ID).Return(wh, nil)

	assert.ErrorIs(t, d.svc.RetryCall(ctx, call.ID, wh.TeamID), apperror.ErrWebhookNotActive())
}

// ==================== Activate / read Tests ====================

func TestDispatcher_ActivateWebhook(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id, teamID := uuid.New(), uuid.New()

	d.webhooks.EXPECT().Activate(ctx, id, teamID).Return(true, nil)
	assert.NoError(t, d.svc.ActivateWebhook(ctx, id, teamID))

	d.webhooks.EXPECT().Activate(ctx, id, teamID).Return(false, nil)
	assert.ErrorIs(t, d.svc.ActivateWebhook(ctx, id, teamID), apperror.ErrNotFound("Webhook"))
}

func TestDispatcher_GetCall_TeamScoped(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	call := &domain.WebhookCall{ID: uuid.New(), TeamID: uuid.New()}
	d.calls.EXPECT().GetByID(ctx, call.ID).Return(call, nil).Times(2)

	got, err := d.svc.GetCall(ctx, call.ID, call.TeamID)
	require.NoError(t, err)
	assert.Equal(t, call, got)

	_, err = d.svc.GetCall(ctx, call.ID, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound("Call"))
}

func TestDispatcher_ListCalls_ClampsLimit(t *testing.T) {
	d := setupDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wh := &domain.Webhook{ID: uuid.New(), TeamID: uuid.New()}

	d.webhooks.EXPECT().GetByID(ctx, wh.ID).Return(wh, nil).Times(3)
	d.calls.EXPECT().ListByWebhook(ctx, wh.ID, 50).Return(nil, nil)
	d.calls.EXPECT().ListByWebhook(ctx, wh.ID, 100).Return(nil, nil)
	d.calls.EXPECT().ListByWebhook(ctx, wh.ID, 10).Return([]domain.WebhookCall{{ID: uuid.New()}}, nil)

	_, err := d.svc.ListCalls(ctx, wh.ID, wh.TeamID, 0)
	require.NoError(t, err)
	_, err = d.svc.ListCalls(ctx, wh.ID, wh.TeamID, 1000)
	require.NoError(t, err)
	calls, err := d.svc.ListCalls(ctx, wh.ID, wh.TeamID, 10)
	require.NoError(t, err)
	assert.Len(t, calls, 1)
}
