package line

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	lineclient "communityhub/clients/line"
	"communityhub/config"
	"communityhub/models"
	"communityhub/services"
)

func setupLineUseCase() (*LineUseCase, *services.MockLineContactsService, *services.MockLineGroupsService, *services.MockInboundMessagesService, *lineclient.MockPushSender) {
	mockContacts := &services.MockLineContactsService{}
	mockGroups := &services.MockLineGroupsService{}
	mockMessages := &services.MockInboundMessagesService{}
	mockPush := &lineclient.MockPushSender{}

	useCase := NewLineUseCase(mockContacts, mockGroups, mockMessages, mockPush, config.LineConfig{
		ChannelSecret:      "secret",
		ChannelAccessToken: "token",
		NotifyUserIDs:      []string{"U1"},
		NotifyGroupIDs:     []string{"G1"},
	})

	return useCase, mockContacts, mockGroups, mockMessages, mockPush
}

func eventAt(kind models.LineEventKind, sourceID string, ts int64) models.WebhookEvent {
	return models.WebhookEvent{
		Kind:       kind,
		SourceKind: models.LineSourceKindUser,
		SourceID:   sourceID,
		OccurredAt: time.UnixMilli(ts).UTC(),
	}
}

func TestProcessWebhookEvents(t *testing.T) {
	t.Run("FollowThenUnfollow_SameBatch_EndsInactive", func(t *testing.T) {
		useCase, mockContacts, _, _, _ := setupLineUseCase()

		follow := eventAt(models.LineEventKindFollow, "U1", 1000)
		unfollow := eventAt(models.LineEventKindUnfollow, "U1", 2000)

		// Ordering matters: the upsert must be observed before the deactivate.
		var calls []string
		mockContacts.On("UpsertActiveContact", mock.Anything, "U1", follow.OccurredAt).
			Run(func(args mock.Arguments) { calls = append(calls, "upsert") }).
			Return(nil)
		mockContacts.On("DeactivateContact", mock.Anything, "U1", unfollow.OccurredAt).
			Run(func(args mock.Arguments) { calls = append(calls, "deactivate") }).
			Return(nil)

		report := useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Destination: "d1",
			Events:      []models.WebhookEvent{follow, unfollow},
		})

		assert.Equal(t, 2, report.Processed)
		assert.Equal(t, 0, report.Failed)
		assert.Equal(t, []string{"upsert", "deactivate"}, calls)
		mockContacts.AssertExpectations(t)
	})

	t.Run("UnfollowThenFollow_ReverseOrder_EndsActive", func(t *testing.T) {
		useCase, mockContacts, _, _, _ := setupLineUseCase()

		unfollow := eventAt(models.LineEventKindUnfollow, "U1", 1000)
		follow := eventAt(models.LineEventKindFollow, "U1", 2000)

		var calls []string
		mockContacts.On("DeactivateContact", mock.Anything, "U1", unfollow.OccurredAt).
			Run(func(args mock.Arguments) { calls = append(calls, "deactivate") }).
			Return(nil)
		mockContacts.On("UpsertActiveContact", mock.Anything, "U1", follow.OccurredAt).
			Run(func(args mock.Arguments) { calls = append(calls, "upsert") }).
			Return(nil)

		useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Events: []models.WebhookEvent{unfollow, follow},
		})

		assert.Equal(t, []string{"deactivate", "upsert"}, calls)
		mockContacts.AssertExpectations(t)
	})

	t.Run("DuplicateFollow_IsIdempotent", func(t *testing.T) {
		useCase, mockContacts, _, _, _ := setupLineUseCase()

		follow := eventAt(models.LineEventKindFollow, "U1", 1000)

		// At-least-once delivery: the same event replayed twice routes to the
		// same idempotent upsert with the same arguments.
		mockContacts.On("UpsertActiveContact", mock.Anything, "U1", follow.OccurredAt).
			Return(nil).Twice()

		useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Events: []models.WebhookEvent{follow, follow},
		})

		mockContacts.AssertExpectations(t)
	})

	t.Run("HandlerFailure_DoesNotAbortBatch", func(t *testing.T) {
		useCase, mockContacts, mockGroups, _, _ := setupLineUseCase()

		follow := eventAt(models.LineEventKindFollow, "U1", 1000)
		join := eventAt(models.LineEventKindJoin, "G1", 2000)

		mockContacts.On("UpsertActiveContact", mock.Anything, "U1", follow.OccurredAt).
			Return(fmt.Errorf("store unreachable"))
		mockGroups.On("UpsertActiveGroup", mock.Anything, "G1", join.OccurredAt).
			Return(nil)

		report := useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Events: []models.WebhookEvent{follow, join},
		})

		// The failing event is counted but the succeeding one still ran.
		assert.Equal(t, 2, report.Processed)
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Reports, 2)
		assert.Error(t, report.Reports[0].Err)
		assert.NoError(t, report.Reports[1].Err)
		mockContacts.AssertExpectations(t)
		mockGroups.AssertExpectations(t)
	})

	t.Run("TextMessage_IsRecorded", func(t *testing.T) {
		useCase, _, _, mockMessages, _ := setupLineUseCase()

		event := eventAt(models.LineEventKindMessage, "U2", 1000)
		event.MessageKind = models.LineMessageKindText
		event.Text = "pray for us"

		mockMessages.On("RecordTextMessage", mock.Anything, models.LineSourceKindUser, "U2", "pray for us", event.OccurredAt).
			Return(&models.InboundLineMessage{ID: "lm_1"}, nil)

		report := useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Events: []models.WebhookEvent{event},
		})

		assert.Equal(t, 0, report.Failed)
		mockMessages.AssertExpectations(t)
	})

	t.Run("NonTextMessage_IsIgnored", func(t *testing.T) {
		useCase, _, _, mockMessages, _ := setupLineUseCase()

		event := eventAt(models.LineEventKindMessage, "U2", 1000)
		event.MessageKind = models.LineMessageKindOther

		report := useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Events: []models.WebhookEvent{event},
		})

		assert.Equal(t, 1, report.Processed)
		assert.Equal(t, 0, report.Failed)
		mockMessages.AssertNotCalled(t, "RecordTextMessage")
	})

	t.Run("GroupLeave_DeactivatesGroup", func(t *testing.T) {
		useCase, _, mockGroups, _, _ := setupLineUseCase()

		leave := eventAt(models.LineEventKindLeave, "G1", 1000)
		leave.SourceKind = models.LineSourceKindGroup

		mockGroups.On("DeactivateGroup", mock.Anything, "G1", leave.OccurredAt).
			Return(nil)

		useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Events: []models.WebhookEvent{leave},
		})

		mockGroups.AssertExpectations(t)
	})

	t.Run("UnrecognizedKind_LoggedAndDropped", func(t *testing.T) {
		useCase, mockContacts, mockGroups, mockMessages, _ := setupLineUseCase()

		other := eventAt(models.LineEventKindOther, "U9", 1000)

		report := useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Events: []models.WebhookEvent{other},
		})

		assert.Equal(t, 1, report.Processed)
		assert.Equal(t, 0, report.Failed)
		mockContacts.AssertNotCalled(t, "UpsertActiveContact")
		mockGroups.AssertNotCalled(t, "UpsertActiveGroup")
		mockMessages.AssertNotCalled(t, "RecordTextMessage")
	})

	t.Run("EmptyBatch_ProducesEmptyReport", func(t *testing.T) {
		useCase, _, _, _, _ := setupLineUseCase()

		report := useCase.ProcessWebhookEvents(context.Background(), &models.WebhookEnvelope{
			Events: []models.WebhookEvent{},
		})

		assert.Equal(t, 0, report.Processed)
		assert.Equal(t, 0, report.Failed)
	})
}
