package session_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/eventbroker"
	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/repository"
	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/storage"
	"github.com/projecthowly/beatstore-bot-sub000/internal/config"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/port"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/service/session"
)

type sessionFixture struct {
	uow       *repository.MockUnitOfWork
	storage   *storage.MockStorage
	publisher *eventbroker.MockPublisher
	service   port.UploadSessionService
}

func newSessionFixture() *sessionFixture {
	uow := repository.NewMockUnitOfWork()
	mockStorage := storage.NewMockStorage()
	publisher := eventbroker.NewMockPublisher()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.SessionConfig{
		MaxUploadSize: 512 << 20,
		TTL:           2 * time.Hour,
	}

	return &sessionFixture{
		uow:       uow,
		storage:   mockStorage,
		publisher: publisher,
		service:   session.NewSessionService(uow, mockStorage, publisher, cfg, logger),
	}
}

// uploadAsset drives one slot to ok with a canned storage round trip.
func (f *sessionFixture) uploadAsset(t *testing.T, ctx context.Context, sessionID uuid.UUID, kind domain.SlotKind, filename, url string) {
	t.Helper()

	f.storage.On("GenerateKey", mock.Anything, filename).Return("key-"+filename).Once()
	f.storage.On("MimeFor", filename).Return("application/octet-stream").Once()
	f.storage.On("Put", ctx, "key-"+filename, "application/octet-stream", mock.Anything, mock.Anything).
		Return(url, nil).Once()

	got, err := f.service.Assign(ctx, sessionID, kind, filename, strings.NewReader("data"), 4)
	require.NoError(t, err)
	require.Equal(t, url, got)
}

func slotByKind(t *testing.T, view *domain.SessionView, kind domain.SlotKind) domain.AssetSlot {
	t.Helper()
	for _, slot := range view.Slots {
		if slot.Kind == kind {
			return slot
		}
	}
	t.Fatalf("no %s slot in view", kind)
	return domain.AssetSlot{}
}

func TestSessionService_Create_AllSlotsIdle(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()

	// Act
	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")

	// Assert
	require.NoError(t, err)
	view, err := f.service.Describe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Beat Maker", view.ProducerName)
	assert.Equal(t, "beatmaker", view.ProducerHandle)
	assert.Len(t, view.Slots, 4)
	for _, slot := range view.Slots {
		assert.Equal(t, domain.SlotStatusIdle, slot.Status)
		assert.Empty(t, slot.RemoteURL)
	}
	assert.False(t, view.MetadataValid)
	assert.False(t, view.SubmitReady)
}

func TestSessionService_Describe_UnknownSession(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()

	// Act
	view, err := f.service.Describe(ctx, uuid.New())

	// Assert
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Nil(t, view)
}

func TestSessionService_PurgeExpired_ReclaimsUploads(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()

	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")
	require.NoError(t, err)
	f.uploadAsset(t, ctx, id, domain.SlotCover, "cover.png", "http://s3/beats/cover.png")
	f.uploadAsset(t, ctx, id, domain.SlotWAV, "beat.wav", "http://s3/beats/beat.wav")

	f.storage.On("DeleteMany", ctx, mock.MatchedBy(func(urls []string) bool {
		return len(urls) == 2
	})).Return(2, nil).Once()

	// Act
	purged := f.service.PurgeExpired(ctx, time.Now().Add(3*time.Hour))

	// Assert
	assert.Equal(t, 1, purged)
	_, err = f.service.Describe(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	f.storage.AssertExpectations(t)
}

func TestSessionService_PurgeExpired_KeepsFreshSessions(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()

	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")
	require.NoError(t, err)

	// Act
	purged := f.service.PurgeExpired(ctx, time.Now())

	// Assert
	assert.Zero(t, purged)
	_, err = f.service.Describe(ctx, id)
	assert.NoError(t, err)
	f.storage.AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything)
}
