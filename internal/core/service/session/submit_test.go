package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

// readySession drives a session through uploads and metadata until it can
// be submitted. Stems stay empty, they are optional.
func readySession(t *testing.T, ctx context.Context, f *sessionFixture) uuid.UUID {
	t.Helper()

	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")
	require.NoError(t, err)

	f.uploadAsset(t, ctx, id, domain.SlotCover, "cover.png", "http://s3/beats/cover.png")
	f.uploadAsset(t, ctx, id, domain.SlotMP3, "beat.mp3", "http://s3/beats/beat.mp3")
	f.uploadAsset(t, ctx, id, domain.SlotWAV, "beat.wav", "http://s3/beats/beat.wav")

	basic := domain.License{ID: uuid.New(), Name: "Basic"}
	f.uow.GetLicenseRepoMock().On("FindAll", ctx).Return([]domain.License{basic}, nil)
	violations, err := f.service.SetMetadata(ctx, id, domain.BeatDraft{
		Title:      "Night Drive",
		MusicalKey: "Am",
		Tempo:      "140",
		Prices:     map[uuid.UUID]float64{basic.ID: 19.99},
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	return id
}

func TestSessionService_Submit_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id := readySession(t, ctx, f)

	mockBeatRepo := f.uow.GetBeatRepoMock()
	f.uow.On("Execute", ctx, mock.Anything).Return(nil)
	mockBeatRepo.On("Create", ctx, mock.MatchedBy(func(beat domain.Beat) bool {
		return beat.Title == "Night Drive" &&
			beat.WAVURL == "http://s3/beats/beat.wav" &&
			beat.MP3URL == "http://s3/beats/beat.mp3" &&
			beat.CoverURL == "http://s3/beats/cover.png" &&
			beat.StemsURL == ""
	})).Return(nil)
	mockBeatRepo.On("SetPrices", ctx, mock.Anything, mock.Anything).Return(nil)

	f.publisher.On("Publish", ctx, mock.MatchedBy(func(data []byte) bool {
		var event domain.TranscodeRequested
		if err := json.Unmarshal(data, &event); err != nil {
			return false
		}
		return event.WavURL == "http://s3/beats/beat.wav" && event.ProducerName == "Beat Maker"
	})).Return(nil).Once()

	// Act
	beatID, err := f.service.Submit(ctx, id)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, beatID)

	_, err = f.service.Describe(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	mockBeatRepo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestSessionService_Submit_RefusesDuplicateWhileRunning(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id := readySession(t, ctx, f)

	started := make(chan struct{})
	release := make(chan struct{})
	f.uow.On("Execute", ctx, mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil).Once()
	f.uow.GetBeatRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	f.uow.GetBeatRepoMock().On("SetPrices", ctx, mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.service.Submit(ctx, id)
		firstDone <- err
	}()
	<-started

	// Act
	beatID, err := f.service.Submit(ctx, id)

	// Assert
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight)
	assert.Nil(t, beatID)

	close(release)
	require.NoError(t, <-firstDone)
	_, err = f.service.Describe(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	f.publisher.AssertExpectations(t)
}

func TestSessionService_Submit_BlocksSlotMutations(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id := readySession(t, ctx, f)

	started := make(chan struct{})
	release := make(chan struct{})
	f.uow.On("Execute", ctx, mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil).Once()
	f.uow.GetBeatRepoMock().On("Create", ctx, mock.MatchedBy(func(beat domain.Beat) bool {
		return beat.WAVURL == "http://s3/beats/beat.wav"
	})).Return(nil).Once()
	f.uow.GetBeatRepoMock().On("SetPrices", ctx, mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.service.Submit(ctx, id)
		firstDone <- err
	}()
	<-started

	// Act
	clearErr := f.service.ClearSlot(ctx, id, domain.SlotWAV)
	_, assignErr := f.service.Assign(ctx, id, domain.SlotStems, "stems.zip", strings.NewReader("zip"), 3)

	// Assert
	assert.ErrorIs(t, clearErr, domain.ErrSubmitInFlight)
	assert.ErrorIs(t, assignErr, domain.ErrSubmitInFlight)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	close(release)
	require.NoError(t, <-firstDone)
	f.uow.GetBeatRepoMock().AssertExpectations(t)
}

func TestSessionService_Submit_MissingMandatorySlot(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")
	require.NoError(t, err)

	f.uploadAsset(t, ctx, id, domain.SlotCover, "cover.png", "http://s3/beats/cover.png")
	f.uploadAsset(t, ctx, id, domain.SlotMP3, "beat.mp3", "http://s3/beats/beat.mp3")

	// Act
	beatID, err := f.service.Submit(ctx, id)

	// Assert
	assert.ErrorIs(t, err, domain.ErrSessionNotReady)
	assert.Nil(t, beatID)
}

func TestSessionService_Submit_MetadataInvalid(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")
	require.NoError(t, err)

	f.uploadAsset(t, ctx, id, domain.SlotCover, "cover.png", "http://s3/beats/cover.png")
	f.uploadAsset(t, ctx, id, domain.SlotMP3, "beat.mp3", "http://s3/beats/beat.mp3")
	f.uploadAsset(t, ctx, id, domain.SlotWAV, "beat.wav", "http://s3/beats/beat.wav")

	// Act
	beatID, err := f.service.Submit(ctx, id)

	// Assert
	assert.ErrorIs(t, err, domain.ErrMetadataInvalid)
	assert.Nil(t, beatID)
}

func TestSessionService_Submit_PersistenceFailureKeepsSession(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id := readySession(t, ctx, f)

	dbErr := errors.New("connection reset")
	f.uow.On("Execute", ctx, mock.Anything).Return(nil)
	f.uow.GetBeatRepoMock().On("Create", ctx, mock.Anything).Return(dbErr)

	// Act
	beatID, err := f.service.Submit(ctx, id)

	// Assert
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, beatID)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)

	// the session survives untouched and can be retried
	view, describeErr := f.service.Describe(ctx, id)
	require.NoError(t, describeErr)
	assert.True(t, view.SubmitReady)
	assert.Equal(t, "http://s3/beats/beat.wav", slotByKind(t, view, domain.SlotWAV).RemoteURL)
}

func TestSessionService_Submit_PublishFailureStillSucceeds(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id := readySession(t, ctx, f)

	f.uow.On("Execute", ctx, mock.Anything).Return(nil)
	f.uow.GetBeatRepoMock().On("Create", ctx, mock.Anything).Return(nil)
	f.uow.GetBeatRepoMock().On("SetPrices", ctx, mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker unavailable"))

	// Act
	beatID, err := f.service.Submit(ctx, id)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, beatID)
	_, err = f.service.Describe(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_Submit_UnknownSession(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()

	// Act
	beatID, err := f.service.Submit(ctx, uuid.New())

	// Assert
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Nil(t, beatID)
}
