package session_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

func TestSessionService_SetMetadata_Valid(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")
	require.NoError(t, err)

	basic := domain.License{ID: uuid.New(), Name: "Basic"}
	premium := domain.License{ID: uuid.New(), Name: "Premium"}
	f.uow.GetLicenseRepoMock().On("FindAll", ctx).Return([]domain.License{basic, premium}, nil)

	draft := domain.BeatDraft{
		Title:      "Night Drive",
		MusicalKey: "Am",
		Tempo:      "140,5",
		Prices: map[uuid.UUID]float64{
			basic.ID:   19.99,
			premium.ID: 49.99,
		},
		FreeDownload: true,
	}

	// Act
	violations, err := f.service.SetMetadata(ctx, id, draft)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, violations)

	view, err := f.service.Describe(ctx, id)
	require.NoError(t, err)
	assert.True(t, view.MetadataValid)
}

func TestSessionService_SetMetadata_ReportsEveryViolation(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")
	require.NoError(t, err)

	basic := domain.License{ID: uuid.New(), Name: "Basic"}
	premium := domain.License{ID: uuid.New(), Name: "Premium"}
	f.uow.GetLicenseRepoMock().On("FindAll", ctx).Return([]domain.License{basic, premium}, nil)

	draft := domain.BeatDraft{
		Title:      "   ",
		MusicalKey: "H",
		Tempo:      "fast",
		Prices: map[uuid.UUID]float64{
			basic.ID: 19.99,
		},
	}

	// Act
	violations, err := f.service.SetMetadata(ctx, id, draft)

	// Assert
	require.NoError(t, err)
	assert.Len(t, violations, 4)
	assert.Contains(t, violations, "title")
	assert.Contains(t, violations, "musical_key")
	assert.Contains(t, violations, "tempo")
	assert.Contains(t, violations, "price:Premium")
	assert.NotContains(t, violations, "price:Basic")

	view, err := f.service.Describe(ctx, id)
	require.NoError(t, err)
	assert.False(t, view.MetadataValid)
}

func TestSessionService_SetMetadata_TempoBounds(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	id, err := f.service.Create(ctx, "Beat Maker", "beatmaker")
	require.NoError(t, err)

	basic := domain.License{ID: uuid.New(), Name: "Basic"}
	f.uow.GetLicenseRepoMock().On("FindAll", ctx).Return([]domain.License{basic}, nil)

	draft := domain.BeatDraft{
		Title:      "Night Drive",
		MusicalKey: "Am",
		Prices:     map[uuid.UUID]float64{basic.ID: 19.99},
	}

	cases := []struct {
		tempo    string
		accepted bool
	}{
		{"999", true},
		{"1000", false},
		{"0", false},
		{"-3", false},
		{"120.5", true},
	}

	for _, tc := range cases {
		draft.Tempo = tc.tempo

		// Act
		violations, err := f.service.SetMetadata(ctx, id, draft)

		// Assert
		require.NoError(t, err)
		if tc.accepted {
			assert.NotContains(t, violations, "tempo", "tempo %q should be accepted", tc.tempo)
		} else {
			assert.Contains(t, violations, "tempo", "tempo %q should be rejected", tc.tempo)
		}
	}
}

func TestSessionService_SetMetadata_UnknownSession(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newSessionFixture()
	f.uow.GetLicenseRepoMock().On("FindAll", ctx).Return([]domain.License{}, nil)

	// Act
	_, err := f.service.SetMetadata(ctx, uuid.New(), domain.BeatDraft{})

	// Assert
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
