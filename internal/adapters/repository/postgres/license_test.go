package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projecthowly/beatstore-bot-sub000/internal/adapters/repository/postgres"
	"github.com/projecthowly/beatstore-bot-sub000/internal/core/domain"
)

func TestSqlLicenseRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	licenseRepo := postgres.NewSqlLicenseRepository(dbConnection)

	t.Run("Create returns the stored license", func(t *testing.T) {
		truncate()

		license, err := licenseRepo.Create(ctx, "Basic")
		require.NoError(t, err)
		require.Equal(t, "Basic", license.Name)
		require.NotZero(t, license.ID)
		require.False(t, license.CreatedAt.IsZero())
	})

	t.Run("Create duplicate name", func(t *testing.T) {
		truncate()

		_, err := licenseRepo.Create(ctx, "Basic")
		require.NoError(t, err)

		_, err = licenseRepo.Create(ctx, "Basic")
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("FindAll lists in creation order", func(t *testing.T) {
		truncate()

		_, err := licenseRepo.Create(ctx, "Basic")
		require.NoError(t, err)
		_, err = licenseRepo.Create(ctx, "Premium")
		require.NoError(t, err)

		licenses, err := licenseRepo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, licenses, 2)
		require.Equal(t, "Basic", licenses[0].Name)
		require.Equal(t, "Premium", licenses[1].Name)
	})

	t.Run("FindAll with no licenses", func(t *testing.T) {
		truncate()

		licenses, err := licenseRepo.FindAll(ctx)
		require.NoError(t, err)
		require.Empty(t, licenses)
	})
}
