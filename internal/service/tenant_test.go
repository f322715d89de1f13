package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"datawise-backend/internal/database/models"
	apperrors "datawise-backend/internal/errors"
	"datawise-backend/internal/mocks"
	"datawise-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestTenantService_GetTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTenantRepositoryInterface(ctrl)
	svc := service.NewTenantService(repo)
	ctx := context.Background()

	t.Run("own tenant", func(t *testing.T) {
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "tenant-abc").Return(&models.Tenant{
			BaseModel: models.BaseModel{ID: "tenant-abc"},
			Name:      "ROOT",
			LogoURL:   strPtr("https://cdn.example/logo.png"),
			CreatedAt: &created,
		}, nil)

		resp, err := svc.GetTenant(ctx, "tenant-abc")
		require.NoError(t, err)
		assert.Equal(t, "ROOT", resp.Name)
		assert.Equal(t, "https://cdn.example/logo.png", *resp.LogoURL)
		assert.Equal(t, "2024-05-01T12:00:00Z", resp.CreatedAt)
	})

	t.Run("no tenant never reaches storage", func(t *testing.T) {
		_, err := svc.GetTenant(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrMissingTenant)
	})

	t.Run("deleted tenant", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "gone").Return(nil, gorm.ErrRecordNotFound)
		_, err := svc.GetTenant(ctx, "gone")
		assert.ErrorIs(t, err, apperrors.ErrUnknownTenant)
	})

	t.Run("storage down", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "tenant-abc").Return(nil, errors.New("connection reset"))
		_, err := svc.GetTenant(ctx, "tenant-abc")
		assert.True(t, apperrors.IsStorageUnavailable(err))
	})
}
