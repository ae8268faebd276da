package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cookshare/backend/internal/mocks"
	"github.com/cookshare/backend/internal/service"
)

func TestRecordViewUnknownRecipe(t *testing.T) {
	catalog := new(mocks.MockCatalogReader)
	store := new(mocks.MockEngagementWriter)
	id := uuid.New()
	catalog.On("GetRecipeByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := service.NewEngagementService(catalog, store)
	err := svc.RecordView(context.Background(), id, nil)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	store.AssertNotCalled(t, "RecordView")
}

func TestRecordViewAnonymous(t *testing.T) {
	catalog := new(mocks.MockCatalogReader)
	store := new(mocks.MockEngagementWriter)
	recipe := publicRecipe("pho", time.Now())
	catalog.On("GetRecipeByID", mock.Anything, recipe.ID).Return(&recipe, nil)
	store.On("RecordView", mock.Anything, recipe.ID, (*uuid.UUID)(nil)).Return(nil)

	svc := service.NewEngagementService(catalog, store)
	err := svc.RecordView(context.Background(), recipe.ID, nil)

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestLikeChecksRecipeExists(t *testing.T) {
	catalog := new(mocks.MockCatalogReader)
	store := new(mocks.MockEngagementWriter)
	recipe := publicRecipe("pho", time.Now())
	account := uuid.New()
	catalog.On("GetRecipeByID", mock.Anything, recipe.ID).Return(&recipe, nil)
	store.On("Like", mock.Anything, account, recipe.ID).Return(nil)

	svc := service.NewEngagementService(catalog, store)
	require.NoError(t, svc.Like(context.Background(), account, recipe.ID))
	store.AssertExpectations(t)
}

func TestAddPantryItemsDeduplicatesInput(t *testing.T) {
	catalog := new(mocks.MockCatalogReader)
	store := new(mocks.MockEngagementWriter)
	account := uuid.New()
	a, b := uuid.New(), uuid.New()

	store.On("AddPantryItems", mock.Anything, account, []uuid.UUID{a, b}).
		Return([]uuid.UUID{a}, []uuid.UUID{b}, nil)

	svc := service.NewEngagementService(catalog, store)
	added, skipped, err := svc.AddPantryItems(context.Background(), account, []uuid.UUID{a, a, b, a})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a}, added)
	assert.Equal(t, []uuid.UUID{b}, skipped)
	store.AssertExpectations(t)
}
