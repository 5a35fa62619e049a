package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

var testCategories = []entity.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}

func TestCategoryService_ListCategories_NoCache(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("List", ctx).Return(testCategories, nil).Once()

	svc := NewCategoryService(categoryRepo, nil, time.Minute)

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCategories, got)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_ListCategories_CacheHit(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	cacheRepo := new(MockCacheRepository)
	cacheRepo.On("GetJSON", ctx, categoriesCacheKey, mock.Anything).
		Return(`[{"id":1,"type":"Science"},{"id":2,"type":"Art"}]`, nil).Once()

	svc := NewCategoryService(categoryRepo, cacheRepo, time.Minute)

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCategories, got)

	// При попадании в кеш репозиторий не вызывается
	categoryRepo.AssertNotCalled(t, "List", mock.Anything)
	cacheRepo.AssertExpectations(t)
}

func TestCategoryService_ListCategories_CacheMissFillsCache(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	cacheRepo := new(MockCacheRepository)
	cacheRepo.On("GetJSON", ctx, categoriesCacheKey, mock.Anything).Return("", apperrors.ErrNotFound).Once()
	categoryRepo.On("List", ctx).Return(testCategories, nil).Once()
	cacheRepo.On("SetJSON", ctx, categoriesCacheKey, testCategories, 5*time.Minute).Return(nil).Once()

	svc := NewCategoryService(categoryRepo, cacheRepo, 5*time.Minute)

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCategories, got)
	categoryRepo.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
}

func TestCategoryService_ListCategories_CacheErrorsAreIgnored(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	cacheRepo := new(MockCacheRepository)
	cacheRepo.On("GetJSON", ctx, categoriesCacheKey, mock.Anything).Return("", errors.New("redis down")).Once()
	categoryRepo.On("List", ctx).Return(testCategories, nil).Once()
	cacheRepo.On("SetJSON", ctx, categoriesCacheKey, testCategories, time.Minute).Return(errors.New("redis down")).Once()

	svc := NewCategoryService(categoryRepo, cacheRepo, time.Minute)

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err, "недоступный кеш не должен ломать запрос")
	assert.Equal(t, testCategories, got)
}

func TestCategoryService_ListCategories_RepoError(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("List", ctx).Return(nil, errors.New("connection refused")).Once()

	svc := NewCategoryService(categoryRepo, nil, time.Minute)

	_, err := svc.ListCategories(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCategoryService_GetCategory(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetByID", ctx, uint(1)).Return(&testCategories[0], nil).Once()
	categoryRepo.On("GetByID", ctx, uint(99)).Return(nil, apperrors.ErrNotFound).Once()

	svc := NewCategoryService(categoryRepo, nil, time.Minute)

	category, err := svc.GetCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Science", category.Type)

	_, err = svc.GetCategory(ctx, 99)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestCategoryService_InvalidateCache(t *testing.T) {
	ctx := context.Background()
	cacheRepo := new(MockCacheRepository)
	cacheRepo.On("Delete", ctx, categoriesCacheKey).Return(nil).Once()

	assert.NoError(t, NewCategoryService(nil, cacheRepo, time.Minute).InvalidateCache(ctx))
	assert.NoError(t, NewCategoryService(nil, nil, time.Minute).InvalidateCache(ctx), "без кеша: no-op")
	cacheRepo.AssertExpectations(t)
}

func TestCategoryService_SeedCategories(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	cacheRepo := new(MockCacheRepository)
	svc := NewCategoryService(categoryRepo, cacheRepo, time.Minute)

	categoryRepo.On("Count", ctx).Return(int64(0), nil).Once()
	categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).Return(nil).Twice()
	cacheRepo.On("Delete", ctx, categoriesCacheKey).Return(nil).Once()

	created, err := svc.SeedCategories(ctx, []string{"Science", "Art"})
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	categoryRepo.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
}

func TestCategoryService_SeedCategories_NotEmpty(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("Count", ctx).Return(int64(3), nil).Once()

	created, err := NewCategoryService(categoryRepo, nil, time.Minute).SeedCategories(ctx, DefaultCategories)
	require.NoError(t, err)
	assert.Zero(t, created)
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_SeedCategories_CreateError(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("Count", ctx).Return(int64(0), nil).Once()
	categoryRepo.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

	created, err := NewCategoryService(categoryRepo, nil, time.Minute).SeedCategories(ctx, DefaultCategories)
	require.Error(t, err)
	assert.Zero(t, created)
}
