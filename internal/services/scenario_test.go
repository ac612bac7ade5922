package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sbilibin2017/gw-glossary/internal/models"
	"github.com/sbilibin2017/gw-glossary/internal/services"
	"github.com/sbilibin2017/gw-glossary/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()

	_, err := services.NewSeedService(store, store).Run(ctx)
	require.NoError(t, err)
	baseline := len(services.DefaultTerms)

	svc := services.NewTermService(store, store, nil, nil, nil)

	created, err := svc.Create(ctx, models.TermCreateRequest{Keyword: "Texel", Description: "A texture pixel"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)

	got, err := svc.Get(ctx, "Texel")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "A texture pixel", got.Description)

	_, err = svc.Create(ctx, models.TermCreateRequest{Keyword: "Texel", Description: "again"})
	assert.ErrorIs(t, err, services.ErrTermAlreadyExists)

	terms, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, terms, baseline+1)

	_, err = svc.Get(ctx, "texel")
	assert.ErrorIs(t, err, services.ErrTermNotFound, "lookups are case-sensitive")

	untouched, err := svc.Update(ctx, "Texel", models.TermUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Texel", untouched.Keyword)
	assert.Equal(t, "A texture pixel", untouched.Description)
	require.NotNil(t, untouched.UpdatedAt)

	desc := "Updated"
	updated, err := svc.Update(ctx, "Texel", models.TermUpdateRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Texel", updated.Keyword)
	assert.Equal(t, "Updated", updated.Description)
	require.NotNil(t, updated.UpdatedAt)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	assert.Equal(t, created.ID, updated.ID)

	gpu := "GPU"
	_, err = svc.Update(ctx, "Texel", models.TermUpdateRequest{Keyword: &gpu})
	assert.ErrorIs(t, err, services.ErrTermAlreadyExists)

	require.NoError(t, svc.Delete(ctx, "Texel"))

	_, err = svc.Get(ctx, "Texel")
	assert.ErrorIs(t, err, services.ErrTermNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "Texel"), services.ErrTermNotFound)

	terms, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, terms, baseline)
}

func TestTermService_CacheNeverServesRemovedTerm(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	cache := testutil.NewMemoryCache()
	svc := services.NewTermService(store, store, cache, nil, nil)

	_, err := svc.Create(ctx, models.TermCreateRequest{Keyword: "Texel", Description: "A texture pixel"})
	require.NoError(t, err)
	_, err = svc.Get(ctx, "Texel")
	require.NoError(t, err)
	require.True(t, cache.Has("Texel"))

	// While the cache cannot evict, writes fail and the store keeps the term.
	cache.DeleteErr = errors.New("redis: i/o timeout")

	assert.ErrorIs(t, svc.Delete(ctx, "Texel"), cache.DeleteErr)
	renamed := "Texture Element"
	_, err = svc.Update(ctx, "Texel", models.TermUpdateRequest{Keyword: &renamed})
	assert.ErrorIs(t, err, cache.DeleteErr)

	stored, err := store.GetByKeyword(ctx, "Texel")
	require.NoError(t, err)
	got, err := svc.Get(ctx, "Texel")
	require.NoError(t, err)
	assert.Equal(t, stored.Description, got.Description)

	// Once eviction works again, rename and delete leave nothing behind.
	cache.DeleteErr = nil

	_, err = svc.Update(ctx, "Texel", models.TermUpdateRequest{Keyword: &renamed})
	require.NoError(t, err)
	_, err = svc.Get(ctx, "Texel")
	assert.ErrorIs(t, err, services.ErrTermNotFound)

	_, err = svc.Get(ctx, renamed)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, renamed))
	_, err = svc.Get(ctx, renamed)
	assert.ErrorIs(t, err, services.ErrTermNotFound)
	assert.False(t, cache.Has(renamed))
}
