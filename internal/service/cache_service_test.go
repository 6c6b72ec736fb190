package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/theater-scheduler/pkg/errors"
)

type fakeCacheRepo struct {
	store map[string]interface{}
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: make(map[string]interface{})}
}

func (r *fakeCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	val, ok := r.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	ptr, ok := dest.(*string)
	if !ok {
		return nil
	}
	*ptr = val.(string)
	return nil
}

func (r *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	r.store[key] = value
	return nil
}

func (r *fakeCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	delete(r.store, pattern)
	return nil
}

func TestCacheServiceDisabledIsPassthrough(t *testing.T) {
	svc := NewCacheService(newFakeCacheRepo(), nil, time.Minute, zap.NewNop(), false)
	assert.False(t, svc.Enabled())

	var dest string
	hit, err := svc.Get(context.Background(), "key", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceSetThenGetHits(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	require.True(t, svc.Enabled())

	require.NoError(t, svc.Set(context.Background(), "scenario:1:status", "solved", 0))

	var dest string
	hit, err := svc.Get(context.Background(), "scenario:1:status", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "solved", dest)
}

func TestCacheServiceGetMissReturnsFalseNoError(t *testing.T) {
	svc := NewCacheService(newFakeCacheRepo(), nil, time.Minute, zap.NewNop(), true)

	var dest string
	hit, err := svc.Get(context.Background(), "missing", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceInvalidateRemovesEntry(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	require.NoError(t, svc.Set(context.Background(), "scenario:1:status", "solved", 0))

	require.NoError(t, svc.Invalidate(context.Background(), "scenario:1:status"))

	var dest string
	hit, err := svc.Get(context.Background(), "scenario:1:status", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}
