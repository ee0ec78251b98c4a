package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCacheRepository mocks the database backup layer.
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetKey(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) SetKey(key string, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func TestReferenceCacheMemoryOnly(t *testing.T) {
	cache := NewReferenceCache(&ReferenceCacheDeps{})

	cache.Set(context.Background(), "reference:rotation", `{"freeChampionIds":[1]}`, time.Hour)

	value, err := cache.Get(context.Background(), "reference:rotation")
	assert.NoError(t, err)
	assert.Equal(t, `{"freeChampionIds":[1]}`, value)
}

func TestReferenceCacheMiss(t *testing.T) {
	cache := NewReferenceCache(&ReferenceCacheDeps{})

	value, err := cache.Get(context.Background(), "reference:missing")

	assert.Empty(t, value)
	assert.Error(t, err)
}

func TestReferenceCacheRepositoryFallback(t *testing.T) {
	repository := new(MockCacheRepository)
	repository.On("GetKey", "reference:rotation").Return(`{"freeChampionIds":[7]}`, nil)

	cache := NewReferenceCache(&ReferenceCacheDeps{Repository: repository})

	value, err := cache.Get(context.Background(), "reference:rotation")
	assert.NoError(t, err)
	assert.Equal(t, `{"freeChampionIds":[7]}`, value)

	// The hit repopulated the memory layer.
	repository.AssertNumberOfCalls(t, "GetKey", 1)
	_, err = cache.Get(context.Background(), "reference:rotation")
	assert.NoError(t, err)
	repository.AssertNumberOfCalls(t, "GetKey", 1)
}

func TestReferenceCacheRepositoryFailure(t *testing.T) {
	repository := new(MockCacheRepository)
	repository.On("GetKey", "reference:rotation").Return("", errors.New("database error"))

	cache := NewReferenceCache(&ReferenceCacheDeps{Repository: repository})

	value, err := cache.Get(context.Background(), "reference:rotation")

	assert.Empty(t, value)
	assert.Error(t, err)
}

func TestReferenceCacheSetWritesRepository(t *testing.T) {
	repository := new(MockCacheRepository)
	repository.On("SetKey", "reference:rotation", "payload").Return(nil)

	cache := NewReferenceCache(&ReferenceCacheDeps{Repository: repository})

	cache.Set(context.Background(), "reference:rotation", "payload", time.Hour)

	repository.AssertCalled(t, "SetKey", "reference:rotation", "payload")
}
