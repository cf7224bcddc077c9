package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
)

func TestNewStorages_Memory(t *testing.T) {
	storages, err := NewStorages(context.Background(), config.Storage{Provider: config.StorageMemory}, staticTokens(false), logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &memoryPostsProvider{}, storages.Posts)
	assert.IsType(t, &memoryUsersProvider{}, storages.Users)
	assert.False(t, storages.Users.IsTokenValid(context.Background(), "t"))
	assert.NoError(t, storages.Close())
}

func TestNewStorages_Unknown(t *testing.T) {
	storages, err := NewStorages(context.Background(), config.Storage{Provider: "postgres"}, staticTokens(true), logger.Nop())
	assert.Nil(t, storages)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
