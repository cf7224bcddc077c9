package store

import (
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
)

type memoryPostsProvider struct {
	*memoryStore[models.Post, models.PostInput]
}

// NewMemoryPostsProvider returns an empty map-backed [PostsProvider].
func NewMemoryPostsProvider(ids IDGenerator, log *logger.Logger) PostsProvider {
	log.Debug().Msg("creating in-memory posts provider")
	return &memoryPostsProvider{
		memoryStore: newMemoryStore(models.Post{}.TableName(), ids, models.NewPost),
	}
}
