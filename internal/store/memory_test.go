package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/models"
)

// ─── helpers ────────────────────────────────────────────────────────────────

// sequenceIDs hands out ids in order, then falls back to random UUIDs.
type sequenceIDs struct {
	mu  sync.Mutex
	ids []string
}

func (g *sequenceIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.ids) == 0 {
		return utils.NewUUIDGenerator().Generate()
	}
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}

type staticTokens bool

func (s staticTokens) IsTokenValid(context.Context, string) bool { return bool(s) }

func newTestPosts() PostsProvider {
	return NewMemoryPostsProvider(utils.NewUUIDGenerator(), logger.Nop())
}

func samplePost() models.PostInput {
	return models.PostInput{
		Author:  "alice",
		Content: "hello",
		Date:    time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ─── round trip ─────────────────────────────────────────────────────────────

func TestMemoryPosts_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	posts := newTestPosts()

	created, err := posts.Create(ctx, samplePost())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, samplePost(), created.Input())

	got, ok, err := posts.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestMemoryPosts_GetAllEmpty(t *testing.T) {
	all, err := newTestPosts().GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMemoryPosts_CreateDistinctIDs(t *testing.T) {
	ctx := context.Background()
	posts := newTestPosts()

	const n = 50
	seen := make(map[string]struct{}, n)
	for range n {
		p, err := posts.Create(ctx, samplePost())
		require.NoError(t, err)
		seen[p.ID] = struct{}{}
	}

	assert.Len(t, seen, n)
	all, err := posts.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}

// TestMemoryStore_CreateRedrawsTakenID feeds the store an id that is already
// present and checks that a new one is drawn.
func TestMemoryStore_CreateRedrawsTakenID(t *testing.T) {
	ctx := context.Background()
	ids := &sequenceIDs{ids: []string{"a", "a", "a", "b"}}
	posts := NewMemoryPostsProvider(ids, logger.Nop())

	first, err := posts.Create(ctx, samplePost())
	require.NoError(t, err)
	second, err := posts.Create(ctx, samplePost())
	require.NoError(t, err)

	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)
}

// ─── update ─────────────────────────────────────────────────────────────────

func TestMemoryPosts_UpdateReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	posts := newTestPosts()

	created, err := posts.Create(ctx, samplePost())
	require.NoError(t, err)

	replacement := models.PostInput{
		Author:  "bob",
		Content: "rewritten",
		Date:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	updated, ok, err := posts.Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.NewPost(created.ID, replacement), updated)

	got, ok, err := posts.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, updated, got)
}

// ─── not found ──────────────────────────────────────────────────────────────

func TestMemoryPosts_NotFoundSymmetry(t *testing.T) {
	ctx := context.Background()
	posts := newTestPosts()

	existing, err := posts.Create(ctx, samplePost())
	require.NoError(t, err)

	_, ok, err := posts.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = posts.Update(ctx, "missing", samplePost())
	require.NoError(t, err)
	assert.False(t, ok)

	deleted, err := posts.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := posts.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Post{existing}, all)
}

// ─── delete ─────────────────────────────────────────────────────────────────

func TestMemoryPosts_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	posts := newTestPosts()

	created, err := posts.Create(ctx, samplePost())
	require.NoError(t, err)

	deleted, err := posts.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = posts.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, ok, err := posts.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Count(t *testing.T) {
	ctx := context.Background()
	posts := newTestPosts()

	counter, ok := posts.(Counter)
	require.True(t, ok)

	n, err := counter.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = posts.Create(ctx, samplePost())
	require.NoError(t, err)

	n, err = counter.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ─── concurrency ────────────────────────────────────────────────────────────

func TestMemoryPosts_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	posts := newTestPosts()

	const workers = 32
	ids := make(chan string, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := posts.Create(ctx, samplePost())
			assert.NoError(t, err)
			ids <- p.ID

			_, _, _ = posts.Get(ctx, p.ID)
			_, _ = posts.GetAll(ctx)
			_, _, _ = posts.Update(ctx, p.ID, samplePost())
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers)

	all, err := posts.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers)
}

// ─── users ──────────────────────────────────────────────────────────────────

func TestMemoryUsers_CRUD(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryUsersProvider(utils.NewUUIDGenerator(), staticTokens(true), logger.Nop())

	in := models.UserInput{Email: "alice@example.com", Nickname: "alice"}
	created, err := users.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in.Email, created.Email)

	got, ok, err := users.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, got)

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{created}, all)
}

func TestMemoryUsers_IsTokenValidDelegates(t *testing.T) {
	ctx := context.Background()

	allow := NewMemoryUsersProvider(utils.NewUUIDGenerator(), staticTokens(true), logger.Nop())
	deny := NewMemoryUsersProvider(utils.NewUUIDGenerator(), staticTokens(false), logger.Nop())

	assert.True(t, allow.IsTokenValid(ctx, "anything"))
	assert.False(t, deny.IsTokenValid(ctx, "anything"))
}
