package loadtest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-posts/internal/adapter"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/workers"
	"github.com/MKhiriev/go-posts/models"
)

// placeholder replaces author and content on update.
const placeholder = "-"

type Config struct {
	// Posts is the batch size.
	Posts int

	// Concurrency bounds in-flight requests within a phase.
	Concurrency int

	// Seed makes the generated batch reproducible.
	Seed uint64
}

// Runner executes lifecycle runs against one server.
type Runner struct {
	api      adapter.PostsAPI
	cfg      Config
	recorder *Recorder
	logger   *logger.Logger
}

func NewRunner(api adapter.PostsAPI, cfg Config, logger *logger.Logger) *Runner {
	return &Runner{
		api:      api,
		cfg:      cfg,
		recorder: NewRecorder(),
		logger:   logger,
	}
}

// Recorder exposes the latencies measured so far.
func (r *Runner) Recorder() *Recorder {
	return r.recorder
}

// Run executes every phase once and returns the latency summaries. Other
// clients may use the server concurrently: list checks only look at the
// posts of this run.
func (r *Runner) Run(ctx context.Context) ([]Summary, error) {
	if r.cfg.Posts <= 0 {
		return nil, ErrNoPosts
	}

	inputs := NewGenerator(r.cfg.Seed).PostInputs(r.cfg.Posts)
	posts := make([]models.Post, len(inputs))

	phases := []struct {
		name string
		run  func(context.Context) error
	}{
		{"create", func(ctx context.Context) error { return r.create(ctx, inputs, posts) }},
		{"get", func(ctx context.Context) error { return r.get(ctx, posts) }},
		{"update", func(ctx context.Context) error { return r.update(ctx, posts) }},
		{"list", func(ctx context.Context) error { return r.listContains(ctx, posts) }},
		{"delete", func(ctx context.Context) error { return r.delete(ctx, posts) }},
		{"list after delete", func(ctx context.Context) error { return r.listExcludes(ctx, posts) }},
	}
	for _, phase := range phases {
		start := time.Now()
		if err := phase.run(ctx); err != nil {
			return nil, fmt.Errorf("%s phase: %w", phase.name, err)
		}
		r.logger.Info().
			Str("phase", phase.name).
			Int("posts", len(posts)).
			Dur("duration", time.Since(start)).
			Msg("phase finished")
	}

	return r.recorder.Summaries(), nil
}

// forEach fans fn out over indexes of the batch.
func (r *Runner) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	batch := workers.New(r.cfg.Concurrency)
	for i := range n {
		batch.Add(workers.WorkerFunc(func(ctx context.Context) error {
			return fn(ctx, i)
		}))
	}
	return batch.Run(ctx)
}

func (r *Runner) create(ctx context.Context, inputs []models.PostInput, posts []models.Post) error {
	err := r.forEach(ctx, len(inputs), func(ctx context.Context, i int) error {
		return r.recorder.Measure(OpCreate, func() error {
			post, location, err := r.api.CreatePost(ctx, inputs[i])
			if err != nil {
				return err
			}
			if location != "/posts/"+post.ID {
				return fmt.Errorf("%w: location %q of post %s", ErrMismatch, location, post.ID)
			}
			if err = compare(post, inputs[i]); err != nil {
				return err
			}
			posts[i] = post
			return nil
		})
	})
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func (r *Runner) get(ctx context.Context, posts []models.Post) error {
	return r.forEach(ctx, len(posts), func(ctx context.Context, i int) error {
		return r.recorder.Measure(OpGet, func() error {
			got, err := r.api.GetPost(ctx, posts[i].ID)
			if err != nil {
				return err
			}
			return compare(got, posts[i].Input())
		})
	})
}

func (r *Runner) update(ctx context.Context, posts []models.Post) error {
	return r.forEach(ctx, len(posts), func(ctx context.Context, i int) error {
		in := models.PostInput{Author: placeholder, Content: placeholder, Date: posts[i].Date}
		return r.recorder.Measure(OpUpdate, func() error {
			updated, err := r.api.UpdatePost(ctx, posts[i].ID, in)
			if err != nil {
				return err
			}
			if updated.ID != posts[i].ID {
				return fmt.Errorf("%w: update changed id %s to %s", ErrMismatch, posts[i].ID, updated.ID)
			}
			if err = compare(updated, in); err != nil {
				return err
			}
			posts[i] = updated
			return nil
		})
	})
}

func (r *Runner) listContains(ctx context.Context, posts []models.Post) error {
	listed, err := r.list(ctx)
	if err != nil {
		return err
	}

	for _, want := range posts {
		got, ok := listed[want.ID]
		if !ok {
			return fmt.Errorf("%w: post %s missing from list", ErrMismatch, want.ID)
		}
		if err = compare(got, want.Input()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) delete(ctx context.Context, posts []models.Post) error {
	return r.forEach(ctx, len(posts), func(ctx context.Context, i int) error {
		return r.recorder.Measure(OpDelete, func() error {
			return r.api.DeletePost(ctx, posts[i].ID)
		})
	})
}

func (r *Runner) listExcludes(ctx context.Context, posts []models.Post) error {
	listed, err := r.list(ctx)
	if err != nil {
		return err
	}

	for _, p := range posts {
		if _, ok := listed[p.ID]; ok {
			return fmt.Errorf("%w: deleted post %s still listed", ErrMismatch, p.ID)
		}
	}

	// deleted posts must not be readable by id either
	_, err = r.api.GetPost(ctx, posts[0].ID)
	if !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: deleted post %s still readable: %v", ErrMismatch, posts[0].ID, err)
	}
	return nil
}

func (r *Runner) list(ctx context.Context) (map[string]models.Post, error) {
	var listed []models.Post
	err := r.recorder.Measure(OpList, func() error {
		var err error
		listed, err = r.api.ListPosts(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Post, len(listed))
	for _, p := range listed {
		byID[p.ID] = p
	}
	return byID, nil
}

// compare checks got against want. Dates are compared at microsecond
// precision.
func compare(got models.Post, want models.PostInput) error {
	switch {
	case got.Author != want.Author:
		return fmt.Errorf("%w: post %s author %q, want %q", ErrMismatch, got.ID, got.Author, want.Author)
	case got.Content != want.Content:
		return fmt.Errorf("%w: post %s content differs", ErrMismatch, got.ID)
	case !got.Date.Truncate(time.Microsecond).Equal(want.Date.Truncate(time.Microsecond)):
		return fmt.Errorf("%w: post %s date %s, want %s", ErrMismatch, got.ID, got.Date, want.Date)
	}
	return nil
}
