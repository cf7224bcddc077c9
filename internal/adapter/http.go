package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/models"
)

type httpPostsAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPPostsAPI builds a REST client of the server at address, which may
// omit the scheme ("127.0.0.1:8080").
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPPostsAPI(address string, timeout time.Duration, logger *logger.Logger) (PostsAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpPostsAPI{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpPostsAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpPostsAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpPostsAPI) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&posts).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpPostsAPI) GetPost(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&post).
		Get("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpPostsAPI) CreatePost(ctx context.Context, in models.PostInput) (models.Post, string, error) {
	var post models.Post
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&post).
		Post("/posts")
	if err != nil {
		return models.Post{}, "", fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, "", err
	}

	return post, resp.Header().Get("Location"), nil
}

func (h *httpPostsAPI) UpdatePost(ctx context.Context, id string, in models.PostInput) (models.Post, error) {
	var post models.Post
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(in).
		SetResult(&post).
		Put("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpPostsAPI) DeletePost(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/posts/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPostsAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpPostsAPI) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&user).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpPostsAPI) CreateUser(ctx context.Context, in models.UserInput) (models.User, string, error) {
	var user models.User
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&user).
		Post("/users")
	if err != nil {
		return models.User{}, "", fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, "", err
	}

	return user, resp.Header().Get("Location"), nil
}

func (h *httpPostsAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// authedRequest starts a request carrying the stored bearer token.
func (h *httpPostsAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	} else {
		h.logger.Debug().Msg("protected request without token")
	}
	return req
}
