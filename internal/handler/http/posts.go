// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
)

const postsPath = "/posts/"

// listPosts handles GET /posts.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := h.states.Posts.Provider.GetAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPosts").Msg("error listing posts")
		h.writeError(w, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	if _, err = utils.WriteJSON(w, posts, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listPosts").Msg("error writing response")
	}
}

// getPost handles GET /posts/{id}.
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	post, ok, err := h.states.Posts.Provider.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPost").Str("id", id).Msg("error getting post")
		h.writeError(w, err)
		return
	}
	if !ok {
		utils.WriteStatus(w, http.StatusNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getPost").Msg("error writing response")
	}
}

// createPost handles POST /posts. The new post is returned with its
// Location.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	in, err := decodeBody[models.PostInput](w, r, h.validator, validators.SchemaPostInput)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createPost").Msg("invalid post data")
		h.writeError(w, err)
		return
	}

	post, err := h.states.Posts.Provider.Create(r.Context(), in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("error creating post")
		h.writeError(w, err)
		return
	}

	w.Header().Set("Location", postsPath+post.ID)
	if _, err = utils.WriteJSON(w, post, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createPost").Msg("error writing response")
	}
}

// updatePost handles PUT /posts/{id}. Every field of the post is replaced.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	in, err := decodeBody[models.PostInput](w, r, h.validator, validators.SchemaPostInput)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updatePost").Msg("invalid post data")
		h.writeError(w, err)
		return
	}

	post, ok, err := h.states.Posts.Provider.Update(r.Context(), id, in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePost").Str("id", id).Msg("error updating post")
		h.writeError(w, err)
		return
	}
	if !ok {
		utils.WriteStatus(w, http.StatusNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updatePost").Msg("error writing response")
	}
}

// deletePost handles DELETE /posts/{id}.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	ok, err := h.states.Posts.Provider.Delete(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deletePost").Str("id", id).Msg("error deleting post")
		h.writeError(w, err)
		return
	}
	if !ok {
		utils.WriteStatus(w, http.StatusNotFound)
		return
	}

	utils.WriteStatus(w, http.StatusNoContent)
}
