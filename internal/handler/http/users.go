package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
)

const usersPath = "/users/"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.states.Users.Provider.GetAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		h.writeError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	if _, err = utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error writing response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	user, ok, err := h.states.Users.Provider.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Str("id", id).Msg("error getting user")
		h.writeError(w, err)
		return
	}
	if !ok {
		utils.WriteStatus(w, http.StatusNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Msg("error writing response")
	}
}

// createUser is public: registering does not require a token.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	in, err := decodeBody[models.UserInput](w, r, h.validator, validators.SchemaUserInput)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.createUser").Msg("invalid user data")
		h.writeError(w, err)
		return
	}

	user, err := h.states.Users.Provider.Create(r.Context(), in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		h.writeError(w, err)
		return
	}

	w.Header().Set("Location", usersPath+user.ID)
	if _, err = utils.WriteJSON(w, user, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error writing response")
	}
}
