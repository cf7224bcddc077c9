// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-posts/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// chi answers 405 when a path matches but its method is not handled. The
// posts API answers 404 instead: a method without a registered handler
// does not exist, the same as an unknown path.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	utils.WriteStatus(w, http.StatusNotFound)
}
