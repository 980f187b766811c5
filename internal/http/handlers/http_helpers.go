package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/product-inventory/internal/models"
	repo "github.com/rogerio-castellano/product-inventory/internal/repo"
	log "github.com/sirupsen/logrus"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		log.WithError(err).Error("failed to write JSON response")
	}
}

// statusFor maps inventory error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, models.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, repo.ErrProductNotFound), errors.Is(err, repo.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, repo.ErrDuplicateID), errors.Is(err, models.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, repo.ErrParse):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("inventory operation failed")
	}
	http.Error(w, err.Error(), status)
}

// productIDParam returns the decoded {id} path segment. chi matches on
// RawPath when the request carries one, and on the already decoded Path
// otherwise.
func productIDParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(id)
		if err != nil {
			return "", errors.New("invalid product ID")
		}
		id = unescaped
	}
	if id == "" {
		return "", errors.New("invalid product ID")
	}
	return id, nil
}
