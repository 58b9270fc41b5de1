package http

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"loan-amortizer/domain"
)

// writeError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidFrequency),
		errors.Is(err, domain.ErrInconsistentInterestOnlyConfig),
		errors.Is(err, domain.ErrArithmeticDegenerate),
		errors.Is(err, domain.ErrInvalidParameter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
