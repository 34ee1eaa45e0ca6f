package http

import (
	"net/http"
	"strconv"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"

	"github.com/google/uuid"
)

// UserIDHeader identifies the caller on every route except the user CRUD ones.
const UserIDHeader = "X-Sharer-User-Id"

const requestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogging assigns a request id and logs method, path, status and
// duration for every request.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logger.WithRequestID(requestID).Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

// callerID reads and parses the X-Sharer-User-Id header.
func callerID(r *http.Request) (int64, error) {
	v := r.Header.Get(UserIDHeader)
	if v == "" {
		return 0, domain.Validationf("missing %s header", UserIDHeader)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, domain.Validationf("invalid %s header: %s", UserIDHeader, v)
	}
	return id, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	v := muxVar(r, name)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, domain.Validationf("invalid path parameter %s: %s", name, v)
	}
	return id, nil
}
