// Package gateway implements the public edge of ShareIt: it validates inbound
// payloads and forwards well-formed requests to the internal server, relaying
// the server's responses verbatim.
package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"

	apihttp "shareit-backend/internal/api/http"
	"shareit-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type errorResponse struct {
	Error string `json:"error"`
}

func relay(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Error("failed to relay response", "error", err)
	}
}

func relayOrFail(w http.ResponseWriter, status int, body []byte, err error) {
	if err != nil {
		logger.Error("forwarding failed", "error", err)
		writeError(w, http.StatusBadGateway, "shareit server unavailable")
		return
	}
	relay(w, status, body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func decodeJSON(r *http.Request, dst any) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}

// checkPayload decodes and validates a request body, writing a 400 on failure.
func checkPayload(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) bool {
	if !decodeJSON(r, dst) {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	if err := v.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	v := r.Header.Get(apihttp.UserIDHeader)
	if v == "" {
		writeError(w, http.StatusBadRequest, "missing "+apihttp.UserIDHeader+" header")
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+apihttp.UserIDHeader+" header")
		return 0, false
	}
	return id, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v := mux.Vars(r)[name]
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid path parameter "+name)
		return 0, false
	}
	return id, true
}
