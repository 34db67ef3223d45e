package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

var errMissingID = errors.New("missing id")

func idParam(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

// dateParam reads a YYYY-MM-DD query parameter, falling back to today
// when absent.
func dateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
