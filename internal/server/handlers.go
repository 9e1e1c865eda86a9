package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leapstack-labs/roman/internal/person"
)

const maxBodyBytes = 1 << 20

// detail is the error body shape used by every endpoint.
type detail struct {
	Detail string `json:"detail"`
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, []string{"Hello from the index!"})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Error("store ping failed", "error", err)
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createName(w http.ResponseWriter, r *http.Request) {
	p, err := person.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, detail{Detail: err.Error()})
		return
	}

	data, err := person.Marshal(p)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if err := s.store.Put(r.Context(), s.collection, p.Name, data); err != nil {
		s.internalError(w, r, err)
		return
	}

	s.logger.Info("stored person", "name", p.Name)
	s.writeJSON(w, http.StatusCreated, fmt.Sprintf("Added %s to database", p.Name))
}

func (s *Server) listNames(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.ListKeys(r.Context(), s.collection)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, names)
}

func (s *Server) getName(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, detail{Detail: "invalid name in path"})
		return
	}

	data, found, err := s.store.Get(r.Context(), s.collection, name)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if !found {
		s.writeJSON(w, http.StatusNotFound, detail{Detail: fmt.Sprintf("'%s' not known in database", name)})
		return
	}

	p, err := person.Unmarshal(data)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) convertNumeral(w http.ResponseWriter, r *http.Request) {
	value, err := pathParam(r, "value")
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, detail{Detail: "invalid value in path"})
		return
	}

	strict, err := boolQuery(r, "strict", s.strict)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, detail{Detail: err.Error()})
		return
	}
	foldCase, err := boolQuery(r, "fold_case", s.foldCase)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, detail{Detail: err.Error()})
		return
	}

	res, err := s.converter(strict, foldCase).Convert(value)
	if err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, detail{Detail: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// pathParam returns a route parameter. chi matches on RawPath when the
// request needed escaping, in which case the parameter is still encoded.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}

func boolQuery(r *http.Request, key string, def bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("query parameter %s must be a boolean", key)
	}
	return v, nil
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err),
	)
	s.writeJSON(w, http.StatusInternalServerError, detail{Detail: "internal server error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("failed to write response", "error", err)
	}
}
