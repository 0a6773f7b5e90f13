package web

import "net/http"

type cityRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Country string `json:"country" validate:"required,max=255"`
}

func (s *Server) handleListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.cities.ListCities(r.Context())
	s.respond(w, r, http.StatusOK, cities, err)
}

func (s *Server) handleGetCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	city, err := s.cities.GetCity(r.Context(), id)
	s.respond(w, r, http.StatusOK, city, err)
}

func (s *Server) handleCreateCity(w http.ResponseWriter, r *http.Request) {
	var req cityRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	city, err := s.cities.CreateCity(r.Context(), req.Name, req.Country)
	s.respond(w, r, http.StatusCreated, city, err)
}

func (s *Server) handleUpdateCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req cityRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	city, err := s.cities.UpdateCity(r.Context(), id, req.Name, req.Country)
	s.respond(w, r, http.StatusOK, city, err)
}

func (s *Server) handleDeleteCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.cities.DeleteCity(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
