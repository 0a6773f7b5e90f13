package web

import "net/http"

type authRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	token, err := s.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, authResponse{Token: token})
}
