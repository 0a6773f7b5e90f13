package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vbonduro/citygrid/internal/domain"
)

const maxJSONBytes = 1 << 20

type errorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response failed", "error", err)
	}
}

// respond writes v as JSON with status, or the error if err is non-nil.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, status, v)
}

// writeError reports err with the status its class maps to. Server errors are
// logged and answered with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg = "internal server error"
	}
	s.writeErrorMessage(w, status, msg)
}

func (s *Server) writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: msg,
	})
}

// decodeJSON reads the request body into dst and validates it. On failure it
// writes a 400 response and returns false.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			s.writeErrorMessage(w, http.StatusBadRequest, "request body is required")
			return false
		}
		s.writeErrorMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.writeErrorMessage(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err.Error()
	}

	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gt":
			msgs = append(msgs, field+" must be greater than "+fe.Param())
		case "gte":
			msgs = append(msgs, field+" must be at least "+fe.Param())
		case "lte":
			msgs = append(msgs, field+" must be at most "+fe.Param())
		case "max":
			msgs = append(msgs, field+" must be at most "+fe.Param()+" characters")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

// pathID parses the named path variable as a positive int64.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
