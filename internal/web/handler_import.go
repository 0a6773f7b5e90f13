package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// multipartMemory is how much of an upload ParseMultipartForm keeps in memory
// before spilling to a temporary file.
const multipartMemory = 8 << 20

type importFunc func(ctx context.Context, cityID int64, r io.Reader) (int, error)

type exportFunc func(ctx context.Context, cityID int64, w io.Writer) error

// handleImport accepts a multipart upload with a "file" field and imports it
// for the city named in the path.
func (s *Server) handleImport(kind string, run importFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cityID, err := pathID(r, "cityId")
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.writeErrorMessage(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
				return
			}
			s.writeErrorMessage(w, http.StatusBadRequest, "failed to parse form")
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				s.logger.Error("failed to remove multipart temp files", "error", err)
			}
		}()

		file, header, err := r.FormFile("file")
		if err != nil {
			s.writeErrorMessage(w, http.StatusBadRequest, "file is required")
			return
		}
		defer closeWithLog(file, "upload file", s.logger)

		s.logger.Info("import started", "kind", kind, "city_id", cityID, "filename", header.Filename, "bytes", header.Size)

		n, err := run(r.Context(), cityID, file)
		if err != nil {
			if n > 0 {
				err = fmt.Errorf("%w (%d records imported before the failure)", err, n)
			}
			s.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprintf(w, "%d records imported successfully for city ID: %d", n, cityID); err != nil {
			s.logger.Error("write import response failed", "error", err)
		}
	}
}

// handleExport streams the city's records as CSV in the import layout.
func (s *Server) handleExport(kind string, run exportFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cityID, err := pathID(r, "cityId")
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		cw := &csvResponse{
			ResponseWriter: w,
			filename:       fmt.Sprintf("%s-city-%d.csv", kind, cityID),
		}
		if err := run(r.Context(), cityID, cw); err != nil {
			if cw.started {
				s.logger.Error("export interrupted", "kind", kind, "city_id", cityID, "error", err)
				return
			}
			s.writeError(w, r, err)
		}
	}
}

// csvResponse sets the CSV headers on the first write so that errors raised
// before any output can still be reported as JSON.
type csvResponse struct {
	http.ResponseWriter
	filename string
	started  bool
}

func (c *csvResponse) Write(p []byte) (int, error) {
	if !c.started {
		c.started = true
		h := c.Header()
		h.Set("Content-Type", "text/csv; charset=utf-8")
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.filename))
		c.WriteHeader(http.StatusOK)
	}
	return c.ResponseWriter.Write(p)
}
