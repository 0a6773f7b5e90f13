package web

import (
	"net/http"

	"github.com/vbonduro/citygrid/internal/domain"
)

// cityRef identifies the owning city in a waste request body.
type cityRef struct {
	ID int64 `json:"id" validate:"gt=0"`
}

type wasteRequest struct {
	City               cityRef      `json:"city"`
	Date               *domain.Date `json:"date" validate:"required"`
	Area               string       `json:"area" validate:"required,max=255"`
	WasteType          string       `json:"wasteType" validate:"required,max=255"`
	QuantityKg         float64      `json:"quantityKg" validate:"gte=0"`
	CollectionSchedule string       `json:"collectionSchedule" validate:"max=255"`
}

func (req wasteRequest) toRecord() *domain.Waste {
	return &domain.Waste{
		CityID:             req.City.ID,
		Date:               *req.Date,
		Area:               req.Area,
		WasteType:          req.WasteType,
		QuantityKg:         req.QuantityKg,
		CollectionSchedule: req.CollectionSchedule,
	}
}

func (s *Server) handleListWaste(w http.ResponseWriter, r *http.Request) {
	recs, err := s.waste.List(r.Context())
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleGetWaste(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.waste.Get(r.Context(), id)
	s.respond(w, r, http.StatusOK, rec, err)
}

func (s *Server) handleListWasteByCity(w http.ResponseWriter, r *http.Request) {
	cityID, err := pathID(r, "cityId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	recs, err := s.waste.ListByCity(r.Context(), cityID)
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleListWasteForPeriod(w http.ResponseWriter, r *http.Request) {
	cityID, err := pathID(r, "cityId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	recs, err := s.waste.ListForPeriod(r.Context(), cityID, q.Get("startDate"), q.Get("endDate"))
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleCreateWaste(w http.ResponseWriter, r *http.Request) {
	var req wasteRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	rec, err := s.waste.Create(r.Context(), req.toRecord())
	s.respond(w, r, http.StatusCreated, rec, err)
}

func (s *Server) handleUpdateWaste(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req wasteRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	rec, err := s.waste.Update(r.Context(), id, req.toRecord())
	s.respond(w, r, http.StatusOK, rec, err)
}

func (s *Server) handleDeleteWaste(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.waste.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
