package web

import (
	"net/http"

	"github.com/vbonduro/citygrid/internal/domain"
)

type electricityRequest struct {
	CityID                int64        `json:"cityId" validate:"required,gt=0"`
	Date                  *domain.Date `json:"date" validate:"required"`
	Area                  *string      `json:"area" validate:"required,max=255"`
	ConsumptionKwh        float64      `json:"consumptionKwh" validate:"gte=0"`
	OutageDurationMinutes int          `json:"outageDurationMinutes" validate:"gte=0"`
	OutageReason          string       `json:"outageReason" validate:"max=255"`
}

func (req electricityRequest) toRecord() *domain.Electricity {
	return &domain.Electricity{
		CityID:                req.CityID,
		Date:                  *req.Date,
		Area:                  *req.Area,
		ConsumptionKwh:        req.ConsumptionKwh,
		OutageDurationMinutes: req.OutageDurationMinutes,
		OutageReason:          req.OutageReason,
	}
}

func (s *Server) handleListElectricity(w http.ResponseWriter, r *http.Request) {
	recs, err := s.electricity.List(r.Context())
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleGetElectricity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.electricity.Get(r.Context(), id)
	s.respond(w, r, http.StatusOK, rec, err)
}

func (s *Server) handleListElectricityByCity(w http.ResponseWriter, r *http.Request) {
	cityID, err := pathID(r, "cityId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	recs, err := s.electricity.ListByCity(r.Context(), cityID)
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleListElectricityForPeriod(w http.ResponseWriter, r *http.Request) {
	cityID, err := pathID(r, "cityId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	recs, err := s.electricity.ListForPeriod(r.Context(), cityID, q.Get("startDate"), q.Get("endDate"))
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleElectricityOutages(w http.ResponseWriter, r *http.Request) {
	recs, err := s.electricity.Outages(r.Context())
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleElectricityAreaTrends(w http.ResponseWriter, r *http.Request) {
	totals, err := s.electricity.AreaTrends(r.Context())
	s.respond(w, r, http.StatusOK, totals, err)
}

func (s *Server) handleCreateElectricity(w http.ResponseWriter, r *http.Request) {
	var req electricityRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	rec, err := s.electricity.Create(r.Context(), req.toRecord())
	s.respond(w, r, http.StatusCreated, rec, err)
}

func (s *Server) handleUpdateElectricity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req electricityRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	rec, err := s.electricity.Update(r.Context(), id, req.toRecord())
	s.respond(w, r, http.StatusOK, rec, err)
}

func (s *Server) handleDeleteElectricity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.electricity.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
