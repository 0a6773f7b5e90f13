package web

import (
	"net/http"

	"github.com/vbonduro/citygrid/internal/domain"
)

type waterSupplyRequest struct {
	CityID                   int64        `json:"cityId" validate:"required,gt=0"`
	Date                     *domain.Date `json:"date" validate:"required"`
	Area                     *string      `json:"area" validate:"required,max=255"`
	ConsumptionLiters        float64      `json:"consumptionLiters" validate:"gte=0"`
	ProductionLiters         float64      `json:"productionLiters" validate:"gte=0"`
	ReservoirLevelPercentage float64      `json:"reservoirLevelPercentage" validate:"gte=0,lte=100"`
	RainfallMm               float64      `json:"rainfallMm" validate:"gte=0"`
}

func (req waterSupplyRequest) toRecord() *domain.WaterSupply {
	return &domain.WaterSupply{
		CityID:                   req.CityID,
		Date:                     *req.Date,
		Area:                     *req.Area,
		ConsumptionLiters:        req.ConsumptionLiters,
		ProductionLiters:         req.ProductionLiters,
		ReservoirLevelPercentage: req.ReservoirLevelPercentage,
		RainfallMm:               req.RainfallMm,
	}
}

func (s *Server) handleListWaterSupply(w http.ResponseWriter, r *http.Request) {
	recs, err := s.waterSupply.List(r.Context())
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleGetWaterSupply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.waterSupply.Get(r.Context(), id)
	s.respond(w, r, http.StatusOK, rec, err)
}

func (s *Server) handleListWaterSupplyByCity(w http.ResponseWriter, r *http.Request) {
	cityID, err := pathID(r, "cityId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	recs, err := s.waterSupply.ListByCity(r.Context(), cityID)
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleListWaterSupplyForPeriod(w http.ResponseWriter, r *http.Request) {
	cityID, err := pathID(r, "cityId")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	recs, err := s.waterSupply.ListForPeriod(r.Context(), cityID, q.Get("startDate"), q.Get("endDate"))
	s.respond(w, r, http.StatusOK, recs, err)
}

func (s *Server) handleWaterSupplyAreaTrends(w http.ResponseWriter, r *http.Request) {
	totals, err := s.waterSupply.AreaTrends(r.Context())
	s.respond(w, r, http.StatusOK, totals, err)
}

func (s *Server) handleCreateWaterSupply(w http.ResponseWriter, r *http.Request) {
	var req waterSupplyRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	rec, err := s.waterSupply.Create(r.Context(), req.toRecord())
	s.respond(w, r, http.StatusCreated, rec, err)
}

func (s *Server) handleUpdateWaterSupply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req waterSupplyRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	rec, err := s.waterSupply.Update(r.Context(), id, req.toRecord())
	s.respond(w, r, http.StatusOK, rec, err)
}

func (s *Server) handleDeleteWaterSupply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.waterSupply.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
