package web

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vbonduro/citygrid/internal/service"
)

// Services bundles the application services the HTTP API exposes.
type Services struct {
	Cities      *service.CityService
	Electricity *service.ElectricityService
	WaterSupply *service.WaterSupplyService
	Waste       *service.WasteService
	Auth        *service.AuthService
}

type Options struct {
	// CORSOrigin is the browser origin allowed to call the API. "*" allows any.
	CORSOrigin     string
	MaxUploadBytes int64
	// AuthEnabled requires a bearer token on every /api/ route.
	AuthEnabled bool
}

type Server struct {
	cities      *service.CityService
	electricity *service.ElectricityService
	waterSupply *service.WaterSupplyService
	waste       *service.WasteService
	auth        *service.AuthService
	opts        Options
	validate    *validator.Validate
	mux         *http.ServeMux
	handler     http.Handler
	logger      *slog.Logger
}

func NewServer(svcs Services, opts Options, logger *slog.Logger) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}

	s := &Server{
		cities:      svcs.Cities,
		electricity: svcs.Electricity,
		waterSupply: svcs.WaterSupply,
		waste:       svcs.Waste,
		auth:        svcs.Auth,
		opts:        opts,
		validate:    newValidator(),
		mux:         http.NewServeMux(),
		logger:      logger,
	}
	s.registerRoutes()
	s.handler = requestLogger(logger, securityHeaders(cors(opts.CORSOrigin, s.requireAuth(s.mux))))
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /authenticate", s.handleAuthenticate)

	s.mux.HandleFunc("GET /api/city", s.handleListCities)
	s.mux.HandleFunc("POST /api/city", s.handleCreateCity)
	s.mux.HandleFunc("GET /api/city/{id}", s.handleGetCity)
	s.mux.HandleFunc("PUT /api/city/{id}", s.handleUpdateCity)
	s.mux.HandleFunc("DELETE /api/city/{id}", s.handleDeleteCity)

	s.mux.HandleFunc("GET /api/electricity", s.handleListElectricity)
	s.mux.HandleFunc("POST /api/electricity", s.handleCreateElectricity)
	s.mux.HandleFunc("GET /api/electricity/outages", s.handleElectricityOutages)
	s.mux.HandleFunc("GET /api/electricity/area-trends", s.handleElectricityAreaTrends)
	s.mux.HandleFunc("GET /api/electricity/{id}", s.handleGetElectricity)
	s.mux.HandleFunc("PUT /api/electricity/{id}", s.handleUpdateElectricity)
	s.mux.HandleFunc("DELETE /api/electricity/{id}", s.handleDeleteElectricity)
	s.mux.HandleFunc("GET /api/electricity/city/{cityId}", s.handleListElectricityByCity)
	s.mux.HandleFunc("GET /api/electricity/city/{cityId}/period", s.handleListElectricityForPeriod)
	s.mux.HandleFunc("POST /api/electricity/city/{cityId}/import", s.handleImport("electricity", s.electricity.Import))
	s.mux.HandleFunc("GET /api/electricity/city/{cityId}/export", s.handleExport("electricity", s.electricity.Export))

	s.mux.HandleFunc("GET /api/water-supply", s.handleListWaterSupply)
	s.mux.HandleFunc("POST /api/water-supply", s.handleCreateWaterSupply)
	s.mux.HandleFunc("GET /api/water-supply/area-trends", s.handleWaterSupplyAreaTrends)
	s.mux.HandleFunc("GET /api/water-supply/{id}", s.handleGetWaterSupply)
	s.mux.HandleFunc("PUT /api/water-supply/{id}", s.handleUpdateWaterSupply)
	s.mux.HandleFunc("DELETE /api/water-supply/{id}", s.handleDeleteWaterSupply)
	s.mux.HandleFunc("GET /api/water-supply/city/{cityId}", s.handleListWaterSupplyByCity)
	s.mux.HandleFunc("GET /api/water-supply/city/{cityId}/period", s.handleListWaterSupplyForPeriod)
	s.mux.HandleFunc("POST /api/water-supply/city/{cityId}/import", s.handleImport("water-supply", s.waterSupply.Import))
	s.mux.HandleFunc("GET /api/water-supply/city/{cityId}/export", s.handleExport("water-supply", s.waterSupply.Export))

	s.mux.HandleFunc("GET /api/waste", s.handleListWaste)
	s.mux.HandleFunc("POST /api/waste", s.handleCreateWaste)
	s.mux.HandleFunc("GET /api/waste/{id}", s.handleGetWaste)
	s.mux.HandleFunc("PUT /api/waste/{id}", s.handleUpdateWaste)
	s.mux.HandleFunc("DELETE /api/waste/{id}", s.handleDeleteWaste)
	s.mux.HandleFunc("GET /api/waste/city/{cityId}", s.handleListWasteByCity)
	s.mux.HandleFunc("GET /api/waste/city/{cityId}/period", s.handleListWasteForPeriod)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// HTTPServer returns an *http.Server serving s on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// newValidator reports field names by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
