package domain

import "time"

type City struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Country string `db:"country" json:"country"`
}

type Electricity struct {
	ID                    int64   `db:"id" json:"id"`
	CityID                int64   `db:"city_id" json:"-"`
	Date                  Date    `db:"date" json:"date"`
	Area                  string  `db:"area" json:"area"`
	ConsumptionKwh        float64 `db:"consumption_kwh" json:"consumptionKwh"`
	OutageDurationMinutes int     `db:"outage_duration_minutes" json:"outageDurationMinutes"`
	OutageReason          string  `db:"outage_reason" json:"outageReason"`
	City                  City    `db:"city" json:"city"`
}

type WaterSupply struct {
	ID                       int64   `db:"id" json:"id"`
	CityID                   int64   `db:"city_id" json:"-"`
	Date                     Date    `db:"date" json:"date"`
	Area                     string  `db:"area" json:"area"`
	ConsumptionLiters        float64 `db:"consumption_liters" json:"consumptionLiters"`
	ProductionLiters         float64 `db:"production_liters" json:"productionLiters"`
	ReservoirLevelPercentage float64 `db:"reservoir_level_percentage" json:"reservoirLevelPercentage"`
	RainfallMm               float64 `db:"rainfall_mm" json:"rainfallMm"`
	City                     City    `db:"city" json:"city"`
}

type Waste struct {
	ID                 int64   `db:"id" json:"id"`
	CityID             int64   `db:"city_id" json:"-"`
	Date               Date    `db:"date" json:"date"`
	Area               string  `db:"area" json:"area"`
	WasteType          string  `db:"waste_type" json:"wasteType"`
	QuantityKg         float64 `db:"quantity_kg" json:"quantityKg"`
	CollectionSchedule string  `db:"collection_schedule" json:"collectionSchedule"`
	City               City    `db:"city" json:"city"`
}

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Token struct {
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}

// Kind names a utility-record schema variant.
type Kind string

const (
	KindElectricity Kind = "electricity"
	KindWaterSupply Kind = "water-supply"
	KindWaste       Kind = "waste"
)

// AreaTotal is one row of a per-area consumption report.
type AreaTotal struct {
	Area             string  `json:"area"`
	TotalConsumption float64 `json:"totalConsumption"`
}
