// Package delivery holds the fee/ETA estimation engine: great-circle
// distance, tiered delivery-fee quoting and the service-radius gate.
// Everything here is pure; missing geodata never blocks service (the
// policy fails open on purpose).
package delivery

import (
	"math"

	"backend/entity"
)

const (
	earthRadiusKm = 6371
	minutesPerKm  = 1.5
)

// DistanceKm returns the haversine distance between two points, or nil when
// either point has a missing component (a zero lat/lng counts as missing).
func DistanceKm(a, b entity.Coordinate) *float64 {
	if a.Missing() || b.Missing() {
		return nil
	}

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	d := earthRadiusKm * c
	return &d
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

// Breakdown decomposes a quote for client display and audit.
type Breakdown struct {
	BaseFee     int64   `json:"baseFee"`
	DistanceFee int64   `json:"distanceFee"`
	DistanceKm  float64 `json:"distanceKm"`
}

type Quote struct {
	Fee       int64     `json:"fee"`
	Breakdown Breakdown `json:"breakdown"`
}

// Fee quotes the delivery fee for an area: base fee plus perKmFee for every
// started km. An unknown distance adds no distance penalty; a nil area
// quotes zero.
func Fee(area *entity.Area, distanceKm *float64) Quote {
	if area == nil {
		return Quote{}
	}

	base := area.BaseFee
	if base == 0 {
		base = entity.DefaultBaseFee
	}

	var distFee int64
	var km float64
	if distanceKm != nil {
		perKm := area.PerKmFee
		if perKm == 0 {
			perKm = entity.DefaultPerKmFee
		}
		km = *distanceKm
		distFee = int64(math.Ceil(km)) * perKm
	}

	return Quote{
		Fee: base + distFee,
		Breakdown: Breakdown{
			BaseFee:     base,
			DistanceFee: distFee,
			DistanceKm:  km,
		},
	}
}

// EstimatedMinutes estimates delivery time: the area's base estimate plus
// 1.5 minutes per km when the distance is known.
func EstimatedMinutes(area *entity.Area, distanceKm *float64) int {
	if area == nil {
		return entity.DefaultEtaMinutes
	}
	base := area.EtaMinutes
	if base == 0 {
		base = entity.DefaultEtaMinutes
	}
	if distanceKm == nil {
		return base
	}
	return int(math.Ceil(float64(base) + *distanceKm*minutesPerKm))
}

// WithinServiceRadius reports whether the user sits inside the area's
// service radius. True whenever either side lacks coordinates: unknown
// distance never blocks service.
func WithinServiceRadius(user entity.Coordinate, area *entity.Area) bool {
	if area == nil || user.Missing() || area.Coords.Missing() {
		return true
	}
	d := DistanceKm(user, area.Coords)
	if d == nil {
		return true
	}
	radius := area.ServiceRadiusKm
	if radius == 0 {
		radius = entity.DefaultServiceRadiusKm
	}
	return *d <= radius
}
