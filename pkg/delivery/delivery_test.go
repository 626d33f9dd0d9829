package delivery

import (
	"math"
	"testing"

	"backend/entity"
)

var (
	jaipur  = entity.Coordinate{Lat: 26.9124, Lng: 75.7873}
	suburbs = entity.Coordinate{Lat: 26.8842, Lng: 75.8218}
	delhi   = entity.Coordinate{Lat: 28.6139, Lng: 77.2090}
)

func TestDistanceKm_Symmetric(t *testing.T) {
	ab := DistanceKm(jaipur, suburbs)
	ba := DistanceKm(suburbs, jaipur)
	if ab == nil || ba == nil {
		t.Fatal("expected a distance for two known points")
	}
	if math.Abs(*ab-*ba) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", *ab, *ba)
	}
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	d := DistanceKm(jaipur, jaipur)
	if d == nil {
		t.Fatal("expected a distance")
	}
	if *d > 1e-9 {
		t.Errorf("expected zero distance, got %f", *d)
	}
}

func TestDistanceKm_PlausibleMagnitude(t *testing.T) {
	// Jaipur downtown to suburbs is a few km, not hundreds.
	d := DistanceKm(jaipur, suburbs)
	if d == nil {
		t.Fatal("expected a distance")
	}
	if *d < 3 || *d > 7 {
		t.Errorf("implausible distance %f km", *d)
	}

	far := DistanceKm(jaipur, delhi)
	if far == nil {
		t.Fatal("expected a distance")
	}
	if *far < 200 || *far > 300 {
		t.Errorf("implausible Jaipur-Delhi distance %f km", *far)
	}
}

func TestDistanceKm_MissingComponent(t *testing.T) {
	if d := DistanceKm(entity.Coordinate{Lat: 0, Lng: 75.78}, jaipur); d != nil {
		t.Errorf("zero latitude should yield nil, got %f", *d)
	}
	if d := DistanceKm(jaipur, entity.Coordinate{Lat: 26.9, Lng: 0}); d != nil {
		t.Errorf("zero longitude should yield nil, got %f", *d)
	}
}

func TestFee_RoundsUpStartedKm(t *testing.T) {
	area := &entity.Area{BaseFee: 3000, PerKmFee: 600}
	dist := 3.2
	q := Fee(area, &dist)

	// 3.2 km bills as 4 km.
	if q.Fee != 3000+4*600 {
		t.Errorf("fee = %d, want %d", q.Fee, 3000+4*600)
	}
	if q.Breakdown.BaseFee != 3000 || q.Breakdown.DistanceFee != 2400 {
		t.Errorf("breakdown = %+v", q.Breakdown)
	}
}

func TestFee_DefaultsWhenAreaUnconfigured(t *testing.T) {
	dist := 1.0
	q := Fee(&entity.Area{}, &dist)
	if q.Fee != entity.DefaultBaseFee+entity.DefaultPerKmFee {
		t.Errorf("fee = %d, want %d", q.Fee, entity.DefaultBaseFee+entity.DefaultPerKmFee)
	}
}

func TestFee_UnknownDistanceBillsBaseOnly(t *testing.T) {
	area := &entity.Area{BaseFee: 3000, PerKmFee: 600}
	q := Fee(area, nil)
	if q.Fee != 3000 {
		t.Errorf("fee = %d, want 3000", q.Fee)
	}
	if q.Breakdown.DistanceFee != 0 {
		t.Errorf("distance fee = %d, want 0", q.Breakdown.DistanceFee)
	}
}

func TestFee_NilArea(t *testing.T) {
	dist := 5.0
	if q := Fee(nil, &dist); q.Fee != 0 {
		t.Errorf("fee = %d, want 0", q.Fee)
	}
}

func TestEstimatedMinutes(t *testing.T) {
	area := &entity.Area{EtaMinutes: 35}

	dist := 10.0
	if got := EstimatedMinutes(area, &dist); got != 50 {
		t.Errorf("eta = %d, want 50", got)
	}

	if got := EstimatedMinutes(area, nil); got != 35 {
		t.Errorf("eta without distance = %d, want 35", got)
	}

	if got := EstimatedMinutes(nil, &dist); got != entity.DefaultEtaMinutes {
		t.Errorf("eta for nil area = %d, want %d", got, entity.DefaultEtaMinutes)
	}

	if got := EstimatedMinutes(&entity.Area{}, nil); got != entity.DefaultEtaMinutes {
		t.Errorf("eta for unconfigured area = %d, want %d", got, entity.DefaultEtaMinutes)
	}
}

func TestWithinServiceRadius(t *testing.T) {
	area := &entity.Area{ServiceRadiusKm: 8, Coords: jaipur}

	if !WithinServiceRadius(suburbs, area) {
		t.Error("suburbs should sit inside the 8 km radius")
	}
	if WithinServiceRadius(delhi, area) {
		t.Error("Delhi should sit outside the Jaipur radius")
	}
}

func TestWithinServiceRadius_FailsOpen(t *testing.T) {
	area := &entity.Area{ServiceRadiusKm: 1, Coords: jaipur}

	if !WithinServiceRadius(entity.Coordinate{}, area) {
		t.Error("missing user coords must not block service")
	}
	if !WithinServiceRadius(delhi, &entity.Area{ServiceRadiusKm: 1}) {
		t.Error("missing area coords must not block service")
	}
	if !WithinServiceRadius(delhi, nil) {
		t.Error("nil area must not block service")
	}
}

func TestWithinServiceRadius_DefaultRadius(t *testing.T) {
	// Radius 0 falls back to the default, which covers the suburbs run.
	area := &entity.Area{Coords: jaipur}
	if !WithinServiceRadius(suburbs, area) {
		t.Error("default radius should cover the suburbs")
	}
	if WithinServiceRadius(delhi, area) {
		t.Error("default radius must not reach Delhi")
	}
}
