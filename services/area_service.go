package services

import (
	"context"
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/delivery"
	"backend/repository"

	"gorm.io/gorm"
)

// AreaService resolves delivery areas and what is actually orderable in
// them: which restaurants serve an area and, through their menus, which
// foods. "Area does not exist" (NotFound) and "area exists but nobody
// delivers there" (empty result) are different outcomes and callers depend
// on the distinction.
type AreaService struct {
	AreaRepo *repository.AreaRepository
	RestRepo *repository.RestaurantRepository
}

func NewAreaService(ar *repository.AreaRepository, rr *repository.RestaurantRepository) *AreaService {
	return &AreaService{AreaRepo: ar, RestRepo: rr}
}

// Resolve finds an area by id, exact case-insensitive name, or postal-code
// membership, in that order of preference.
func (s *AreaService) Resolve(ctx context.Context, id uint, name, postalCode string) (*entity.Area, error) {
	var (
		a   *entity.Area
		err error
	)
	switch {
	case id != 0:
		a, err = s.AreaRepo.FindByID(ctx, id)
	case name != "":
		a, err = s.AreaRepo.FindByName(ctx, name)
	case postalCode != "":
		a, err = s.AreaRepo.FindByPostalCode(ctx, postalCode)
	default:
		return nil, apperr.New(apperr.KindValidation, "area name, postal code or id is required")
	}
	if err != nil {
		return nil, apperr.FromDB(err, "delivery area not found")
	}
	return a, nil
}

// RestaurantsServing lists the restaurants delivering to an area. Empty is a
// valid answer.
func (s *AreaService) RestaurantsServing(ctx context.Context, areaID uint) ([]entity.Restaurant, error) {
	rests, err := s.RestRepo.FindServingArea(ctx, areaID)
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return rests, nil
}

// AvailableFoodIDs is the union of the serving restaurants' menus, first
// occurrence order, duplicates collapsed by id.
func (s *AreaService) AvailableFoodIDs(ctx context.Context, areaID uint) ([]uint, error) {
	rests, err := s.RestaurantsServing(ctx, areaID)
	if err != nil {
		return nil, err
	}
	seen := make(map[uint]bool)
	ids := []uint{}
	for _, r := range rests {
		for _, f := range r.Menu {
			if !seen[f.ID] {
				seen[f.ID] = true
				ids = append(ids, f.ID)
			}
		}
	}
	return ids, nil
}

type CheckDeliveryIn struct {
	AreaName   string  `json:"areaName"`
	PostalCode string  `json:"postalCode"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// RestaurantAvailability is a serving restaurant annotated with the quote
// for delivering from it into the checked area.
type RestaurantAvailability struct {
	entity.Restaurant
	DeliveryFee          int64              `json:"deliveryFee"`
	DeliveryFeeBreakdown delivery.Breakdown `json:"deliveryFeeBreakdown"`
	EstimatedMinutes     int                `json:"estimatedDeliveryTime"`
	DistanceKm           *float64           `json:"distanceKm"`
}

type CheckDeliveryOut struct {
	Area        *entity.Area             `json:"area"`
	Restaurants []RestaurantAvailability `json:"restaurants"`
}

// CheckDelivery resolves the area, gates on its service radius, and quotes
// fee/ETA per serving restaurant against the user's position.
func (s *AreaService) CheckDelivery(ctx context.Context, in *CheckDeliveryIn) (*CheckDeliveryOut, error) {
	userCoords := entity.Coordinate{Lat: in.Lat, Lng: in.Lng}
	if !userCoords.InRange() {
		return nil, apperr.New(apperr.KindValidation, "malformed coordinate")
	}

	area, err := s.Resolve(ctx, 0, in.AreaName, in.PostalCode)
	if err != nil {
		return nil, err
	}

	if !delivery.WithinServiceRadius(userCoords, area) {
		return nil, apperr.New(apperr.KindValidation, "location is outside the service radius")
	}

	rests, err := s.RestaurantsServing(ctx, area.ID)
	if err != nil {
		return nil, err
	}

	out := &CheckDeliveryOut{Area: area, Restaurants: make([]RestaurantAvailability, 0, len(rests))}
	for _, r := range rests {
		out.Restaurants = append(out.Restaurants, annotate(r, area, userCoords))
	}
	return out, nil
}

func annotate(r entity.Restaurant, area *entity.Area, userCoords entity.Coordinate) RestaurantAvailability {
	dist := delivery.DistanceKm(userCoords, r.Coords)
	quote := delivery.Fee(area, dist)
	return RestaurantAvailability{
		Restaurant:           r,
		DeliveryFee:          quote.Fee,
		DeliveryFeeBreakdown: quote.Breakdown,
		EstimatedMinutes:     delivery.EstimatedMinutes(area, dist),
		DistanceKm:           dist,
	}
}

func (s *AreaService) ListAreas(ctx context.Context) ([]entity.Area, error) {
	areas, err := s.AreaRepo.ListActive(ctx)
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return areas, nil
}

type AreaDetailOut struct {
	Area        *entity.Area        `json:"area"`
	Restaurants []entity.Restaurant `json:"restaurants"`
}

func (s *AreaService) AreaDetail(ctx context.Context, id uint) (*AreaDetailOut, error) {
	area, err := s.Resolve(ctx, id, "", "")
	if err != nil {
		return nil, err
	}
	rests, err := s.RestaurantsServing(ctx, area.ID)
	if err != nil {
		return nil, err
	}
	return &AreaDetailOut{Area: area, Restaurants: rests}, nil
}

// resolveAreaFilter is the shared area-scoping hook for food listing and
// search. An empty query means no scoping (nil ids); an unknown area is
// NotFound; a known area with no coverage yields empty, non-nil ids.
func (s *AreaService) resolveAreaFilter(ctx context.Context, areaQuery string) (label string, ids []uint, err error) {
	if areaQuery == "" {
		return "All Areas", nil, nil
	}
	area, err := s.AreaRepo.FindByName(ctx, areaQuery)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// a numeric-looking query may be a postal code
		area, err = s.AreaRepo.FindByPostalCode(ctx, areaQuery)
	}
	if err != nil {
		return "", nil, apperr.FromDB(err, "delivery area not found")
	}
	ids, err = s.AvailableFoodIDs(ctx, area.ID)
	if err != nil {
		return "", nil, err
	}
	return area.Name, ids, nil
}
