package services

import (
	"context"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type RestaurantService struct {
	RestRepo *repository.RestaurantRepository
	Areas    *AreaService
}

func NewRestaurantService(rr *repository.RestaurantRepository, areas *AreaService) *RestaurantService {
	return &RestaurantService{RestRepo: rr, Areas: areas}
}

type RestaurantListIn struct {
	Area string
	Lat  float64
	Lng  float64
}

type RestaurantListOut struct {
	Area        string `json:"area"`
	Count       int    `json:"count"`
	Restaurants any    `json:"restaurants"`
}

// List returns all restaurants, or, when an area is given, only those
// delivering there, each annotated with a fee/ETA quote against the caller's
// position.
func (s *RestaurantService) List(ctx context.Context, in *RestaurantListIn) (*RestaurantListOut, error) {
	userCoords := entity.Coordinate{Lat: in.Lat, Lng: in.Lng}
	if !userCoords.InRange() {
		return nil, apperr.New(apperr.KindValidation, "malformed coordinate")
	}

	if in.Area == "" {
		rests, err := s.RestRepo.FindAll(ctx)
		if err != nil {
			return nil, apperr.FromDB(err, "")
		}
		return &RestaurantListOut{Area: "All Areas", Count: len(rests), Restaurants: rests}, nil
	}

	area, err := s.Areas.Resolve(ctx, 0, in.Area, "")
	if err != nil {
		return nil, err
	}
	rests, err := s.Areas.RestaurantsServing(ctx, area.ID)
	if err != nil {
		return nil, err
	}

	annotated := make([]RestaurantAvailability, 0, len(rests))
	for _, r := range rests {
		annotated = append(annotated, annotate(r, area, userCoords))
	}
	return &RestaurantListOut{Area: area.Name, Count: len(annotated), Restaurants: annotated}, nil
}

type RestaurantDetailIn struct {
	ID   uint
	Area string
	Lat  float64
	Lng  float64
}

// Detail returns one restaurant; with an area given the fee/ETA quote is
// attached the same way List does it.
func (s *RestaurantService) Detail(ctx context.Context, in *RestaurantDetailIn) (any, error) {
	rest, err := s.RestRepo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "restaurant not found")
	}
	if in.Area == "" {
		return rest, nil
	}

	userCoords := entity.Coordinate{Lat: in.Lat, Lng: in.Lng}
	if !userCoords.InRange() {
		return nil, apperr.New(apperr.KindValidation, "malformed coordinate")
	}
	area, err := s.Areas.Resolve(ctx, 0, in.Area, "")
	if err != nil {
		return nil, err
	}
	out := annotate(*rest, area, userCoords)
	return &out, nil
}
