package services

import (
	"context"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type FoodService struct {
	FoodRepo *repository.FoodRepository
	Areas    *AreaService
}

func NewFoodService(fr *repository.FoodRepository, areas *AreaService) *FoodService {
	return &FoodService{FoodRepo: fr, Areas: areas}
}

type FoodListIn struct {
	Area  string
	Page  int
	Limit int
}

type FoodSearchIn struct {
	Text     string
	Cuisine  string
	Area     string
	PriceMin *int64
	PriceMax *int64
	Page     int
	Limit    int
}

type FoodListOut struct {
	Area  string        `json:"area"`
	Count int           `json:"count"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Foods []entity.Food `json:"foods"`
}

// List returns foods, scoped to an area when one is given: only foods on
// the menu of a restaurant delivering there. Unknown area is NotFound; a
// covered-by-nobody area yields zero results.
func (s *FoodService) List(ctx context.Context, in *FoodListIn) (*FoodListOut, error) {
	return s.query(ctx, in.Area, repository.FoodQuery{Page: in.Page, Limit: in.Limit})
}

// Search applies text/cuisine/price filters on top of the same area scoping
// as List.
func (s *FoodService) Search(ctx context.Context, in *FoodSearchIn) (*FoodListOut, error) {
	return s.query(ctx, in.Area, repository.FoodQuery{
		Text:     in.Text,
		Cuisine:  in.Cuisine,
		PriceMin: in.PriceMin,
		PriceMax: in.PriceMax,
		Page:     in.Page,
		Limit:    in.Limit,
	})
}

func (s *FoodService) query(ctx context.Context, areaQuery string, q repository.FoodQuery) (*FoodListOut, error) {
	label, ids, err := s.Areas.resolveAreaFilter(ctx, areaQuery)
	if err != nil {
		return nil, err
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	if ids != nil && len(ids) == 0 {
		return &FoodListOut{Area: label, Page: page, Foods: []entity.Food{}}, nil
	}
	q.IDs = ids

	foods, total, err := s.FoodRepo.Search(ctx, q)
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &FoodListOut{
		Area:  label,
		Count: len(foods),
		Total: total,
		Page:  page,
		Pages: pages,
		Foods: foods,
	}, nil
}

func (s *FoodService) Get(ctx context.Context, id uint) (*entity.Food, error) {
	f, err := s.FoodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.FromDB(err, "food not found")
	}
	return f, nil
}
