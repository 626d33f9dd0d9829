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

// taxRatePercent is the flat order tax, applied on the subtotal with
// half-up rounding on minor units.
const taxRatePercent = 5

func taxOn(subtotal int64) int64 {
	return (subtotal*taxRatePercent + 50) / 100
}

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodRepository
	RestRepo *repository.RestaurantRepository
	AreaRepo *repository.AreaRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository, rr *repository.RestaurantRepository, ar *repository.AreaRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr, RestRepo: rr, AreaRepo: ar}
}

type AddToCartIn struct {
	FoodID       uint `json:"foodId" binding:"required"`
	Quantity     int  `json:"quantity"`
	RestaurantID uint `json:"restaurantId"`
	AreaID       uint `json:"areaId"`
}

// CartView is the cart plus the values only materialized at read time: the
// delivery fee (quotable once a restaurant/area pairing exists) and the
// grand total.
type CartView struct {
	Cart             *entity.Cart        `json:"cart"`
	DeliveryFee      int64               `json:"deliveryFee"`
	FeeBreakdown     *delivery.Breakdown `json:"feeBreakdown,omitempty"`
	EstimatedMinutes int                 `json:"estimatedDeliveryTime,omitempty"`
	Total            int64               `json:"total"`
}

func (s *CartService) Get(ctx context.Context, userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(ctx, userID)
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return s.view(ctx, c)
}

func (s *CartService) view(ctx context.Context, c *entity.Cart) (*CartView, error) {
	v := &CartView{Cart: c}

	if c.AreaID != 0 {
		area, err := s.AreaRepo.FindByID(ctx, c.AreaID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.FromDB(err, "")
		}
		if area != nil {
			var dist *float64
			if c.RestaurantID != 0 {
				rest, err := s.RestRepo.FindByID(ctx, c.RestaurantID)
				if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperr.FromDB(err, "")
				}
				if rest != nil {
					dist = delivery.DistanceKm(rest.Coords, area.Coords)
				}
			}
			quote := delivery.Fee(area, dist)
			v.DeliveryFee = quote.Fee
			v.FeeBreakdown = &quote.Breakdown
			v.EstimatedMinutes = delivery.EstimatedMinutes(area, dist)
		}
	}

	v.Total = c.Subtotal + v.DeliveryFee + c.Tax
	return v, nil
}

// Add puts a food in the user's cart. The single-restaurant invariant is
// enforced destructively: adding from a different restaurant evicts every
// existing line before the new one goes in. An existing line for the same
// food gets its quantity bumped and keeps its price snapshot.
func (s *CartService) Add(ctx context.Context, userID uint, in *AddToCartIn) (*CartView, error) {
	if in.Quantity <= 0 {
		return nil, apperr.New(apperr.KindValidation, "quantity must be at least 1")
	}

	food, err := s.FoodRepo.FindByID(ctx, in.FoodID)
	if err != nil {
		return nil, apperr.FromDB(err, "food not found")
	}

	if in.RestaurantID != 0 {
		onMenu, err := s.RestRepo.MenuContains(ctx, in.RestaurantID, food.ID)
		if err != nil {
			return nil, apperr.FromDB(err, "restaurant not found")
		}
		if !onMenu {
			return nil, apperr.New(apperr.KindValidation, "food is not on this restaurant's menu")
		}
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}

		if in.RestaurantID != 0 && c.RestaurantID != 0 && c.RestaurantID != in.RestaurantID {
			if err := s.CartRepo.DeleteItems(tx, c.ID); err != nil {
				return err
			}
		}
		if in.RestaurantID != 0 {
			c.RestaurantID = in.RestaurantID
		}
		if in.AreaID != 0 {
			c.AreaID = in.AreaID
		}

		row := &entity.CartItem{
			FoodID:    food.ID,
			Qty:       in.Quantity,
			UnitPrice: food.Price,
			Total:     food.Price * int64(in.Quantity),
		}
		if err := s.CartRepo.UpsertItem(tx, c.ID, row); err != nil {
			return err
		}

		return s.recompute(tx, c)
	})
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return s.Get(ctx, userID)
}

// UpdateQty replaces a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQty(ctx context.Context, userID, foodID uint, qty int) (*CartView, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetByUser(tx, userID)
		if err != nil {
			return err
		}
		if qty <= 0 {
			if err := s.CartRepo.RemoveItem(tx, c.ID, foodID); err != nil {
				return err
			}
		} else {
			affected, err := s.CartRepo.UpdateQty(tx, c.ID, foodID, qty)
			if err != nil {
				return err
			}
			if affected == 0 {
				return apperr.New(apperr.KindNotFound, "item not in cart")
			}
		}
		return s.recompute(tx, c)
	})
	if err != nil {
		return nil, apperr.FromDB(err, "cart not found")
	}
	return s.Get(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, foodID uint) (*CartView, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetByUser(tx, userID)
		if err != nil {
			return err
		}
		if err := s.CartRepo.RemoveItem(tx, c.ID, foodID); err != nil {
			return err
		}
		return s.recompute(tx, c)
	})
	if err != nil {
		return nil, apperr.FromDB(err, "cart not found")
	}
	return s.Get(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetByUser(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return s.CartRepo.ResetCart(tx, c.ID)
	})
	return apperr.FromDB(err, "")
}

// recompute refreshes the derived subtotal/tax from whatever lines remain.
func (s *CartService) recompute(tx *gorm.DB, c *entity.Cart) error {
	subtotal, err := s.CartRepo.SumItems(tx, c.ID)
	if err != nil {
		return err
	}
	c.Subtotal = subtotal
	c.Tax = taxOn(subtotal)
	return s.CartRepo.Save(tx, c)
}
