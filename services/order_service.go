package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/delivery"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdempotencyStore lets order creation survive client retries: the first
// request claims the key, records the order it created, and replays get that
// order back instead of a duplicate.
type IdempotencyStore interface {
	Claim(ctx context.Context, key string) (bool, error)
	Record(ctx context.Context, key string, orderID uint) error
	Lookup(ctx context.Context, key string) (uint, bool, error)
}

// StatusPublisher receives order-status changes for live delivery to
// subscribed clients. Implementations must not block.
type StatusPublisher interface {
	OrderStatusChanged(o *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
	AreaRepo *repository.AreaRepository

	Idem      IdempotencyStore // optional
	Publisher StatusPublisher  // optional
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	areaRepo *repository.AreaRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo, AreaRepo: areaRepo}
}

type CheckoutIn struct {
	DeliveryAddress     string  `json:"deliveryAddress" binding:"required"`
	DeliveryLat         float64 `json:"deliveryLat"`
	DeliveryLng         float64 `json:"deliveryLng"`
	PaymentMethod       string  `json:"paymentMethod"`
	SpecialInstructions string  `json:"specialInstructions"`

	// from the Idempotency-Key header, not the body
	IdempotencyKey string `json:"-"`
}

// CreateFromCart turns the user's cart into an immutable order. The delivery
// fee is recomputed here from the submitted drop-off coordinates and
// supersedes whatever fee the cart view showed. The order is persisted
// before the cart is cleared so a crash in between leaves a stale cart,
// never a duplicate order.
func (s *OrderService) CreateFromCart(ctx context.Context, userID uint, in *CheckoutIn) (*entity.Order, error) {
	idemKey := ""
	if in.IdempotencyKey != "" && s.Idem != nil {
		idemKey = fmt.Sprintf("order:idem:%d:%s", userID, in.IdempotencyKey)
		claimed, err := s.Idem.Claim(ctx, idemKey)
		if err != nil {
			// checkout must not depend on the cache being up
			log.Printf("idempotency store unavailable, creating without replay protection: %v", err)
			idemKey = ""
		} else if !claimed {
			if id, found, err := s.Idem.Lookup(ctx, idemKey); err == nil && found {
				return s.Repo.GetOrder(ctx, id)
			}
			return nil, apperr.New(apperr.KindInvalidState, "an order for this idempotency key is already in progress")
		}
	}

	cart, err := s.CartRepo.GetByUser(s.DB.WithContext(ctx), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindEmptyCart, "cart is empty")
	}
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	if len(cart.Items) == 0 {
		return nil, apperr.New(apperr.KindEmptyCart, "cart is empty")
	}
	if cart.RestaurantID == 0 || cart.AreaID == 0 {
		return nil, apperr.New(apperr.KindMissingSelection, "restaurant or area not selected")
	}

	dropoff := entity.Coordinate{Lat: in.DeliveryLat, Lng: in.DeliveryLng}
	if !dropoff.InRange() {
		return nil, apperr.New(apperr.KindValidation, "malformed coordinate")
	}

	area, err := s.AreaRepo.FindByID(ctx, cart.AreaID)
	if err != nil {
		return nil, apperr.FromDB(err, "delivery area not found")
	}
	rest, err := s.RestRepo.FindByID(ctx, cart.RestaurantID)
	if err != nil {
		return nil, apperr.FromDB(err, "restaurant not found")
	}

	if !delivery.WithinServiceRadius(dropoff, area) {
		return nil, apperr.New(apperr.KindValidation, "delivery location is outside the service radius")
	}

	dist := delivery.DistanceKm(dropoff, rest.Coords)
	quote := delivery.Fee(area, dist)
	eta := delivery.EstimatedMinutes(area, dist)

	method := in.PaymentMethod
	if method == "" {
		method = "cash"
	}

	order := &entity.Order{
		Reference:           uuid.NewString(),
		UserID:              userID,
		RestaurantID:        cart.RestaurantID,
		AreaID:              cart.AreaID,
		Subtotal:            cart.Subtotal,
		DeliveryFee:         quote.Fee,
		Tax:                 cart.Tax,
		Total:               cart.Subtotal + quote.Fee + cart.Tax,
		DeliveryAddress:     in.DeliveryAddress,
		DeliveryCoords:      dropoff,
		EtaMinutes:          eta,
		PaymentMethod:       method,
		SpecialInstructions: in.SpecialInstructions,
		Status:              entity.StatusPending,
		PaymentStatus:       entity.PaymentPending,
	}
	for _, it := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			FoodID:    it.FoodID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.ResetCart(tx, cart.ID)
	})
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}

	if idemKey != "" {
		if err := s.Idem.Record(ctx, idemKey, order.ID); err != nil {
			log.Printf("recording idempotency key failed for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint, status string, limit int) ([]entity.Order, error) {
	var filter *entity.OrderStatus
	if status != "" {
		st := entity.OrderStatus(status)
		if !st.Valid() {
			return nil, apperr.Newf(apperr.KindValidation, "unknown order status: %s", status)
		}
		filter = &st
	}
	orders, err := s.Repo.ListForUser(ctx, userID, filter, limit)
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	return orders, nil
}

func (s *OrderService) DetailForUser(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, apperr.FromDB(err, "order not found")
	}
	if o.UserID != userID {
		return nil, apperr.New(apperr.KindUnauthorized, "order belongs to another user")
	}
	return o, nil
}

func (s *OrderService) publish(o *entity.Order) {
	if s.Publisher != nil {
		s.Publisher.OrderStatusChanged(o)
	}
}
