package services

import (
	"context"
	"testing"

	"backend/pkg/apperr"
)

func TestCartAddMergesQuantityAndKeepsSnapshot(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, &AddToCartIn{FoodID: f.dosa.ID, Quantity: 2, RestaurantID: f.rest.ID, AreaID: f.area.ID})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	// Price changes after the first add must not touch the snapshot.
	if err := db.Model(&f.dosa).Update("price", 99999).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}

	view, err := svc.Add(ctx, 1, &AddToCartIn{FoodID: f.dosa.ID, Quantity: 1, RestaurantID: f.rest.ID, AreaID: f.area.ID})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(view.Cart.Items) != 1 {
		t.Fatalf("items = %d, want 1 merged line", len(view.Cart.Items))
	}
	line := view.Cart.Items[0]
	if line.Qty != 3 {
		t.Errorf("qty = %d, want 3", line.Qty)
	}
	if line.UnitPrice != 10000 {
		t.Errorf("unit price = %d, want the original 10000 snapshot", line.UnitPrice)
	}
	if line.Total != 30000 {
		t.Errorf("line total = %d, want 30000", line.Total)
	}
	if view.Cart.Subtotal != 30000 {
		t.Errorf("subtotal = %d, want 30000", view.Cart.Subtotal)
	}
	if view.Cart.Tax != 1500 {
		t.Errorf("tax = %d, want 1500 (5%% of subtotal)", view.Cart.Tax)
	}
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(context.Background(), 1, &AddToCartIn{FoodID: f.dosa.ID, Quantity: 0})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("kind = %q, want validation", apperr.KindOf(err))
	}
}

func TestCartAddUnknownFood(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newCartService(db)

	_, err := svc.Add(context.Background(), 1, &AddToCartIn{FoodID: 9999, Quantity: 1})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %q, want not_found", apperr.KindOf(err))
	}
}

func TestCartAddRejectsFoodNotOnMenu(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)

	// Butter Chicken is only on the second restaurant's menu.
	_, err := svc.Add(context.Background(), 1, &AddToCartIn{FoodID: f.chicken.ID, Quantity: 1, RestaurantID: f.rest.ID})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("kind = %q, want validation", apperr.KindOf(err))
	}
}

func TestCartRestaurantSwitchEvictsItems(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1, &AddToCartIn{FoodID: f.dosa.ID, Quantity: 2, RestaurantID: f.rest.ID, AreaID: f.area.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.Add(ctx, 1, &AddToCartIn{FoodID: f.chicken.ID, Quantity: 1, RestaurantID: f.rest2.ID, AreaID: f.area.ID})
	if err != nil {
		t.Fatalf("switch add: %v", err)
	}

	if len(view.Cart.Items) != 1 {
		t.Fatalf("items = %d, want the old restaurant's lines gone", len(view.Cart.Items))
	}
	if view.Cart.Items[0].FoodID != f.chicken.ID {
		t.Errorf("surviving item = food %d, want %d", view.Cart.Items[0].FoodID, f.chicken.ID)
	}
	if view.Cart.RestaurantID != f.rest2.ID {
		t.Errorf("restaurant = %d, want %d", view.Cart.RestaurantID, f.rest2.ID)
	}
	if view.Cart.Subtotal != 20000 {
		t.Errorf("subtotal = %d, want 20000", view.Cart.Subtotal)
	}
}

func TestCartUpdateQtyZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1, &AddToCartIn{FoodID: f.dosa.ID, Quantity: 2, RestaurantID: f.rest.ID, AreaID: f.area.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.UpdateQty(ctx, 1, f.dosa.ID, 0)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(view.Cart.Items) != 0 {
		t.Errorf("items = %d, want 0", len(view.Cart.Items))
	}
	if view.Cart.Subtotal != 0 || view.Cart.Tax != 0 {
		t.Errorf("subtotal/tax = %d/%d, want 0/0", view.Cart.Subtotal, view.Cart.Tax)
	}
}

func TestCartUpdateQtyUnknownItem(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1, &AddToCartIn{FoodID: f.dosa.ID, Quantity: 1, RestaurantID: f.rest.ID, AreaID: f.area.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := svc.UpdateQty(ctx, 1, f.chicken.ID, 3)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %q, want not_found", apperr.KindOf(err))
	}
}

func TestCartViewQuotesDeliveryFee(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1, &AddToCartIn{FoodID: f.dosa.ID, Quantity: 1, RestaurantID: f.rest.ID, AreaID: f.area.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	// Restaurant and area centroid are under a km apart: base + one km tier.
	if view.DeliveryFee != 3600 {
		t.Errorf("delivery fee = %d, want 3600", view.DeliveryFee)
	}
	if view.FeeBreakdown == nil {
		t.Fatal("expected a fee breakdown")
	}
	if view.Total != view.Cart.Subtotal+view.DeliveryFee+view.Cart.Tax {
		t.Errorf("total = %d, want subtotal+fee+tax", view.Total)
	}
	if view.EstimatedMinutes < 35 {
		t.Errorf("eta = %d, want at least the area base", view.EstimatedMinutes)
	}
}

func TestCartGetForNewUserIsEmpty(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newCartService(db)

	view, err := svc.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.Cart.Items) != 0 || view.Total != 0 {
		t.Errorf("expected an empty cart, got %+v", view)
	}
}

func TestCartClearIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newCartService(db)
	ctx := context.Background()

	// Clearing a cart that never existed is fine.
	if err := svc.Clear(ctx, 7); err != nil {
		t.Fatalf("clear absent cart: %v", err)
	}

	if _, err := svc.Add(ctx, 7, &AddToCartIn{FoodID: f.dosa.ID, Quantity: 1, RestaurantID: f.rest.ID, AreaID: f.area.ID}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(ctx, 7); err != nil {
		t.Fatalf("clear: %v", err)
	}

	view, err := svc.Get(ctx, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.Cart.Items) != 0 || view.Cart.RestaurantID != 0 || view.Cart.AreaID != 0 {
		t.Errorf("cart not reset: %+v", view.Cart)
	}
}
