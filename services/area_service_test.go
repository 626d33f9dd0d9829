package services

import (
	"context"
	"math"
	"testing"

	"backend/pkg/apperr"
	"backend/repository"
)

func TestResolveByNameIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newAreaService(db)

	area, err := svc.Resolve(context.Background(), 0, "jAiPuR dOwNtOwN", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if area.ID != f.area.ID {
		t.Errorf("resolved area %d, want %d", area.ID, f.area.ID)
	}
}

func TestResolveByPostalCode(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newAreaService(db)

	area, err := svc.Resolve(context.Background(), 0, "", "302002")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if area.ID != f.area.ID {
		t.Errorf("resolved area %d, want %d", area.ID, f.area.ID)
	}
}

func TestResolveUnknownArea(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newAreaService(db)
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, 0, "Atlantis", ""); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("unknown name: kind = %q, want not_found", apperr.KindOf(err))
	}
	if _, err := svc.Resolve(ctx, 0, "", "999999"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("unknown postal code: kind = %q, want not_found", apperr.KindOf(err))
	}
	if _, err := svc.Resolve(ctx, 0, "", ""); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("no selector: kind = %q, want validation", apperr.KindOf(err))
	}
}

func TestAvailableFoodIDsUnion(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newAreaService(db)

	ids, err := svc.AvailableFoodIDs(context.Background(), f.area.ID)
	if err != nil {
		t.Fatalf("available foods: %v", err)
	}
	// Paneer Tikka is on both menus and must appear once.
	if len(ids) != 3 {
		t.Errorf("ids = %v, want the 3-food union", ids)
	}
	seen := map[uint]int{}
	for _, id := range ids {
		seen[id]++
	}
	if seen[f.paneer.ID] != 1 {
		t.Errorf("shared food appears %d times, want 1", seen[f.paneer.ID])
	}
}

func TestCheckDeliveryAnnotatesRestaurants(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newAreaService(db)

	out, err := svc.CheckDelivery(context.Background(), &CheckDeliveryIn{
		AreaName: "Jaipur Downtown", Lat: 26.9130, Lng: 75.7880,
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	if out.Area.ID != f.area.ID {
		t.Errorf("area = %d, want %d", out.Area.ID, f.area.ID)
	}
	if len(out.Restaurants) != 2 {
		t.Fatalf("restaurants = %d, want 2", len(out.Restaurants))
	}
	for _, r := range out.Restaurants {
		if r.DistanceKm == nil {
			t.Errorf("%s: expected a distance", r.Name)
			continue
		}
		wantFee := out.Area.BaseFee + int64(math.Ceil(*r.DistanceKm))*out.Area.PerKmFee
		if r.DeliveryFee != wantFee {
			t.Errorf("%s: fee = %d, want %d", r.Name, r.DeliveryFee, wantFee)
		}
		if r.EstimatedMinutes < out.Area.EtaMinutes {
			t.Errorf("%s: eta = %d, below the area base", r.Name, r.EstimatedMinutes)
		}
	}
}

func TestCheckDeliveryOutsideRadius(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newAreaService(db)

	_, err := svc.CheckDelivery(context.Background(), &CheckDeliveryIn{
		AreaName: "Jaipur Downtown", Lat: 28.6139, Lng: 77.2090,
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("kind = %q, want validation", apperr.KindOf(err))
	}
}

func TestCheckDeliveryWithoutCoordsFailsOpen(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newAreaService(db)

	out, err := svc.CheckDelivery(context.Background(), &CheckDeliveryIn{AreaName: "Jaipur Downtown"})
	if err != nil {
		t.Fatalf("check without coords: %v", err)
	}
	for _, r := range out.Restaurants {
		if r.DistanceKm != nil {
			t.Errorf("%s: distance should be unknown", r.Name)
		}
		if r.DeliveryFee != out.Area.BaseFee {
			t.Errorf("%s: fee = %d, want the bare base fee %d", r.Name, r.DeliveryFee, out.Area.BaseFee)
		}
	}
}

func TestCheckDeliveryMalformedCoordinate(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newAreaService(db)

	_, err := svc.CheckDelivery(context.Background(), &CheckDeliveryIn{AreaName: "Jaipur Downtown", Lat: 91, Lng: 10})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("kind = %q, want validation", apperr.KindOf(err))
	}
}

func TestAreaFilterDistinguishesUnknownFromUncovered(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newAreaService(db)
	ctx := context.Background()

	label, ids, err := svc.resolveAreaFilter(ctx, "")
	if err != nil || label != "All Areas" || ids != nil {
		t.Errorf("no filter: label=%q ids=%v err=%v", label, ids, err)
	}

	// Known area that nobody delivers to: success, zero coverage.
	label, ids, err = svc.resolveAreaFilter(ctx, "Delhi Central")
	if err != nil {
		t.Fatalf("uncovered area: %v", err)
	}
	if label != "Delhi Central" || ids == nil || len(ids) != 0 {
		t.Errorf("uncovered area: label=%q ids=%v, want empty non-nil ids", label, ids)
	}

	// Unknown area is an error, not an empty listing.
	_, _, err = svc.resolveAreaFilter(ctx, "Atlantis")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %q, want not_found", apperr.KindOf(err))
	}
}

func TestFoodListScopedToArea(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	foods := NewFoodService(repository.NewFoodRepository(db), newAreaService(db))
	ctx := context.Background()

	out, err := foods.List(ctx, &FoodListIn{Area: "jaipur downtown"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Count != 3 {
		t.Errorf("count = %d, want 3", out.Count)
	}
	if out.Area != f.area.Name {
		t.Errorf("area label = %q, want %q", out.Area, f.area.Name)
	}

	empty, err := foods.List(ctx, &FoodListIn{Area: "Delhi Central"})
	if err != nil {
		t.Fatalf("uncovered list: %v", err)
	}
	if empty.Count != 0 || len(empty.Foods) != 0 {
		t.Errorf("uncovered area should list nothing, got %+v", empty)
	}
}

func TestFoodSearchFilters(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	foods := NewFoodService(repository.NewFoodRepository(db), newAreaService(db))
	ctx := context.Background()

	byText, err := foods.Search(ctx, &FoodSearchIn{Text: "masala"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if byText.Count != 1 || byText.Foods[0].Name != "Masala Dosa" {
		t.Errorf("text search = %+v", byText.Foods)
	}

	max := int64(15000)
	byPrice, err := foods.Search(ctx, &FoodSearchIn{PriceMax: &max})
	if err != nil {
		t.Fatalf("price search: %v", err)
	}
	if byPrice.Count != 2 {
		t.Errorf("price search count = %d, want 2", byPrice.Count)
	}

	byCuisine, err := foods.Search(ctx, &FoodSearchIn{Cuisine: "North Indian", Area: "Jaipur Downtown"})
	if err != nil {
		t.Fatalf("cuisine search: %v", err)
	}
	if byCuisine.Count != 2 {
		t.Errorf("cuisine search count = %d, want 2", byCuisine.Count)
	}
}
