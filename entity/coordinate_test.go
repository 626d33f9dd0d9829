package entity

import "testing"

func TestCoordinateMissing(t *testing.T) {
	if (Coordinate{Lat: 26.9, Lng: 75.8}).Missing() {
		t.Error("full coordinate should not be missing")
	}
	if !(Coordinate{Lat: 0, Lng: 75.8}).Missing() {
		t.Error("zero latitude counts as missing")
	}
	if !(Coordinate{Lat: 26.9, Lng: 0}).Missing() {
		t.Error("zero longitude counts as missing")
	}
	if !(Coordinate{}).Missing() {
		t.Error("zero value counts as missing")
	}
}

func TestCoordinateInRange(t *testing.T) {
	if !(Coordinate{Lat: 26.9, Lng: 75.8}).InRange() {
		t.Error("ordinary coordinate should be in range")
	}
	if !(Coordinate{}).InRange() {
		t.Error("missing coordinate is in range")
	}
	if (Coordinate{Lat: 95, Lng: 10}).InRange() {
		t.Error("latitude over 90 is out of range")
	}
	if (Coordinate{Lat: 10, Lng: -200}).InRange() {
		t.Error("longitude under -180 is out of range")
	}
}

func TestNameKeyOf(t *testing.T) {
	if NameKeyOf("  Jaipur Downtown ") != "jaipur downtown" {
		t.Errorf("got %q", NameKeyOf("  Jaipur Downtown "))
	}
}
