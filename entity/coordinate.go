package entity

// Coordinate is an immutable lat/lng pair, stored embedded on the owning row.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Missing reports whether the coordinate is unusable. A zero latitude or
// longitude counts as absent: clients omit fields as zero and the catalog
// never places anything exactly on the equator or prime meridian.
func (c Coordinate) Missing() bool {
	return c.Lat == 0 || c.Lng == 0
}

// InRange reports whether both components are inside the valid geographic
// range. A missing coordinate is in range.
func (c Coordinate) InRange() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
