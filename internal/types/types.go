// README: Common value objects shared across modules.
package types

// ID is an opaque identifier assigned by the upstream backend.
type ID string

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// IsZero reports whether the point carries no coordinate.
func (p Point) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}
