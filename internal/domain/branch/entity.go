package branch

import "github.com/staffhub-id/attendance-backend-go/internal/pkg/geo"

// Branch is a physical office with the circular geofence used to validate
// on-site punches.
type Branch struct {
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// Fence returns the branch geofence for validation.
func (b Branch) Fence() geo.Fence {
	return geo.Fence{
		Center:       geo.Point{Latitude: b.Latitude, Longitude: b.Longitude},
		RadiusMeters: b.RadiusMeters,
	}
}
