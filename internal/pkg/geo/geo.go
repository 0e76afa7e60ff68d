package geo

import "math"

// earthRadiusMeters is the mean Earth radius used for haversine distances.
const earthRadiusMeters = 6371000

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fence is a circular geofence around a branch location.
type Fence struct {
	Center       Point
	RadiusMeters float64
}

// Distance returns the great-circle distance between two points in meters.
func Distance(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	latARad := a.Latitude * (math.Pi / 180.0)
	latBRad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Validate reports whether p falls inside the fence. OverBy is how many
// meters past the radius the point sits, zero when inside; callers use it
// for user-facing rejection messages.
type Validation struct {
	Inside   bool
	Distance float64
	OverBy   float64
}

func Validate(p Point, f Fence) Validation {
	d := Distance(p, f.Center)
	v := Validation{Distance: d}
	if d <= f.RadiusMeters {
		v.Inside = true
		return v
	}
	v.OverBy = d - f.RadiusMeters
	return v
}
