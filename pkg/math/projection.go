package math

import "math"

// EarthRadius is the WGS84 equatorial radius in meters.
const EarthRadius = 6378137.0

// InvMercatorLat maps a normalized Web-Mercator row coordinate v in [0,1]
// to latitude in radians. v=0 is the top edge (north), v=1 the bottom edge.
func InvMercatorLat(v float64) float64 {
	y := math.Pi * (1 - 2*v)
	return math.Atan(math.Sinh(y))
}

// MercatorV is the forward Web-Mercator projection of a latitude in radians
// to a normalized row coordinate.
func MercatorV(lat float64) float64 {
	y := math.Log(math.Tan(math.Pi/4 + lat/2))
	return 0.5 - y/(2*math.Pi)
}

// TileLonLat maps tile UV coordinates to longitude and latitude in radians.
// Longitude spans [-pi, pi] across u.
func TileLonLat(u, v float64) (lon, lat float64) {
	return 2*math.Pi*u - math.Pi, InvMercatorLat(v)
}

// LonLatToUnit projects longitude/latitude (radians) to a point on the unit
// sphere with Y pointing to the north pole.
func LonLatToUnit(lon, lat float64) (x, y, z float64) {
	cosLat := math.Cos(lat)
	return cosLat * math.Cos(lon), math.Sin(lat), cosLat * math.Sin(lon)
}
