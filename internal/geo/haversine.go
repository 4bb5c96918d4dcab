package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometres between two
// coordinates given in degrees. Argument order is longitude before latitude,
// matching the order the overlay prints them in.
func Haversine(srcLon, srcLat, dstLon, dstLat float64) float64 {
	srcLon, srcLat = radians(srcLon), radians(srcLat)
	dstLon, dstLat = radians(dstLon), radians(dstLat)

	dLon := dstLon - srcLon
	dLat := dstLat - srcLat

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(srcLat)*math.Cos(dstLat)*math.Pow(math.Sin(dLon/2), 2)
	return 2 * math.Asin(math.Sqrt(a)) * EarthRadiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
