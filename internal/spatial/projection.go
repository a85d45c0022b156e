package spatial

import (
	"errors"
	"math"
)

// Inverse transverse Mercator (UTM northern hemisphere) used once per raw
// incident record to convert projected easting/northing to WGS84. Constants
// are the standard WGS84 ellipsoid parameters.
const (
	wgs84A  = 6378137.0
	wgs84F  = 1.0 / 298.257223563
	utmK0   = 0.9996
	utmFE   = 500000.0 // false easting
)

// ErrBadUTMZone is returned for zone numbers outside 1-60
var ErrBadUTMZone = errors.New("utm zone must be in 1..60")

// UTMToLatLon converts UTM coordinates (northern hemisphere) to WGS84
// latitude/longitude in degrees
func UTMToLatLon(easting, northing float64, zone int) (lat, lon float64, err error) {
	if zone < 1 || zone > 60 {
		return 0, 0, ErrBadUTMZone
	}

	e2 := wgs84F * (2 - wgs84F) // first eccentricity squared
	ep2 := e2 / (1 - e2)
	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))

	x := easting - utmFE
	y := northing

	// Footpoint latitude via the standard series expansion
	m := y / utmK0
	mu := m / (wgs84A * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	phi1 := mu +
		(3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu)

	sinPhi1 := math.Sin(phi1)
	cosPhi1 := math.Cos(phi1)
	tanPhi1 := math.Tan(phi1)

	n1 := wgs84A / math.Sqrt(1-e2*sinPhi1*sinPhi1)
	t1 := tanPhi1 * tanPhi1
	c1 := ep2 * cosPhi1 * cosPhi1
	r1 := wgs84A * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
	d := x / (n1 * utmK0)

	latRad := phi1 - (n1*tanPhi1/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*d*d*d*d/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d*d*d*d*d*d/720)

	lonRad := (d -
		(1+2*t1+c1)*d*d*d/6 +
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d*d*d*d*d/120) / cosPhi1

	lonOrigin := float64(zone-1)*6 - 180 + 3 // central meridian of the zone

	lat = latRad * 180 / math.Pi
	lon = lonOrigin + lonRad*180/math.Pi
	return lat, lon, nil
}
