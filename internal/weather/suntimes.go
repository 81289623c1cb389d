package weather

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Official sunrise/sunset zenith, including refraction and the solar disc.
const sunZenithDeg = 90.833

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
func fixAngle(a float64) float64   { return a - 360.0*math.Floor(a/360.0) }

// EstimateSunTimes returns sunrise and sunset for the calendar day of day at
// the given coordinates, in day's location. ok is false during polar day or
// polar night.
func EstimateSunTimes(day time.Time, lat, lon float64) (rise, set time.Time, ok bool) {
	y, m, d := day.Date()
	noonUTC := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	jd := julian.TimeToJD(noonUTC)
	T := (jd - 2451545.0) / 36525.0

	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)
	C := math.Sin(degToRad(M))*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(degToRad(2*M))*(0.019993-T*0.000101) +
		math.Sin(degToRad(3*M))*0.000289
	omega := 125.04 - 1934.136*T
	lambda := L0 + C - 0.00569 - 0.00478*math.Sin(degToRad(omega))
	eps := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
	decl := math.Asin(math.Sin(degToRad(eps)) * math.Sin(degToRad(lambda)))

	yy := math.Tan(degToRad(eps)/2) * math.Tan(degToRad(eps)/2)
	eqTimeMin := radToDeg(yy*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*yy*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*yy*yy*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4

	latRad := degToRad(lat)
	cosH := (math.Cos(degToRad(sunZenithDeg)) - math.Sin(latRad)*math.Sin(decl)) /
		(math.Cos(latRad) * math.Cos(decl))
	if math.IsNaN(cosH) || cosH < -1 || cosH > 1 {
		return time.Time{}, time.Time{}, false
	}
	haMin := radToDeg(math.Acos(cosH)) * 4

	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	solarNoonMin := 720 - 4*lon - eqTimeMin
	toTime := func(minutes float64) time.Time {
		return midnight.Add(time.Duration(minutes * float64(time.Minute))).In(day.Location())
	}
	return toTime(solarNoonMin - haMin), toTime(solarNoonMin + haMin), true
}
