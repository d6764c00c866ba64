// Package astronomy computes the sky data shown next to a Tredeco date:
// sunrise and sunset for a location, moonrise and moonset, the moon's phase
// and the March equinox that sits near the start of every Tredeco year.
package astronomy

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/deltat"
	"github.com/mooncaker816/learnmeeus/v3/globe"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/moonphase"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/mooncaker816/learnmeeus/v3/rise"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/unit"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.530588853

// ErrInvalidCoordinates is returned for latitude outside [-90, 90] or
// longitude outside [-180, 180].
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Report is the astronomy data for one day at one place.
type Report struct {
	Date      time.Time  `json:"date"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Sunrise   *time.Time `json:"sunrise"` // nil during polar night or day
	Sunset    *time.Time `json:"sunset"`

	// Moonrise and Moonset are nil when the moon does not cross the
	// horizon during the UTC day.
	Moonrise *time.Time `json:"moonrise"`
	Moonset  *time.Time `json:"moonset"`

	// MoonPhase is the fraction of the lunation elapsed at noon UTC:
	// 0 new moon, 0.25 first quarter, 0.5 full, 0.75 last quarter.
	MoonPhase     float64 `json:"moon_phase"`
	MoonPhaseName string  `json:"moon_phase_name"`

	MarchEquinox time.Time `json:"march_equinox"`
}

// Calculator implements the astronomy service. The zero value is ready to use.
type Calculator struct{}

// Observe returns the report for the calendar date of date at the given
// coordinates.
func (Calculator) Observe(date time.Time, latitude, longitude float64) (*Report, error) {
	if err := ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	r := &Report{
		Date:         day,
		Latitude:     latitude,
		Longitude:    longitude,
		MarchEquinox: MarchEquinox(y),
	}

	up, down := sunrise.SunriseSunset(latitude, longitude, y, m, d)
	if !up.IsZero() && !down.IsZero() {
		r.Sunrise = &up
		r.Sunset = &down
	}

	r.Moonrise, r.Moonset = MoonTimes(day, latitude, longitude)

	r.MoonPhase = MoonPhase(day.Add(12 * time.Hour))
	r.MoonPhaseName = PhaseName(r.MoonPhase)

	return r, nil
}

// ValidateCoordinates checks latitude and longitude ranges.
func ValidateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return fmt.Errorf("%w: latitude %v must be in [-90, 90]", ErrInvalidCoordinates, latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w: longitude %v must be in [-180, 180]", ErrInvalidCoordinates, longitude)
	}
	return nil
}

// MarchEquinox returns the instant of the vernal equinox of a standard year.
// The dynamical-time correction (about a minute) is ignored.
func MarchEquinox(year int) time.Time {
	return julian.JDToTime(solstice.March(year)).UTC()
}

// MoonPhase returns the fraction of the current lunation elapsed at t.
func MoonPhase(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())

	// moonphase.New finds the new moon nearest a decimal year. Step back or
	// forward a lunation until it is the one at or before t.
	year := decimalYear(t.UTC())
	newMoon := moonphase.New(year)
	for i := 0; newMoon > jd && i < 3; i++ {
		year -= SynodicMonth / 365.25
		newMoon = moonphase.New(year)
	}
	for i := 0; jd-newMoon >= SynodicMonth && i < 3; i++ {
		next := moonphase.New(year + SynodicMonth/365.25)
		if next > jd {
			break
		}
		year += SynodicMonth / 365.25
		newMoon = next
	}

	phase := (jd - newMoon) / SynodicMonth
	return math.Min(math.Max(phase, 0), math.Nextafter(1, 0))
}

// MoonTimes returns moonrise and moonset in UTC for the calendar day of
// date. Either is nil when that event does not happen during the day.
func MoonTimes(date time.Time, latitude, longitude float64) (moonrise, moonset *time.Time) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	jd0 := julian.CalendarGregorianToJD(y, int(m), float64(d))

	// Positions at 0h dynamical time of the day before, the day and the
	// day after.
	ra := make([]unit.RA, 3)
	dec := make([]unit.Angle, 3)
	var parallax unit.Angle
	for i := range ra {
		jde := jd0 + float64(i-1)
		lon, lat, dist := moonposition.Position(jde)
		sinObl, cosObl := nutation.MeanObliquity(jde).Sincos()
		ra[i], dec[i] = coord.EclToEq(lon, lat, sinObl, cosObl)
		if i == 1 {
			parallax = moonposition.Parallax(dist)
		}
		// Keep right ascension continuous across 0h for interpolation.
		if i > 0 && ra[i] < ra[i-1]-math.Pi {
			ra[i] += 2 * math.Pi
		}
	}

	// Longitude is positive west here.
	observer := globe.Coord{
		Lat: unit.AngleFromDeg(latitude),
		Lon: unit.AngleFromDeg(-longitude),
	}

	tRise, _, tSet, err := rise.Times(observer, deltaT(y), rise.Stdh0Lunar(parallax),
		sidereal.Apparent0UT(jd0), ra, dec)
	if err != nil {
		return nil, nil
	}
	return atSecond(day, tRise), atSecond(day, tSet)
}

// atSecond returns day plus t, or nil when t falls outside the day.
func atSecond(day time.Time, t unit.Time) *time.Time {
	sec := t.Sec()
	if math.IsNaN(sec) || sec < 0 || sec >= 24*60*60 {
		return nil
	}
	at := day.Add(time.Duration(sec * float64(time.Second))).Truncate(time.Second)
	return &at
}

// deltaT estimates TT-UT for a standard year. Years past 2500 use the 2500
// value; the polynomials diverge beyond it.
func deltaT(year int) unit.Time {
	switch {
	case year < 948:
		return deltat.PolyBefore948(float64(year))
	case year < 1620:
		return deltat.Poly948to1600(float64(year))
	case year < 2000:
		return deltat.Interp10A(julian.CalendarGregorianToJD(year, 7, 1))
	case year <= 2500:
		return deltat.PolyAfter2000(float64(year))
	default:
		return deltat.PolyAfter2000(2500)
	}
}

func decimalYear(t time.Time) float64 {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return float64(t.Year()) + t.Sub(start).Hours()/end.Sub(start).Hours()
}

// Phase names, in lunation order.
const (
	PhaseNewMoon        = "new moon"
	PhaseWaxingCrescent = "waxing crescent"
	PhaseFirstQuarter   = "first quarter"
	PhaseWaxingGibbous  = "waxing gibbous"
	PhaseFullMoon       = "full moon"
	PhaseWaningGibbous  = "waning gibbous"
	PhaseLastQuarter    = "last quarter"
	PhaseWaningCrescent = "waning crescent"
)

// PhaseName buckets a phase fraction into one of the eight named phases.
// The principal phases get a narrow band around their exact fraction.
func PhaseName(phase float64) string {
	switch {
	case phase < 0.03 || phase >= 0.97:
		return PhaseNewMoon
	case phase < 0.22:
		return PhaseWaxingCrescent
	case phase < 0.28:
		return PhaseFirstQuarter
	case phase < 0.47:
		return PhaseWaxingGibbous
	case phase < 0.53:
		return PhaseFullMoon
	case phase < 0.72:
		return PhaseWaningGibbous
	case phase < 0.78:
		return PhaseLastQuarter
	default:
		return PhaseWaningCrescent
	}
}
