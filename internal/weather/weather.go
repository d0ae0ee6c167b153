// Package weather decorates cards with mock conditions and rough sun times.
// Nothing here is fetched or accurate; it is display filler.
package weather

import (
	"time"

	"github.com/javiermolinar/timesynx/internal/tzfmt"
)

// Report is a current-conditions snapshot.
type Report struct {
	TemperatureC int
	Condition    string
	Icon         string
	Humidity     int // percent
	WindSpeed    int // km/h
}

// Provider returns conditions for a city.
type Provider interface {
	Current(city string) Report
}

// Unknown is reported for cities without data.
var Unknown = Report{TemperatureC: 20, Condition: "Unknown", Icon: "🌡️", Humidity: 60, WindSpeed: 10}

var mockReports = map[string]Report{
	"New York":    {TemperatureC: 22, Condition: "Partly Cloudy", Icon: "⛅", Humidity: 65, WindSpeed: 12},
	"London":      {TemperatureC: 18, Condition: "Rainy", Icon: "🌧️", Humidity: 80, WindSpeed: 15},
	"Tokyo":       {TemperatureC: 26, Condition: "Clear", Icon: "☀️", Humidity: 55, WindSpeed: 8},
	"New Delhi":   {TemperatureC: 35, Condition: "Hot", Icon: "🌞", Humidity: 40, WindSpeed: 10},
	"Los Angeles": {TemperatureC: 24, Condition: "Sunny", Icon: "☀️", Humidity: 50, WindSpeed: 6},
	"Paris":       {TemperatureC: 20, Condition: "Cloudy", Icon: "☁️", Humidity: 70, WindSpeed: 11},
}

// Mock serves the fixed table.
type Mock struct{}

// Current returns the canned report for city, or Unknown.
func (Mock) Current(city string) Report {
	if r, ok := mockReports[city]; ok {
		return r
	}
	return Unknown
}

// SunTimes holds formatted sunrise and sunset clocks.
type SunTimes struct {
	Sunrise string
	Sunset  string
}

// SunHours returns the season-bucketed sunrise and sunset hours for a month.
func SunHours(month time.Month) (sunrise, sunset int) {
	switch {
	case month >= time.March && month <= time.May:
		return 5, 19
	case month >= time.June && month <= time.August:
		return 4, 20
	case month >= time.September && month <= time.November:
		return 6, 18
	default:
		return 7, 17
	}
}

// Sun estimates sunrise and sunset on t's local day in zone. The season
// comes from the month in that zone. An unknown zone yields the
// tzfmt.InvalidClock text for both.
func Sun(t time.Time, zone string) SunTimes {
	local, err := tzfmt.In(t, zone)
	if err != nil {
		return SunTimes{Sunrise: tzfmt.InvalidClock, Sunset: tzfmt.InvalidClock}
	}
	rise, set := SunHours(local.Month())
	at := func(hour int) time.Time {
		return time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, local.Location())
	}
	return SunTimes{
		Sunrise: tzfmt.FormatClock(at(rise), zone, false).String(),
		Sunset:  tzfmt.FormatClock(at(set), zone, false).String(),
	}
}
