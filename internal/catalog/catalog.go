// Package catalog holds the fixed table of cities offered by the zone picker.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed cities.toml
var citiesTOML []byte

// DefaultLimit caps search results.
const DefaultLimit = 50

// AllRegions selects every region in Search.
const AllRegions = "all"

// OtherRegion is reported for countries missing from the region table.
const OtherRegion = "Other"

// City is one pickable entry.
type City struct {
	Timezone string `toml:"timezone"`
	Name     string `toml:"name"`
	Country  string `toml:"country"`
}

// Region returns the continent grouping for the city's country.
func (c City) Region() string {
	return RegionOf(c.Country)
}

type table struct {
	Cities  []City            `toml:"city"`
	Regions map[string]string `toml:"regions"`
}

// cities is parsed once and never mutated.
var cities = mustLoad(citiesTOML)

func mustLoad(data []byte) table {
	t, err := load(data)
	if err != nil {
		panic(err)
	}
	return t
}

func load(data []byte) (table, error) {
	var t table
	if err := toml.Unmarshal(data, &t); err != nil {
		return table{}, fmt.Errorf("parsing city table: %w", err)
	}
	if len(t.Cities) == 0 {
		return table{}, fmt.Errorf("city table is empty")
	}
	for i, c := range t.Cities {
		if c.Timezone == "" || c.Name == "" {
			return table{}, fmt.Errorf("city %d: timezone and name are required", i)
		}
	}
	return t, nil
}

// All returns a copy of every city in table order.
func All() []City {
	return slices.Clone(cities.Cities)
}

// Lookup returns the first city in the given timezone.
func Lookup(timezone string) (City, bool) {
	for _, c := range cities.Cities {
		if c.Timezone == timezone {
			return c, true
		}
	}
	return City{}, false
}

// FindByName returns the city whose name matches case-insensitively.
func FindByName(name string) (City, bool) {
	for _, c := range cities.Cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}

// RegionOf maps a country to its continent, or OtherRegion.
func RegionOf(country string) string {
	if r, ok := cities.Regions[country]; ok {
		return r
	}
	return OtherRegion
}

// Regions lists regions in the order their first city appears.
func Regions() []string {
	var out []string
	for _, c := range cities.Cities {
		r := c.Region()
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// Search filters cities by region and a case-insensitive term matched
// against city, country and timezone. An empty region or AllRegions
// disables the region filter; limit <= 0 uses DefaultLimit.
func Search(term, region string, limit int) []City {
	if limit <= 0 {
		limit = DefaultLimit
	}
	term = strings.ToLower(strings.TrimSpace(term))
	filterRegion := region != "" && !strings.EqualFold(region, AllRegions)

	var out []City
	for _, c := range cities.Cities {
		if filterRegion && !strings.EqualFold(c.Region(), region) {
			continue
		}
		if term != "" && !matches(c, term) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}

func matches(c City, term string) bool {
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Country), term) ||
		strings.Contains(strings.ToLower(c.Timezone), term)
}
