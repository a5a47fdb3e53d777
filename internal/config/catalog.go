package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nao1215/bikeshare/internal/model"
)

// City is a supported city and the source file holding its trips.
type City struct {
	// Name is the lower-case city identifier, e.g. "new york city".
	Name string

	// File is the source file name relative to the data directory.
	File string
}

// Catalog is the immutable set of values a user may select.
// It is built once at startup and shared read-only by the prompter and loader.
type Catalog struct {
	cities []City
	months []string
	days   []string
}

// NewCatalog builds a Catalog from a city to file name mapping.
// City names are lower-cased and sorted; months and days are the fixed
// English lists prefixed with "all".
func NewCatalog(cities map[string]string) (*Catalog, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	list := make([]City, 0, len(cities))
	for name, file := range cities {
		name = strings.ToLower(strings.TrimSpace(name))
		file = strings.TrimSpace(file)
		if name == "" || file == "" {
			return nil, fmt.Errorf("%w: %q -> %q", ErrInvalidCity, name, file)
		}
		list = append(list, City{Name: name, File: file})
	}
	slices.SortFunc(list, func(a, b City) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &Catalog{
		cities: list,
		months: []string{
			model.All, "january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		days: []string{
			model.All, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		},
	}, nil
}

// DefaultCatalog returns the catalog built from DefaultCities.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultCities())
	if err != nil {
		panic(err) // DefaultCities is a constant mapping
	}
	return c
}

// Cities returns the supported city names in sorted order.
func (c *Catalog) Cities() []string {
	names := make([]string, len(c.cities))
	for i, city := range c.cities {
		names[i] = city.Name
	}
	return names
}

// Months returns the allowed month selections, "all" first.
func (c *Catalog) Months() []string {
	return slices.Clone(c.months)
}

// Days returns the allowed day selections, "all" first.
func (c *Catalog) Days() []string {
	return slices.Clone(c.days)
}

// LookupCity finds a city by name, ignoring case and surrounding whitespace.
func (c *Catalog) LookupCity(name string) (City, bool) {
	name = normalize(name)
	for _, city := range c.cities {
		if city.Name == name {
			return city, true
		}
	}
	return City{}, false
}

// IsMonth reports whether s is an allowed month selection, ignoring case.
func (c *Catalog) IsMonth(s string) bool {
	return slices.Contains(c.months, normalize(s))
}

// IsDay reports whether s is an allowed day selection, ignoring case.
func (c *Catalog) IsDay(s string) bool {
	return slices.Contains(c.days, normalize(s))
}

// Filter validates a selection against the catalog and returns it normalized.
// Empty month or day values mean "all".
func (c *Catalog) Filter(city, month, day string) (model.Filter, error) {
	found, ok := c.LookupCity(city)
	if !ok {
		return model.Filter{}, fmt.Errorf("unknown city %q (choose from %s)", city, strings.Join(c.Cities(), ", "))
	}
	if strings.TrimSpace(month) == "" {
		month = model.All
	}
	if strings.TrimSpace(day) == "" {
		day = model.All
	}
	if !c.IsMonth(month) {
		return model.Filter{}, fmt.Errorf("unknown month %q (choose from %s)", month, strings.Join(c.months, ", "))
	}
	if !c.IsDay(day) {
		return model.Filter{}, fmt.Errorf("unknown day %q (choose from %s)", day, strings.Join(c.days, ", "))
	}
	return model.Filter{City: found.Name, Month: normalize(month), Day: normalize(day)}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
