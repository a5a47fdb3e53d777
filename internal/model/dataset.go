package model

// Dataset is the ordered collection of trips loaded from a single city file.
// A Dataset is never modified after it has been built; filtering returns a
// new Dataset sharing the same trip values.
type Dataset struct {
	// City is the catalog name of the city the trips belong to.
	City string

	// Source is the path the trips were read from.
	Source string

	// Columns is the header row of the source file.
	Columns []string

	// Trips holds the records in source order.
	Trips []Trip
}

// Len returns the number of trips in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Trips)
}

// HasColumn reports whether the source file contained the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Window returns up to size trips starting at offset.
// Offsets at or beyond the end of the dataset yield an empty slice.
func (d *Dataset) Window(offset, size int) []Trip {
	if offset < 0 || size <= 0 || offset >= d.Len() {
		return nil
	}
	end := offset + size
	if end > len(d.Trips) {
		end = len(d.Trips)
	}
	return d.Trips[offset:end]
}

// Filter returns a new Dataset holding the trips that match f, in source order.
func (d *Dataset) Filter(f Filter) *Dataset {
	out := &Dataset{
		City:    d.City,
		Source:  d.Source,
		Columns: d.Columns,
	}
	if f.IsAll() {
		out.Trips = d.Trips
		return out
	}

	out.Trips = make([]Trip, 0, len(d.Trips))
	for _, t := range d.Trips {
		if f.Matches(t) {
			out.Trips = append(out.Trips, t)
		}
	}
	return out
}
