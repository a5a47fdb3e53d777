package model

import (
	"testing"
	"time"
)

// tripAt returns a trip starting at the given time.
func tripAt(index int, ts string) Trip {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return Trip{Index: index, StartTime: t}
}

// sampleDataset returns trips on known dates:
// 2017-01-02 Monday, 2017-01-06 Friday, 2017-06-02 Friday, 2017-06-05 Monday.
func sampleDataset() *Dataset {
	return &Dataset{
		City:    "chicago",
		Columns: []string{ColumnStartTime, ColumnUserType},
		Trips: []Trip{
			tripAt(0, "2017-01-02 08:00:00"),
			tripAt(1, "2017-01-06 09:00:00"),
			tripAt(2, "2017-06-02 17:00:00"),
			tripAt(3, "2017-06-05 18:00:00"),
		},
	}
}

func TestFilterApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"all keeps everything", Filter{Month: All, Day: All}, []int{0, 1, 2, 3}},
		{"empty values mean all", Filter{}, []int{0, 1, 2, 3}},
		{"month only", Filter{Month: "june", Day: All}, []int{2, 3}},
		{"day only", Filter{Month: All, Day: "friday"}, []int{1, 2}},
		{"month and day", Filter{Month: "january", Day: "monday"}, []int{0}},
		{"case insensitive", Filter{Month: "JUNE", Day: "Monday"}, []int{3}},
		{"no match", Filter{Month: "march", Day: All}, nil},
		{"unknown month matches nothing", Filter{Month: "smarch", Day: All}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ds := sampleDataset()
			got := ds.Filter(tt.filter)

			if got.Len() != len(tt.want) {
				t.Fatalf("expected %d trips, got %d", len(tt.want), got.Len())
			}
			for i, idx := range tt.want {
				if got.Trips[i].Index != idx {
					t.Errorf("position %d: expected trip %d, got %d", i, idx, got.Trips[i].Index)
				}
			}
			if got.City != ds.City || len(got.Columns) != len(ds.Columns) {
				t.Error("expected city and columns to be carried over")
			}
			if ds.Len() != 4 {
				t.Error("expected source dataset to be unchanged")
			}
		})
	}
}

func TestDatasetWindow(t *testing.T) {
	t.Parallel()

	ds := sampleDataset()

	tests := []struct {
		name   string
		offset int
		size   int
		want   int
	}{
		{"first window", 0, 2, 2},
		{"partial last window", 3, 2, 1},
		{"window at end", 4, 2, 0},
		{"window beyond end", 100, 5, 0},
		{"negative offset", -1, 5, 0},
		{"zero size", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ds.Window(tt.offset, tt.size); len(got) != tt.want {
				t.Errorf("expected %d trips, got %d", tt.want, len(got))
			}
		})
	}

	t.Run("nil dataset has zero length", func(t *testing.T) {
		t.Parallel()
		var empty *Dataset
		if empty.Len() != 0 {
			t.Error("expected zero length")
		}
	})
}

func TestParseMonthAndWeekday(t *testing.T) {
	t.Parallel()

	if m, ok := ParseMonth("September"); !ok || m != time.September {
		t.Errorf("expected September, got %v %v", m, ok)
	}
	if _, ok := ParseMonth("sept"); ok {
		t.Error("expected abbreviation to be rejected")
	}
	if d, ok := ParseWeekday("sunday"); !ok || d != time.Sunday {
		t.Errorf("expected Sunday, got %v %v", d, ok)
	}
	if _, ok := ParseWeekday(All); ok {
		t.Error("expected 'all' not to be a weekday")
	}
}

func TestTripStationPair(t *testing.T) {
	t.Parallel()

	trip := Trip{StartStation: "Canal St & Adams St", EndStation: "Clinton St & Madison St"}
	if got := trip.StationPair(); got != "Canal St & Adams St to Clinton St & Madison St" {
		t.Errorf("unexpected pair %q", got)
	}
}

func TestLookupCount(t *testing.T) {
	t.Parallel()

	u := &UserStats{
		UserTypes: []CategoryCount{{Name: "Subscriber", Count: 3}, {Name: "Dependent", Count: 1}},
	}

	if n, ok := u.UserTypeCount(UserTypeSubscriber); !ok || n != 3 {
		t.Errorf("expected 3 subscribers present, got %d %v", n, ok)
	}
	if n, ok := u.UserTypeCount(UserTypeCustomer); ok || n != 0 {
		t.Errorf("expected absent customer with zero count, got %d %v", n, ok)
	}
	if n, ok := u.GenderCount(GenderMale); ok || n != 0 {
		t.Errorf("expected absent gender, got %d %v", n, ok)
	}
	other := u.OtherUserTypes()
	if len(other) != 1 || other[0].Name != "Dependent" {
		t.Errorf("expected Dependent as other user type, got %v", other)
	}
}

func TestReportElapsed(t *testing.T) {
	t.Parallel()

	r := NewReport(sampleDataset(), Filter{City: "chicago", Month: All, Day: All})
	r.Timings = append(r.Timings, StepTiming{Step: StepTimeStats, Elapsed: 3 * time.Millisecond})

	if r.Rows != 4 || r.City != "chicago" {
		t.Errorf("expected rows and city from dataset, got %d %q", r.Rows, r.City)
	}
	if r.Elapsed(StepTimeStats) != 3*time.Millisecond {
		t.Errorf("expected 3ms, got %v", r.Elapsed(StepTimeStats))
	}
	if r.Elapsed(StepUserStats) != 0 {
		t.Error("expected zero for a step that did not run")
	}
	if r.IsEmpty() {
		t.Error("expected non-empty report")
	}
}
