package stats

import (
	"context"
	"slices"

	"github.com/nao1215/bikeshare/internal/model"
)

// ComputeUser returns the user type, gender and birth year breakdown of ds.
// Gender and birth year are only reported when the source has those columns.
func ComputeUser(ds *model.Dataset) *model.UserStats {
	us := &model.UserStats{
		UserTypes: ValueCounts(collect(ds.Trips, func(t model.Trip) string { return t.UserType })),
	}

	if ds.HasColumn(model.ColumnGender) {
		us.GenderAvailable = true
		us.Genders = ValueCounts(collect(ds.Trips, func(t model.Trip) string { return t.Gender }))
	}

	if ds.HasColumn(model.ColumnBirthYear) {
		years := make([]int, 0, len(ds.Trips))
		for _, t := range ds.Trips {
			if t.HasBirthYear {
				years = append(years, t.BirthYear)
			}
		}
		if common, ok := Mode(years); ok {
			us.BirthYearAvailable = true
			us.EarliestBirthYear = slices.Min(years)
			us.LatestBirthYear = slices.Max(years)
			us.CommonBirthYear = common
		}
	}

	return us
}

// UserStep computes rider demographics.
type UserStep struct{}

// NewUserStep creates a UserStep.
func NewUserStep() *UserStep {
	return &UserStep{}
}

// Name returns the step name.
func (s *UserStep) Name() string {
	return model.StepUserStats
}

// Do stores the user statistics of ds in report.
func (s *UserStep) Do(_ context.Context, ds *model.Dataset, report *model.Report) error {
	report.User = ComputeUser(ds)
	return nil
}
