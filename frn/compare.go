package frn

import "fmt"

// CompareResetPeriods computes the Macaulay duration of the same note at each
// of the four standard reset frequencies, in the fixed order returned by
// AllResetPeriods.
//
// Each point is an independent computation over the shared terms; the input's
// own ResetPeriod is ignored.
func CompareResetPeriods(in DurationInput) ([]ProfilePoint, error) {
	points := make([]ProfilePoint, 0, 4)
	for _, period := range AllResetPeriods() {
		variant := in
		variant.ResetPeriod = period

		res, err := ComputeMacaulayDuration(variant)
		if err != nil {
			return nil, fmt.Errorf("CompareResetPeriods: %w", err)
		}
		points = append(points, ProfilePoint{ResetPeriod: period, Years: res.Years})
	}
	return points, nil
}
