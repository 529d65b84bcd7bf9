package frn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ComputeMacaulayDuration computes the Macaulay duration of a floating rate
// note from its index-based coupon schedule (see Cashflows).
//
// Each flow is discounted at the periodic coupon rate; the spread raises the
// coupon amounts but is excluded from discounting:
//
//	pv_i     = amount_i / (1 + coupon/payments_per_year)^i
//	duration = Σ(t_i × pv_i) / Σ(pv_i)
//
// Degenerate notes (no full coupon period, or zero total present value)
// yield a zero duration and no error. A maturity before the start date or an
// unknown reset period is an error.
func ComputeMacaulayDuration(in DurationInput) (DurationResult, error) {
	flows, ttm, ppy, err := buildSchedule(in)
	if err != nil {
		return DurationResult{}, fmt.Errorf("ComputeMacaulayDuration: %w", err)
	}

	res := DurationResult{
		TimeToMaturity:  ttm,
		NumberOfPeriods: len(flows),
	}
	if len(flows) == 0 {
		return res, nil
	}

	base := 1.0 + in.CouponRate/float64(ppy)
	if base == 0 {
		// A periodic discount rate of exactly -100% has no finite present value.
		return res, nil
	}

	times := make([]float64, len(flows))
	pvs := make([]float64, len(flows))
	for i, cf := range flows {
		times[i] = cf.TimeYears
		pvs[i] = cf.Amount / math.Pow(base, float64(cf.PeriodIndex))
	}

	total := floats.Sum(pvs)
	if total == 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return res, nil
	}

	res.PresentValue = total
	res.Years = stat.Mean(times, pvs)
	return res, nil
}
