package frn

import (
	"fmt"

	"github.com/quantmill/frnlib/utils"
)

// Cashflows generates the coupon schedule implied by the note terms.
//
// The schedule is index based: period i (1-based) pays at i / payments_per_year
// years from the start date. Every period pays notional × periodic rate, where
//
//	periodic_rate = (coupon + spread) / payments_per_year
//
// and the final period additionally repays the notional. The period count is
//
//	floor(time_to_maturity × payments_per_year)
//
// with time to maturity measured in whole calendar days over 365.25. A
// maturity less than one full period after start yields an empty schedule.
func Cashflows(in DurationInput) ([]Cashflow, error) {
	flows, _, _, err := buildSchedule(in)
	if err != nil {
		return nil, fmt.Errorf("Cashflows: %w", err)
	}
	return flows, nil
}

// buildSchedule derives the cash-flow sequence along with the note's time to
// maturity in years and the payments per year. Errors are unprefixed so each
// exported caller can name itself.
func buildSchedule(in DurationInput) ([]Cashflow, float64, int, error) {
	ppy, err := in.ResetPeriod.PaymentsPerYear()
	if err != nil {
		return nil, 0, 0, err
	}

	if utils.WholeDays(in.StartDate, in.MaturityDate) < 0 {
		return nil, 0, 0, fmt.Errorf("%w: maturity %s before start %s",
			ErrInvertedDates,
			in.MaturityDate.Format("2006-01-02"),
			in.StartDate.Format("2006-01-02"))
	}

	ttm := utils.YearsActual365_25(in.StartDate, in.MaturityDate)
	periodicRate := (in.CouponRate + in.Spread) / float64(ppy)

	n := int(ttm * float64(ppy))
	if n == 0 {
		return nil, ttm, ppy, nil
	}

	flows := make([]Cashflow, n)
	for i := range flows {
		flows[i] = Cashflow{
			PeriodIndex: i + 1,
			TimeYears:   float64(i+1) / float64(ppy),
			Amount:      in.Notional * periodicRate,
		}
	}
	flows[n-1].Amount += in.Notional

	return flows, ttm, ppy, nil
}
