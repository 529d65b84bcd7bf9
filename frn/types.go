// Package frn prices floating rate note schedules and computes the Macaulay
// duration implied by a note's terms.
//
// Cash-flow times are period-index based (period i pays at i divided by the
// payments per year), not calendar-rolled dates, and discounting uses the
// periodic coupon rate alone. The model is deliberately simple: it captures
// how the reset frequency shapes duration without a projection curve.
package frn

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownResetPeriod is returned when a reset period is not one of the
	// four standard frequencies.
	ErrUnknownResetPeriod = errors.New("unknown reset period")
	// ErrInvertedDates is returned when the maturity date precedes the start date.
	ErrInvertedDates = errors.New("maturity date before start date")
)

// ResetPeriod enumerates the coupon reset frequencies of a floating rate note.
type ResetPeriod string

const (
	ResetMonthly      ResetPeriod = "Monthly"
	ResetQuarterly    ResetPeriod = "Quarterly"
	ResetSemiAnnually ResetPeriod = "Semi-Annually"
	ResetAnnually     ResetPeriod = "Annually"
)

// AllResetPeriods returns the four standard reset periods in display order,
// finest first.
func AllResetPeriods() []ResetPeriod {
	return []ResetPeriod{ResetMonthly, ResetQuarterly, ResetSemiAnnually, ResetAnnually}
}

// PaymentsPerYear maps the reset period to coupon payments per year.
func (p ResetPeriod) PaymentsPerYear() (int, error) {
	switch p {
	case ResetMonthly:
		return 12, nil
	case ResetQuarterly:
		return 4, nil
	case ResetSemiAnnually:
		return 2, nil
	case ResetAnnually:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownResetPeriod, string(p))
	}
}

// ParseResetPeriod converts a label such as "Quarterly" or "semi-annually"
// to a ResetPeriod. Matching is case-insensitive and tolerates the common
// unhyphenated spellings.
func ParseResetPeriod(s string) (ResetPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return ResetMonthly, nil
	case "quarterly":
		return ResetQuarterly, nil
	case "semi-annually", "semiannually", "semi-annual", "semiannual":
		return ResetSemiAnnually, nil
	case "annually", "annual":
		return ResetAnnually, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownResetPeriod, s)
	}
}

// DurationInput holds the floating rate note terms needed to compute the
// Macaulay duration.
type DurationInput struct {
	// Notional is the face amount, in currency units.
	Notional float64
	// CouponRate is the annualised base coupon as a decimal fraction
	// (0.05 for 5%). It doubles as the discount rate.
	CouponRate float64
	// Spread is the annualised reference-rate spread as a decimal fraction.
	// It raises the coupon amounts but does not enter the discount rate.
	Spread float64
	// ResetPeriod is the coupon reset and payment frequency.
	ResetPeriod ResetPeriod
	// StartDate is the note's start date. Only the calendar day matters.
	StartDate time.Time
	// MaturityDate is the redemption date. Must not precede StartDate.
	MaturityDate time.Time
}

// Cashflow is a single scheduled payment of a floating rate note.
type Cashflow struct {
	// PeriodIndex is the 1-based coupon period number.
	PeriodIndex int
	// TimeYears is the payment time in years from the start date,
	// PeriodIndex / payments per year.
	TimeYears float64
	// Amount is the payment in currency units. The final flow includes the
	// notional repayment.
	Amount float64
}

// DurationResult is the output of ComputeMacaulayDuration.
type DurationResult struct {
	// Years is the Macaulay duration in years. Zero for degenerate notes
	// with no full coupon period or no present value.
	Years float64
	// TimeToMaturity is the note's remaining life in years (Actual/365.25).
	TimeToMaturity float64
	// NumberOfPeriods is the count of coupon periods in the schedule.
	NumberOfPeriods int
	// PresentValue is the sum of the discounted cash flows.
	PresentValue float64
}

// ProfilePoint pairs a reset period with the duration computed at that
// frequency.
type ProfilePoint struct {
	ResetPeriod ResetPeriod
	Years       float64
}
