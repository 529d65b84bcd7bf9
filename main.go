package main

import (
	"fmt"
	"log"
	"time"

	"github.com/quantmill/frnlib/frn"
)

func main() {
	note := frn.DurationInput{
		Notional:     1000,
		CouponRate:   0.05,
		Spread:       0.01,
		ResetPeriod:  frn.ResetQuarterly,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MaturityDate: time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	res, err := frn.ComputeMacaulayDuration(note)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Time to maturity: %.4f years (%d %s periods)\n",
		res.TimeToMaturity, res.NumberOfPeriods, note.ResetPeriod)
	fmt.Printf("Total present value: %.2f\n", res.PresentValue)
	fmt.Printf("Macaulay duration: %.3f years\n", res.Years)

	points, err := frn.CompareResetPeriods(note)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nMacaulay duration vs. reset period:")
	for _, p := range points {
		fmt.Printf("  %-13s %.3f\n", p.ResetPeriod, p.Years)
	}
}
