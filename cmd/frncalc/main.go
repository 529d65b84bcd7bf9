package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quantmill/frnlib/frn"
	"github.com/quantmill/frnlib/utils"
)

// CalcInput defines the JSON input schema for FRN duration calculation.
// Rates are decimal fractions (0.05 for 5%), dates are YYYY-MM-DD.
type CalcInput struct {
	TaskID string `json:"task_id,omitempty"`

	Notional            float64 `json:"notional"`
	CouponRate          float64 `json:"coupon_rate"`
	ReferenceRateSpread float64 `json:"reference_rate_spread"`
	ResetPeriod         string  `json:"reset_period"`
	StartDate           string  `json:"start_date"`
	MaturityDate        string  `json:"maturity_date"`
}

// CalcOutput defines the JSON output schema.
type CalcOutput struct {
	TaskID                string         `json:"task_id,omitempty"`
	MacaulayDurationYears float64        `json:"macaulay_duration_years"`
	TimeToMaturityYears   float64        `json:"time_to_maturity_years"`
	NumberOfPeriods       int            `json:"number_of_periods"`
	TotalPresentValue     float64        `json:"total_present_value"`
	Profile               []ProfilePoint `json:"profile,omitempty"`
	Error                 string         `json:"error,omitempty"`
}

// ProfilePoint is one row of the duration-vs-reset-period table.
type ProfilePoint struct {
	ResetPeriod           string  `json:"reset_period"`
	MacaulayDurationYears float64 `json:"macaulay_duration_years"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (optional; if set, ignores stdin)")
	withProfile := flag.Bool("profile", false, "Include the duration at all four reset periods")
	pretty := flag.Bool("pretty", false, "Indent the JSON output")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		usage()
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			usage()
			os.Exit(2)
		}
	}

	inputBytes, err := readInput(path)
	if err != nil {
		writeError(fmt.Sprintf("failed to read input: %v", err))
		return
	}

	inputs, isArray, err := parseInputs(inputBytes)
	if err != nil {
		writeError(fmt.Sprintf("failed to parse JSON input: %v", err))
		return
	}

	hadError := false
	outputs := make([]CalcOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := calculateDuration(in, *withProfile)
		if err != nil {
			hadError = true
			outputs = append(outputs, CalcOutput{
				TaskID: in.TaskID,
				Error:  err.Error(),
			})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		fmt.Println(marshal(outputs, *pretty))
	} else {
		fmt.Println(marshal(outputs[0], *pretty))
	}

	if hadError {
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  frncalc < input.json")
	fmt.Println("  frncalc -input /path/to/input.json [-profile] [-pretty]")
	fmt.Println()
	fmt.Println("Read FRN terms as JSON, calculate the Macaulay duration, output JSON to stdout.")
	fmt.Println("The input may be a single object or an array of objects.")
	fmt.Println()
	fmt.Println("Example input:")
	fmt.Println(`  {`)
	fmt.Println(`    "notional": 1000,`)
	fmt.Println(`    "coupon_rate": 0.05,`)
	fmt.Println(`    "reference_rate_spread": 0.01,`)
	fmt.Println(`    "reset_period": "Quarterly",`)
	fmt.Println(`    "start_date": "2024-01-01",`)
	fmt.Println(`    "maturity_date": "2030-12-31"`)
	fmt.Println(`  }`)
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]CalcInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var inputs []CalcInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}

	var input CalcInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []CalcInput{input}, false, nil
}

func marshal(v interface{}, pretty bool) string {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(out)
}

func writeError(msg string) {
	fmt.Println(marshal(CalcOutput{Error: msg}, false))
	os.Exit(1)
}

func calculateDuration(input CalcInput, withProfile bool) (*CalcOutput, error) {
	if input.Notional <= 0 {
		return nil, fmt.Errorf("notional must be positive")
	}
	if input.CouponRate < 0 {
		return nil, fmt.Errorf("coupon_rate must not be negative")
	}
	if input.ReferenceRateSpread < 0 {
		return nil, fmt.Errorf("reference_rate_spread must not be negative")
	}

	startDate, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %v", err)
	}
	maturityDate, err := utils.ParseDate(input.MaturityDate)
	if err != nil {
		return nil, fmt.Errorf("invalid maturity_date: %v", err)
	}

	period, err := frn.ParseResetPeriod(input.ResetPeriod)
	if err != nil {
		return nil, err
	}

	note := frn.DurationInput{
		Notional:     input.Notional,
		CouponRate:   input.CouponRate,
		Spread:       input.ReferenceRateSpread,
		ResetPeriod:  period,
		StartDate:    startDate,
		MaturityDate: maturityDate,
	}

	res, err := frn.ComputeMacaulayDuration(note)
	if err != nil {
		return nil, err
	}

	out := &CalcOutput{
		TaskID:                input.TaskID,
		MacaulayDurationYears: res.Years,
		TimeToMaturityYears:   res.TimeToMaturity,
		NumberOfPeriods:       res.NumberOfPeriods,
		TotalPresentValue:     res.PresentValue,
	}

	if withProfile {
		points, err := frn.CompareResetPeriods(note)
		if err != nil {
			return nil, err
		}
		out.Profile = make([]ProfilePoint, 0, len(points))
		for _, p := range points {
			out.Profile = append(out.Profile, ProfilePoint{
				ResetPeriod:           string(p.ResetPeriod),
				MacaulayDurationYears: p.Years,
			})
		}
	}

	return out, nil
}
