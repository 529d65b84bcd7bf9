package frn_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/quantmill/frnlib/frn"
)

func TestPaymentsPerYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		period frn.ResetPeriod
		want   int
	}{
		{frn.ResetMonthly, 12},
		{frn.ResetQuarterly, 4},
		{frn.ResetSemiAnnually, 2},
		{frn.ResetAnnually, 1},
	}
	for _, c := range cases {
		got, err := c.period.PaymentsPerYear()
		if err != nil {
			t.Fatalf("PaymentsPerYear(%s) error: %v", c.period, err)
		}
		if got != c.want {
			t.Fatalf("PaymentsPerYear(%s) mismatch: got %d want %d", c.period, got, c.want)
		}
	}
}

func TestPaymentsPerYear_Unknown(t *testing.T) {
	t.Parallel()

	_, err := frn.ResetPeriod("Weekly").PaymentsPerYear()
	if err == nil {
		t.Fatal("expected error for unknown reset period")
	}
	if !errors.Is(err, frn.ErrUnknownResetPeriod) {
		t.Fatalf("expected ErrUnknownResetPeriod, got %v", err)
	}
	if !strings.Contains(err.Error(), "Weekly") {
		t.Fatalf("error should name the illegal value, got %q", err.Error())
	}
}

func TestParseResetPeriod(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want frn.ResetPeriod
	}{
		{"Monthly", frn.ResetMonthly},
		{"monthly", frn.ResetMonthly},
		{"Quarterly", frn.ResetQuarterly},
		{" quarterly ", frn.ResetQuarterly},
		{"Semi-Annually", frn.ResetSemiAnnually},
		{"semiannually", frn.ResetSemiAnnually},
		{"SEMI-ANNUAL", frn.ResetSemiAnnually},
		{"Annually", frn.ResetAnnually},
		{"annual", frn.ResetAnnually},
	}
	for _, c := range cases {
		got, err := frn.ParseResetPeriod(c.in)
		if err != nil {
			t.Fatalf("ParseResetPeriod(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseResetPeriod(%q) mismatch: got %s want %s", c.in, got, c.want)
		}
	}
}

func TestParseResetPeriod_Unknown(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Weekly", "", "biweekly"} {
		_, err := frn.ParseResetPeriod(in)
		if err == nil {
			t.Fatalf("ParseResetPeriod(%q): expected error", in)
		}
		if !errors.Is(err, frn.ErrUnknownResetPeriod) {
			t.Fatalf("ParseResetPeriod(%q): expected ErrUnknownResetPeriod, got %v", in, err)
		}
	}
}

func TestAllResetPeriods_FixedOrder(t *testing.T) {
	t.Parallel()

	want := []frn.ResetPeriod{
		frn.ResetMonthly,
		frn.ResetQuarterly,
		frn.ResetSemiAnnually,
		frn.ResetAnnually,
	}
	got := frn.AllResetPeriods()
	if len(got) != len(want) {
		t.Fatalf("expected %d periods, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %s want %s", i, got[i], want[i])
		}
	}
}
