package calc

import (
	"math"
	"testing"
)

func TestCalculateRecruitment(t *testing.T) {
	r := CalculateRecruitment(10, 40, 12)
	if r.Needed != 30 {
		t.Fatalf("Needed = %d, want 30", r.Needed)
	}
	if r.PerMonth != 3 {
		t.Fatalf("PerMonth = %d, want 3", r.PerMonth)
	}
	if r.PerWeek != 0.8 {
		t.Fatalf("PerWeek = %v, want 0.8", r.PerWeek)
	}
}

func TestCalculateRecruitment_NeededNeverNegative(t *testing.T) {
	cases := []struct {
		current, target int
		want            int
	}{
		{0, 0, 0},
		{5, 5, 0},
		{50, 10, 0},
		{10, 120, 110},
	}
	for _, c := range cases {
		r := CalculateRecruitment(c.current, c.target, 12)
		if r.Needed != c.want {
			t.Errorf("recruitment(%d, %d).Needed = %d, want %d", c.current, c.target, r.Needed, c.want)
		}
	}
}

func TestCalculateRecruitment_ZeroMonthsRemaining(t *testing.T) {
	r := CalculateRecruitment(10, 40, 0)
	if r.PerMonth != 30 {
		t.Fatalf("PerMonth with 0 months = %d, want 30 (full remaining count)", r.PerMonth)
	}
}

func TestCalculateIncomeBreakdown(t *testing.T) {
	b := CalculateIncomeBreakdown(5_000_000)

	const tol = 0.01
	if math.Abs(b.Monthly-416666.67) > tol {
		t.Errorf("Monthly = %v, want ~416666.67", b.Monthly)
	}
	if math.Abs(b.Weekly-96153.85) > tol {
		t.Errorf("Weekly = %v, want ~96153.85", b.Weekly)
	}
	if math.Abs(b.Daily-13698.63) > tol {
		t.Errorf("Daily = %v, want ~13698.63", b.Daily)
	}
}

func TestCalculateFreelanceTargets_ProjectCountPair(t *testing.T) {
	ft, ok := CalculateFreelanceTargets(FreelanceInput{IncomeGoal: 30000, ProjectCount: 40})
	if !ok {
		t.Fatal("expected a result for income + project count")
	}
	if ft.AvgNeeded != 750 {
		t.Errorf("AvgNeeded = %d, want 750", ft.AvgNeeded)
	}
	if ft.ProjectsNeeded != 40 {
		t.Errorf("ProjectsNeeded = %d, want 40", ft.ProjectsNeeded)
	}
	if ft.PerMonth != 4 {
		t.Errorf("PerMonth = %d, want 4", ft.PerMonth)
	}
	if ft.PerWeek != 1 {
		t.Errorf("PerWeek = %d, want 1", ft.PerWeek)
	}
}

func TestCalculateFreelanceTargets_AvgValuePair(t *testing.T) {
	ft, ok := CalculateFreelanceTargets(FreelanceInput{IncomeGoal: 30000, AvgValue: 700})
	if !ok {
		t.Fatal("expected a result for income + avg value")
	}
	if ft.ProjectsNeeded != 43 { // ceil(30000/700)
		t.Errorf("ProjectsNeeded = %d, want 43", ft.ProjectsNeeded)
	}
	if ft.AvgNeeded != 700 {
		t.Errorf("AvgNeeded = %d, want 700", ft.AvgNeeded)
	}
	if ft.PerMonth != 4 { // ceil(43/12)
		t.Errorf("PerMonth = %d, want 4", ft.PerMonth)
	}
}

func TestCalculateFreelanceTargets_ProjectCountWinsOverAvgValue(t *testing.T) {
	ft, ok := CalculateFreelanceTargets(FreelanceInput{IncomeGoal: 30000, ProjectCount: 40, AvgValue: 999})
	if !ok {
		t.Fatal("expected a result")
	}
	if ft.AvgNeeded != 750 {
		t.Errorf("AvgNeeded = %d, want 750 (project count pairing takes priority)", ft.AvgNeeded)
	}
}

func TestCalculateFreelanceTargets_InsufficientInput(t *testing.T) {
	if _, ok := CalculateFreelanceTargets(FreelanceInput{IncomeGoal: 100}); ok {
		t.Fatal("income goal alone must yield no result, not zero")
	}
	if _, ok := CalculateFreelanceTargets(FreelanceInput{ProjectCount: 10}); ok {
		t.Fatal("project count alone must yield no result")
	}
}

func TestCalculateReviewVelocity(t *testing.T) {
	if got := CalculateReviewVelocity(50); got != 5 {
		t.Errorf("reviewVelocity(50) = %d, want 5", got)
	}
	if got := CalculateReviewVelocity(0); got != 0 {
		t.Errorf("reviewVelocity(0) = %d, want 0", got)
	}
	if got := CalculateReviewVelocity(60); got != 5 {
		t.Errorf("reviewVelocity(60) = %d, want 5", got)
	}
}

func TestConvert(t *testing.T) {
	v, ok := Convert(100, 1500)
	if !ok || v != 150000 {
		t.Fatalf("Convert(100, 1500) = %v, %v; want 150000, true", v, ok)
	}
	if _, ok := Convert(100, 0); ok {
		t.Fatal("missing rate must yield no result, never a silent rate of 1")
	}
	if _, ok := Convert(0, 1500); ok {
		t.Fatal("absent value must yield no result")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		cur    Currency
		want   string
	}{
		{5000000, NGN, "₦5,000,000"},
		{20000, USD, "$20,000"},
		{416666.67, NGN, "₦416,667"},
	}
	for _, c := range cases {
		if got := Format(c.amount, c.cur); got != c.want {
			t.Errorf("Format(%v, %s) = %q, want %q", c.amount, c.cur, got, c.want)
		}
	}
}

func TestFormatCode_SameDigitsAsFormat(t *testing.T) {
	// The print backend uses the ASCII code variant; the grouped digits
	// must be identical to the symbol variant or the two renderers drift.
	for _, amount := range []float64{0, 750, 20000, 5000000, 416666.67} {
		for _, cur := range []Currency{NGN, USD} {
			sym := Format(amount, cur)
			code := FormatCode(amount, cur)
			if sym[len(symbolPrefix(cur)):] != code[len(string(cur))+1:] {
				t.Errorf("digit mismatch for %v %s: %q vs %q", amount, cur, sym, code)
			}
		}
	}
}

func symbolPrefix(c Currency) string {
	if c == NGN {
		return "₦"
	}
	return "$"
}
