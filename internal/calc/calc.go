// Package calc holds the pure derived-figure calculations for goal plans.
// All functions are deterministic, side-effect free, and trust their
// inputs; validation happens at the form layer before anything reaches
// this package.
package calc

import "math"

// Currency is one of the two supported currency tags.
type Currency string

const (
	NGN Currency = "NGN"
	USD Currency = "USD"
)

// Recruitment holds the pacing figures for growing a team to a target size.
type Recruitment struct {
	Needed   int
	PerMonth int
	PerWeek  float64
}

// CalculateRecruitment returns how many recruits are needed and the pace
// required to hit the target within monthsRemaining. Pacing always rounds
// up so the user never under-targets; per-week is rounded up to the
// nearest tenth of a person. A non-positive monthsRemaining collapses the
// monthly pace to the full remaining count.
func CalculateRecruitment(current, target, monthsRemaining int) Recruitment {
	needed := target - current
	if needed < 0 {
		needed = 0
	}

	perMonth := needed
	if monthsRemaining > 0 {
		perMonth = int(math.Ceil(float64(needed) / float64(monthsRemaining)))
	}

	perWeek := math.Ceil(float64(perMonth)/4*10) / 10

	return Recruitment{
		Needed:   needed,
		PerMonth: perMonth,
		PerWeek:  perWeek,
	}
}

// IncomeBreakdown splits an annual income figure into period targets.
// No rounding here; the display layer rounds.
type IncomeBreakdown struct {
	Monthly float64
	Weekly  float64
	Daily   float64
}

// CalculateIncomeBreakdown divides an annual figure across the year.
func CalculateIncomeBreakdown(annual float64) IncomeBreakdown {
	return IncomeBreakdown{
		Monthly: annual / 12,
		Weekly:  annual / 52,
		Daily:   annual / 365,
	}
}

// FreelanceInput carries the raw freelance goal figures. ProjectCount and
// AvgValue are optional; zero means absent.
type FreelanceInput struct {
	IncomeGoal   float64
	ProjectCount float64
	AvgValue     float64
}

// FreelanceTargets holds the derived freelance pacing figures.
type FreelanceTargets struct {
	AvgNeeded      int
	ProjectsNeeded int
	PerMonth       int
	PerWeek        int
}

// CalculateFreelanceTargets derives project pacing from an income goal
// paired with either a project count or an average project value. The
// project-count pairing wins when both are present. Returns ok=false when
// neither pairing is satisfiable — absence, not zero, so callers can
// distinguish "not enough input" from "target is literally zero".
func CalculateFreelanceTargets(in FreelanceInput) (FreelanceTargets, bool) {
	if in.IncomeGoal != 0 && in.ProjectCount != 0 {
		return FreelanceTargets{
			AvgNeeded:      int(math.Ceil(in.IncomeGoal / in.ProjectCount)),
			ProjectsNeeded: int(math.Ceil(in.ProjectCount)),
			PerMonth:       int(math.Ceil(in.ProjectCount / 12)),
			PerWeek:        int(math.Ceil(in.ProjectCount / 52)),
		}, true
	}

	if in.IncomeGoal != 0 && in.AvgValue != 0 {
		projects := math.Ceil(in.IncomeGoal / in.AvgValue)
		return FreelanceTargets{
			AvgNeeded:      int(math.Ceil(in.AvgValue)),
			ProjectsNeeded: int(projects),
			PerMonth:       int(math.Ceil(projects / 12)),
			PerWeek:        int(math.Ceil(projects / 52)),
		}, true
	}

	return FreelanceTargets{}, false
}

// CalculateReviewVelocity returns how many 5-star reviews per month are
// needed to hit the annual goal, rounded up. Zero goal yields zero.
func CalculateReviewVelocity(goal int) int {
	if goal == 0 {
		return 0
	}
	return int(math.Ceil(float64(goal) / 12))
}

// Convert multiplies a value by an exchange rate for display purposes.
// Returns ok=false when either input is absent or zero — a missing rate is
// never silently treated as 1.
func Convert(value, rate float64) (float64, bool) {
	if value == 0 || rate == 0 {
		return 0, false
	}
	return value * rate, true
}
