// Package plan defines the in-memory goal plan: the yearly and monthly
// aggregates, the derived calculations snapshot, and the session that owns
// them. The session is an explicitly-constructed state container with a
// create → mutate-via-group-update → reset lifecycle; nothing in here is
// process-global.
package plan

import "github.com/elivatehq/planner/internal/calc"

// Money is an optional monetary (or large numeric) value. Valid=false
// means the value is absent, which is distinct from zero.
type Money struct {
	Valid bool
	Value float64
}

// NewMoney returns a present Money value.
func NewMoney(v float64) Money {
	return Money{Valid: true, Value: v}
}

// Count is an optional non-negative integer value.
type Count struct {
	Valid bool
	Value int
}

// NewCount returns a present Count value.
func NewCount(v int) Count {
	return Count{Valid: true, Value: v}
}

// Track selects the planning track.
type Track string

const (
	TrackYearly  Track = "yearly"
	TrackMonthly Track = "monthly"
)

// VisionGoals is the annual vision field group. DreamGoal, when present,
// supersedes TotalIncomeGoal as the authoritative annual income figure.
type VisionGoals struct {
	Statement       string
	Word            string
	TotalIncomeGoal Money
	MinimumGoal     Money
	RealisticGoal   Money
	DreamGoal       Money
	Motivation      string
	Currency        calc.Currency
}

// AnnualIncome returns the authoritative annual income figure: the dream
// goal when present, otherwise the total income goal.
func (v VisionGoals) AnnualIncome() Money {
	if v.DreamGoal.Valid {
		return v.DreamGoal
	}
	return v.TotalIncomeGoal
}

// NetworkMarketingGoals is the team-growth field group.
type NetworkMarketingGoals struct {
	CurrentTeamSize Count
	TargetTeamSize  Count
	CurrentRank     string
	TargetRank      string
	QuarterlyRanks  [4]string
	IncomeGoal      Money
	Why             string
}

// FiverrGoals is the freelance field group. ExchangeToNGN is used only for
// display conversion; it never mutates the stored goal.
type FiverrGoals struct {
	PrimarySkill    string
	SecondarySkill  string
	LearningGoals   string
	IncomeGoal      Money
	ProjectTarget   Count
	AvgProjectValue Money
	TargetLevel     string
	ReviewsGoal     Count
	Why             string
	Currency        calc.Currency
	ExchangeToNGN   Money
}

// PersonalDevelopmentGoals holds the growth narrative and reading list.
// Book slots may be empty strings — unset, not absent.
type PersonalDevelopmentGoals struct {
	Goals     string
	Books     [12]string
	Courses   string
	Events    string
	Why       string
	GamePlan  string
	HabitPlan string
}

// DailyIpas holds the daily income-producing activities.
type DailyIpas struct {
	Activities   [8]string
	Why          string
	HabitSupport string
}

// Commitment records the monthly-review commitment. SignatureName is used
// verbatim on generated documents.
type Commitment struct {
	ReviewDay     string
	Partner       string
	Agreed        bool
	SignatureName string
}

// YearlyGoals aggregates the six yearly field groups.
type YearlyGoals struct {
	Vision           VisionGoals
	NetworkMarketing NetworkMarketingGoals
	Fiverr           FiverrGoals
	PersonalDev      PersonalDevelopmentGoals
	Ipas             DailyIpas
	Commitment       Commitment
}

// MonthlyGoals is the single-step monthly sprint plan.
type MonthlyGoals struct {
	Month          string
	Focus          string
	Priorities     [3]string
	NMRecruitment  Count
	NMIncome       Money
	NMWhy          string
	FiverrProjects Count
	FiverrIncome   Money
	FiverrWhy      string
	Ipas           [6]string
	EndVision      string
}

// Calculations is the derived, denormalized snapshot. It is not part of
// the source of truth; it is recomputed from the goal aggregates on every
// relevant edit and merged with partial-update semantics.
type Calculations struct {
	RecruitmentNeeded      Count
	RecruitmentPerMonth    Count
	RecruitmentPerWeek     Money
	NMMonthlyIncome        Money
	NMWeeklyIncome         Money
	FiverrAvgPerProject    Money
	FiverrProjectsNeeded   Count
	FiverrProjectsPerMonth Count
	FiverrProjectsPerWeek  Count
	FiverrIncomeCurrency   calc.Currency
	ReviewPerMonth         Count
}

// DefaultYearly returns the all-empty yearly aggregate.
func DefaultYearly() YearlyGoals {
	return YearlyGoals{
		Vision: VisionGoals{Currency: calc.NGN},
		Fiverr: FiverrGoals{Currency: calc.USD},
	}
}

// DefaultMonthly returns the all-empty monthly plan.
func DefaultMonthly() MonthlyGoals {
	return MonthlyGoals{}
}

// DefaultCalculations returns the all-null snapshot.
func DefaultCalculations() Calculations {
	return Calculations{FiverrIncomeCurrency: calc.USD}
}
