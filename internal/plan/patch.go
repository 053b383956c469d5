package plan

import "github.com/elivatehq/planner/internal/calc"

// Patch types carry one pointer per field. A nil field leaves the current
// value untouched; a non-nil Money/Count pointing at an invalid value sets
// the field back to absent. Merges are shallow and scoped to exactly one
// field group — applying a patch never disturbs another group or an
// unspecified field within the same group.

// VisionPatch is a partial update to VisionGoals.
type VisionPatch struct {
	Statement       *string
	Word            *string
	TotalIncomeGoal *Money
	MinimumGoal     *Money
	RealisticGoal   *Money
	DreamGoal       *Money
	Motivation      *string
	Currency        *calc.Currency
}

func (v *VisionGoals) apply(p VisionPatch) {
	if p.Statement != nil {
		v.Statement = *p.Statement
	}
	if p.Word != nil {
		v.Word = *p.Word
	}
	if p.TotalIncomeGoal != nil {
		v.TotalIncomeGoal = *p.TotalIncomeGoal
	}
	if p.MinimumGoal != nil {
		v.MinimumGoal = *p.MinimumGoal
	}
	if p.RealisticGoal != nil {
		v.RealisticGoal = *p.RealisticGoal
	}
	if p.DreamGoal != nil {
		v.DreamGoal = *p.DreamGoal
	}
	if p.Motivation != nil {
		v.Motivation = *p.Motivation
	}
	if p.Currency != nil {
		v.Currency = *p.Currency
	}
}

// NetworkPatch is a partial update to NetworkMarketingGoals.
type NetworkPatch struct {
	CurrentTeamSize *Count
	TargetTeamSize  *Count
	CurrentRank     *string
	TargetRank      *string
	QuarterlyRanks  *[4]string
	IncomeGoal      *Money
	Why             *string
}

func (n *NetworkMarketingGoals) apply(p NetworkPatch) {
	if p.CurrentTeamSize != nil {
		n.CurrentTeamSize = *p.CurrentTeamSize
	}
	if p.TargetTeamSize != nil {
		n.TargetTeamSize = *p.TargetTeamSize
	}
	if p.CurrentRank != nil {
		n.CurrentRank = *p.CurrentRank
	}
	if p.TargetRank != nil {
		n.TargetRank = *p.TargetRank
	}
	if p.QuarterlyRanks != nil {
		n.QuarterlyRanks = *p.QuarterlyRanks
	}
	if p.IncomeGoal != nil {
		n.IncomeGoal = *p.IncomeGoal
	}
	if p.Why != nil {
		n.Why = *p.Why
	}
}

// FiverrPatch is a partial update to FiverrGoals.
type FiverrPatch struct {
	PrimarySkill    *string
	SecondarySkill  *string
	LearningGoals   *string
	IncomeGoal      *Money
	ProjectTarget   *Count
	AvgProjectValue *Money
	TargetLevel     *string
	ReviewsGoal     *Count
	Why             *string
	Currency        *calc.Currency
	ExchangeToNGN   *Money
}

func (f *FiverrGoals) apply(p FiverrPatch) {
	if p.PrimarySkill != nil {
		f.PrimarySkill = *p.PrimarySkill
	}
	if p.SecondarySkill != nil {
		f.SecondarySkill = *p.SecondarySkill
	}
	if p.LearningGoals != nil {
		f.LearningGoals = *p.LearningGoals
	}
	if p.IncomeGoal != nil {
		f.IncomeGoal = *p.IncomeGoal
	}
	if p.ProjectTarget != nil {
		f.ProjectTarget = *p.ProjectTarget
	}
	if p.AvgProjectValue != nil {
		f.AvgProjectValue = *p.AvgProjectValue
	}
	if p.TargetLevel != nil {
		f.TargetLevel = *p.TargetLevel
	}
	if p.ReviewsGoal != nil {
		f.ReviewsGoal = *p.ReviewsGoal
	}
	if p.Why != nil {
		f.Why = *p.Why
	}
	if p.Currency != nil {
		f.Currency = *p.Currency
	}
	if p.ExchangeToNGN != nil {
		f.ExchangeToNGN = *p.ExchangeToNGN
	}
}

// PersonalPatch is a partial update to PersonalDevelopmentGoals.
type PersonalPatch struct {
	Goals     *string
	Books     *[12]string
	Courses   *string
	Events    *string
	Why       *string
	GamePlan  *string
	HabitPlan *string
}

func (pd *PersonalDevelopmentGoals) apply(p PersonalPatch) {
	if p.Goals != nil {
		pd.Goals = *p.Goals
	}
	if p.Books != nil {
		pd.Books = *p.Books
	}
	if p.Courses != nil {
		pd.Courses = *p.Courses
	}
	if p.Events != nil {
		pd.Events = *p.Events
	}
	if p.Why != nil {
		pd.Why = *p.Why
	}
	if p.GamePlan != nil {
		pd.GamePlan = *p.GamePlan
	}
	if p.HabitPlan != nil {
		pd.HabitPlan = *p.HabitPlan
	}
}

// IpasPatch is a partial update to DailyIpas.
type IpasPatch struct {
	Activities   *[8]string
	Why          *string
	HabitSupport *string
}

func (d *DailyIpas) apply(p IpasPatch) {
	if p.Activities != nil {
		d.Activities = *p.Activities
	}
	if p.Why != nil {
		d.Why = *p.Why
	}
	if p.HabitSupport != nil {
		d.HabitSupport = *p.HabitSupport
	}
}

// CommitmentPatch is a partial update to Commitment.
type CommitmentPatch struct {
	ReviewDay     *string
	Partner       *string
	Agreed        *bool
	SignatureName *string
}

func (c *Commitment) apply(p CommitmentPatch) {
	if p.ReviewDay != nil {
		c.ReviewDay = *p.ReviewDay
	}
	if p.Partner != nil {
		c.Partner = *p.Partner
	}
	if p.Agreed != nil {
		c.Agreed = *p.Agreed
	}
	if p.SignatureName != nil {
		c.SignatureName = *p.SignatureName
	}
}

// MonthlyPatch is a partial update to MonthlyGoals.
type MonthlyPatch struct {
	Month          *string
	Focus          *string
	Priorities     *[3]string
	NMRecruitment  *Count
	NMIncome       *Money
	NMWhy          *string
	FiverrProjects *Count
	FiverrIncome   *Money
	FiverrWhy      *string
	Ipas           *[6]string
	EndVision      *string
}

func (m *MonthlyGoals) apply(p MonthlyPatch) {
	if p.Month != nil {
		m.Month = *p.Month
	}
	if p.Focus != nil {
		m.Focus = *p.Focus
	}
	if p.Priorities != nil {
		m.Priorities = *p.Priorities
	}
	if p.NMRecruitment != nil {
		m.NMRecruitment = *p.NMRecruitment
	}
	if p.NMIncome != nil {
		m.NMIncome = *p.NMIncome
	}
	if p.NMWhy != nil {
		m.NMWhy = *p.NMWhy
	}
	if p.FiverrProjects != nil {
		m.FiverrProjects = *p.FiverrProjects
	}
	if p.FiverrIncome != nil {
		m.FiverrIncome = *p.FiverrIncome
	}
	if p.Ipas != nil {
		m.Ipas = *p.Ipas
	}
	if p.FiverrWhy != nil {
		m.FiverrWhy = *p.FiverrWhy
	}
	if p.EndVision != nil {
		m.EndVision = *p.EndVision
	}
}

// CalculationsPatch is a partial update to the Calculations snapshot.
// Updating one figure never clears unrelated figures.
type CalculationsPatch struct {
	RecruitmentNeeded      *Count
	RecruitmentPerMonth    *Count
	RecruitmentPerWeek     *Money
	NMMonthlyIncome        *Money
	NMWeeklyIncome         *Money
	FiverrAvgPerProject    *Money
	FiverrProjectsNeeded   *Count
	FiverrProjectsPerMonth *Count
	FiverrProjectsPerWeek  *Count
	FiverrIncomeCurrency   *calc.Currency
	ReviewPerMonth         *Count
}

func (c *Calculations) apply(p CalculationsPatch) {
	if p.RecruitmentNeeded != nil {
		c.RecruitmentNeeded = *p.RecruitmentNeeded
	}
	if p.RecruitmentPerMonth != nil {
		c.RecruitmentPerMonth = *p.RecruitmentPerMonth
	}
	if p.RecruitmentPerWeek != nil {
		c.RecruitmentPerWeek = *p.RecruitmentPerWeek
	}
	if p.NMMonthlyIncome != nil {
		c.NMMonthlyIncome = *p.NMMonthlyIncome
	}
	if p.NMWeeklyIncome != nil {
		c.NMWeeklyIncome = *p.NMWeeklyIncome
	}
	if p.FiverrAvgPerProject != nil {
		c.FiverrAvgPerProject = *p.FiverrAvgPerProject
	}
	if p.FiverrProjectsNeeded != nil {
		c.FiverrProjectsNeeded = *p.FiverrProjectsNeeded
	}
	if p.FiverrProjectsPerMonth != nil {
		c.FiverrProjectsPerMonth = *p.FiverrProjectsPerMonth
	}
	if p.FiverrProjectsPerWeek != nil {
		c.FiverrProjectsPerWeek = *p.FiverrProjectsPerWeek
	}
	if p.FiverrIncomeCurrency != nil {
		c.FiverrIncomeCurrency = *p.FiverrIncomeCurrency
	}
	if p.ReviewPerMonth != nil {
		c.ReviewPerMonth = *p.ReviewPerMonth
	}
}
