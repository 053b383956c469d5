package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/plan"
)

// Form value holders. huh binds to strings; numbers are parsed after the
// form completes, with the same floors huh enforces inline.

func requireNumber(min float64) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return errors.New("required")
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("enter a number")
		}
		if n < min {
			return fmt.Errorf("minimum is %d", int(min))
		}
		return nil
	}
}

func optionalNumber(min float64) func(string) error {
	req := requireNumber(min)
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return req(s)
	}
}

func parseFloat(s string) float64 {
	n, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return n
}

func parseOptFloat(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n := parseFloat(s)
	return &n
}

func parseOptInt(s string) *int {
	f := parseOptFloat(s)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func moneyString(m plan.Money) string {
	if !m.Valid {
		return ""
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

func countString(c plan.Count) string {
	if !c.Valid {
		return ""
	}
	return strconv.Itoa(c.Value)
}

// gateVals backs the member gate screen.
type gateVals struct {
	memberID string
}

func (a *App) gateForm() *huh.Form {
	a.gate = &gateVals{}
	return a.newForm(huh.NewGroup(
		huh.NewInput().
			Title("Member ID").
			Placeholder("ELV001").
			Description("Enter your team member ID to begin.").
			Value(&a.gate.memberID).
			Validate(func(s string) error {
				if !a.machine.allow(a.machine.normalize(s)) {
					return errors.New("Member ID not recognized. Check with your team lead.")
				}
				return nil
			}),
	))
}

// trackVals backs track selection.
type trackVals struct {
	track plan.Track
}

func (a *App) trackForm() *huh.Form {
	a.track = &trackVals{track: plan.TrackYearly}
	return a.newForm(huh.NewGroup(
		huh.NewSelect[plan.Track]().
			Title("What are you planning?").
			Options(
				huh.NewOption("Yearly goal plan", plan.TrackYearly),
				huh.NewOption("Monthly sprint", plan.TrackMonthly),
			).
			Value(&a.track.track),
	))
}

// visionVals backs the annual vision step.
type visionVals struct {
	statement, word                  string
	minimum, realistic, dream, total string
	motivation                       string
	currency                         calc.Currency
}

func (a *App) visionForm() *huh.Form {
	v := a.machine.Session().Yearly.Vision
	a.vision = &visionVals{
		statement:  v.Statement,
		word:       v.Word,
		minimum:    moneyString(v.MinimumGoal),
		realistic:  moneyString(v.RealisticGoal),
		dream:      moneyString(v.DreamGoal),
		total:      moneyString(v.TotalIncomeGoal),
		motivation: v.Motivation,
		currency:   v.Currency,
	}
	if a.vision.currency == "" {
		a.vision.currency = calc.NGN
	}

	return a.newForm(
		huh.NewGroup(
			huh.NewText().
				Title("Annual vision").
				Description("Describe your life by December 31st. At least 400 characters.").
				Value(&a.vision.statement).
				Validate(MinChars(400, "Please write at least 400 characters so your vision is concrete.")),
			huh.NewInput().
				Title("Word of the Year").
				Placeholder("Discipline").
				Value(&a.vision.word).
				Validate(Required("Word of the Year is required.")),
			huh.NewSelect[calc.Currency]().
				Title("Currency").
				Options(
					huh.NewOption("NGN (Naira)", calc.NGN),
					huh.NewOption("USD (Dollars)", calc.USD),
				).
				Value(&a.vision.currency),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Total income goal").
				Placeholder("5000000").
				Value(&a.vision.total).
				Validate(requireNumber(MinNumericValue)),
			huh.NewInput().
				Title("Minimum goal").
				Value(&a.vision.minimum).
				Validate(requireNumber(MinNumericValue)),
			huh.NewInput().
				Title("Realistic goal").
				Value(&a.vision.realistic).
				Validate(requireNumber(MinNumericValue)),
			huh.NewInput().
				Title("Dream goal").
				Description("The dream figure becomes your working annual target.").
				Value(&a.vision.dream).
				Validate(requireNumber(MinNumericValue)),
			huh.NewText().
				Title("Motivation").
				Description("Why does this matter? At least 50 characters.").
				Value(&a.vision.motivation).
				Validate(MinChars(50, "Add at least 50 characters.")),
		),
	)
}

func (a *App) visionInput() VisionInput {
	return VisionInput{
		Statement:       a.vision.statement,
		Word:            a.vision.word,
		TotalIncomeGoal: parseFloat(a.vision.total),
		MinimumGoal:     parseFloat(a.vision.minimum),
		RealisticGoal:   parseFloat(a.vision.realistic),
		DreamGoal:       parseFloat(a.vision.dream),
		Motivation:      a.vision.motivation,
		Currency:        a.vision.currency,
	}
}

// networkVals backs the team-growth step.
type networkVals struct {
	currentSize, targetSize string
	currentRank, targetRank string
	quarters                [4]string
	income, why             string
}

func (a *App) networkForm() *huh.Form {
	n := a.machine.Session().Yearly.NetworkMarketing
	a.network = &networkVals{
		currentSize: countString(n.CurrentTeamSize),
		targetSize:  countString(n.TargetTeamSize),
		currentRank: n.CurrentRank,
		targetRank:  n.TargetRank,
		quarters:    n.QuarterlyRanks,
		income:      moneyString(n.IncomeGoal),
		why:         n.Why,
	}

	rankOptions := huh.NewOptions(Ranks...)
	quarterFields := make([]huh.Field, 0, 4)
	for i := range a.network.quarters {
		quarterFields = append(quarterFields,
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Q%d rank", i+1)).
				Options(rankOptions...).
				Value(&a.network.quarters[i]),
		)
	}

	return a.newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current team size").
				Value(&a.network.currentSize).
				Validate(requireNumber(MinNumericValue)),
			huh.NewInput().
				Title("Target team size").
				Value(&a.network.targetSize).
				Validate(requireNumber(MinNumericValue)),
			huh.NewSelect[string]().
				Title("Current rank").
				Options(rankOptions...).
				Value(&a.network.currentRank),
			huh.NewSelect[string]().
				Title("Target rank").
				Options(rankOptions...).
				Value(&a.network.targetRank),
		),
		huh.NewGroup(quarterFields...),
		huh.NewGroup(
			huh.NewInput().
				Title("Income goal (NGN)").
				Value(&a.network.income).
				Validate(requireNumber(MinNumericValue)),
			huh.NewText().
				Title("Why this matters").
				Value(&a.network.why).
				Validate(MinChars(30, "Use at least 30 characters.")),
		),
	)
}

func (a *App) networkInput() NetworkInput {
	return NetworkInput{
		CurrentTeamSize: int(parseFloat(a.network.currentSize)),
		TargetTeamSize:  int(parseFloat(a.network.targetSize)),
		CurrentRank:     a.network.currentRank,
		TargetRank:      a.network.targetRank,
		QuarterlyRanks:  a.network.quarters,
		IncomeGoal:      parseFloat(a.network.income),
		Why:             a.network.why,
	}
}

// fiverrVals backs the freelance step.
type fiverrVals struct {
	primary, secondary, learning string
	income, projects, avg        string
	level                        string
	reviews, why                 string
	currency                     calc.Currency
}

func (a *App) fiverrForm() *huh.Form {
	f := a.machine.Session().Yearly.Fiverr
	a.fiverr = &fiverrVals{
		primary:   f.PrimarySkill,
		secondary: f.SecondarySkill,
		learning:  f.LearningGoals,
		income:    moneyString(f.IncomeGoal),
		projects:  countString(f.ProjectTarget),
		avg:       moneyString(f.AvgProjectValue),
		level:     f.TargetLevel,
		reviews:   countString(f.ReviewsGoal),
		why:       f.Why,
		currency:  f.Currency,
	}
	if a.fiverr.currency == "" {
		a.fiverr.currency = calc.USD
	}

	return a.newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Primary skill").
				Placeholder("Web development").
				Value(&a.fiverr.primary).
				Validate(Required("Primary skill is required.")),
			huh.NewInput().
				Title("Secondary skill (optional)").
				Placeholder("Copywriting").
				Value(&a.fiverr.secondary),
			huh.NewText().
				Title("Skill learning goal").
				Description("What new skills will you learn this year?").
				Value(&a.fiverr.learning).
				Validate(Required("Learning goal is required.")),
			huh.NewSelect[calc.Currency]().
				Title("Currency").
				Options(
					huh.NewOption("USD", calc.USD),
					huh.NewOption("NGN", calc.NGN),
				).
				Value(&a.fiverr.currency),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Income goal").
				Placeholder("30000").
				Value(&a.fiverr.income).
				Validate(requireNumber(MinNumericValue)),
			huh.NewInput().
				Title("Projects to complete").
				Placeholder("40").
				Value(&a.fiverr.projects).
				Validate(requireNumber(MinNumericValue)),
			huh.NewInput().
				Title("Average project value").
				Placeholder("750").
				Value(&a.fiverr.avg).
				Validate(requireNumber(MinNumericValue)),
			huh.NewSelect[string]().
				Title("Target Fiverr level").
				Options(huh.NewOptions(FiverrLevels...)...).
				Value(&a.fiverr.level),
			huh.NewInput().
				Title("5-star reviews goal").
				Value(&a.fiverr.reviews).
				Validate(requireNumber(MinNumericValue)),
			huh.NewText().
				Title("Why freelancing matters").
				Value(&a.fiverr.why).
				Validate(MinChars(60, "Use at least 60 characters (longer is great).")),
		),
	)
}

func (a *App) fiverrInput() FiverrInput {
	return FiverrInput{
		PrimarySkill:    a.fiverr.primary,
		SecondarySkill:  a.fiverr.secondary,
		LearningGoals:   a.fiverr.learning,
		IncomeGoal:      parseFloat(a.fiverr.income),
		ProjectTarget:   int(parseFloat(a.fiverr.projects)),
		AvgProjectValue: parseFloat(a.fiverr.avg),
		TargetLevel:     a.fiverr.level,
		ReviewsGoal:     int(parseFloat(a.fiverr.reviews)),
		Why:             a.fiverr.why,
		Currency:        a.fiverr.currency,
	}
}

// growthVals backs the growth and commitment step.
type growthVals struct {
	goals, courses, events        string
	books                         [12]string
	why, gamePlan, habitPlan      string
	ipas                          [8]string
	ipaWhy, habitSupport          string
	reviewDay, partner, signature string
	agreed                        bool
}

func (a *App) growthForm() *huh.Form {
	pd := a.machine.Session().Yearly.PersonalDev
	ip := a.machine.Session().Yearly.Ipas
	cm := a.machine.Session().Yearly.Commitment
	a.growth = &growthVals{
		goals:        pd.Goals,
		courses:      pd.Courses,
		events:       pd.Events,
		books:        pd.Books,
		why:          pd.Why,
		gamePlan:     pd.GamePlan,
		habitPlan:    pd.HabitPlan,
		ipas:         ip.Activities,
		ipaWhy:       ip.Why,
		habitSupport: ip.HabitSupport,
		reviewDay:    cm.ReviewDay,
		partner:      cm.Partner,
		signature:    cm.SignatureName,
		agreed:       cm.Agreed,
	}

	bookFields := make([]huh.Field, 0, len(a.growth.books))
	for i := range a.growth.books {
		bookFields = append(bookFields,
			huh.NewInput().
				Title(fmt.Sprintf("Book %d", i+1)).
				Value(&a.growth.books[i]).
				Validate(Required("Required.")),
		)
	}
	ipaFields := make([]huh.Field, 0, len(a.growth.ipas))
	for i := range a.growth.ipas {
		ipaFields = append(ipaFields,
			huh.NewInput().
				Title(fmt.Sprintf("IPA %d", i+1)).
				Value(&a.growth.ipas[i]).
				Validate(Required("Required.")),
		)
	}

	return a.newForm(
		huh.NewGroup(
			huh.NewText().
				Title("Personal development goal").
				Value(&a.growth.goals).
				Validate(MinChars(20, "Add at least 20 characters.")),
			huh.NewInput().
				Title("Courses / training").
				Value(&a.growth.courses).
				Validate(Required("Courses/Training is required.")),
			huh.NewInput().
				Title("Events / conferences").
				Value(&a.growth.events).
				Validate(Required("Events/Conferences are required.")),
			huh.NewText().
				Title("Why growth matters").
				Value(&a.growth.why).
				Validate(MinChars(60, "Add at least 60 characters.")),
			huh.NewText().
				Title("Game plan activities").
				Value(&a.growth.gamePlan).
				Validate(MinChars(30, "Add more detail (30+ chars).")),
			huh.NewText().
				Title("Habit lock").
				Value(&a.growth.habitPlan).
				Validate(MinChars(30, "Add more detail (30+ chars).")),
		),
		huh.NewGroup(bookFields...).Title("12 books for the year"),
		huh.NewGroup(ipaFields...).Title("Daily income-producing activities"),
		huh.NewGroup(
			huh.NewText().
				Title("Why these IPAs").
				Value(&a.growth.ipaWhy).
				Validate(MinChars(30, "Add at least 30 characters.")),
			huh.NewText().
				Title("Habit support").
				Value(&a.growth.habitSupport).
				Validate(MinChars(20, "Add at least 20 characters.")),
			huh.NewSelect[string]().
				Title("Monthly review day").
				Options(huh.NewOptions(ReviewDays...)...).
				Value(&a.growth.reviewDay),
			huh.NewInput().
				Title("Accountability partner").
				Value(&a.growth.partner).
				Validate(Required("Accountability partner is required.")),
			huh.NewConfirm().
				Title("I commit to reviewing this plan monthly").
				Value(&a.growth.agreed).
				Validate(func(b bool) error {
					if !b {
						return errors.New("You must commit to monthly review.")
					}
					return nil
				}),
			huh.NewInput().
				Title("Signature name").
				Description("Used on your printed plan.").
				Value(&a.growth.signature).
				Validate(MinChars(2, "Add at least 2 characters.")),
		),
	)
}

func (a *App) growthInput() GrowthInput {
	return GrowthInput{
		Goals:         a.growth.goals,
		Books:         a.growth.books,
		Courses:       a.growth.courses,
		Events:        a.growth.events,
		Why:           a.growth.why,
		GamePlan:      a.growth.gamePlan,
		HabitPlan:     a.growth.habitPlan,
		Ipas:          a.growth.ipas,
		IpaWhy:        a.growth.ipaWhy,
		HabitSupport:  a.growth.habitSupport,
		ReviewDay:     a.growth.reviewDay,
		Partner:       a.growth.partner,
		Agreed:        a.growth.agreed,
		SignatureName: a.growth.signature,
	}
}

// monthlyVals backs the monthly sprint step.
type monthlyVals struct {
	month, focus                   string
	priorities                     [3]string
	nmRecruitment, nmIncome, nmWhy string
	fvProjects, fvIncome, fvWhy    string
	ipas                           [6]string
	endVision                      string
}

func (a *App) monthlyForm() *huh.Form {
	m := a.machine.Session().Monthly
	a.monthly = &monthlyVals{
		month:         m.Month,
		focus:         m.Focus,
		priorities:    m.Priorities,
		nmRecruitment: countString(m.NMRecruitment),
		nmIncome:      moneyString(m.NMIncome),
		nmWhy:         m.NMWhy,
		fvProjects:    countString(m.FiverrProjects),
		fvIncome:      moneyString(m.FiverrIncome),
		fvWhy:         m.FiverrWhy,
		ipas:          m.Ipas,
		endVision:     m.EndVision,
	}

	monthOptions := []huh.Option[string]{huh.NewOption("Select later", "")}
	monthOptions = append(monthOptions, huh.NewOptions(Months...)...)

	priorityFields := make([]huh.Field, 0, len(a.monthly.priorities))
	for i := range a.monthly.priorities {
		priorityFields = append(priorityFields,
			huh.NewInput().
				Title(fmt.Sprintf("Priority %d", i+1)).
				Value(&a.monthly.priorities[i]),
		)
	}
	ipaFields := make([]huh.Field, 0, len(a.monthly.ipas))
	for i := range a.monthly.ipas {
		ipaFields = append(ipaFields,
			huh.NewInput().
				Title(fmt.Sprintf("IPA %d", i+1)).
				Value(&a.monthly.ipas[i]),
		)
	}

	return a.newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Month").
				Options(monthOptions...).
				Value(&a.monthly.month),
			huh.NewInput().
				Title("Theme / focus").
				Placeholder("e.g. Outreach").
				Value(&a.monthly.focus),
		),
		huh.NewGroup(priorityFields...).Title("Top 3 priorities"),
		huh.NewGroup(
			huh.NewInput().
				Title("Recruitment target").
				Value(&a.monthly.nmRecruitment).
				Validate(optionalNumber(MinNumericValue)),
			huh.NewInput().
				Title("NM income target").
				Value(&a.monthly.nmIncome).
				Validate(optionalNumber(MinNumericValue)),
			huh.NewText().
				Title("Why (network)").
				Value(&a.monthly.nmWhy),
			huh.NewInput().
				Title("Fiverr projects to complete").
				Value(&a.monthly.fvProjects).
				Validate(optionalNumber(MinNumericValue)),
			huh.NewInput().
				Title("Fiverr income target").
				Value(&a.monthly.fvIncome).
				Validate(optionalNumber(MinNumericValue)),
			huh.NewText().
				Title("Why (freelance)").
				Value(&a.monthly.fvWhy),
		),
		huh.NewGroup(ipaFields...).Title("Daily IPAs (up to 6)"),
		huh.NewGroup(
			huh.NewText().
				Title("End of month vision").
				Description("By the 31st, I will have...").
				Value(&a.monthly.endVision),
		),
	)
}

func (a *App) monthlyInput() MonthlyInput {
	return MonthlyInput{
		Month:          a.monthly.month,
		Focus:          a.monthly.focus,
		Priorities:     a.monthly.priorities,
		NMRecruitment:  parseOptInt(a.monthly.nmRecruitment),
		NMIncome:       parseOptFloat(a.monthly.nmIncome),
		NMWhy:          a.monthly.nmWhy,
		FiverrProjects: parseOptInt(a.monthly.fvProjects),
		FiverrIncome:   parseOptFloat(a.monthly.fvIncome),
		FiverrWhy:      a.monthly.fvWhy,
		Ipas:           a.monthly.ipas,
		EndVision:      a.monthly.endVision,
	}
}
