package document

import (
	"fmt"
	"strconv"

	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/plan"
)

func money(m plan.Money, c calc.Currency) Value {
	if !m.Valid {
		return Value{}
	}
	return Money(m.Value, c)
}

// count renders an absent value as the placeholder, never as a zero.
func count(c plan.Count) string {
	if !c.Valid {
		return Absent
	}
	return strconv.Itoa(c.Value)
}

func orText(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func filled(items []string) []string {
	var out []string
	for _, it := range items {
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}

// BuildYearly assembles the full yearly goal plan document.
func BuildYearly(team string, y plan.YearlyGoals, c plan.Calculations, memberID string, year int) *Document {
	v := y.Vision
	nm := y.NetworkMarketing
	fv := y.Fiverr
	pd := y.PersonalDev

	meta := []string{"Member ID: " + orText(memberID, Absent)}
	if y.Commitment.SignatureName != "" {
		meta = append(meta, "Signed: "+y.Commitment.SignatureName)
	}
	meta = append(meta, "Word: "+orText(v.Word, Absent))

	name := y.Commitment.SignatureName
	if name == "" {
		name = memberID
	}
	if name == "" {
		name = "Plan"
	}

	doc := &Document{
		Type:  TypeYearlyPlan,
		Team:  team,
		Title: fmt.Sprintf("Goal Plan %d", year),
		Name:  name,
		Meta:  meta,
	}

	doc.Blocks = append(doc.Blocks,
		Heading{Text: "Annual Vision", Level: 1},
		Paragraph{Text: v.Statement},
		KeyValue{Label: "Total Income Goal", Value: money(v.AnnualIncome(), v.Currency)},
		KeyValue{Label: "Minimum / Realistic / Dream", Value: Join(" | ",
			money(v.MinimumGoal, v.Currency),
			money(v.RealisticGoal, v.Currency),
			money(v.DreamGoal, v.Currency),
		)},
		KeyValue{Label: "Monthly Target", Value: money(c.NMMonthlyIncome, v.Currency)},
		KeyValue{Label: "Weekly Target", Value: money(c.NMWeeklyIncome, v.Currency)},

		Heading{Text: "Motivation", Level: 1},
		Paragraph{Text: v.Motivation},

		Heading{Text: "Network Marketing", Level: 1},
		KeyValue{Label: "Team Size", Value: Text(count(nm.CurrentTeamSize) + " -> " + count(nm.TargetTeamSize))},
		KeyValue{Label: "Rank", Value: Text(orText(nm.CurrentRank, "Current") + " -> " + orText(nm.TargetRank, "Target"))},
		KeyValue{Label: "Recruitment Pace", Value: recruitmentPace(c)},
		KeyValue{Label: "Income Goal", Value: money(nm.IncomeGoal, calc.NGN)},
		Paragraph{Label: "Why", Text: nm.Why},
		List{Label: "Quarterly Ranks", Items: quarterItems(nm.QuarterlyRanks)},

		Heading{Text: "Fiverr Freelancing", Level: 1},
		KeyValue{Label: "Skills", Value: Text(skillLine(fv.PrimarySkill, fv.SecondarySkill))},
		KeyValue{Label: "Income Goal", Value: money(fv.IncomeGoal, fv.Currency)},
		KeyValue{Label: "Naira Equivalent", Value: nairaEquivalent(fv)},
		KeyValue{Label: "Projects Pace", Value: projectsPace(c)},
		KeyValue{Label: "Avg per Project", Value: money(c.FiverrAvgPerProject, fv.Currency)},
		KeyValue{Label: "5-Star Reviews", Value: reviewsLine(fv.ReviewsGoal, c.ReviewPerMonth)},
		Paragraph{Label: "Why", Text: fv.Why},

		Heading{Text: "Personal Development", Level: 1},
		Paragraph{Label: "Goal", Text: pd.Goals},
		List{Label: "Books", Items: filled(pd.Books[:])},
		KeyValue{Label: "Courses/Training", Value: Text(pd.Courses)},
		KeyValue{Label: "Events/Conferences", Value: Text(pd.Events)},
		Paragraph{Label: "Why", Text: pd.Why},
		Paragraph{Label: "Game plan activities", Text: pd.GamePlan},
		Paragraph{Label: "Habit lock", Text: pd.HabitPlan},

		Heading{Text: "Daily IPAs", Level: 1},
		List{Items: filled(y.Ipas.Activities[:])},
		Paragraph{Label: "Why", Text: y.Ipas.Why},
		Paragraph{Label: "Habit support", Text: y.Ipas.HabitSupport},

		Heading{Text: "Commitment", Level: 1},
		KeyValue{Label: "Review Day", Value: Text(y.Commitment.ReviewDay)},
		KeyValue{Label: "Accountability Partner", Value: Text(y.Commitment.Partner)},
		KeyValue{Label: "Agreed to review monthly", Value: Text(yesNo(y.Commitment.Agreed))},
	)

	return doc
}

func recruitmentPace(c plan.Calculations) Value {
	if !c.RecruitmentPerMonth.Valid {
		return Text("Add targets")
	}
	week := ""
	if c.RecruitmentPerWeek.Valid {
		week = strconv.FormatFloat(c.RecruitmentPerWeek.Value, 'f', -1, 64)
	}
	return Text(fmt.Sprintf("%d / month (%s / week)", c.RecruitmentPerMonth.Value, week))
}

// nairaEquivalent converts a USD income goal for display using the stored
// exchange rate. Goals already in naira have no equivalent row.
func nairaEquivalent(fv plan.FiverrGoals) Value {
	if fv.Currency != calc.USD || !fv.IncomeGoal.Valid || !fv.ExchangeToNGN.Valid {
		return Value{}
	}
	ngn, ok := calc.Convert(fv.IncomeGoal.Value, fv.ExchangeToNGN.Value)
	if !ok {
		return Value{}
	}
	return money(plan.NewMoney(ngn), calc.NGN)
}

func projectsPace(c plan.Calculations) Value {
	if !c.FiverrProjectsPerMonth.Valid {
		return Text("Add goal + projects")
	}
	return Text(fmt.Sprintf("%d / month", c.FiverrProjectsPerMonth.Value))
}

func reviewsLine(goal, perMonth plan.Count) Value {
	if !goal.Valid {
		return Value{}
	}
	pm := 0
	if perMonth.Valid {
		pm = perMonth.Value
	}
	return Text(fmt.Sprintf("%d (%d / month)", goal.Value, pm))
}

func quarterItems(ranks [4]string) []string {
	items := make([]string, len(ranks))
	for i, r := range ranks {
		items[i] = fmt.Sprintf("Q%d: %s", i+1, orText(r, Absent))
	}
	return items
}

func skillLine(primary, secondary string) string {
	switch {
	case primary != "" && secondary != "":
		return primary + " / " + secondary
	case primary != "":
		return primary
	default:
		return secondary
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
