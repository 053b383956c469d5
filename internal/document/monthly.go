package document

import (
	"fmt"
	"strings"

	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/plan"
)

// BuildMonthly assembles the monthly sprint plan document.
func BuildMonthly(team string, m plan.MonthlyGoals, c plan.Calculations, memberID string) *Document {
	doc := &Document{
		Type:  TypeMonthlyPlan,
		Team:  team,
		Title: "Monthly Goal Plan",
		Name:  orText(m.Month, "Month") + "-" + orText(memberID, "Plan"),
		Meta: []string{
			"Member ID: " + orText(memberID, Absent),
			orText(m.Month, "Month"),
		},
	}

	doc.Blocks = append(doc.Blocks,
		Heading{Text: "Overview", Level: 1},
		KeyValue{Label: "Month", Value: Text(m.Month)},
		KeyValue{Label: "Theme / Focus", Value: Text(m.Focus)},
		KeyValue{Label: "Priorities", Value: Text(strings.Join(filled(m.Priorities[:]), " • "))},
		KeyValue{Label: "End Vision", Value: Text(m.EndVision)},

		Heading{Text: "Network Marketing", Level: 1},
		KeyValue{Label: "Recruitment Target", Value: recruitmentTarget(m.NMRecruitment, c.RecruitmentPerWeek)},
		KeyValue{Label: "Income Target", Value: money(m.NMIncome, calc.NGN)},
		KeyValue{Label: "Why", Value: Text(m.NMWhy)},

		Heading{Text: "Fiverr", Level: 1},
		KeyValue{Label: "Projects", Value: projectsLine(m.FiverrProjects)},
		KeyValue{Label: "Income Target", Value: money(m.FiverrIncome, calc.USD)},
		KeyValue{Label: "Avg per Project", Value: money(c.FiverrAvgPerProject, calc.USD)},
		KeyValue{Label: "Why", Value: Text(m.FiverrWhy)},

		Heading{Text: "Daily IPAs", Level: 1},
		List{Items: filled(m.Ipas[:])},
	)

	return doc
}

func recruitmentTarget(target plan.Count, perWeek plan.Money) Value {
	if !target.Valid {
		return Value{}
	}
	w := 0.0
	if perWeek.Valid {
		w = perWeek.Value
	}
	return Text(fmt.Sprintf("%d (%.1f / week)", target.Value, w))
}

func projectsLine(projects plan.Count) Value {
	if !projects.Valid {
		return Value{}
	}
	return Text(fmt.Sprintf("%d projects", projects.Value))
}
