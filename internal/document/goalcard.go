package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/plan"
)

// BuildGoalCard assembles the one-page goal card: vision statement plus
// the headline numbers and daily activities.
func BuildGoalCard(team string, y plan.YearlyGoals, c plan.Calculations, memberID string, year int) *Document {
	nm := y.NetworkMarketing
	fv := y.Fiverr

	memberLine := "Member: " + orText(memberID, Absent)
	if y.Commitment.SignatureName != "" {
		memberLine += " | Signed: " + y.Commitment.SignatureName
	}

	name := y.Commitment.SignatureName
	if name == "" {
		name = memberID
	}
	if name == "" {
		name = "Card"
	}

	doc := &Document{
		Type:  TypeGoalCard,
		Team:  strings.ToUpper(team),
		Title: fmt.Sprintf("My %d Vision", year),
		Name:  name,
		Meta: []string{
			memberLine,
			"Word of the Year: " + orText(y.Vision.Word, Absent),
		},
	}

	doc.Blocks = append(doc.Blocks,
		Paragraph{Text: orText(y.Vision.Statement, "Write your vision here.")},

		Heading{Text: "Network Marketing", Level: 1},
		KeyValue{Label: "Team", Value: Text(count(nm.CurrentTeamSize) + " -> " + count(nm.TargetTeamSize))},
		KeyValue{Label: "Rank", Value: Text(orText(nm.CurrentRank, Absent) + " -> " + orText(nm.TargetRank, Absent))},
		KeyValue{Label: "Income", Value: money(nm.IncomeGoal, calc.NGN)},

		Heading{Text: "Fiverr Freelancing", Level: 1},
		KeyValue{Label: "Projects", Value: projectsNeeded(c.FiverrProjectsNeeded)},
		KeyValue{Label: "Income", Value: money(fv.IncomeGoal, fv.Currency)},
		KeyValue{Label: "Level", Value: Text(fv.TargetLevel)},

		Heading{Text: "My Daily IPAs", Level: 1},
		List{Items: filled(y.Ipas.Activities[:]), Empty: "Add your non-negotiables."},
	)

	return doc
}

func projectsNeeded(n plan.Count) Value {
	if !n.Valid {
		return Value{}
	}
	return Text(strconv.Itoa(n.Value))
}
