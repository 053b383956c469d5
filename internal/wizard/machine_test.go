package wizard

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/member"
	"github.com/elivatehq/planner/internal/plan"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	g := member.NewGate(nil)
	m := New(g.Allow, member.Normalize)
	if err := m.Gate("  elv001 "); err != nil {
		t.Fatalf("Gate: %v", err)
	}
	return m
}

func validVision() VisionInput {
	return VisionInput{
		Statement:       strings.Repeat("By December I will have built a strong recurring income. ", 8),
		Word:            "Focus",
		TotalIncomeGoal: 5_000_000,
		MinimumGoal:     3_000_000,
		RealisticGoal:   5_000_000,
		DreamGoal:       12_000_000,
		Motivation:      strings.Repeat("My family deserves freedom. ", 3),
		Currency:        calc.NGN,
	}
}

func validNetwork() NetworkInput {
	return NetworkInput{
		CurrentTeamSize: 10,
		TargetTeamSize:  40,
		CurrentRank:     "Member",
		TargetRank:      "Director",
		QuarterlyRanks:  [4]string{"Distributor", "Manager", "Senior Manager", "Director"},
		IncomeGoal:      5_000_000,
		Why:             "I want my team to grow into leaders of their own.",
	}
}

func validFiverr() FiverrInput {
	return FiverrInput{
		PrimarySkill:    "Web development",
		LearningGoals:   "Learn motion design",
		IncomeGoal:      30_000,
		ProjectTarget:   40,
		AvgProjectValue: 750,
		TargetLevel:     "Level 2",
		ReviewsGoal:     50,
		Why: "Freelancing funds the business while the network compounds, " +
			"and it keeps my skills sharp.",
		Currency: calc.USD,
	}
}

func validGrowth() GrowthInput {
	books := [12]string{}
	for i := range books {
		books[i] = "Book title"
	}
	ipas := [8]string{}
	for i := range ipas {
		ipas[i] = "Prospect daily"
	}
	return GrowthInput{
		Goals:         "Read consistently and attend two live events.",
		Books:         books,
		Courses:       "Sales mastery course",
		Events:        "Annual convention",
		Why:           strings.Repeat("Growth compounds into every other goal I have set. ", 2),
		GamePlan:      "Morning reading block plus weekly review sessions.",
		HabitPlan:     "Anchor reading to my morning coffee every day.",
		Ipas:          ipas,
		IpaWhy:        "These activities directly produce income every day.",
		HabitSupport:  "Accountability check-ins every Friday.",
		ReviewDay:     "Last Sunday",
		Partner:       "Chidi",
		Agreed:        true,
		SignatureName: "Ada O.",
	}
}

func TestGate(t *testing.T) {
	g := member.NewGate(nil)
	m := New(g.Allow, member.Normalize)
	if err := m.Gate("nobody"); !errors.Is(err, ErrNotAllowed) {
		t.Errorf("Gate(bad) = %v, want ErrNotAllowed", err)
	}
	if m.Phase() != PhaseGated {
		t.Error("failed gate must not advance")
	}
	if err := m.Gate(" elv001 "); err != nil {
		t.Fatalf("Gate: %v", err)
	}
	if m.Phase() != PhaseTrackSelect {
		t.Error("expected track selection after gate")
	}
	if m.Session().MemberID != "ELV001" {
		t.Errorf("member id = %q", m.Session().MemberID)
	}
}

func TestSelectTrack(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackMonthly)
	if m.Phase() != PhaseSteps {
		t.Fatal("expected step phase")
	}
	if got := m.Current().Key; got != StepMonth {
		t.Errorf("first monthly step = %q", got)
	}
	if len(m.Steps()) != 2 {
		t.Errorf("monthly steps = %d", len(m.Steps()))
	}
}

func TestYearlyStepOrder(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	want := []StepKey{StepVision, StepNetwork, StepFiverr, StepGrowth, StepReview}
	for i, k := range want {
		if m.Steps()[i].Key != k {
			t.Errorf("step[%d] = %q, want %q", i, m.Steps()[i].Key, k)
		}
	}
}

func TestInvalidSubmitDoesNotAdvanceOrMerge(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)

	in := validVision()
	in.Statement = "too short"
	if err := m.SubmitVision(in); err == nil {
		t.Fatal("expected validation error")
	}
	if m.Index() != 0 {
		t.Error("invalid submit advanced the step index")
	}
	if m.Session().Yearly.Vision.Statement != "" {
		t.Error("invalid submit merged data")
	}
	if m.Session().Calculations.NMMonthlyIncome.Valid {
		t.Error("invalid submit touched calculations")
	}
}

func TestSubmitVisionStoresDreamAsTotal(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("SubmitVision: %v", err)
	}
	v := m.Session().Yearly.Vision
	if !v.TotalIncomeGoal.Valid || v.TotalIncomeGoal.Value != 12_000_000 {
		t.Errorf("total income goal = %+v, want the dream figure", v.TotalIncomeGoal)
	}
	c := m.Session().Calculations
	if !c.NMMonthlyIncome.Valid || c.NMMonthlyIncome.Value != 1_000_000 {
		t.Errorf("monthly income = %+v", c.NMMonthlyIncome)
	}
	if m.Current().Key != StepNetwork {
		t.Errorf("current step = %q", m.Current().Key)
	}
}

func TestSubmitNetworkDerivesRecruitment(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("SubmitVision: %v", err)
	}
	if err := m.SubmitNetwork(validNetwork()); err != nil {
		t.Fatalf("SubmitNetwork: %v", err)
	}
	c := m.Session().Calculations
	if c.RecruitmentNeeded.Value != 30 || c.RecruitmentPerMonth.Value != 3 {
		t.Errorf("recruitment = %+v / %+v", c.RecruitmentNeeded, c.RecruitmentPerMonth)
	}
	if c.RecruitmentPerWeek.Value != 0.8 {
		t.Errorf("per week = %+v", c.RecruitmentPerWeek)
	}
	// network income goal supersedes the vision-derived breakdown
	if got := c.NMMonthlyIncome.Value; got != 5_000_000.0/12 {
		t.Errorf("monthly income = %v", got)
	}
}

func TestSubmitNetworkRejectsUnknownRank(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("SubmitVision: %v", err)
	}
	in := validNetwork()
	in.TargetRank = "Galactic Director"
	if err := m.SubmitNetwork(in); err == nil {
		t.Error("unknown rank accepted")
	}
}

func TestSubmitFiverrProjectCountWins(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("SubmitVision: %v", err)
	}
	if err := m.SubmitNetwork(validNetwork()); err != nil {
		t.Fatalf("SubmitNetwork: %v", err)
	}
	if err := m.SubmitFiverr(validFiverr()); err != nil {
		t.Fatalf("SubmitFiverr: %v", err)
	}
	c := m.Session().Calculations
	if c.FiverrAvgPerProject.Value != 750 {
		t.Errorf("avg per project = %+v", c.FiverrAvgPerProject)
	}
	if c.FiverrProjectsNeeded.Value != 40 {
		t.Errorf("projects needed = %+v", c.FiverrProjectsNeeded)
	}
	if c.ReviewPerMonth.Value != 5 {
		t.Errorf("reviews per month = %+v", c.ReviewPerMonth)
	}
	if c.FiverrIncomeCurrency != calc.USD {
		t.Errorf("currency = %q", c.FiverrIncomeCurrency)
	}
	if f := m.Session().Yearly.Fiverr; !f.ExchangeToNGN.Valid || f.ExchangeToNGN.Value != 1500 {
		t.Errorf("exchange rate = %+v", f.ExchangeToNGN)
	}
}

func TestFullYearlyFlowReachesReview(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("vision: %v", err)
	}
	if err := m.SubmitNetwork(validNetwork()); err != nil {
		t.Fatalf("network: %v", err)
	}
	if err := m.SubmitFiverr(validFiverr()); err != nil {
		t.Fatalf("fiverr: %v", err)
	}
	if err := m.SubmitGrowth(validGrowth()); err != nil {
		t.Fatalf("growth: %v", err)
	}
	if m.Current().Key != StepReview {
		t.Errorf("current step = %q, want review", m.Current().Key)
	}
	if m.Session().Yearly.Commitment.SignatureName != "Ada O." {
		t.Error("commitment not merged")
	}
}

func TestSubmitMonthlyClearsStaleFigures(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackMonthly)

	rec := 20
	income := 2000.0
	projects := 8
	in := MonthlyInput{
		Month:          "March",
		NMRecruitment:  &rec,
		FiverrIncome:   &income,
		FiverrProjects: &projects,
	}
	if err := m.SubmitMonthly(in); err != nil {
		t.Fatalf("SubmitMonthly: %v", err)
	}
	c := m.Session().Calculations
	if c.RecruitmentPerWeek.Value != 5 {
		t.Errorf("per week = %+v", c.RecruitmentPerWeek)
	}
	if c.FiverrAvgPerProject.Value != 250 {
		t.Errorf("avg = %+v", c.FiverrAvgPerProject)
	}
	if c.FiverrProjectsNeeded.Value != 8 {
		t.Errorf("needed = %+v", c.FiverrProjectsNeeded)
	}

	// resubmitting with the numbers removed clears the derived figures
	m.Retreat()
	if err := m.SubmitMonthly(MonthlyInput{Month: "March"}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	c = m.Session().Calculations
	if c.RecruitmentPerWeek.Valid || c.FiverrAvgPerProject.Valid || c.FiverrProjectsNeeded.Valid {
		t.Errorf("stale figures survived: %+v", c)
	}
}

func TestSubmitMonthlyRejectsBelowMinimum(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackMonthly)
	rec := 5
	if err := m.SubmitMonthly(MonthlyInput{NMRecruitment: &rec}); err == nil {
		t.Error("value below the minimum accepted")
	}
	if err := m.SubmitMonthly(MonthlyInput{Month: "Snowember"}); err == nil {
		t.Error("unknown month accepted")
	}
}

func TestRetreatFloorsAtFirstStep(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	m.Retreat()
	if m.Index() != 0 {
		t.Errorf("index = %d", m.Index())
	}
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("vision: %v", err)
	}
	m.Retreat()
	if m.Current().Key != StepVision {
		t.Errorf("current = %q", m.Current().Key)
	}
}

func TestChangeIDKeepsPlanData(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("vision: %v", err)
	}
	m.ChangeID()
	if m.Phase() != PhaseGated {
		t.Error("expected gate after ChangeID")
	}
	if m.Index() != 1 {
		t.Errorf("step position moved by ChangeID: %d", m.Index())
	}
	if err := m.Gate("ELV002"); err != nil {
		t.Fatalf("re-gate: %v", err)
	}
	if m.Session().MemberID != "ELV002" {
		t.Errorf("member = %q", m.Session().MemberID)
	}
	if m.Session().Yearly.Vision.Word != "Focus" {
		t.Error("plan data lost across ChangeID")
	}
	if m.Phase() != PhaseSteps || m.Current().Key != StepNetwork {
		t.Errorf("regate did not resume the flow: phase=%v step=%q", m.Phase(), m.Current().Key)
	}
}

func TestResetWipesEverything(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("vision: %v", err)
	}
	m.Reset()
	if m.Phase() != PhaseGated {
		t.Error("expected gate after reset")
	}
	if m.Session().MemberID != "" {
		t.Errorf("member survived reset: %q", m.Session().MemberID)
	}
	if m.Session().Yearly.Vision.Statement != "" {
		t.Error("plan data survived reset")
	}
	if !reflect.DeepEqual(*m.Session(), *plan.NewSession("")) {
		t.Errorf("reset session differs from a fresh one: %+v", *m.Session())
	}
	if m.Session().Calculations.NMMonthlyIncome.Valid {
		t.Error("calculations survived reset")
	}
}

func TestGateAfterResetStartsAtTrackSelect(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("vision: %v", err)
	}
	m.ChangeID()
	m.Reset()
	if err := m.Gate("ELV003"); err != nil {
		t.Fatalf("Gate: %v", err)
	}
	if m.Phase() != PhaseTrackSelect {
		t.Error("expected track selection after regating a wiped session")
	}
	if m.Index() != 0 {
		t.Errorf("index = %d", m.Index())
	}
}

func TestSubmitOnWrongStep(t *testing.T) {
	m := newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitNetwork(validNetwork()); !errors.Is(err, ErrWrongStep) {
		t.Errorf("network on vision step = %v, want ErrWrongStep", err)
	}

	m = newTestMachine(t)
	m.SelectTrack(plan.TrackMonthly)
	if err := m.SubmitVision(validVision()); !errors.Is(err, ErrWrongStep) {
		t.Errorf("vision on monthly track = %v, want ErrWrongStep", err)
	}
}

func TestSelectTrackOnlyFromTrackSelect(t *testing.T) {
	g := member.NewGate(nil)
	m := New(g.Allow, member.Normalize)
	m.SelectTrack(plan.TrackMonthly)
	if m.Phase() != PhaseGated {
		t.Error("track selection before gating must be ignored")
	}

	m = newTestMachine(t)
	m.SelectTrack(plan.TrackYearly)
	if err := m.SubmitVision(validVision()); err != nil {
		t.Fatalf("vision: %v", err)
	}
	m.SelectTrack(plan.TrackMonthly)
	if m.Session().Track != plan.TrackYearly {
		t.Error("track switched mid-flow")
	}
	if got := m.Current().Key; got != StepNetwork {
		t.Errorf("step after ignored switch = %q, want %q", got, StepNetwork)
	}
}
