// Package wizard drives the goal-planning flow: a pure state machine
// over the plan session, the validated per-step input records, and the
// Bubble Tea front end that renders it.
package wizard

import (
	"errors"

	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/plan"
)

// Phase is the coarse position in the flow.
type Phase int

const (
	PhaseGated Phase = iota
	PhaseTrackSelect
	PhaseSteps
)

// StepKey identifies one wizard step.
type StepKey string

const (
	StepVision  StepKey = "vision"
	StepNetwork StepKey = "network"
	StepFiverr  StepKey = "fiverr"
	StepGrowth  StepKey = "growth"
	StepMonth   StepKey = "month"
	StepReview  StepKey = "review"
)

// Step is a step definition with its progress label.
type Step struct {
	Key   StepKey
	Label string
}

var yearlySteps = []Step{
	{Key: StepVision, Label: "Annual Vision"},
	{Key: StepNetwork, Label: "Network Marketing"},
	{Key: StepFiverr, Label: "Fiverr"},
	{Key: StepGrowth, Label: "Growth & Commitment"},
	{Key: StepReview, Label: "Review & PDF"},
}

var monthlySteps = []Step{
	{Key: StepMonth, Label: "Month Plan"},
	{Key: StepReview, Label: "Review & PDF"},
}

// ErrNotAllowed is returned by Gate for IDs outside the allow-list.
var ErrNotAllowed = errors.New("member ID not recognized")

// ErrWrongStep is returned when a submit does not match the active step.
var ErrWrongStep = errors.New("submission does not match the current step")

// Machine is the pure wizard state machine. It owns the session and
// advances only on valid submissions; it has no UI dependencies.
type Machine struct {
	allow     func(string) bool
	normalize func(string) string

	session *plan.Session
	phase   Phase
	index   int

	// set when ChangeID interrupts the step flow, so Gate resumes it
	resumeSteps bool
}

// New returns a machine at the gate. allow decides member entry;
// normalize canonicalizes raw IDs before the check.
func New(allow func(string) bool, normalize func(string) string) *Machine {
	if normalize == nil {
		normalize = func(s string) string { return s }
	}
	return &Machine{allow: allow, normalize: normalize, phase: PhaseGated}
}

// Phase returns the coarse position in the flow.
func (m *Machine) Phase() Phase { return m.phase }

// Session returns the active session, nil before the gate is passed.
func (m *Machine) Session() *plan.Session { return m.session }

// Steps returns the step list for the active track.
func (m *Machine) Steps() []Step {
	if m.session != nil && m.session.Track == plan.TrackMonthly {
		return monthlySteps
	}
	return yearlySteps
}

// Index returns the active step index.
func (m *Machine) Index() int { return m.index }

// Current returns the active step. Valid only during PhaseSteps.
func (m *Machine) Current() Step {
	return m.Steps()[m.index]
}

// Gate checks the raw member ID. A fresh session moves to track
// selection; a session kept across a ChangeID gets the new member and
// resumes where it left off.
func (m *Machine) Gate(rawID string) error {
	id := m.normalize(rawID)
	if !m.allow(id) {
		return ErrNotAllowed
	}
	if m.session == nil {
		m.session = plan.NewSession(id)
		m.phase = PhaseTrackSelect
		m.index = 0
		return nil
	}

	// plan data entered before a ChangeID survives; a detour taken from
	// the step flow resumes at the same step
	m.session.MemberID = id
	if m.resumeSteps {
		m.phase = PhaseSteps
	} else {
		m.phase = PhaseTrackSelect
		m.index = 0
	}
	m.resumeSteps = false
	return nil
}

// SelectTrack sets the planning track and enters the step flow. Only
// valid from track selection; any other phase ignores it.
func (m *Machine) SelectTrack(t plan.Track) {
	if m.phase != PhaseTrackSelect {
		return
	}
	m.session.Track = t
	m.phase = PhaseSteps
	m.index = 0
}

// Retreat steps back one step, floored at the first step.
func (m *Machine) Retreat() {
	if m.index > 0 {
		m.index--
	}
}

// ChangeID returns to the gate without touching the track, the step
// position, or entered plan data. Regating resumes where the flow left
// off.
func (m *Machine) ChangeID() {
	if m.session != nil {
		m.session.MemberID = ""
	}
	m.resumeSteps = m.phase == PhaseSteps
	m.phase = PhaseGated
}

// Reset wipes the session entirely and returns to the member gate.
func (m *Machine) Reset() {
	if m.session == nil {
		return
	}
	m.session.Reset()
	m.phase = PhaseGated
	m.index = 0
	m.resumeSteps = false
}

func (m *Machine) requireStep(k StepKey) error {
	if m.phase != PhaseSteps || m.Current().Key != k {
		return ErrWrongStep
	}
	return nil
}

func (m *Machine) advance() {
	if m.index < len(m.Steps())-1 {
		m.index++
	}
}

// SubmitVision validates and merges the annual vision step. The dream
// goal is the authoritative annual figure: it is stored as the total
// income goal and drives the income breakdown.
func (m *Machine) SubmitVision(in VisionInput) error {
	if err := m.requireStep(StepVision); err != nil {
		return err
	}
	if err := checkInput(in); err != nil {
		return err
	}

	cur := in.Currency
	total := plan.NewMoney(in.DreamGoal)
	m.session.UpdateVision(plan.VisionPatch{
		Statement:       &in.Statement,
		Word:            &in.Word,
		TotalIncomeGoal: &total,
		MinimumGoal:     moneyPtr(in.MinimumGoal),
		RealisticGoal:   moneyPtr(in.RealisticGoal),
		DreamGoal:       moneyPtr(in.DreamGoal),
		Motivation:      &in.Motivation,
		Currency:        &cur,
	})

	breakdown := calc.CalculateIncomeBreakdown(in.DreamGoal)
	m.session.UpdateCalculations(plan.CalculationsPatch{
		NMMonthlyIncome: moneyPtr(breakdown.Monthly),
		NMWeeklyIncome:  moneyPtr(breakdown.Weekly),
	})

	m.advance()
	return nil
}

// SubmitNetwork validates and merges the team-growth step, refreshing
// the recruitment pace and the income breakdown.
func (m *Machine) SubmitNetwork(in NetworkInput) error {
	if err := m.requireStep(StepNetwork); err != nil {
		return err
	}
	if err := checkInput(in); err != nil {
		return err
	}

	m.session.UpdateNetwork(plan.NetworkPatch{
		CurrentTeamSize: countPtr(in.CurrentTeamSize),
		TargetTeamSize:  countPtr(in.TargetTeamSize),
		CurrentRank:     &in.CurrentRank,
		TargetRank:      &in.TargetRank,
		QuarterlyRanks:  &in.QuarterlyRanks,
		IncomeGoal:      moneyPtr(in.IncomeGoal),
		Why:             &in.Why,
	})

	rec := calc.CalculateRecruitment(in.CurrentTeamSize, in.TargetTeamSize, 12)
	breakdown := calc.CalculateIncomeBreakdown(in.IncomeGoal)
	m.session.UpdateCalculations(plan.CalculationsPatch{
		RecruitmentNeeded:   countPtr(rec.Needed),
		RecruitmentPerMonth: countPtr(rec.PerMonth),
		RecruitmentPerWeek:  moneyPtr(rec.PerWeek),
		NMMonthlyIncome:     moneyPtr(breakdown.Monthly),
		NMWeeklyIncome:      moneyPtr(breakdown.Weekly),
	})

	m.advance()
	return nil
}

// SubmitFiverr validates and merges the freelance step, refreshing the
// project pacing and review velocity.
func (m *Machine) SubmitFiverr(in FiverrInput) error {
	if err := m.requireStep(StepFiverr); err != nil {
		return err
	}
	if err := checkInput(in); err != nil {
		return err
	}

	cur := in.Currency
	m.session.UpdateFiverr(plan.FiverrPatch{
		PrimarySkill:    &in.PrimarySkill,
		SecondarySkill:  &in.SecondarySkill,
		LearningGoals:   &in.LearningGoals,
		IncomeGoal:      moneyPtr(in.IncomeGoal),
		ProjectTarget:   countPtr(in.ProjectTarget),
		AvgProjectValue: moneyPtr(in.AvgProjectValue),
		TargetLevel:     &in.TargetLevel,
		ReviewsGoal:     countPtr(in.ReviewsGoal),
		Why:             &in.Why,
		Currency:        &cur,
		ExchangeToNGN:   moneyPtr(DefaultExchangeToNGN),
	})

	ft, ok := calc.CalculateFreelanceTargets(calc.FreelanceInput{
		IncomeGoal:   in.IncomeGoal,
		ProjectCount: float64(in.ProjectTarget),
		AvgValue:     in.AvgProjectValue,
	})
	if ok {
		m.session.UpdateCalculations(plan.CalculationsPatch{
			FiverrAvgPerProject:    moneyPtr(float64(ft.AvgNeeded)),
			FiverrProjectsNeeded:   countPtr(ft.ProjectsNeeded),
			FiverrProjectsPerMonth: countPtr(ft.PerMonth),
			FiverrProjectsPerWeek:  countPtr(ft.PerWeek),
			FiverrIncomeCurrency:   &cur,
		})
	}
	m.session.UpdateCalculations(plan.CalculationsPatch{
		ReviewPerMonth: countPtr(calc.CalculateReviewVelocity(in.ReviewsGoal)),
	})

	m.advance()
	return nil
}

// SubmitGrowth validates and merges the growth step: personal
// development, daily activities, and the commitment in one pass.
func (m *Machine) SubmitGrowth(in GrowthInput) error {
	if err := m.requireStep(StepGrowth); err != nil {
		return err
	}
	if err := checkInput(in); err != nil {
		return err
	}

	m.session.UpdatePersonal(plan.PersonalPatch{
		Goals:     &in.Goals,
		Books:     &in.Books,
		Courses:   &in.Courses,
		Events:    &in.Events,
		Why:       &in.Why,
		GamePlan:  &in.GamePlan,
		HabitPlan: &in.HabitPlan,
	})
	m.session.UpdateIpas(plan.IpasPatch{
		Activities:   &in.Ipas,
		Why:          &in.IpaWhy,
		HabitSupport: &in.HabitSupport,
	})
	m.session.UpdateCommitment(plan.CommitmentPatch{
		ReviewDay:     &in.ReviewDay,
		Partner:       &in.Partner,
		Agreed:        &in.Agreed,
		SignatureName: &in.SignatureName,
	})

	m.advance()
	return nil
}

// SubmitMonthly validates and merges the monthly sprint step. The
// derived figures are written unconditionally: absent inputs clear their
// stale counterparts.
func (m *Machine) SubmitMonthly(in MonthlyInput) error {
	if err := m.requireStep(StepMonth); err != nil {
		return err
	}
	if err := checkInput(in); err != nil {
		return err
	}

	m.session.UpdateMonthly(plan.MonthlyPatch{
		Month:          &in.Month,
		Focus:          &in.Focus,
		Priorities:     &in.Priorities,
		NMRecruitment:  optCount(in.NMRecruitment),
		NMIncome:       optMoney(in.NMIncome),
		NMWhy:          &in.NMWhy,
		FiverrProjects: optCount(in.FiverrProjects),
		FiverrIncome:   optMoney(in.FiverrIncome),
		FiverrWhy:      &in.FiverrWhy,
		Ipas:           &in.Ipas,
		EndVision:      &in.EndVision,
	})

	perWeek := plan.Money{}
	if in.NMRecruitment != nil {
		perWeek = plan.NewMoney(float64(*in.NMRecruitment) / 4)
	}
	avg := plan.Money{}
	needed := plan.Count{}
	if in.FiverrProjects != nil {
		needed = plan.NewCount(*in.FiverrProjects)
		if in.FiverrIncome != nil {
			avg = plan.NewMoney(*in.FiverrIncome / float64(*in.FiverrProjects))
		}
	}
	m.session.UpdateCalculations(plan.CalculationsPatch{
		RecruitmentPerWeek:   &perWeek,
		FiverrAvgPerProject:  &avg,
		FiverrProjectsNeeded: &needed,
	})

	m.advance()
	return nil
}

func moneyPtr(v float64) *plan.Money {
	m := plan.NewMoney(v)
	return &m
}

func countPtr(v int) *plan.Count {
	c := plan.NewCount(v)
	return &c
}

func optMoney(v *float64) *plan.Money {
	m := plan.Money{}
	if v != nil {
		m = plan.NewMoney(*v)
	}
	return &m
}

func optCount(v *int) *plan.Count {
	c := plan.Count{}
	if v != nil {
		c = plan.NewCount(*v)
	}
	return &c
}
