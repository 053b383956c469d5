package plan

// Session owns one planning run: the member it belongs to, the active
// track, and the yearly, monthly, and derived-calculation state. All
// mutation goes through the group-scoped Update methods so a submit for
// one field group can never disturb another.
type Session struct {
	MemberID     string
	Track        Track
	Yearly       YearlyGoals
	Monthly      MonthlyGoals
	Calculations Calculations
}

// NewSession returns a session with every field group at its defaults.
func NewSession(memberID string) *Session {
	return &Session{
		MemberID:     memberID,
		Track:        TrackYearly,
		Yearly:       DefaultYearly(),
		Monthly:      DefaultMonthly(),
		Calculations: DefaultCalculations(),
	}
}

// UpdateVision merges a partial vision update.
func (s *Session) UpdateVision(p VisionPatch) {
	s.Yearly.Vision.apply(p)
}

// UpdateNetwork merges a partial network-marketing update.
func (s *Session) UpdateNetwork(p NetworkPatch) {
	s.Yearly.NetworkMarketing.apply(p)
}

// UpdateFiverr merges a partial freelance update.
func (s *Session) UpdateFiverr(p FiverrPatch) {
	s.Yearly.Fiverr.apply(p)
}

// UpdatePersonal merges a partial personal-development update.
func (s *Session) UpdatePersonal(p PersonalPatch) {
	s.Yearly.PersonalDev.apply(p)
}

// UpdateIpas merges a partial daily-activities update.
func (s *Session) UpdateIpas(p IpasPatch) {
	s.Yearly.Ipas.apply(p)
}

// UpdateCommitment merges a partial commitment update.
func (s *Session) UpdateCommitment(p CommitmentPatch) {
	s.Yearly.Commitment.apply(p)
}

// UpdateMonthly merges a partial monthly-plan update.
func (s *Session) UpdateMonthly(p MonthlyPatch) {
	s.Monthly.apply(p)
}

// UpdateCalculations merges a partial derived-snapshot update.
func (s *Session) UpdateCalculations(p CalculationsPatch) {
	s.Calculations.apply(p)
}

// Reset wipes the whole session: member identity, track, and every field
// group return to their defaults. The result is indistinguishable from a
// freshly created session with no member.
func (s *Session) Reset() {
	s.MemberID = ""
	s.Track = TrackYearly
	s.Yearly = DefaultYearly()
	s.Monthly = DefaultMonthly()
	s.Calculations = DefaultCalculations()
}
