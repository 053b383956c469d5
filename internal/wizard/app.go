// Package wizard drives the goal-planning flow: the gate, the track
// selection, the step forms, and the review screen with PDF export. The
// Machine owns the flow state; App is the Bubble Tea front end around it.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/elivatehq/planner/internal/branding"
	"github.com/elivatehq/planner/internal/calc"
	"github.com/elivatehq/planner/internal/document"
	"github.com/elivatehq/planner/internal/export"
	"github.com/elivatehq/planner/internal/plan"
	"github.com/elivatehq/planner/internal/render"
)

// downloadDoneMsg is sent when a PDF download finishes.
type downloadDoneMsg struct {
	path string
	err  error
}

// previewDoneMsg is sent when a preview PDF is ready.
type previewDoneMsg struct {
	handle *export.PreviewHandle
	err    error
}

const (
	maxFormWidth = 100
	maxViewWidth = 110
)

// App is the root Bubble Tea model.
type App struct {
	machine  *Machine
	brand    branding.Branding
	year     int
	pipeline *export.Pipeline
	text     *render.Text

	// Active form and its value holders. The holders live on the heap so
	// the form's bound pointers survive model copies.
	form    *huh.Form
	gate    *gateVals
	track   *trackVals
	vision  *visionVals
	network *networkVals
	fiverr  *fiverrVals
	growth  *growthVals
	monthly *monthlyVals

	// Export state
	exporting bool
	status    string
	preview   *export.PreviewHandle

	spinner  spinner.Model
	width    int
	height   int
	quitting bool
}

// NewApp creates the wizard model at the member gate.
func NewApp(m *Machine, brand branding.Branding, pipeline *export.Pipeline, year int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(brand.PrimaryColor())

	a := App{
		machine:  m,
		brand:    brand,
		year:     year,
		pipeline: pipeline,
		text:     render.NewText(brand),
		spinner:  sp,
	}
	a.form = a.gateForm()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

func (a *App) newForm(groups ...*huh.Group) *huh.Form {
	f := huh.NewForm(groups...)
	if a.width > 0 {
		f = f.WithWidth(min(a.width, maxFormWidth))
	}
	if a.height > 0 {
		f = f.WithHeight(a.height - 2)
	}
	return f
}

// openForm swaps in the form for the machine's current screen and returns
// its init command.
func (a *App) openForm() tea.Cmd {
	switch a.machine.Phase() {
	case PhaseGated:
		a.form = a.gateForm()
	case PhaseTrackSelect:
		a.form = a.trackForm()
	default:
		switch a.machine.Current().Key {
		case StepVision:
			a.form = a.visionForm()
		case StepNetwork:
			a.form = a.networkForm()
		case StepFiverr:
			a.form = a.fiverrForm()
		case StepGrowth:
			a.form = a.growthForm()
		case StepMonth:
			a.form = a.monthlyForm()
		default:
			a.form = nil
			return nil
		}
	}
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, maxFormWidth)).WithHeight(msg.Height - 2)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.exporting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case downloadDoneMsg:
		a.exporting = false
		if msg.err != nil {
			a.status = export.StatusFailed
		} else {
			a.status = fmt.Sprintf("%s %s", export.StatusDownloaded, msg.path)
		}
		return a, nil

	case previewDoneMsg:
		a.exporting = false
		if msg.err != nil {
			a.status = export.StatusPreviewFailed
		} else {
			a.closePreview()
			a.preview = msg.handle
			a.status = "Preview written to " + msg.handle.Path
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.closePreview()
			a.quitting = true
			return a, tea.Quit
		}
		if a.form == nil {
			return a.updateReview(msg)
		}
	}

	if a.form == nil {
		return a, nil
	}
	return a.updateForm(msg)
}

// updateForm forwards a message to the active form and handles completion.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateAborted:
		// Esc on a step returns to the previous one; on the first screens
		// it exits.
		if a.machine.Phase() == PhaseSteps && a.machine.Index() > 0 {
			a.machine.Retreat()
			return a, a.openForm()
		}
		a.closePreview()
		a.quitting = true
		return a, tea.Quit

	case huh.StateCompleted:
		if err := a.submit(); err != nil {
			a.status = err.Error()
			return a, a.openForm()
		}
		a.status = ""
		return a, a.openForm()
	}

	return a, cmd
}

// submit feeds the completed form into the machine.
func (a *App) submit() error {
	switch a.machine.Phase() {
	case PhaseGated:
		return a.machine.Gate(a.gate.memberID)
	case PhaseTrackSelect:
		a.machine.SelectTrack(a.track.track)
		return nil
	}

	switch a.machine.Current().Key {
	case StepVision:
		return a.machine.SubmitVision(a.visionInput())
	case StepNetwork:
		return a.machine.SubmitNetwork(a.networkInput())
	case StepFiverr:
		return a.machine.SubmitFiverr(a.fiverrInput())
	case StepGrowth:
		return a.machine.SubmitGrowth(a.growthInput())
	case StepMonth:
		return a.machine.SubmitMonthly(a.monthlyInput())
	}
	return nil
}

// updateReview handles keys on the review screen.
func (a App) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		a.closePreview()
		a.quitting = true
		return a, tea.Quit

	case "d":
		if a.exporting {
			return a, nil
		}
		a.exporting = true
		a.status = export.StatusGenerating
		return a, tea.Batch(a.spinner.Tick, downloadCmd(a.pipeline, a.buildDocument()))

	case "g":
		if a.exporting || a.machine.Session().Track != plan.TrackYearly {
			return a, nil
		}
		a.exporting = true
		a.status = export.StatusGenerating
		s := a.machine.Session()
		doc := document.BuildGoalCard(a.brand.Team, s.Yearly, s.Calculations, s.MemberID, a.year)
		return a, tea.Batch(a.spinner.Tick, downloadCmd(a.pipeline, doc))

	case "p":
		if a.exporting {
			return a, nil
		}
		a.exporting = true
		a.status = export.StatusPreviewGenerating
		return a, tea.Batch(a.spinner.Tick, previewCmd(a.pipeline, a.buildDocument()))

	case "b":
		a.machine.Retreat()
		a.status = ""
		return a, a.openForm()

	case "i":
		a.machine.ChangeID()
		a.status = ""
		return a, a.openForm()

	case "r":
		a.closePreview()
		a.machine.Reset()
		a.status = ""
		return a, a.openForm()
	}
	return a, nil
}

// buildDocument assembles the exportable document for the active track.
func (a *App) buildDocument() *document.Document {
	s := a.machine.Session()
	if s.Track == plan.TrackMonthly {
		return document.BuildMonthly(a.brand.Team, s.Monthly, s.Calculations, s.MemberID)
	}
	return document.BuildYearly(a.brand.Team, s.Yearly, s.Calculations, s.MemberID, a.year)
}

func (a *App) closePreview() {
	if a.preview != nil {
		a.preview.Close()
		a.preview = nil
	}
}

func downloadCmd(p *export.Pipeline, doc *document.Document) tea.Cmd {
	return func() tea.Msg {
		path, err := p.Download(doc)
		return downloadDoneMsg{path: path, err: err}
	}
}

func previewCmd(p *export.Pipeline, doc *document.Document) tea.Cmd {
	return func() tea.Msg {
		h, err := p.Preview(doc)
		return previewDoneMsg{handle: h, err: err}
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n\n")

	if a.form != nil {
		b.WriteString(a.form.View())
		if footer := a.calcFooter(); footer != "" {
			b.WriteString("\n" + footer)
		}
		if a.status != "" {
			b.WriteString("\n" + a.statusStyle().Render(a.status))
		}
		return b.String()
	}

	b.WriteString(a.reviewView())
	return b.String()
}

func (a App) header() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.brand.PrimaryColor()).
		Render(a.brand.Team)

	sub := ""
	switch a.machine.Phase() {
	case PhaseGated:
		sub = "Goal Planner"
	case PhaseTrackSelect:
		sub = fmt.Sprintf("Member %s", a.machine.Session().MemberID)
	default:
		cur := a.machine.Current()
		sub = fmt.Sprintf("Step %d/%d: %s", a.machine.Index()+1, len(a.machine.Steps()), cur.Label)
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	return title + "  " + muted.Render(sub)
}

// calcFooter shows the derived pace figures for the active step once the
// engine has produced them.
func (a App) calcFooter() string {
	if a.machine.Phase() != PhaseSteps {
		return ""
	}
	s := a.machine.Session()
	c := s.Calculations

	var parts []string
	switch a.machine.Current().Key {
	case StepNetwork:
		// income breakdown derived from the vision step
		cur := s.Yearly.Vision.Currency
		if c.NMMonthlyIncome.Valid {
			parts = append(parts, "Monthly target "+calc.Format(c.NMMonthlyIncome.Value, cur))
		}
		if c.NMWeeklyIncome.Valid {
			parts = append(parts, "weekly "+calc.Format(c.NMWeeklyIncome.Value, cur))
		}
	case StepFiverr:
		// recruitment pace derived from the team-growth step
		if c.RecruitmentNeeded.Valid {
			parts = append(parts, fmt.Sprintf("Recruit %d people", c.RecruitmentNeeded.Value))
		}
		if c.RecruitmentPerMonth.Valid {
			parts = append(parts, fmt.Sprintf("%d/month", c.RecruitmentPerMonth.Value))
		}
		if c.RecruitmentPerWeek.Valid {
			parts = append(parts, fmt.Sprintf("%.1f/week", c.RecruitmentPerWeek.Value))
		}
	case StepGrowth:
		// freelance pace derived from the fiverr step
		cur := c.FiverrIncomeCurrency
		fv := s.Yearly.Fiverr
		if cur == calc.USD && fv.IncomeGoal.Valid && fv.ExchangeToNGN.Valid {
			if ngn, ok := calc.Convert(fv.IncomeGoal.Value, fv.ExchangeToNGN.Value); ok {
				parts = append(parts, "= "+calc.Format(ngn, calc.NGN))
			}
		}
		if c.FiverrAvgPerProject.Valid {
			parts = append(parts, "Avg/project "+calc.Format(c.FiverrAvgPerProject.Value, cur))
		}
		if c.FiverrProjectsPerMonth.Valid {
			parts = append(parts, fmt.Sprintf("%d projects/month", c.FiverrProjectsPerMonth.Value))
		}
		if c.FiverrProjectsPerWeek.Valid {
			parts = append(parts, fmt.Sprintf("%d/week", c.FiverrProjectsPerWeek.Value))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(a.brand.StrongColor())
	return style.Render(strings.Join(parts, " · "))
}

func (a App) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(a.brand.PrimaryColor())
}

func (a App) reviewView() string {
	var b strings.Builder

	out, err := a.text.Render(a.buildDocument())
	if err == nil {
		body := string(out)
		if a.width > 0 {
			body = lipgloss.NewStyle().MaxWidth(min(a.width, maxViewWidth)).Render(body)
		}
		b.WriteString(body)
	}

	b.WriteString("\n")
	if a.exporting {
		b.WriteString(a.spinner.View() + " " + a.status + "\n")
	} else if a.status != "" {
		b.WriteString(a.statusStyle().Render(a.status) + "\n")
	}

	keys := "d download pdf · p preview · b back · i change id · r start over · q quit"
	if a.machine.Session().Track == plan.TrackYearly {
		keys = "d download pdf · g goal card · " + strings.TrimPrefix(keys, "d download pdf · ")
	}
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(keys)
	b.WriteString("\n" + help)
	return b.String()
}
