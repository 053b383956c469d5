package wizard

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/elivatehq/planner/internal/calc"
)

// Closed option sets. Select fields validate against these; anything
// outside them is rejected before it reaches the session.
var (
	Ranks = []string{
		"Member",
		"Distributor",
		"Manager",
		"Senior Manager",
		"Executive Manager",
		"Director",
		"Emerald Director",
		"Sapphire Director",
		"Ruby Director",
		"Diamond Director",
	}

	FiverrLevels = []string{"New Seller", "Level 1", "Level 2", "Top Rated"}

	ReviewDays = []string{"1st", "Last Sunday", "15th"}

	Months = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// DefaultExchangeToNGN is the flat USD to NGN display rate applied on
// freelance submits.
const DefaultExchangeToNGN = 1500

// MinNumericValue is the floor every numeric goal field shares.
const MinNumericValue = 10

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "rank", Ranks)
	mustRegister(v, "fiverr_level", FiverrLevels)
	mustRegister(v, "review_day", ReviewDays)
	mustRegister(v, "month", Months)
	return v
}

func mustRegister(v *validator.Validate, tag string, allowed []string) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, a := range allowed {
			if s == a {
				return true
			}
		}
		return false
	})
	if err != nil {
		panic(err)
	}
}

// VisionInput is the annual vision step submission.
type VisionInput struct {
	Statement       string        `validate:"required,min=400"`
	Word            string        `validate:"required"`
	TotalIncomeGoal float64       `validate:"required,min=10"`
	MinimumGoal     float64       `validate:"required,min=10"`
	RealisticGoal   float64       `validate:"required,min=10"`
	DreamGoal       float64       `validate:"required,min=10"`
	Motivation      string        `validate:"required,min=50"`
	Currency        calc.Currency `validate:"required,oneof=NGN USD"`
}

// NetworkInput is the team-growth step submission.
type NetworkInput struct {
	CurrentTeamSize int       `validate:"required,min=10"`
	TargetTeamSize  int       `validate:"required,min=10"`
	CurrentRank     string    `validate:"required,rank"`
	TargetRank      string    `validate:"required,rank"`
	QuarterlyRanks  [4]string `validate:"dive,required,rank"`
	IncomeGoal      float64   `validate:"required,min=10"`
	Why             string    `validate:"required,min=30"`
}

// FiverrInput is the freelance step submission.
type FiverrInput struct {
	PrimarySkill    string        `validate:"required"`
	SecondarySkill  string        // optional
	LearningGoals   string        `validate:"required"`
	IncomeGoal      float64       `validate:"required,min=10"`
	ProjectTarget   int           `validate:"required,min=10"`
	AvgProjectValue float64       `validate:"required,min=10"`
	TargetLevel     string        `validate:"required,fiverr_level"`
	ReviewsGoal     int           `validate:"required,min=10"`
	Why             string        `validate:"required,min=60"`
	Currency        calc.Currency `validate:"required,oneof=NGN USD"`
}

// GrowthInput bundles the personal-development, daily-activities, and
// commitment groups submitted together on the growth step.
type GrowthInput struct {
	Goals         string     `validate:"required,min=20"`
	Books         [12]string `validate:"dive,required"`
	Courses       string     `validate:"required"`
	Events        string     `validate:"required"`
	Why           string     `validate:"required,min=60"`
	GamePlan      string     `validate:"required,min=30"`
	HabitPlan     string     `validate:"required,min=30"`
	Ipas          [8]string  `validate:"dive,required"`
	IpaWhy        string     `validate:"required,min=30"`
	HabitSupport  string     `validate:"required,min=20"`
	ReviewDay     string     `validate:"required,review_day"`
	Partner       string     `validate:"required"`
	Agreed        bool       `validate:"eq=true"`
	SignatureName string     `validate:"required,min=2"`
}

// MonthlyInput is the single monthly-sprint step submission. Everything
// is optional; numeric targets share the common floor when present.
type MonthlyInput struct {
	Month          string `validate:"omitempty,month"`
	Focus          string
	Priorities     [3]string
	NMRecruitment  *int     `validate:"omitempty,min=10"`
	NMIncome       *float64 `validate:"omitempty,min=10"`
	NMWhy          string
	FiverrProjects *int     `validate:"omitempty,min=10"`
	FiverrIncome   *float64 `validate:"omitempty,min=10"`
	FiverrWhy      string
	Ipas           [6]string
	EndVision      string
}

// checkInput validates a step record, translating the first failure into
// a user-readable error.
func checkInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return fieldError(verrs[0])
}

func fieldError(e validator.FieldError) error {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Errorf("%s needs at least %s characters", field, e.Param())
		}
		return fmt.Errorf("%s: minimum is %s", field, e.Param())
	case "eq":
		return fmt.Errorf("%s: you must commit to the monthly review", field)
	case "oneof", "rank", "fiverr_level", "review_day", "month":
		return fmt.Errorf("%s: pick one of the listed options", field)
	default:
		return fmt.Errorf("%s is invalid (%s)", field, e.Tag())
	}
}

// MinChars returns a huh-compatible validator enforcing a minimum length
// on required text fields.
func MinChars(n int, message string) func(string) error {
	return func(s string) error {
		if len(strings.TrimSpace(s)) < n {
			return errors.New(message)
		}
		return nil
	}
}

// Required returns a huh-compatible validator for non-empty text.
func Required(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}
