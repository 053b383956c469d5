package wizard

import (
	"strings"
	"testing"
)

func TestGrowthInputRequiresAgreement(t *testing.T) {
	in := validGrowth()
	in.Agreed = false
	if err := checkInput(in); err == nil {
		t.Error("unticked agreement accepted")
	}
}

func TestGrowthInputRequiresEveryBookSlot(t *testing.T) {
	in := validGrowth()
	in.Books[7] = ""
	if err := checkInput(in); err == nil {
		t.Error("empty book slot accepted")
	}
}

func TestGrowthInputSignatureMinimum(t *testing.T) {
	in := validGrowth()
	in.SignatureName = "A"
	if err := checkInput(in); err == nil {
		t.Error("one-character signature accepted")
	}
}

func TestCheckInputMessages(t *testing.T) {
	in := validVision()
	in.Statement = "short"
	err := checkInput(in)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "400 characters") {
		t.Errorf("message = %q", err)
	}

	in = validVision()
	in.MinimumGoal = 5
	err = checkInput(in)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "minimum is 10") {
		t.Errorf("message = %q", err)
	}
}

func TestFieldValidators(t *testing.T) {
	v := MinChars(5, "too short")
	if err := v("  ab  "); err == nil {
		t.Error("padded short input accepted")
	}
	if err := v("long enough"); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
	r := Required("needed")
	if err := r("   "); err == nil {
		t.Error("blank input accepted")
	}
}
