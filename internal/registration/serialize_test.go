package registration

import (
	"testing"
)

func TestSerializeNullCoalescing(t *testing.T) {
	d := validDraft()
	d.MotherName = "Beatriz Silva"
	d.CanSwim = Yes
	d.WillUseFloats = No

	row := Serialize(d, 350.00, "Verão 2026")

	if row.Season != "Verão 2026" {
		t.Errorf("season = %q", row.Season)
	}
	if row.Period == nil || *row.Period != d.Period {
		t.Errorf("period = %v", row.Period)
	}
	if row.ChildName != "Ana Silva" {
		t.Errorf("child name = %q", row.ChildName)
	}
	if row.MotherName == nil || *row.MotherName != "Beatriz Silva" {
		t.Errorf("mother name = %v", row.MotherName)
	}

	// Empty strings persist as NULL.
	if row.FatherName != nil {
		t.Errorf("father name = %v, want nil", row.FatherName)
	}
	if row.AddressCEP != nil {
		t.Errorf("address cep = %v, want nil", row.AddressCEP)
	}

	// Tri-states map to nullable booleans.
	if row.CanSwim == nil || *row.CanSwim != true {
		t.Errorf("can swim = %v", row.CanSwim)
	}
	if row.WillUseFloats == nil || *row.WillUseFloats != false {
		t.Errorf("will use floats = %v", row.WillUseFloats)
	}
	if row.ParentsAbsent != nil {
		t.Errorf("parents absent = %v, want nil for unanswered", row.ParentsAbsent)
	}

	if row.PaymentAmount != 350.00 {
		t.Errorf("payment amount = %v", row.PaymentAmount)
	}
	if row.Status != "" {
		t.Errorf("status = %q, must be left for the store default", row.Status)
	}
}

func TestSerializeSeasonFallback(t *testing.T) {
	d := validDraft()
	d.Season = ""
	row := Serialize(d, 350.00, "Verão 2026")
	if row.Season != "Verão 2026" {
		t.Errorf("season = %q, want fallback", row.Season)
	}
}

func TestSerializeChildAge(t *testing.T) {
	d := validDraft()
	d.ChildAge = "8"
	row := Serialize(d, 350.00, "Verão 2026")
	if row.ChildAge == nil || *row.ChildAge != 8 {
		t.Errorf("child age = %v, want 8", row.ChildAge)
	}

	d.ChildAge = ""
	row = Serialize(d, 350.00, "Verão 2026")
	if row.ChildAge != nil {
		t.Errorf("child age = %v, want nil", row.ChildAge)
	}
}

func TestTriStateBool(t *testing.T) {
	if b := Yes.Bool(); b == nil || !*b {
		t.Errorf("Yes.Bool() = %v", b)
	}
	if b := No.Bool(); b == nil || *b {
		t.Errorf("No.Bool() = %v", b)
	}
	if b := Unset.Bool(); b != nil {
		t.Errorf("Unset.Bool() = %v", b)
	}
}
