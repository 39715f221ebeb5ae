// Package registration owns the public enrollment form: the in-memory
// draft, the field routing through input masks, reference-data loading
// and the single mapping into the persisted record.
package registration

import "time"

// TriState is a yes/no question the guardian may not have answered yet.
// The literal tokens are what the form renders and stores in the draft;
// conversion to a nullable boolean happens only at serialization.
type TriState string

const (
	Unset TriState = ""
	Yes   TriState = "Sim"
	No    TriState = "Não"
)

// Bool converts to the persisted representation: true, false or NULL.
func (t TriState) Bool() *bool {
	switch t {
	case Yes:
		b := true
		return &b
	case No:
		b := false
		return &b
	}
	return nil
}

// DefaultBoardingOption is pre-selected when the form opens.
const DefaultBoardingOption = "Embarque ABC"

// AvailableOptions are the add-ons offered on the form.
var AvailableOptions = []string{
	"Embarque ABC",
	"Embarque SP",
	"Direto p/ Bragança",
	"Camiseta",
	"Kart",
	"Parque Radical",
	"Agasalho",
}

// Draft is the registration being filled in, before submission. It
// lives only in memory for the duration of one form session; the Form
// is its sole mutator.
type Draft struct {
	Options []string
	Season  string
	Period  string

	ChildName        string
	ChildBirthDate   string
	ChildAge         string
	ChildRG          string
	ChildSchoolGrade string

	AddressCEP          string
	AddressStreet       string
	AddressNumber       string
	AddressNeighborhood string
	AddressCity         string

	MotherName      string
	MotherWorkplace string
	MotherCPF       string
	MotherPhone     string
	MotherEmail     string

	FatherName      string
	FatherWorkplace string
	FatherCPF       string
	FatherPhone     string
	FatherEmail     string

	EmergencyContactName           string
	EmergencyContactRelation       string
	EmergencyContactPhone          string
	EmergencyContactPhoneSecondary string

	ParentsAbsent        TriState
	AuthorizeThirdParty  TriState
	AuthorizedPersonName string
	CanSwim              TriState
	WillUseFloats        TriState

	SignatureLocation string
	SignatureDate     string
	SignatureData     string
}

// NewDraft builds the defaults the form opens with: the default
// boarding option selected and today's date on the signature line.
func NewDraft(now time.Time) Draft {
	return Draft{
		Options:       []string{DefaultBoardingOption},
		SignatureDate: now.Format("2006-01-02"),
	}
}

// AgeOn computes whole years of age at the reference date, decrementing
// when the birthday has not yet happened this year. Returns -1 when the
// birth date does not parse.
func AgeOn(birthDate string, today time.Time) int {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return -1
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
