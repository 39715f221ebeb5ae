package registration

import (
	"strconv"
	"time"

	"github.com/camp-buscape/registration-api/internal/cep"
	"github.com/camp-buscape/registration-api/internal/format"
)

// Field names one draft field addressable through Form.Set. The values
// match the form's own field identifiers.
type Field string

const (
	FieldSeason Field = "season"
	FieldPeriod Field = "period"

	FieldChildName        Field = "childName"
	FieldChildBirthDate   Field = "childBirthDate"
	FieldChildRG          Field = "childRg"
	FieldChildSchoolGrade Field = "childSchoolGrade"

	FieldAddressCEP          Field = "addressCep"
	FieldAddressStreet       Field = "addressStreet"
	FieldAddressNumber       Field = "addressNumber"
	FieldAddressNeighborhood Field = "addressNeighborhood"
	FieldAddressCity         Field = "addressCity"

	FieldMotherName      Field = "motherName"
	FieldMotherWorkplace Field = "motherWorkplace"
	FieldMotherCPF       Field = "motherCpf"
	FieldMotherPhone     Field = "motherPhone"
	FieldMotherEmail     Field = "motherEmail"

	FieldFatherName      Field = "fatherName"
	FieldFatherWorkplace Field = "fatherWorkplace"
	FieldFatherCPF       Field = "fatherCpf"
	FieldFatherPhone     Field = "fatherPhone"
	FieldFatherEmail     Field = "fatherEmail"

	FieldEmergencyContactName           Field = "emergencyContactName"
	FieldEmergencyContactRelation       Field = "emergencyContactRelation"
	FieldEmergencyContactPhone          Field = "emergencyContactPhone"
	FieldEmergencyContactPhoneSecondary Field = "emergencyContactPhoneSecondary"

	FieldParentsAbsent        Field = "parentsAbsent"
	FieldAuthorizeThirdParty  Field = "authorizeThirdParty"
	FieldAuthorizedPersonName Field = "authorizedPersonName"
	FieldCanSwim              Field = "canSwim"
	FieldWillUseFloats        Field = "willUseFloats"

	FieldSignatureLocation Field = "signatureLocation"
	FieldSignatureDate     Field = "signatureDate"
)

// Form is the sole owner of the Draft for one session. All writes go
// through it: field setters route phone/CPF/CEP values through their
// masks, changing the season discards the period, and setting the birth
// date derives the displayed age.
type Form struct {
	draft Draft
	now   func() time.Time
}

func NewForm() *Form {
	return NewFormAt(time.Now)
}

func NewFormAt(now func() time.Time) *Form {
	return &Form{draft: NewDraft(now()), now: now}
}

// Draft returns a copy; callers never hold a mutable reference.
func (f *Form) Draft() Draft {
	d := f.draft
	d.Options = append([]string(nil), f.draft.Options...)
	return d
}

// Set writes one field, applying the mask the field calls for.
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldMotherPhone:
		f.draft.MotherPhone = format.Phone(value)
	case FieldFatherPhone:
		f.draft.FatherPhone = format.Phone(value)
	case FieldEmergencyContactPhone:
		f.draft.EmergencyContactPhone = format.Phone(value)
	case FieldEmergencyContactPhoneSecondary:
		f.draft.EmergencyContactPhoneSecondary = format.Phone(value)
	case FieldMotherCPF:
		f.draft.MotherCPF = format.CPF(value)
	case FieldFatherCPF:
		f.draft.FatherCPF = format.CPF(value)
	case FieldAddressCEP:
		f.SetCEP(value)
	case FieldSeason:
		// A new season invalidates whatever period was chosen.
		f.draft.Season = value
		f.draft.Period = ""
	case FieldPeriod:
		f.draft.Period = value
	case FieldChildBirthDate:
		f.draft.ChildBirthDate = value
		if age := AgeOn(value, f.now()); age >= 0 {
			f.draft.ChildAge = strconv.Itoa(age)
		} else {
			f.draft.ChildAge = ""
		}
	case FieldChildName:
		f.draft.ChildName = value
	case FieldChildRG:
		f.draft.ChildRG = value
	case FieldChildSchoolGrade:
		f.draft.ChildSchoolGrade = value
	case FieldAddressStreet:
		f.draft.AddressStreet = value
	case FieldAddressNumber:
		f.draft.AddressNumber = value
	case FieldAddressNeighborhood:
		f.draft.AddressNeighborhood = value
	case FieldAddressCity:
		f.draft.AddressCity = value
	case FieldMotherName:
		f.draft.MotherName = value
	case FieldMotherWorkplace:
		f.draft.MotherWorkplace = value
	case FieldMotherEmail:
		f.draft.MotherEmail = value
	case FieldFatherName:
		f.draft.FatherName = value
	case FieldFatherWorkplace:
		f.draft.FatherWorkplace = value
	case FieldFatherEmail:
		f.draft.FatherEmail = value
	case FieldEmergencyContactName:
		f.draft.EmergencyContactName = value
	case FieldEmergencyContactRelation:
		f.draft.EmergencyContactRelation = value
	case FieldParentsAbsent:
		f.draft.ParentsAbsent = TriState(value)
	case FieldAuthorizeThirdParty:
		f.draft.AuthorizeThirdParty = TriState(value)
	case FieldAuthorizedPersonName:
		f.draft.AuthorizedPersonName = value
	case FieldCanSwim:
		f.draft.CanSwim = TriState(value)
	case FieldWillUseFloats:
		f.draft.WillUseFloats = TriState(value)
	case FieldSignatureLocation:
		f.draft.SignatureLocation = value
	case FieldSignatureDate:
		f.draft.SignatureDate = value
	}
}

// SetCEP masks the postal code and reports the clean 8-digit code once
// the field is complete, signalling that a lookup should fire.
func (f *Form) SetCEP(value string) (code string, lookup bool) {
	f.draft.AddressCEP = format.CEP(value)
	clean := format.CEPDigits(value)
	if len(clean) == 8 {
		return clean, true
	}
	return "", false
}

// ApplyAddress back-fills the street, neighborhood and city fields from
// a postal-code lookup. Existing values in those fields are overwritten,
// matching the form's behavior; the house number is left alone.
func (f *Form) ApplyAddress(addr cep.Address) {
	f.draft.AddressStreet = addr.Street
	f.draft.AddressNeighborhood = addr.Neighborhood
	f.draft.AddressCity = addr.City
}

// ToggleOption adds or removes one add-on.
func (f *Form) ToggleOption(option string) {
	for i, o := range f.draft.Options {
		if o == option {
			f.draft.Options = append(f.draft.Options[:i], f.draft.Options[i+1:]...)
			return
		}
	}
	f.draft.Options = append(f.draft.Options, option)
}

// SetOptions replaces the selected add-ons wholesale.
func (f *Form) SetOptions(options []string) {
	f.draft.Options = append([]string(nil), options...)
}

// SetSignature stores the exported signature payload.
func (f *Form) SetSignature(data string) {
	f.draft.SignatureData = data
}

// Reset discards everything and returns to the mount defaults, as after
// a successful submission.
func (f *Form) Reset() {
	f.draft = NewDraft(f.now())
}
