package registration

import (
	"strconv"

	"github.com/camp-buscape/registration-api/internal/models"
)

// Serialize maps a draft onto the persisted row. All null-coalescing
// lives here: empty strings become NULL, tri-state answers become
// nullable booleans, the displayed age becomes an integer or NULL. The
// row's status is left untouched for the store to default.
func Serialize(d Draft, paymentAmount float64, defaultSeason string) models.Registration {
	season := d.Season
	if season == "" {
		season = defaultSeason
	}

	return models.Registration{
		Season:  season,
		Period:  nullable(d.Period),
		Options: append([]string(nil), d.Options...),

		ChildName:        d.ChildName,
		ChildBirthDate:   nullable(d.ChildBirthDate),
		ChildAge:         nullableInt(d.ChildAge),
		ChildRG:          nullable(d.ChildRG),
		ChildSchoolGrade: nullable(d.ChildSchoolGrade),

		AddressCEP:          nullable(d.AddressCEP),
		AddressStreet:       nullable(d.AddressStreet),
		AddressNumber:       nullable(d.AddressNumber),
		AddressNeighborhood: nullable(d.AddressNeighborhood),
		AddressCity:         nullable(d.AddressCity),

		MotherName:      nullable(d.MotherName),
		MotherWorkplace: nullable(d.MotherWorkplace),
		MotherCPF:       nullable(d.MotherCPF),
		MotherPhone:     nullable(d.MotherPhone),
		MotherEmail:     nullable(d.MotherEmail),

		FatherName:      nullable(d.FatherName),
		FatherWorkplace: nullable(d.FatherWorkplace),
		FatherCPF:       nullable(d.FatherCPF),
		FatherPhone:     nullable(d.FatherPhone),
		FatherEmail:     nullable(d.FatherEmail),

		EmergencyContactName:           nullable(d.EmergencyContactName),
		EmergencyContactRelation:       nullable(d.EmergencyContactRelation),
		EmergencyContactPhone:          nullable(d.EmergencyContactPhone),
		EmergencyContactPhoneSecondary: nullable(d.EmergencyContactPhoneSecondary),

		ParentsAbsent:        d.ParentsAbsent.Bool(),
		AuthorizeThirdParty:  d.AuthorizeThirdParty.Bool(),
		AuthorizedPersonName: nullable(d.AuthorizedPersonName),
		CanSwim:              d.CanSwim.Bool(),
		WillUseFloats:        d.WillUseFloats.Bool(),

		SignatureLocation: nullable(d.SignatureLocation),
		SignatureDate:     nullable(d.SignatureDate),
		SignatureData:     nullable(d.SignatureData),

		PaymentAmount: paymentAmount,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
