package handlers

import (
	"context"
	"log"
	"time"

	"github.com/camp-buscape/registration-api/internal/config"
	"github.com/camp-buscape/registration-api/internal/notifier"
	"github.com/camp-buscape/registration-api/internal/registration"
	"github.com/camp-buscape/registration-api/internal/signature"
	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
)

type RegistrationHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	notifier notifier.Notifier
	now      func() time.Time
}

func NewRegistrationHandler(db *gorm.DB, cfg *config.Config, notifier notifier.Notifier) *RegistrationHandler {
	return &RegistrationHandler{db: db, cfg: cfg, notifier: notifier, now: time.Now}
}

type RegistrationRequest struct {
	Body struct {
		Options []string `json:"options,omitempty" doc:"Selected add-ons (boarding, merchandise)"`
		Season  string   `json:"season" doc:"Season name" required:"true"`
		Period  string   `json:"period" doc:"Period label within the season"`

		ChildName        string `json:"child_name" doc:"Camper's full name" required:"true"`
		ChildBirthDate   string `json:"child_birth_date" doc:"Birth date (YYYY-MM-DD)"`
		ChildRG          string `json:"child_rg,omitempty" doc:"ID document number"`
		ChildSchoolGrade string `json:"child_school_grade,omitempty"`

		AddressCEP          string `json:"address_cep,omitempty" doc:"Postal code"`
		AddressStreet       string `json:"address_street,omitempty"`
		AddressNumber       string `json:"address_number,omitempty"`
		AddressNeighborhood string `json:"address_neighborhood,omitempty"`
		AddressCity         string `json:"address_city,omitempty"`

		MotherName      string `json:"mother_name,omitempty"`
		MotherWorkplace string `json:"mother_workplace,omitempty"`
		MotherCPF       string `json:"mother_cpf,omitempty"`
		MotherPhone     string `json:"mother_phone,omitempty"`
		MotherEmail     string `json:"mother_email,omitempty"`

		FatherName      string `json:"father_name,omitempty"`
		FatherWorkplace string `json:"father_workplace,omitempty"`
		FatherCPF       string `json:"father_cpf,omitempty"`
		FatherPhone     string `json:"father_phone,omitempty"`
		FatherEmail     string `json:"father_email,omitempty"`

		EmergencyContactName           string `json:"emergency_contact_name" doc:"Emergency contact" required:"true"`
		EmergencyContactRelation       string `json:"emergency_contact_relation,omitempty"`
		EmergencyContactPhone          string `json:"emergency_contact_phone" doc:"Primary emergency phone"`
		EmergencyContactPhoneSecondary string `json:"emergency_contact_phone_secondary,omitempty"`

		ParentsAbsent        string `json:"parents_absent,omitempty" doc:"Sim, Não or empty for unanswered"`
		AuthorizeThirdParty  string `json:"authorize_third_party,omitempty" doc:"Sim, Não or empty for unanswered"`
		AuthorizedPersonName string `json:"authorized_person_name,omitempty" doc:"Required when third-party pickup is authorized"`
		CanSwim              string `json:"can_swim,omitempty" doc:"Sim, Não or empty for unanswered"`
		WillUseFloats        string `json:"will_use_floats,omitempty" doc:"Sim, Não or empty for unanswered"`

		SignatureLocation string `json:"signature_location,omitempty"`
		SignatureDate     string `json:"signature_date,omitempty"`
		SignatureData     string `json:"signature_data,omitempty" doc:"Guardian signature as a PNG data URI"`
	}
}

type RegistrationResponse struct {
	Body struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
}

// HandleRegister runs the submission pipeline: route every field
// through the form (masks, derived age, season/period pairing), enforce
// the required-field policy, map the draft into the persisted row and
// insert it once. The store's error text travels back verbatim so the
// caller can show it and retry with the draft intact.
func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegistrationRequest) (*RegistrationResponse, error) {
	b := input.Body

	form := registration.NewFormAt(h.now)
	if b.Options != nil {
		form.SetOptions(b.Options)
	}
	form.Set(registration.FieldSeason, b.Season)
	form.Set(registration.FieldPeriod, b.Period)
	form.Set(registration.FieldChildName, b.ChildName)
	form.Set(registration.FieldChildBirthDate, b.ChildBirthDate)
	form.Set(registration.FieldChildRG, b.ChildRG)
	form.Set(registration.FieldChildSchoolGrade, b.ChildSchoolGrade)
	form.Set(registration.FieldAddressCEP, b.AddressCEP)
	form.Set(registration.FieldAddressStreet, b.AddressStreet)
	form.Set(registration.FieldAddressNumber, b.AddressNumber)
	form.Set(registration.FieldAddressNeighborhood, b.AddressNeighborhood)
	form.Set(registration.FieldAddressCity, b.AddressCity)
	form.Set(registration.FieldMotherName, b.MotherName)
	form.Set(registration.FieldMotherWorkplace, b.MotherWorkplace)
	form.Set(registration.FieldMotherCPF, b.MotherCPF)
	form.Set(registration.FieldMotherPhone, b.MotherPhone)
	form.Set(registration.FieldMotherEmail, b.MotherEmail)
	form.Set(registration.FieldFatherName, b.FatherName)
	form.Set(registration.FieldFatherWorkplace, b.FatherWorkplace)
	form.Set(registration.FieldFatherCPF, b.FatherCPF)
	form.Set(registration.FieldFatherPhone, b.FatherPhone)
	form.Set(registration.FieldFatherEmail, b.FatherEmail)
	form.Set(registration.FieldEmergencyContactName, b.EmergencyContactName)
	form.Set(registration.FieldEmergencyContactRelation, b.EmergencyContactRelation)
	form.Set(registration.FieldEmergencyContactPhone, b.EmergencyContactPhone)
	form.Set(registration.FieldEmergencyContactPhoneSecondary, b.EmergencyContactPhoneSecondary)
	form.Set(registration.FieldParentsAbsent, b.ParentsAbsent)
	form.Set(registration.FieldAuthorizeThirdParty, b.AuthorizeThirdParty)
	form.Set(registration.FieldAuthorizedPersonName, b.AuthorizedPersonName)
	form.Set(registration.FieldCanSwim, b.CanSwim)
	form.Set(registration.FieldWillUseFloats, b.WillUseFloats)
	form.Set(registration.FieldSignatureLocation, b.SignatureLocation)
	if b.SignatureDate != "" {
		form.Set(registration.FieldSignatureDate, b.SignatureDate)
	}

	if b.SignatureData != "" {
		if _, err := signature.DecodeDataURI(b.SignatureData); err != nil {
			return nil, huma.Error400BadRequest("Invalid signature payload: " + err.Error())
		}
		form.SetSignature(b.SignatureData)
	}

	draft := form.Draft()
	if err := registration.Validate(draft); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	row := registration.Serialize(draft, h.cfg.PaymentAmount, h.cfg.DefaultSeason)
	if err := h.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyRegistration(row); err != nil {
			log.Printf("Failed to send registration notification: %v", err)
		}
	}

	res := &RegistrationResponse{}
	res.Body.ID = row.PublicID
	res.Body.Message = "Inscrição enviada com sucesso"
	return res, nil
}
