package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Registration is one submitted camper enrollment form. All optional
// columns are pointers so that an unanswered field persists as NULL
// rather than an empty string or a false boolean.
type Registration struct {
	gorm.Model
	PublicID string `json:"public_id" gorm:"uniqueIndex"`

	Season  string   `json:"season"`
	Period  *string  `json:"period"`
	Options []string `json:"options" gorm:"serializer:json"`

	ChildName        string  `json:"child_name"`
	ChildBirthDate   *string `json:"child_birth_date"`
	ChildAge         *int    `json:"child_age"`
	ChildRG          *string `json:"child_rg"`
	ChildSchoolGrade *string `json:"child_school_grade"`

	AddressCEP          *string `json:"address_cep"`
	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`

	MotherName      *string `json:"mother_name"`
	MotherWorkplace *string `json:"mother_workplace"`
	MotherCPF       *string `json:"mother_cpf"`
	MotherPhone     *string `json:"mother_phone"`
	MotherEmail     *string `json:"mother_email"`

	FatherName      *string `json:"father_name"`
	FatherWorkplace *string `json:"father_workplace"`
	FatherCPF       *string `json:"father_cpf"`
	FatherPhone     *string `json:"father_phone"`
	FatherEmail     *string `json:"father_email"`

	EmergencyContactName           *string `json:"emergency_contact_name"`
	EmergencyContactRelation       *string `json:"emergency_contact_relation"`
	EmergencyContactPhone          *string `json:"emergency_contact_phone"`
	EmergencyContactPhoneSecondary *string `json:"emergency_contact_phone_secondary"`

	ParentsAbsent        *bool   `json:"parents_absent"`
	AuthorizeThirdParty  *bool   `json:"authorize_third_party"`
	AuthorizedPersonName *string `json:"authorized_person_name"`
	CanSwim              *bool   `json:"can_swim"`
	WillUseFloats        *bool   `json:"will_use_floats"`

	SignatureLocation *string `json:"signature_location"`
	SignatureDate     *string `json:"signature_date"`
	SignatureData     *string `json:"signature_data"`

	PaymentAmount float64 `json:"payment_amount"`
	Status        string  `json:"status" gorm:"default:pending"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.PublicID == "" {
		r.PublicID = uuid.NewString()
	}
	return nil
}

// ReviewEvent records one staff decision on a registration.
type ReviewEvent struct {
	gorm.Model
	RegistrationID uint   `json:"registration_id"`
	ReviewerID     uint   `json:"reviewer_id"`
	FromStatus     string `json:"from_status"`
	ToStatus       string `json:"to_status"`
}
