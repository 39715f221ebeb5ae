package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/camp-buscape/registration-api/internal/models"
	"github.com/camp-buscape/registration-api/internal/signature"
	"github.com/danielgtaylor/huma/v2"
)

type recordingNotifier struct {
	notified []models.Registration
	err      error
}

func (n *recordingNotifier) NotifyRegistration(r models.Registration) error {
	n.notified = append(n.notified, r)
	return n.err
}

func filledRequest() *RegistrationRequest {
	pad := signature.NewPad(300, 150)
	pad.Begin(30, 60)
	pad.Move(120, 40)
	pad.Move(220, 80)
	payload := pad.End()

	req := &RegistrationRequest{}
	req.Body.Options = []string{"Embarque ABC", "Camiseta"}
	req.Body.Season = "Verão 2026"
	req.Body.Period = "10 a 15 de Janeiro"
	req.Body.ChildName = "Ana Silva"
	req.Body.ChildBirthDate = "2016-05-10"
	req.Body.ChildRG = "12.345.678-9"
	req.Body.AddressCEP = "01310100"
	req.Body.AddressStreet = "Avenida Paulista"
	req.Body.AddressNumber = "1000"
	req.Body.AddressNeighborhood = "Bela Vista"
	req.Body.AddressCity = "São Paulo/SP"
	req.Body.MotherName = "Beatriz Silva"
	req.Body.MotherPhone = "11987654321"
	req.Body.MotherCPF = "12345678901"
	req.Body.MotherEmail = "beatriz@gmail.com"
	req.Body.EmergencyContactName = "Carlos Silva"
	req.Body.EmergencyContactRelation = "Tio"
	req.Body.EmergencyContactPhone = "11912345678"
	req.Body.AuthorizeThirdParty = "Sim"
	req.Body.AuthorizedPersonName = "Tia Maria"
	req.Body.CanSwim = "Sim"
	req.Body.SignatureLocation = "São Paulo"
	req.Body.SignatureData = payload
	return req
}

func TestHandleRegister(t *testing.T) {
	db := testDB(t)
	notif := &recordingNotifier{}
	handler := NewRegistrationHandler(db, testConfig(), notif)
	handler.now = func() time.Time {
		return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	}

	resp, err := handler.HandleRegister(context.Background(), filledRequest())
	if err != nil {
		t.Fatalf("HandleRegister returned error: %v", err)
	}
	if resp.Body.ID == "" {
		t.Fatal("expected a public id")
	}

	var row models.Registration
	if err := db.Where("public_id = ?", resp.Body.ID).First(&row).Error; err != nil {
		t.Fatalf("failed to find registration: %v", err)
	}

	if row.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", row.Status)
	}
	if row.ChildName != "Ana Silva" {
		t.Errorf("child name = %q", row.ChildName)
	}
	if row.ChildAge == nil || *row.ChildAge != 8 {
		t.Errorf("child age = %v, want derived 8", row.ChildAge)
	}
	if row.MotherPhone == nil || *row.MotherPhone != "(11) 98765-4321" {
		t.Errorf("mother phone = %v, want masked", row.MotherPhone)
	}
	if row.MotherCPF == nil || *row.MotherCPF != "123.456.789-01" {
		t.Errorf("mother cpf = %v, want masked", row.MotherCPF)
	}
	if row.AddressCEP == nil || *row.AddressCEP != "01310-100" {
		t.Errorf("address cep = %v, want masked", row.AddressCEP)
	}
	if row.FatherName != nil {
		t.Errorf("father name = %v, unanswered field must persist as NULL", row.FatherName)
	}
	if row.CanSwim == nil || !*row.CanSwim {
		t.Errorf("can swim = %v", row.CanSwim)
	}
	if row.WillUseFloats != nil {
		t.Errorf("will use floats = %v, want nil", row.WillUseFloats)
	}
	if row.PaymentAmount != 350.00 {
		t.Errorf("payment amount = %v", row.PaymentAmount)
	}
	if row.SignatureData == nil || !strings.HasPrefix(*row.SignatureData, "data:image/png;base64,") {
		t.Error("signature payload missing or not a PNG data URI")
	}

	if len(notif.notified) != 1 {
		t.Fatalf("notifier called %d times", len(notif.notified))
	}
	if notif.notified[0].ChildName != "Ana Silva" {
		t.Errorf("notified child = %q", notif.notified[0].ChildName)
	}
}

func TestHandleRegisterValidation(t *testing.T) {
	db := testDB(t)
	handler := NewRegistrationHandler(db, testConfig(), nil)

	req := filledRequest()
	req.Body.ChildName = ""

	_, err := handler.HandleRegister(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var statusErr huma.StatusError
	if !asStatusError(err, &statusErr) || statusErr.GetStatus() != 400 {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 0 {
		t.Errorf("failing draft must never reach the store, found %d rows", count)
	}
}

func TestHandleRegisterRequiresAuthorizedPersonName(t *testing.T) {
	handler := NewRegistrationHandler(testDB(t), testConfig(), nil)

	req := filledRequest()
	req.Body.AuthorizedPersonName = ""

	_, err := handler.HandleRegister(context.Background(), req)
	if err == nil {
		t.Fatal("expected error when pickup authorized without a name")
	}
}

func TestHandleRegisterRejectsBadSignature(t *testing.T) {
	handler := NewRegistrationHandler(testDB(t), testConfig(), nil)

	req := filledRequest()
	req.Body.SignatureData = "data:image/png;base64,not-base64!!!"

	_, err := handler.HandleRegister(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for invalid signature payload")
	}
	var statusErr huma.StatusError
	if !asStatusError(err, &statusErr) || statusErr.GetStatus() != 400 {
		t.Fatalf("unexpected error: %v", err)
	}
}

// The store's own error text is surfaced to the caller so the form can
// show it; the draft is untouched and the submission can be retried.
func TestHandleRegisterBackendError(t *testing.T) {
	db := testDB(t)
	handler := NewRegistrationHandler(db, testConfig(), nil)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.Close()

	_, err = handler.HandleRegister(context.Background(), filledRequest())
	if err == nil {
		t.Fatal("expected error with the store down")
	}
	var statusErr huma.StatusError
	if !asStatusError(err, &statusErr) || statusErr.GetStatus() != 500 {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "closed") {
		t.Errorf("error should carry the store's own text, got %q", err.Error())
	}
}

func TestHandleRegisterNotifierFailureIsNonFatal(t *testing.T) {
	db := testDB(t)
	notif := &recordingNotifier{err: context.DeadlineExceeded}
	handler := NewRegistrationHandler(db, testConfig(), notif)

	if _, err := handler.HandleRegister(context.Background(), filledRequest()); err != nil {
		t.Fatalf("notifier failure must not fail the submission: %v", err)
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 registration, got %d", count)
	}
}

func TestHandleRegisterPersistsChosenSeason(t *testing.T) {
	db := testDB(t)
	handler := NewRegistrationHandler(db, testConfig(), nil)

	req := filledRequest()
	req.Body.Season = "Inverno 2026"
	req.Body.Period = "5 a 10 de Julho"

	resp, err := handler.HandleRegister(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleRegister returned error: %v", err)
	}

	var row models.Registration
	db.Where("public_id = ?", resp.Body.ID).First(&row)
	if row.Season != "Inverno 2026" {
		t.Errorf("season = %q", row.Season)
	}
}

func asStatusError(err error, target *huma.StatusError) bool {
	se, ok := err.(huma.StatusError)
	if ok {
		*target = se
	}
	return ok
}
