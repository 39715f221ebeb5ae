package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/camp-buscape/registration-api/internal/auth"
	"github.com/camp-buscape/registration-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
)

// ReviewHandler is the staff side of the intake: list what came in,
// inspect one submission and move it through pending, approved or
// rejected. Every decision is recorded as a ReviewEvent.
type ReviewHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewReviewHandler(db *gorm.DB, authHandler *auth.AuthHandler) *ReviewHandler {
	return &ReviewHandler{db: db, authHandler: authHandler}
}

type RegistrationSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Season       string    `json:"season"`
	Period       *string   `json:"period"`
	ChildName    string    `json:"child_name"`
	ChildAge     *int      `json:"child_age"`
	MotherName   *string   `json:"mother_name"`
	FatherName   *string   `json:"father_name"`
	HasSignature bool      `json:"has_signature"`
	Status       string    `json:"status"`
}

type ListRegistrationsInput struct {
	auth.AuthInput
	Status string `query:"status" doc:"Filter by status (pending, approved, rejected)" required:"false"`
}

type ListRegistrationsOutput struct {
	Body []RegistrationSummary
}

func (h *ReviewHandler) HandleList(ctx context.Context, input *ListRegistrationsInput) (*ListRegistrationsOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	query := h.db.WithContext(ctx).Order("created_at desc")
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}

	var rows []models.Registration
	if err := query.Find(&rows).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list registrations")
	}

	summaries := make([]RegistrationSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, RegistrationSummary{
			ID:           row.PublicID,
			CreatedAt:    row.CreatedAt,
			Season:       row.Season,
			Period:       row.Period,
			ChildName:    row.ChildName,
			ChildAge:     row.ChildAge,
			MotherName:   row.MotherName,
			FatherName:   row.FatherName,
			HasSignature: row.SignatureData != nil,
			Status:       row.Status,
		})
	}

	return &ListRegistrationsOutput{Body: summaries}, nil
}

type GetRegistrationInput struct {
	auth.AuthInput
	ID string `path:"id" doc:"Registration public id"`
}

type GetRegistrationOutput struct {
	Body models.Registration
}

func (h *ReviewHandler) HandleGet(ctx context.Context, input *GetRegistrationInput) (*GetRegistrationOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	row, err := h.findRegistration(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetRegistrationOutput{Body: row}, nil
}

type ReviewDecisionInput struct {
	auth.AuthInput
	ID string `path:"id" doc:"Registration public id"`
}

type ReviewDecisionOutput struct {
	Body struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
}

func (h *ReviewHandler) HandleApprove(ctx context.Context, input *ReviewDecisionInput) (*ReviewDecisionOutput, error) {
	return h.decide(ctx, input, models.StatusApproved)
}

func (h *ReviewHandler) HandleReject(ctx context.Context, input *ReviewDecisionInput) (*ReviewDecisionOutput, error) {
	return h.decide(ctx, input, models.StatusRejected)
}

// decide moves a pending registration to its final status. Decisions
// are one-way: anything already approved or rejected conflicts.
func (h *ReviewHandler) decide(ctx context.Context, input *ReviewDecisionInput, toStatus string) (*ReviewDecisionOutput, error) {
	reviewer, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	row, err := h.findRegistration(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if row.Status != models.StatusPending {
		return nil, huma.Error409Conflict("Registration already " + row.Status)
	}

	fromStatus := row.Status
	err = h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&row).Update("status", toStatus).Error; err != nil {
			return err
		}
		event := models.ReviewEvent{
			RegistrationID: row.ID,
			ReviewerID:     reviewer.ID,
			FromStatus:     fromStatus,
			ToStatus:       toStatus,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update registration")
	}

	res := &ReviewDecisionOutput{}
	res.Body.ID = row.PublicID
	res.Body.Status = toStatus
	return res, nil
}

type DeleteRegistrationInput struct {
	auth.AuthInput
	ID string `path:"id" doc:"Registration public id"`
}

func (h *ReviewHandler) HandleDelete(ctx context.Context, input *DeleteRegistrationInput) (*struct{}, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	row, err := h.findRegistration(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete registration")
	}
	return nil, nil
}

func (h *ReviewHandler) findRegistration(ctx context.Context, publicID string) (models.Registration, error) {
	var row models.Registration
	err := h.db.WithContext(ctx).Where("public_id = ?", publicID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Registration{}, huma.Error404NotFound("Registration not found")
		}
		return models.Registration{}, huma.Error500InternalServerError("Failed to load registration")
	}
	return row, nil
}
