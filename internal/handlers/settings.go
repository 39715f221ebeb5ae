package handlers

import (
	"context"
	"errors"

	"github.com/camp-buscape/registration-api/internal/auth"
	"github.com/camp-buscape/registration-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
)

// SettingsHandler manages the reference tables behind the form's
// selectors: seasons and the periods inside them.
type SettingsHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewSettingsHandler(db *gorm.DB, authHandler *auth.AuthHandler) *SettingsHandler {
	return &SettingsHandler{db: db, authHandler: authHandler}
}

func validSeasonStatus(status string) bool {
	return status == models.SeasonActive || status == models.SeasonClosed
}

// Seasons

type ListSeasonsInput struct {
	auth.AuthInput
}

type ListSeasonsOutput struct {
	Body []models.Season
}

func (h *SettingsHandler) HandleListSeasons(ctx context.Context, input *ListSeasonsInput) (*ListSeasonsOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	var seasons []models.Season
	if err := h.db.WithContext(ctx).Order("created_at desc").Find(&seasons).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list seasons")
	}
	return &ListSeasonsOutput{Body: seasons}, nil
}

type CreateSeasonInput struct {
	auth.AuthInput
	Body struct {
		Name   string `json:"name" doc:"Season name, e.g. Verão 2026" required:"true"`
		Status string `json:"status,omitempty" doc:"active or closed, defaults to active"`
	}
}

type SeasonOutput struct {
	Body models.Season
}

func (h *SettingsHandler) HandleCreateSeason(ctx context.Context, input *CreateSeasonInput) (*SeasonOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	if input.Body.Name == "" {
		return nil, huma.Error400BadRequest("Season name is required")
	}
	status := input.Body.Status
	if status == "" {
		status = models.SeasonActive
	}
	if !validSeasonStatus(status) {
		return nil, huma.Error400BadRequest("Season status must be active or closed")
	}

	season := models.Season{Name: input.Body.Name, Status: status}
	if err := h.db.WithContext(ctx).Create(&season).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create season")
	}
	return &SeasonOutput{Body: season}, nil
}

type UpdateSeasonInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Name   string `json:"name,omitempty"`
		Status string `json:"status,omitempty" doc:"active or closed"`
	}
}

func (h *SettingsHandler) HandleUpdateSeason(ctx context.Context, input *UpdateSeasonInput) (*SeasonOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	var season models.Season
	if err := h.db.WithContext(ctx).First(&season, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Season not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load season")
	}

	if input.Body.Name != "" {
		season.Name = input.Body.Name
	}
	if input.Body.Status != "" {
		if !validSeasonStatus(input.Body.Status) {
			return nil, huma.Error400BadRequest("Season status must be active or closed")
		}
		season.Status = input.Body.Status
	}

	if err := h.db.WithContext(ctx).Save(&season).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update season")
	}
	return &SeasonOutput{Body: season}, nil
}

type DeleteSeasonInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

// HandleDeleteSeason removes a season and its periods together, so a
// period never points at a season that no longer exists.
func (h *SettingsHandler) HandleDeleteSeason(ctx context.Context, input *DeleteSeasonInput) (*struct{}, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	var season models.Season
	if err := h.db.WithContext(ctx).First(&season, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Season not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load season")
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("season_id = ?", season.ID).Delete(&models.Period{}).Error; err != nil {
			return err
		}
		return tx.Delete(&season).Error
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete season")
	}
	return nil, nil
}

// Periods

type ListPeriodsInput struct {
	auth.AuthInput
	SeasonID uint `query:"season_id" doc:"Filter by season" required:"false"`
}

type ListPeriodsOutput struct {
	Body []models.Period
}

func (h *SettingsHandler) HandleListPeriods(ctx context.Context, input *ListPeriodsInput) (*ListPeriodsOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	query := h.db.WithContext(ctx).Order("start_date asc")
	if input.SeasonID != 0 {
		query = query.Where("season_id = ?", input.SeasonID)
	}

	var periods []models.Period
	if err := query.Find(&periods).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list periods")
	}
	return &ListPeriodsOutput{Body: periods}, nil
}

type CreatePeriodInput struct {
	auth.AuthInput
	Body struct {
		Label     string `json:"label" doc:"Period label, e.g. 10 a 15 de Janeiro" required:"true"`
		StartDate string `json:"start_date" doc:"First day (YYYY-MM-DD)"`
		EndDate   string `json:"end_date" doc:"Last day (YYYY-MM-DD)"`
		SeasonID  uint   `json:"season_id" doc:"Season this period belongs to" required:"true"`
	}
}

type PeriodOutput struct {
	Body models.Period
}

func (h *SettingsHandler) HandleCreatePeriod(ctx context.Context, input *CreatePeriodInput) (*PeriodOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	if input.Body.Label == "" {
		return nil, huma.Error400BadRequest("Period label is required")
	}

	var season models.Season
	if err := h.db.WithContext(ctx).First(&season, input.Body.SeasonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error400BadRequest("Season not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load season")
	}

	period := models.Period{
		Label:     input.Body.Label,
		StartDate: input.Body.StartDate,
		EndDate:   input.Body.EndDate,
		SeasonID:  season.ID,
	}
	if err := h.db.WithContext(ctx).Create(&period).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create period")
	}
	return &PeriodOutput{Body: period}, nil
}

type UpdatePeriodInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Label     string `json:"label,omitempty"`
		StartDate string `json:"start_date,omitempty"`
		EndDate   string `json:"end_date,omitempty"`
	}
}

func (h *SettingsHandler) HandleUpdatePeriod(ctx context.Context, input *UpdatePeriodInput) (*PeriodOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	var period models.Period
	if err := h.db.WithContext(ctx).First(&period, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Period not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load period")
	}

	if input.Body.Label != "" {
		period.Label = input.Body.Label
	}
	if input.Body.StartDate != "" {
		period.StartDate = input.Body.StartDate
	}
	if input.Body.EndDate != "" {
		period.EndDate = input.Body.EndDate
	}

	if err := h.db.WithContext(ctx).Save(&period).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update period")
	}
	return &PeriodOutput{Body: period}, nil
}

type DeletePeriodInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

func (h *SettingsHandler) HandleDeletePeriod(ctx context.Context, input *DeletePeriodInput) (*struct{}, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	result := h.db.WithContext(ctx).Delete(&models.Period{}, input.ID)
	if result.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to delete period")
	}
	if result.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Period not found")
	}
	return nil, nil
}
