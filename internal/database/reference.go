package database

import (
	"context"

	"github.com/camp-buscape/registration-api/internal/models"
	"github.com/camp-buscape/registration-api/internal/registration"
	"gorm.io/gorm"
)

// ReferenceStore serves the form's season/period reads from the
// database: active seasons newest first, periods by start date.
type ReferenceStore struct {
	db *gorm.DB
}

func NewReferenceStore(db *gorm.DB) *ReferenceStore {
	return &ReferenceStore{db: db}
}

func (s *ReferenceStore) ActiveSeasons(ctx context.Context) ([]registration.Season, error) {
	var rows []models.Season
	err := s.db.WithContext(ctx).
		Where("status = ?", models.SeasonActive).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	seasons := make([]registration.Season, 0, len(rows))
	for _, row := range rows {
		seasons = append(seasons, registration.Season{
			ID:     row.ID,
			Name:   row.Name,
			Status: row.Status,
		})
	}
	return seasons, nil
}

func (s *ReferenceStore) PeriodsByStartDate(ctx context.Context) ([]registration.Period, error) {
	var rows []models.Period
	err := s.db.WithContext(ctx).
		Order("start_date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	periods := make([]registration.Period, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, registration.Period{
			ID:        row.ID,
			Label:     row.Label,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			SeasonID:  row.SeasonID,
		})
	}
	return periods, nil
}
