package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haniyashafiq/PRO-CRM/cache"
	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/haniyashafiq/PRO-CRM/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CallMeetingRepository struct {
	cache *cache.Cache
}

func NewCallMeetingRepository(cache *cache.Cache) *CallMeetingRepository {
	return &CallMeetingRepository{cache: cache}
}

// Upsert writes an entry keyed by (person_name, day, month, year). A second
// submission with the same key overwrites the stored fields in one statement,
// so two concurrent writers cannot create a duplicate.
func (r *CallMeetingRepository) Upsert(ctx context.Context, entry *models.CallMeetingEntry) error {
	entry.CreatedAt = time.Now()
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "person_name"},
			{Name: "day"},
			{Name: "month"},
			{Name: "year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"type", "admission_date", "recorded_by", "created_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert call/meeting entry: %w", err)
	}
	return nil
}

func (r *CallMeetingRepository) GetAll(ctx context.Context) ([]models.CallMeetingEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entries []models.CallMeetingEntry
	err := database.DB.Order("year DESC, month DESC, day DESC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get call/meeting entries: %w", err)
	}
	return entries, nil
}

func (r *CallMeetingRepository) Delete(ctx context.Context, id uint) error {
	var entry models.CallMeetingEntry
	if err := database.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return fmt.Errorf("failed to find call/meeting entry: %w", err)
	}
	if err := database.DB.Delete(&models.CallMeetingEntry{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete call/meeting entry: %w", err)
	}
	return nil
}

// MonthSummary counts the month's entries grouped by contact type.
func (r *CallMeetingRepository) MonthSummary(ctx context.Context, month, year int) (map[string]int64, error) {
	type typeCount struct {
		Type  string
		Count int64
	}
	var rows []typeCount
	err := database.DB.Model(&models.CallMeetingEntry{}).
		Select("type, COUNT(*) AS count").
		Where("month = ? AND year = ?", month, year).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize call/meeting entries: %w", err)
	}

	summary := map[string]int64{
		models.ContactCall:    0,
		models.ContactMeeting: 0,
		models.ContactText:    0,
	}
	for _, row := range rows {
		summary[row.Type] = row.Count
	}
	return summary, nil
}
