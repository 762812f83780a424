package repositories

import (
	"context"
	"testing"

	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Submitting the same (person, day, month, year) twice must leave a single
// entry carrying the second submission's fields.
func TestCallMeetingUpsertSecondWriteWins(t *testing.T) {
	newTestDB(t, &models.CallMeetingEntry{})
	repo := NewCallMeetingRepository(nil)
	ctx := context.Background()

	first := models.CallMeetingEntry{
		PersonName:    "Waleed",
		Day:           3,
		Month:         5,
		Year:          2025,
		Type:          models.ContactCall,
		AdmissionDate: "2025-04-01",
		RecordedBy:    "1",
	}
	require.NoError(t, repo.Upsert(ctx, &first))

	second := models.CallMeetingEntry{
		PersonName:    "Waleed",
		Day:           3,
		Month:         5,
		Year:          2025,
		Type:          models.ContactMeeting,
		AdmissionDate: "2025-04-15",
		RecordedBy:    "2",
	}
	require.NoError(t, repo.Upsert(ctx, &second))

	var count int64
	require.NoError(t, database.DB.Model(&models.CallMeetingEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored models.CallMeetingEntry
	require.NoError(t, database.DB.First(&stored, "person_name = ?", "Waleed").Error)
	assert.Equal(t, models.ContactMeeting, stored.Type)
	assert.Equal(t, "2025-04-15", stored.AdmissionDate)
	assert.Equal(t, "2", stored.RecordedBy)
}

func TestCallMeetingUpsertDistinctKeysCoexist(t *testing.T) {
	newTestDB(t, &models.CallMeetingEntry{})
	repo := NewCallMeetingRepository(nil)
	ctx := context.Background()

	entries := []models.CallMeetingEntry{
		{PersonName: "Waleed", Day: 3, Month: 5, Year: 2025, Type: models.ContactCall},
		{PersonName: "Waleed", Day: 4, Month: 5, Year: 2025, Type: models.ContactCall},
		{PersonName: "Sana", Day: 3, Month: 5, Year: 2025, Type: models.ContactText},
	}
	for i := range entries {
		require.NoError(t, repo.Upsert(ctx, &entries[i]))
	}

	var count int64
	require.NoError(t, database.DB.Model(&models.CallMeetingEntry{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestCallMeetingMonthSummarySeedsAllTypes(t *testing.T) {
	newTestDB(t, &models.CallMeetingEntry{})
	repo := NewCallMeetingRepository(nil)
	ctx := context.Background()

	entries := []models.CallMeetingEntry{
		{PersonName: "Waleed", Day: 1, Month: 6, Year: 2025, Type: models.ContactCall},
		{PersonName: "Sana", Day: 2, Month: 6, Year: 2025, Type: models.ContactCall},
		{PersonName: "Bilal", Day: 3, Month: 6, Year: 2025, Type: models.ContactMeeting},
		{PersonName: "Asad", Day: 3, Month: 7, Year: 2025, Type: models.ContactText},
	}
	for i := range entries {
		require.NoError(t, repo.Upsert(ctx, &entries[i]))
	}

	summary, err := repo.MonthSummary(ctx, 6, 2025)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{
		models.ContactCall:    2,
		models.ContactMeeting: 1,
		models.ContactText:    0,
	}, summary)
}
