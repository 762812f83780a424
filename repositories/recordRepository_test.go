package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/haniyashafiq/PRO-CRM/database"
	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A free-text note lands in the record stream alongside the clinical types
// and comes back newest first.
func TestRecordRepositoryAppendsNotes(t *testing.T) {
	newTestDB(t, &models.Patient{}, &models.PatientRecord{})
	repo := NewRecordRepository(newTestCache(t))
	ctx := context.Background()

	require.NoError(t, database.DB.Create(&models.Patient{ID: "HP-000001", Name: "Ahmed"}).Error)
	require.NoError(t, database.DB.Create(&models.Patient{ID: "HP-000002", Name: "Bilal"}).Error)

	require.NoError(t, repo.Create(ctx, &models.PatientRecord{
		PatientID: "HP-000001",
		Type:      models.RecordSessionNote,
		Text:      "first session went well",
		CreatedAt: time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repo.Create(ctx, &models.PatientRecord{
		PatientID:  "HP-000001",
		Type:       models.RecordNote,
		Text:       "family visited today",
		RecordedBy: "3",
		CreatedAt:  time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repo.Create(ctx, &models.PatientRecord{
		PatientID: "HP-000002",
		Type:      models.RecordNote,
		Text:      "note for someone else",
		CreatedAt: time.Date(2025, time.May, 3, 9, 0, 0, 0, time.UTC),
	}))

	records, err := repo.GetByPatient(ctx, "HP-000001")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, models.RecordNote, records[0].Type)
	assert.Equal(t, "family visited today", records[0].Text)
	assert.Equal(t, "3", records[0].RecordedBy)
	assert.Equal(t, models.RecordSessionNote, records[1].Type)
}
