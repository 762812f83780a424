package services

import (
	"testing"

	"github.com/haniyashafiq/PRO-CRM/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterPatientColumnsDropsUnknownKeys(t *testing.T) {
	columns := filterPatientColumns(models.RoleAdmin, map[string]interface{}{
		"name":       "Ahmed",
		"id":         "HP-000099",
		"created_at": "2024-01-01",
		"bogus":      true,
	})

	assert.Equal(t, map[string]interface{}{"name": "Ahmed"}, columns)
}

func TestFilterPatientColumnsAdminKeepsSensitiveFields(t *testing.T) {
	columns := filterPatientColumns(models.RoleAdmin, map[string]interface{}{
		"monthlyFee":    "30,000",
		"laundryStatus": true,
	})

	assert.Equal(t, map[string]interface{}{
		"monthly_fee":    "30,000",
		"laundry_status": true,
	}, columns)
}

func TestFilterPatientColumnsNonAdminLosesSensitiveFields(t *testing.T) {
	columns := filterPatientColumns(models.RoleDoctor, map[string]interface{}{
		"name":             "Ahmed",
		"complaint":        "updated complaint",
		"monthlyFee":       "30,000",
		"monthlyAllowance": "5,000",
		"cnic":             "35202-1234567-1",
		"laundryAmount":    700,
	})

	// The write goes through with the sensitive fields silently removed.
	assert.Equal(t, map[string]interface{}{
		"name":      "Ahmed",
		"complaint": "updated complaint",
	}, columns)
}
