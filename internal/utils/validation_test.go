package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

func TestValidateTimeRange(t *testing.T) {
	require.NoError(t, ValidateTimeRange("09:00:00", "13:00:00"))
	require.Error(t, ValidateTimeRange("13:00:00", "09:00:00"))
	require.Error(t, ValidateTimeRange("09:00:00", "09:00:00"))
	require.Error(t, ValidateTimeRange("9시", "13:00:00"))
}

func TestValidateScheduleTime(t *testing.T) {
	require.NoError(t, ValidateScheduleTime(&domain.Schedule{
		WorkDate:  "2026-09-01",
		StartTime: "09:00:00",
		EndTime:   "13:00:00",
	}))
	require.Error(t, ValidateScheduleTime(&domain.Schedule{
		WorkDate:  "2026/09/01",
		StartTime: "09:00:00",
		EndTime:   "13:00:00",
	}))
}

func TestValidateDateRange(t *testing.T) {
	require.NoError(t, ValidateDateRange("2026-09-01", "2026-09-07"))
	require.NoError(t, ValidateDateRange("2026-09-01", "2026-09-01"))
	require.Error(t, ValidateDateRange("2026-09-07", "2026-09-01"))
	require.Error(t, ValidateDateRange("어제", "2026-09-01"))
}
