package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

func ValidateTimeRange(startTime, endTime string) error {
	start, err := time.Parse("15:04:05", startTime)
	if err != nil {
		return fmt.Errorf("시작 시간 형식이 올바르지 않습니다: %s", startTime)
	}
	end, err := time.Parse("15:04:05", endTime)
	if err != nil {
		return fmt.Errorf("종료 시간 형식이 올바르지 않습니다: %s", endTime)
	}
	if !end.After(start) {
		return errors.New("종료 시간은 시작 시간보다 늦어야 합니다")
	}
	return nil
}

func ValidateScheduleTime(schedule *domain.Schedule) error {
	if _, err := time.Parse("2006-01-02", schedule.WorkDate); err != nil {
		return fmt.Errorf("근무 날짜 형식이 올바르지 않습니다: %s", schedule.WorkDate)
	}
	return ValidateTimeRange(schedule.StartTime, schedule.EndTime)
}

func ValidateDateRange(from, to string) error {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return fmt.Errorf("조회 시작 날짜 형식이 올바르지 않습니다: %s", from)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return fmt.Errorf("조회 종료 날짜 형식이 올바르지 않습니다: %s", to)
	}
	if toDate.Before(fromDate) {
		return errors.New("조회 종료 날짜는 시작 날짜보다 빠를 수 없습니다")
	}
	return nil
}
