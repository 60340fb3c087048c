package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkRole 은 매장 내 업무 역할 (예: 홀, 주방, 캐셔).
type WorkRole struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"companyID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Schedule 은 특정 날짜의 시간대별 근무 슬롯.
type Schedule struct {
	ID                uuid.UUID `json:"id"`
	CompanyID         uuid.UUID `json:"companyID"`
	RoleID            uuid.UUID `json:"roleID"`
	RoleName          string    `json:"roleName"`
	WorkDate          string    `json:"workDate"`  // YYYY-MM-DD
	StartTime         string    `json:"startTime"` // HH:MM:SS
	EndTime           string    `json:"endTime"`
	RequiredHeadcount int32     `json:"requiredHeadcount"`
	CreatedAt         time.Time `json:"createdAt"`
	Version           int32     `json:"-"`

	Workers []ScheduleWorker `json:"workers,omitempty"`
}

// ScheduleWorker 는 슬롯에 배정된 근무자 요약.
type ScheduleWorker struct {
	AssignmentID uuid.UUID `json:"assignmentID"`
	MemberID     uuid.UUID `json:"memberID"`
	MemberName   string    `json:"memberName"`
}
