package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleAssignment 는 한 근무 슬롯과 한 근무자의 바인딩이다.
// member_id 는 교환 요청 승인 트랜잭션을 통해서만 변경된다.
type ScheduleAssignment struct {
	ID         uuid.UUID `json:"id"`
	ScheduleID uuid.UUID `json:"scheduleID"`
	CompanyID  uuid.UUID `json:"companyID"`
	MemberID   uuid.UUID `json:"memberID"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`
}

// Reassignment 은 승인 시점에 원자적으로 적용할 근무자 변경 한 건.
// ExpectedMemberID 와 현재 배정이 다르면 전체 트랜잭션이 롤백된다.
type Reassignment struct {
	AssignmentID     uuid.UUID
	ExpectedMemberID uuid.UUID
	NewMemberID      uuid.UUID
}
