package domain

import (
	"time"

	"github.com/google/uuid"
)

// FixedShift 는 매주 반복되는 고정 근무 설정 한 건이다.
type FixedShift struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"companyID"`
	MemberID  uuid.UUID `json:"memberID"`
	RoleID    uuid.UUID `json:"roleID"`
	Weekday   int32     `json:"weekday"` // 1(월) ~ 7(일)
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}
