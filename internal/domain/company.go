package domain

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"ownerID"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// CompanyMember 는 매장에 소속된 알바생(혹은 사장님)을 나타낸다.
type CompanyMember struct {
	CompanyID uuid.UUID `json:"companyID"`
	MemberID  uuid.UUID `json:"memberID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JoinedAt  time.Time `json:"joinedAt"`
}
