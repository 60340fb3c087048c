package domain

import (
	"time"

	"github.com/google/uuid"
)

type SwapType string

const (
	SwapTypeGiveAway   SwapType = "GIVE_AWAY"   // 대타: 내 근무를 넘김
	SwapTypeDirectSwap SwapType = "DIRECT_SWAP" // 맞교환: 서로의 근무를 바꿈
)

type SwapStatus string

const (
	SwapStatusPending                 SwapStatus = "PENDING"
	SwapStatusAcceptedPendingApproval SwapStatus = "ACCEPTED_PENDING_APPROVAL"
	SwapStatusApproved                SwapStatus = "APPROVED"
	SwapStatusDeclined                SwapStatus = "DECLINED"
)

// OpenTargetName 은 대상이 지정되지 않은 공개 대타 요청의 표시용 이름.
const OpenTargetName = "전체 공개"

// SwapRequest 는 근무 교환/대타 요청 한 건의 상태 기계다.
// 상태 전이는 PENDING → ACCEPTED_PENDING_APPROVAL → APPROVED 순서이며,
// 종료 상태(APPROVED, DECLINED)에서는 어떤 전이도 허용하지 않는다.
// 실제 근무표 변경은 여기서 일어나지 않고 승인 트랜잭션에서만 일어난다.
type SwapRequest struct {
	ID               uuid.UUID  `json:"id"`
	CompanyID        uuid.UUID  `json:"companyID"`
	Type             SwapType   `json:"type"`
	FromAssignmentID uuid.UUID  `json:"fromAssignmentID"`
	ToAssignmentID   *uuid.UUID `json:"toAssignmentID,omitempty"`
	CreatedByID      uuid.UUID  `json:"createdByID"`
	ProposedToID     *uuid.UUID `json:"proposedToID,omitempty"`
	AcceptedMemberID *uuid.UUID `json:"acceptedMemberID,omitempty"`
	Status           SwapStatus `json:"status"`
	Reason           string     `json:"reason"`
	CreatedAt        time.Time  `json:"createdAt"`
	Version          int32      `json:"-"`
}

// NewOpenGiveAway 는 대상을 지정하지 않은 공개 대타 요청을 생성한다.
func NewOpenGiveAway(companyID, fromAssignmentID, requesterID uuid.UUID, reason string) *SwapRequest {
	return &SwapRequest{
		CompanyID:        companyID,
		Type:             SwapTypeGiveAway,
		FromAssignmentID: fromAssignmentID,
		CreatedByID:      requesterID,
		Status:           SwapStatusPending,
		Reason:           reason,
	}
}

// NewGiveAway 는 특정 알바생에게 보내는 대타 요청을 생성한다.
func NewGiveAway(companyID, fromAssignmentID, requesterID, targetID uuid.UUID, reason string) (*SwapRequest, error) {
	if targetID == requesterID {
		return nil, ErrInvalidInput
	}

	req := NewOpenGiveAway(companyID, fromAssignmentID, requesterID, reason)
	req.ProposedToID = &targetID
	return req, nil
}

// NewDirectSwap 은 두 근무를 맞바꾸는 요청을 생성한다. 대상은 항상 지정된다.
func NewDirectSwap(companyID, fromAssignmentID, toAssignmentID, requesterID, targetID uuid.UUID, reason string) (*SwapRequest, error) {
	if targetID == requesterID {
		return nil, ErrInvalidInput
	}

	return &SwapRequest{
		CompanyID:        companyID,
		Type:             SwapTypeDirectSwap,
		FromAssignmentID: fromAssignmentID,
		ToAssignmentID:   &toAssignmentID,
		CreatedByID:      requesterID,
		ProposedToID:     &targetID,
		Status:           SwapStatusPending,
		Reason:           reason,
	}, nil
}

// Accept 는 대상 알바생의 수락이다. PENDING 상태에서만 가능하다.
// 대상이 지정된 요청은 그 대상만, 공개 요청은 요청자 본인을 제외한
// 누구든 수락할 수 있다.
func (r *SwapRequest) Accept(actorID uuid.UUID) error {
	if r.Status != SwapStatusPending {
		return ErrIllegalStateTransition
	}

	if r.ProposedToID != nil {
		if actorID != *r.ProposedToID {
			return ErrForbidden
		}
	} else if actorID == r.CreatedByID {
		return ErrForbidden
	}

	accepted := actorID
	r.AcceptedMemberID = &accepted
	return nil
}

// RequestOwnerApproval 은 수락 직후 '사장님 승인 대기' 상태로 전이한다.
// 항상 Accept 와 한 트랜잭션 안에서 연달아 호출된다.
func (r *SwapRequest) RequestOwnerApproval() error {
	if r.Status != SwapStatusPending || r.AcceptedMemberID == nil {
		return ErrIllegalStateTransition
	}

	r.Status = SwapStatusAcceptedPendingApproval
	return nil
}

// Approve 는 사장님의 최종 승인이다. 매장 소유자 조회는 엔티티의 책임이
// 아니므로 호출자가 ownerID 를 넘겨준다.
func (r *SwapRequest) Approve(actorID, ownerID uuid.UUID) error {
	if actorID != ownerID {
		return ErrForbidden
	}
	if r.Status != SwapStatusAcceptedPendingApproval {
		return ErrIllegalStateTransition
	}

	r.Status = SwapStatusApproved
	return nil
}

// Decline 은 종료되지 않은 요청을 거절한다. 행위자 제한(참여자 또는
// 사장님)은 소유자 정보를 아는 오케스트레이터가 검사한다.
func (r *SwapRequest) Decline() error {
	if r.Status != SwapStatusPending && r.Status != SwapStatusAcceptedPendingApproval {
		return ErrIllegalStateTransition
	}

	r.Status = SwapStatusDeclined
	return nil
}

// IsParticipant 는 요청자, 지정 대상, 수락자 여부를 검사한다.
func (r *SwapRequest) IsParticipant(memberID uuid.UUID) bool {
	if memberID == r.CreatedByID {
		return true
	}
	if r.ProposedToID != nil && memberID == *r.ProposedToID {
		return true
	}
	if r.AcceptedMemberID != nil && memberID == *r.AcceptedMemberID {
		return true
	}
	return false
}

// SwapRequestSummary 는 목록 조회용 요약이다. 대상 미지정 공개 요청의
// TargetName 은 OpenTargetName 으로 채워진다.
type SwapRequestSummary struct {
	ID               uuid.UUID  `json:"id"`
	RequesterName    string     `json:"requesterName"`
	TargetName       string     `json:"targetName"`
	Type             SwapType   `json:"type"`
	Status           SwapStatus `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	FromScheduleInfo string     `json:"fromScheduleInfo"` // "날짜 시작~종료 (역할)"
}
