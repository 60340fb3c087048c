// Package swap 은 근무 교환/대타 요청의 생명주기를 조율한다.
// 상태 전이 규칙은 domain.SwapRequest 가 강제하고, 이 패키지는
// 참조 무결성 검사, 권한 검사, 그리고 승인 시점의 원자적인
// 근무표 변경을 책임진다.
package swap

import (
	"database/sql"
	"errors"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/google/uuid"
)

// Store 는 오케스트레이터가 필요로 하는 저장소 기능이다.
// *repository.Repository 가 구현한다.
type Store interface {
	GetMemberByID(id uuid.UUID) (*domain.Member, error)
	GetCompanyByID(id uuid.UUID) (*domain.Company, error)
	GetScheduleAssignmentByID(id uuid.UUID) (*domain.ScheduleAssignment, error)
	CreateSwapRequest(req *domain.SwapRequest) error
	GetSwapRequestByID(id uuid.UUID) (*domain.SwapRequest, error)
	UpdateSwapRequestLifecycle(req *domain.SwapRequest) error
	ApproveSwapRequest(req *domain.SwapRequest, reassignments []domain.Reassignment) error
	GetCompanySwapRequests(companyID uuid.UUID) ([]*domain.SwapRequestSummary, error)
	GetMyRelatedSwapRequests(memberID, companyID uuid.UUID) ([]*domain.SwapRequestSummary, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateRequestInput struct {
	Type             domain.SwapType
	FromAssignmentID uuid.UUID
	ToAssignmentID   *uuid.UUID
	TargetMemberID   *uuid.UUID
	Reason           string
}

// CreateRequest 는 교환/대타 요청을 생성한다 (알바생).
func (s *Service) CreateRequest(requesterID, companyID uuid.UUID, input CreateRequestInput) (uuid.UUID, error) {
	if input.Type != domain.SwapTypeGiveAway && input.Type != domain.SwapTypeDirectSwap {
		return uuid.Nil, domain.ErrInvalidInput
	}

	if _, err := s.store.GetMemberByID(requesterID); err != nil {
		return uuid.Nil, notFoundOr(err)
	}
	if _, err := s.store.GetCompanyByID(companyID); err != nil {
		return uuid.Nil, notFoundOr(err)
	}

	// 내 근무(From) 조회
	fromAssignment, err := s.store.GetScheduleAssignmentByID(input.FromAssignmentID)
	if err != nil {
		return uuid.Nil, notFoundOr(err)
	}
	if fromAssignment.CompanyID != companyID {
		return uuid.Nil, domain.ErrInvalidInput
	}

	// 본인의 근무만 교환 신청할 수 있다
	if fromAssignment.MemberID != requesterID {
		return uuid.Nil, domain.ErrForbidden
	}

	// 대상 근무(To) 조회 (맞교환일 경우)
	var toAssignment *domain.ScheduleAssignment
	if input.Type == domain.SwapTypeDirectSwap {
		if input.ToAssignmentID == nil {
			return uuid.Nil, domain.ErrInvalidInput
		}
		toAssignment, err = s.store.GetScheduleAssignmentByID(*input.ToAssignmentID)
		if err != nil {
			return uuid.Nil, notFoundOr(err)
		}
		if toAssignment.CompanyID != companyID {
			return uuid.Nil, domain.ErrInvalidInput
		}
	}

	// 특정 대상 지정
	var targetID *uuid.UUID
	if input.TargetMemberID != nil {
		if _, err := s.store.GetMemberByID(*input.TargetMemberID); err != nil {
			return uuid.Nil, notFoundOr(err)
		}
		targetID = input.TargetMemberID
	}

	var req *domain.SwapRequest
	switch input.Type {
	case domain.SwapTypeGiveAway:
		if targetID == nil {
			req = domain.NewOpenGiveAway(companyID, fromAssignment.ID, requesterID, input.Reason)
		} else {
			req, err = domain.NewGiveAway(companyID, fromAssignment.ID, requesterID, *targetID, input.Reason)
			if err != nil {
				return uuid.Nil, err
			}
		}
	case domain.SwapTypeDirectSwap:
		// 맞교환 대상이 명시되지 않았으면 상대 근무의 현재 주인으로 정한다
		if targetID == nil {
			targetID = &toAssignment.MemberID
		}
		req, err = domain.NewDirectSwap(companyID, fromAssignment.ID, toAssignment.ID, requesterID, *targetID, input.Reason)
		if err != nil {
			return uuid.Nil, err
		}
	}

	if err := s.store.CreateSwapRequest(req); err != nil {
		return uuid.Nil, err
	}

	return req.ID, nil
}

// AcceptRequest 는 요청 수락이다 (대상 알바생). 수락 즉시 '사장님 승인
// 대기' 상태까지 전이해서 저장하므로 중간 상태는 밖에서 보이지 않는다.
func (s *Service) AcceptRequest(actorID, requestID uuid.UUID) error {
	if _, err := s.store.GetMemberByID(actorID); err != nil {
		return notFoundOr(err)
	}

	req, err := s.store.GetSwapRequestByID(requestID)
	if err != nil {
		return notFoundOr(err)
	}

	if err := req.Accept(actorID); err != nil {
		return err
	}
	if err := req.RequestOwnerApproval(); err != nil {
		return err
	}

	// 버전 검사에 걸리면 다른 사람이 먼저 수락한 것이다
	if err := s.store.UpdateSwapRequestLifecycle(req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrIllegalStateTransition
		}
		return err
	}

	return nil
}

// ApproveRequest 는 사장님의 최종 승인이다. 상태 전이와 실제 근무표
// 변경이 한 트랜잭션으로 커밋되며, 둘 중 하나라도 실패하면 아무것도
// 적용되지 않는다.
func (s *Service) ApproveRequest(ownerID, requestID uuid.UUID) error {
	if _, err := s.store.GetMemberByID(ownerID); err != nil {
		return notFoundOr(err)
	}

	req, err := s.store.GetSwapRequestByID(requestID)
	if err != nil {
		return notFoundOr(err)
	}

	company, err := s.store.GetCompanyByID(req.CompanyID)
	if err != nil {
		return notFoundOr(err)
	}

	// 해당 매장의 사장님만 승인할 수 있다
	if company.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	if err := req.Approve(ownerID, company.OwnerID); err != nil {
		return err
	}

	reassignments, err := s.buildReassignments(req)
	if err != nil {
		return err
	}

	if err := s.store.ApproveSwapRequest(req, reassignments); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrIllegalStateTransition
		}
		return err
	}

	return nil
}

// buildReassignments 는 승인된 요청이 만들어낼 근무자 변경 목록을 계산한다.
// 기대 근무자(요청 생성/수락 시점에 기록된 주인)가 승인 시점에 달라져
// 있으면 트랜잭션이 domain.ErrConflict 로 거부한다.
func (s *Service) buildReassignments(req *domain.SwapRequest) ([]domain.Reassignment, error) {
	if req.AcceptedMemberID == nil {
		return nil, domain.ErrIllegalStateTransition
	}
	accepted := *req.AcceptedMemberID

	reassignments := []domain.Reassignment{
		{
			AssignmentID:     req.FromAssignmentID,
			ExpectedMemberID: req.CreatedByID,
			NewMemberID:      accepted,
		},
	}

	if req.Type == domain.SwapTypeDirectSwap {
		if req.ToAssignmentID == nil {
			return nil, domain.ErrInvalidInput
		}
		reassignments = append(reassignments, domain.Reassignment{
			AssignmentID:     *req.ToAssignmentID,
			ExpectedMemberID: accepted,
			NewMemberID:      req.CreatedByID,
		})
	}

	return reassignments, nil
}

// DeclineRequest 는 거절이다. 참여자(요청자, 지정 대상, 수락자) 또는
// 매장 사장님만 거절할 수 있다.
func (s *Service) DeclineRequest(actorID, requestID uuid.UUID) error {
	if _, err := s.store.GetMemberByID(actorID); err != nil {
		return notFoundOr(err)
	}

	req, err := s.store.GetSwapRequestByID(requestID)
	if err != nil {
		return notFoundOr(err)
	}

	if !req.IsParticipant(actorID) {
		company, err := s.store.GetCompanyByID(req.CompanyID)
		if err != nil {
			return notFoundOr(err)
		}
		if company.OwnerID != actorID {
			return domain.ErrForbidden
		}
	}

	if err := req.Decline(); err != nil {
		return err
	}

	if err := s.store.UpdateSwapRequestLifecycle(req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrIllegalStateTransition
		}
		return err
	}

	return nil
}

// MyRequests 는 알바생용 조회다.
func (s *Service) MyRequests(memberID, companyID uuid.UUID) ([]*domain.SwapRequestSummary, error) {
	return s.store.GetMyRelatedSwapRequests(memberID, companyID)
}

// CompanyRequests 는 사장님용 매장 전체 조회다.
func (s *Service) CompanyRequests(companyID uuid.UUID) ([]*domain.SwapRequestSummary, error) {
	return s.store.GetCompanySwapRequests(companyID)
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
