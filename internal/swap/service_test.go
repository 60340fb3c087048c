package swap

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

// fakeStore 는 버전 검사까지 흉내 내는 인메모리 저장소다.
// 조회는 복사본을 돌려줘서 실제 DB 처럼 저장 전의 변경이 새지 않게 한다.
type fakeStore struct {
	members     map[uuid.UUID]*domain.Member
	companies   map[uuid.UUID]*domain.Company
	assignments map[uuid.UUID]*domain.ScheduleAssignment
	requests    map[uuid.UUID]*domain.SwapRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		members:     map[uuid.UUID]*domain.Member{},
		companies:   map[uuid.UUID]*domain.Company{},
		assignments: map[uuid.UUID]*domain.ScheduleAssignment{},
		requests:    map[uuid.UUID]*domain.SwapRequest{},
	}
}

func (f *fakeStore) GetMemberByID(id uuid.UUID) (*domain.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *m
	return &copied, nil
}

func (f *fakeStore) GetCompanyByID(id uuid.UUID) (*domain.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStore) GetScheduleAssignmentByID(id uuid.UUID) (*domain.ScheduleAssignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *a
	return &copied, nil
}

func (f *fakeStore) CreateSwapRequest(req *domain.SwapRequest) error {
	req.ID = uuid.New()
	req.Version = 1
	copied := *req
	f.requests[req.ID] = &copied
	return nil
}

func (f *fakeStore) GetSwapRequestByID(id uuid.UUID) (*domain.SwapRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *r
	return &copied, nil
}

func (f *fakeStore) UpdateSwapRequestLifecycle(req *domain.SwapRequest) error {
	stored, ok := f.requests[req.ID]
	if !ok || stored.Version != req.Version {
		return sql.ErrNoRows
	}

	req.Version++
	copied := *req
	f.requests[req.ID] = &copied
	return nil
}

func (f *fakeStore) ApproveSwapRequest(req *domain.SwapRequest, reassignments []domain.Reassignment) error {
	stored, ok := f.requests[req.ID]
	if !ok || stored.Version != req.Version {
		return sql.ErrNoRows
	}

	// 기대 근무자 검사에 하나라도 걸리면 아무것도 적용하지 않는다
	for _, r := range reassignments {
		a, ok := f.assignments[r.AssignmentID]
		if !ok || a.MemberID != r.ExpectedMemberID {
			return domain.ErrConflict
		}
	}

	for _, r := range reassignments {
		f.assignments[r.AssignmentID].MemberID = r.NewMemberID
		f.assignments[r.AssignmentID].Version++
	}

	req.Version++
	copied := *req
	f.requests[req.ID] = &copied
	return nil
}

func (f *fakeStore) GetCompanySwapRequests(companyID uuid.UUID) ([]*domain.SwapRequestSummary, error) {
	summaries := []*domain.SwapRequestSummary{}
	for _, r := range f.requests {
		if r.CompanyID == companyID {
			summaries = append(summaries, &domain.SwapRequestSummary{ID: r.ID, Type: r.Type, Status: r.Status})
		}
	}
	return summaries, nil
}

func (f *fakeStore) GetMyRelatedSwapRequests(memberID, companyID uuid.UUID) ([]*domain.SwapRequestSummary, error) {
	summaries := []*domain.SwapRequestSummary{}
	for _, r := range f.requests {
		if r.CompanyID != companyID {
			continue
		}
		related := r.CreatedByID == memberID ||
			(r.ProposedToID != nil && *r.ProposedToID == memberID) ||
			(r.Type == domain.SwapTypeGiveAway && r.ProposedToID == nil)
		if related {
			summaries = append(summaries, &domain.SwapRequestSummary{ID: r.ID, Type: r.Type, Status: r.Status})
		}
	}
	return summaries, nil
}

// fixture 는 사장님 한 명, 알바생 세 명, 알바생마다 근무 하나짜리 매장이다.
type fixture struct {
	store   *fakeStore
	service *Service

	ownerID   uuid.UUID
	companyID uuid.UUID

	memberA uuid.UUID
	memberB uuid.UUID
	memberC uuid.UUID

	assignmentA uuid.UUID
	assignmentB uuid.UUID
	assignmentC uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{store: newFakeStore()}
	f.service = NewService(f.store)

	addMember := func(name string) uuid.UUID {
		id := uuid.New()
		f.store.members[id] = &domain.Member{ID: id, Name: name}
		return id
	}
	f.ownerID = addMember("사장님")
	f.memberA = addMember("알바 A")
	f.memberB = addMember("알바 B")
	f.memberC = addMember("알바 C")

	f.companyID = uuid.New()
	f.store.companies[f.companyID] = &domain.Company{ID: f.companyID, Name: "데모 매장", OwnerID: f.ownerID}

	addAssignment := func(memberID uuid.UUID) uuid.UUID {
		id := uuid.New()
		f.store.assignments[id] = &domain.ScheduleAssignment{
			ID:        id,
			CompanyID: f.companyID,
			MemberID:  memberID,
			Version:   1,
		}
		return id
	}
	f.assignmentA = addAssignment(f.memberA)
	f.assignmentB = addAssignment(f.memberB)
	f.assignmentC = addAssignment(f.memberC)

	return f
}

func TestCreateRequest_Validation(t *testing.T) {
	f := newFixture()

	// 알 수 없는 요청 종류
	_, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             "SOMETHING_ELSE",
		FromAssignmentID: f.assignmentA,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// 존재하지 않는 근무
	_, err = f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: uuid.New(),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	// 남의 근무는 신청할 수 없다
	_, err = f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentB,
	})
	require.ErrorIs(t, err, domain.ErrForbidden)

	// 맞교환은 상대 근무가 필수다
	_, err = f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeDirectSwap,
		FromAssignmentID: f.assignmentA,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// 자기 자신을 대상으로 지정할 수 없다
	_, err = f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentA,
		TargetMemberID:   &f.memberA,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTargetedGiveAway_FullLifecycle(t *testing.T) {
	f := newFixture()

	requestID, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentA,
		TargetMemberID:   &f.memberB,
		Reason:           "개인 사정",
	})
	require.NoError(t, err)

	// 지정 대상이 아닌 알바생은 수락할 수 없다
	require.ErrorIs(t, f.service.AcceptRequest(f.memberC, requestID), domain.ErrForbidden)

	require.NoError(t, f.service.AcceptRequest(f.memberB, requestID))
	req, err := f.store.GetSwapRequestByID(requestID)
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusAcceptedPendingApproval, req.Status)

	// 근무표는 아직 그대로다
	require.Equal(t, f.memberA, f.store.assignments[f.assignmentA].MemberID)

	require.NoError(t, f.service.ApproveRequest(f.ownerID, requestID))
	req, err = f.store.GetSwapRequestByID(requestID)
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusApproved, req.Status)

	// 승인과 동시에 근무자가 바뀐다
	require.Equal(t, f.memberB, f.store.assignments[f.assignmentA].MemberID)
}

func TestDirectSwap_SwapsBothAssignments(t *testing.T) {
	f := newFixture()

	// 대상을 명시하지 않으면 상대 근무의 주인이 대상이 된다
	requestID, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeDirectSwap,
		FromAssignmentID: f.assignmentA,
		ToAssignmentID:   &f.assignmentB,
	})
	require.NoError(t, err)

	req, err := f.store.GetSwapRequestByID(requestID)
	require.NoError(t, err)
	require.NotNil(t, req.ProposedToID)
	require.Equal(t, f.memberB, *req.ProposedToID)

	require.NoError(t, f.service.AcceptRequest(f.memberB, requestID))
	require.NoError(t, f.service.ApproveRequest(f.ownerID, requestID))

	require.Equal(t, f.memberB, f.store.assignments[f.assignmentA].MemberID)
	require.Equal(t, f.memberA, f.store.assignments[f.assignmentB].MemberID)
}

func TestOpenGiveAway_FirstAcceptWins(t *testing.T) {
	f := newFixture()

	requestID, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentA,
	})
	require.NoError(t, err)

	// 요청자 본인은 수락할 수 없다
	require.ErrorIs(t, f.service.AcceptRequest(f.memberA, requestID), domain.ErrForbidden)

	require.NoError(t, f.service.AcceptRequest(f.memberB, requestID))

	// 두 번째 수락자는 상태 전이 거부를 받는다
	require.ErrorIs(t, f.service.AcceptRequest(f.memberC, requestID), domain.ErrIllegalStateTransition)

	require.NoError(t, f.service.ApproveRequest(f.ownerID, requestID))
	require.Equal(t, f.memberB, f.store.assignments[f.assignmentA].MemberID)
}

func TestApproveRequest_OwnerOnly(t *testing.T) {
	f := newFixture()

	requestID, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentA,
		TargetMemberID:   &f.memberB,
	})
	require.NoError(t, err)
	require.NoError(t, f.service.AcceptRequest(f.memberB, requestID))

	// 수락한 당사자라도 최종 승인은 할 수 없다
	require.ErrorIs(t, f.service.ApproveRequest(f.memberB, requestID), domain.ErrForbidden)

	// 수락 전 승인도 불가능하다
	otherID, err := f.service.CreateRequest(f.memberB, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentB,
	})
	require.NoError(t, err)
	require.ErrorIs(t, f.service.ApproveRequest(f.ownerID, otherID), domain.ErrIllegalStateTransition)
}

func TestApproveRequest_StaleAssignmentConflicts(t *testing.T) {
	f := newFixture()

	requestID, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentA,
		TargetMemberID:   &f.memberB,
	})
	require.NoError(t, err)
	require.NoError(t, f.service.AcceptRequest(f.memberB, requestID))

	// 승인 전에 근무 주인이 바뀌어 버린 경우
	f.store.assignments[f.assignmentA].MemberID = f.memberC

	require.ErrorIs(t, f.service.ApproveRequest(f.ownerID, requestID), domain.ErrConflict)

	// 전체가 롤백되어 상태도 그대로다
	req, err := f.store.GetSwapRequestByID(requestID)
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusAcceptedPendingApproval, req.Status)
}

func TestDeclineRequest_Authorization(t *testing.T) {
	f := newFixture()

	requestID, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentA,
		TargetMemberID:   &f.memberB,
	})
	require.NoError(t, err)

	// 관계없는 알바생은 거절할 수 없다
	require.ErrorIs(t, f.service.DeclineRequest(f.memberC, requestID), domain.ErrForbidden)

	// 사장님은 참여자가 아니어도 거절할 수 있다
	require.NoError(t, f.service.DeclineRequest(f.ownerID, requestID))

	req, err := f.store.GetSwapRequestByID(requestID)
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusDeclined, req.Status)

	// 이미 종료된 요청은 다시 거절할 수 없다
	require.ErrorIs(t, f.service.DeclineRequest(f.memberA, requestID), domain.ErrIllegalStateTransition)
}

func TestDeclinedRequest_CannotBeAcceptedOrApproved(t *testing.T) {
	f := newFixture()

	requestID, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentA,
		TargetMemberID:   &f.memberB,
	})
	require.NoError(t, err)
	require.NoError(t, f.service.DeclineRequest(f.memberB, requestID))

	require.ErrorIs(t, f.service.AcceptRequest(f.memberB, requestID), domain.ErrIllegalStateTransition)
	require.ErrorIs(t, f.service.ApproveRequest(f.ownerID, requestID), domain.ErrIllegalStateTransition)

	// 근무표는 전혀 바뀌지 않았다
	require.Equal(t, f.memberA, f.store.assignments[f.assignmentA].MemberID)
}

func TestRequests_NotFound(t *testing.T) {
	f := newFixture()
	missing := uuid.New()

	require.ErrorIs(t, f.service.AcceptRequest(f.memberA, missing), domain.ErrNotFound)
	require.ErrorIs(t, f.service.ApproveRequest(f.ownerID, missing), domain.ErrNotFound)
	require.ErrorIs(t, f.service.DeclineRequest(f.memberA, missing), domain.ErrNotFound)
}

func TestMyRequests_IncludesOpenCompanyRequests(t *testing.T) {
	f := newFixture()

	// A 의 공개 대타, B 가 C 에게 보낸 지정 요청
	openID, err := f.service.CreateRequest(f.memberA, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentA,
	})
	require.NoError(t, err)

	targetedID, err := f.service.CreateRequest(f.memberB, f.companyID, CreateRequestInput{
		Type:             domain.SwapTypeGiveAway,
		FromAssignmentID: f.assignmentB,
		TargetMemberID:   &f.memberC,
	})
	require.NoError(t, err)

	// C 에게는 공개 요청과 자신을 지정한 요청이 모두 보인다
	mine, err := f.service.MyRequests(f.memberC, f.companyID)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	// A 에게는 자신의 공개 요청만 보인다 (지정 요청의 당사자가 아니다)
	mine, err = f.service.MyRequests(f.memberA, f.companyID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, openID, mine[0].ID)

	// 사장님 조회에는 매장의 모든 요청이 보인다
	all, err := f.service.CompanyRequests(f.companyID)
	require.NoError(t, err)
	require.Len(t, all, 2)

	ids := map[uuid.UUID]bool{all[0].ID: true, all[1].ID: true}
	require.True(t, ids[openID])
	require.True(t, ids[targetedID])
}
