package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	companyID   = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	requesterID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	targetID    = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	strangerID  = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	ownerID     = uuid.MustParse("00000000-0000-0000-0000-000000000004")
	fromID      = uuid.MustParse("00000000-0000-0000-0000-0000000000f1")
	toID        = uuid.MustParse("00000000-0000-0000-0000-0000000000f2")
)

func TestNewGiveAway_RejectsSelfTarget(t *testing.T) {
	_, err := NewGiveAway(companyID, fromID, requesterID, requesterID, "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewDirectSwap_RejectsSelfTarget(t *testing.T) {
	_, err := NewDirectSwap(companyID, fromID, toID, requesterID, requesterID, "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewOpenGiveAway_StartsPendingWithoutTarget(t *testing.T) {
	req := NewOpenGiveAway(companyID, fromID, requesterID, "개인 사정")
	require.Equal(t, SwapStatusPending, req.Status)
	require.Nil(t, req.ProposedToID)
	require.Nil(t, req.AcceptedMemberID)
}

func TestAccept_TargetedRequest(t *testing.T) {
	req, err := NewGiveAway(companyID, fromID, requesterID, targetID, "")
	require.NoError(t, err)

	// 지정된 대상이 아닌 사람은 수락할 수 없다
	require.ErrorIs(t, req.Accept(strangerID), ErrForbidden)
	require.Nil(t, req.AcceptedMemberID)

	require.NoError(t, req.Accept(targetID))
	require.NotNil(t, req.AcceptedMemberID)
	require.Equal(t, targetID, *req.AcceptedMemberID)
	// 수락만으로는 상태가 바뀌지 않는다
	require.Equal(t, SwapStatusPending, req.Status)
}

func TestAccept_OpenRequest(t *testing.T) {
	req := NewOpenGiveAway(companyID, fromID, requesterID, "")

	// 요청자 본인은 자기 요청을 수락할 수 없다
	require.ErrorIs(t, req.Accept(requesterID), ErrForbidden)

	require.NoError(t, req.Accept(strangerID))
	require.Equal(t, strangerID, *req.AcceptedMemberID)
}

func TestRequestOwnerApproval_RequiresAcceptedMember(t *testing.T) {
	req := NewOpenGiveAway(companyID, fromID, requesterID, "")
	require.ErrorIs(t, req.RequestOwnerApproval(), ErrIllegalStateTransition)

	require.NoError(t, req.Accept(strangerID))
	require.NoError(t, req.RequestOwnerApproval())
	require.Equal(t, SwapStatusAcceptedPendingApproval, req.Status)
}

func TestAccept_OnlyFromPending(t *testing.T) {
	req := NewOpenGiveAway(companyID, fromID, requesterID, "")
	require.NoError(t, req.Accept(strangerID))
	require.NoError(t, req.RequestOwnerApproval())

	// 이미 승인 대기 중인 요청은 다시 수락할 수 없다
	require.ErrorIs(t, req.Accept(targetID), ErrIllegalStateTransition)
	require.Equal(t, strangerID, *req.AcceptedMemberID)
}

func TestApprove_OwnerOnly(t *testing.T) {
	req, err := NewGiveAway(companyID, fromID, requesterID, targetID, "")
	require.NoError(t, err)
	require.NoError(t, req.Accept(targetID))
	require.NoError(t, req.RequestOwnerApproval())

	require.ErrorIs(t, req.Approve(targetID, ownerID), ErrForbidden)
	require.Equal(t, SwapStatusAcceptedPendingApproval, req.Status)

	require.NoError(t, req.Approve(ownerID, ownerID))
	require.Equal(t, SwapStatusApproved, req.Status)
}

func TestApprove_RequiresPendingApproval(t *testing.T) {
	req := NewOpenGiveAway(companyID, fromID, requesterID, "")
	require.ErrorIs(t, req.Approve(ownerID, ownerID), ErrIllegalStateTransition)
}

func TestDecline_FromNonTerminalStates(t *testing.T) {
	pending := NewOpenGiveAway(companyID, fromID, requesterID, "")
	require.NoError(t, pending.Decline())
	require.Equal(t, SwapStatusDeclined, pending.Status)

	accepted := NewOpenGiveAway(companyID, fromID, requesterID, "")
	require.NoError(t, accepted.Accept(strangerID))
	require.NoError(t, accepted.RequestOwnerApproval())
	require.NoError(t, accepted.Decline())
	require.Equal(t, SwapStatusDeclined, accepted.Status)
}

func TestTerminalStatesRejectEveryTransition(t *testing.T) {
	approved := NewOpenGiveAway(companyID, fromID, requesterID, "")
	require.NoError(t, approved.Accept(strangerID))
	require.NoError(t, approved.RequestOwnerApproval())
	require.NoError(t, approved.Approve(ownerID, ownerID))

	declined := NewOpenGiveAway(companyID, fromID, requesterID, "")
	require.NoError(t, declined.Decline())

	for _, req := range []*SwapRequest{approved, declined} {
		require.ErrorIs(t, req.Accept(targetID), ErrIllegalStateTransition)
		require.ErrorIs(t, req.RequestOwnerApproval(), ErrIllegalStateTransition)
		require.ErrorIs(t, req.Approve(ownerID, ownerID), ErrIllegalStateTransition)
		require.ErrorIs(t, req.Decline(), ErrIllegalStateTransition)
	}
}

func TestIsParticipant(t *testing.T) {
	req, err := NewGiveAway(companyID, fromID, requesterID, targetID, "")
	require.NoError(t, err)

	require.True(t, req.IsParticipant(requesterID))
	require.True(t, req.IsParticipant(targetID))
	require.False(t, req.IsParticipant(strangerID))

	open := NewOpenGiveAway(companyID, fromID, requesterID, "")
	require.False(t, open.IsParticipant(strangerID))
	require.NoError(t, open.Accept(strangerID))
	require.True(t, open.IsParticipant(strangerID))
}
