package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateSwapRequest(req *domain.SwapRequest) error {
	query := `
		INSERT INTO swap_requests (company_id, type, from_assignment_id, to_assignment_id, created_by, proposed_to, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{req.CompanyID, req.Type, req.FromAssignmentID, req.ToAssignmentID, req.CreatedByID, req.ProposedToID, req.Reason, req.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.CreatedAt, &req.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSwapRequestByID(id uuid.UUID) (*domain.SwapRequest, error) {
	query := `
		SELECT company_id, type, from_assignment_id, to_assignment_id, created_by, proposed_to, accepted_member, reason, status, created_at, version
		FROM swap_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	req := &domain.SwapRequest{
		ID: id,
	}

	var toAssignmentID, proposedToID, acceptedMemberID uuid.NullUUID
	dst := []any{&req.CompanyID, &req.Type, &req.FromAssignmentID, &toAssignmentID, &req.CreatedByID, &proposedToID, &acceptedMemberID, &req.Reason, &req.Status, &req.CreatedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if toAssignmentID.Valid {
		req.ToAssignmentID = &toAssignmentID.UUID
	}
	if proposedToID.Valid {
		req.ProposedToID = &proposedToID.UUID
	}
	if acceptedMemberID.Valid {
		req.AcceptedMemberID = &acceptedMemberID.UUID
	}

	return req, nil
}

// UpdateSwapRequestLifecycle 는 상태와 수락자를 버전 검사와 함께 갱신한다.
// 다른 트랜잭션이 먼저 요청을 갱신했다면 sql.ErrNoRows 를 반환하므로,
// 공개 대타 요청에 대한 동시 수락이나 동시 승인/거절은 한 건만 성공한다.
func (r *Repository) UpdateSwapRequestLifecycle(req *domain.SwapRequest) error {
	query := `
		UPDATE swap_requests
		SET
			status = $1,
			accepted_member = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{req.Status, req.AcceptedMemberID, req.ID, req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&req.Version); err != nil {
		return err
	}

	return nil
}

// ApproveSwapRequest 는 상태 전이와 근무자 변경을 한 트랜잭션으로 적용한다.
// 요청 행의 버전이 달라졌으면 sql.ErrNoRows, 배정의 현재 근무자가
// 기대값과 다르면 domain.ErrConflict 를 반환하고 전체를 롤백한다.
// 어느 경우에도 한쪽만 바뀐 근무표가 관측되는 일은 없다.
func (r *Repository) ApproveSwapRequest(req *domain.SwapRequest, reassignments []domain.Reassignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE swap_requests
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`
	if err := tx.QueryRowContext(ctx, query, req.Status, req.ID, req.Version).Scan(&req.Version); err != nil {
		return err
	}

	for _, ra := range reassignments {
		query = `
			UPDATE schedule_assignments
			SET
				member_id = $1,
				version = version + 1
			WHERE id = $2 AND member_id = $3
		`
		result, err := tx.ExecContext(ctx, query, ra.NewMemberID, ra.AssignmentID, ra.ExpectedMemberID)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrConflict
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

const swapRequestSummaryColumns = `
	SELECT sr.id, creator.name, target.name, sr.type, sr.status, sr.created_at,
		s.work_date::text, s.start_time::text, s.end_time::text, wr.name
	FROM swap_requests sr
	JOIN members creator ON creator.id = sr.created_by
	LEFT JOIN members target ON target.id = sr.proposed_to
	JOIN schedule_assignments sa ON sa.id = sr.from_assignment_id
	JOIN schedules s ON s.id = sa.schedule_id
	JOIN work_roles wr ON wr.id = s.role_id
`

func scanSwapRequestSummaries(rows *sql.Rows) ([]*domain.SwapRequestSummary, error) {
	summaries := make([]*domain.SwapRequestSummary, 0)

	for rows.Next() {
		summary := &domain.SwapRequestSummary{}
		var targetName sql.NullString
		var workDate, startTime, endTime, roleName string

		dst := []any{&summary.ID, &summary.RequesterName, &targetName, &summary.Type, &summary.Status, &summary.CreatedAt, &workDate, &startTime, &endTime, &roleName}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if targetName.Valid {
			summary.TargetName = targetName.String
		} else {
			summary.TargetName = domain.OpenTargetName
		}
		summary.FromScheduleInfo = fmt.Sprintf("%s %s~%s (%s)", workDate, startTime, endTime, roleName)

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetCompanySwapRequests 는 매장의 모든 요청을 최신순으로 반환한다 (사장님용).
func (r *Repository) GetCompanySwapRequests(companyID uuid.UUID) ([]*domain.SwapRequestSummary, error) {
	query := swapRequestSummaryColumns + `
		WHERE sr.company_id = $1
		ORDER BY sr.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSwapRequestSummaries(rows)
}

// GetMyRelatedSwapRequests 는 내가 요청했거나, 나를 지정했거나, 같은 매장의
// 공개 대타라서 내가 수락할 수 있는 요청들을 최신순으로 반환한다.
func (r *Repository) GetMyRelatedSwapRequests(memberID, companyID uuid.UUID) ([]*domain.SwapRequestSummary, error) {
	query := swapRequestSummaryColumns + `
		WHERE sr.company_id = $2
			AND (
				sr.created_by = $1
				OR sr.proposed_to = $1
				OR (sr.type = 'GIVE_AWAY' AND sr.proposed_to IS NULL)
			)
		ORDER BY sr.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, memberID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSwapRequestSummaries(rows)
}
