package repository

import (
	"context"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetFixedShifts(companyID, memberID uuid.UUID) ([]*domain.FixedShift, error) {
	query := `
		SELECT id, role_id, weekday, start_time::text, end_time::text, created_at
		FROM fixed_shifts
		WHERE company_id = $1 AND member_id = $2
		ORDER BY weekday, start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.FixedShift, 0)
	for rows.Next() {
		shift := &domain.FixedShift{
			CompanyID: companyID,
			MemberID:  memberID,
		}
		dst := []any{&shift.ID, &shift.RoleID, &shift.Weekday, &shift.StartTime, &shift.EndTime, &shift.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// ReplaceFixedShifts 는 기존 설정을 지우고 새 설정을 한 트랜잭션으로 넣는다.
func (r *Repository) ReplaceFixedShifts(companyID, memberID uuid.UUID, shifts []*domain.FixedShift) error {
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
		DELETE FROM fixed_shifts WHERE company_id = $1 AND member_id = $2
	`
	if _, err := tx.ExecContext(ctx, query, companyID, memberID); err != nil {
		return err
	}

	for _, shift := range shifts {
		query = `
			INSERT INTO fixed_shifts (company_id, member_id, role_id, weekday, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`
		args := []any{companyID, memberID, shift.RoleID, shift.Weekday, shift.StartTime, shift.EndTime}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt); err != nil {
			return err
		}
		shift.CompanyID = companyID
		shift.MemberID = memberID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
