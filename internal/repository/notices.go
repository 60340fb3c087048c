package repository

import (
	"context"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateNotice(notice *domain.Notice) error {
	query := `
		INSERT INTO company_notices (company_id, title, content, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{notice.CompanyID, notice.Title, notice.Content, notice.CreatedByID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&notice.ID, &notice.CreatedAt, &notice.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetNoticeByID(id uuid.UUID) (*domain.Notice, error) {
	query := `
		SELECT n.company_id, n.title, n.content, n.created_by, m.name, n.created_at, n.version
		FROM company_notices n
		JOIN members m ON m.id = n.created_by
		WHERE n.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	notice := &domain.Notice{
		ID: id,
	}

	dst := []any{&notice.CompanyID, &notice.Title, &notice.Content, &notice.CreatedByID, &notice.WriterName, &notice.CreatedAt, &notice.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return notice, nil
}

func (r *Repository) GetCompanyNotices(companyID uuid.UUID) ([]*domain.Notice, error) {
	query := `
		SELECT n.id, n.title, n.content, n.created_by, m.name, n.created_at, n.version
		FROM company_notices n
		JOIN members m ON m.id = n.created_by
		WHERE n.company_id = $1
		ORDER BY n.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := make([]*domain.Notice, 0)
	for rows.Next() {
		notice := &domain.Notice{CompanyID: companyID}
		dst := []any{&notice.ID, &notice.Title, &notice.Content, &notice.CreatedByID, &notice.WriterName, &notice.CreatedAt, &notice.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notices = append(notices, notice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notices, nil
}

func (r *Repository) UpdateNotice(notice *domain.Notice) error {
	query := `
		UPDATE company_notices
		SET
			title = $1,
			content = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{notice.Title, notice.Content, notice.ID, notice.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&notice.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteNotice(id uuid.UUID) error {
	query := `
		DELETE FROM company_notices WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
