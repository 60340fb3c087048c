package repository

import (
	"context"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/google/uuid"
)

// CreateCompany 는 매장을 만들고 같은 트랜잭션 안에서 생성자를
// 소유자 겸 구성원으로 등록한다.
func (r *Repository) CreateCompany(company *domain.Company) error {
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
		INSERT INTO companies (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, company.Name, company.OwnerID).Scan(&company.ID, &company.CreatedAt, &company.Version); err != nil {
		return err
	}

	query = `
		INSERT INTO company_members (company_id, member_id)
		VALUES ($1, $2)
	`
	if _, err := tx.ExecContext(ctx, query, company.ID, company.OwnerID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetCompanyByID(id uuid.UUID) (*domain.Company, error) {
	query := `
		SELECT name, owner_id, created_at, version
		FROM companies WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	company := &domain.Company{
		ID: id,
	}

	dst := []any{&company.Name, &company.OwnerID, &company.CreatedAt, &company.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return company, nil
}

func (r *Repository) GetMyCompanies(memberID uuid.UUID) ([]*domain.Company, error) {
	query := `
		SELECT c.id, c.name, c.owner_id, c.created_at, c.version
		FROM companies c
		JOIN company_members cm ON cm.company_id = c.id
		WHERE cm.member_id = $1
		ORDER BY cm.joined_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company := &domain.Company{}
		dst := []any{&company.ID, &company.Name, &company.OwnerID, &company.CreatedAt, &company.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *Repository) AddCompanyMember(companyID, memberID uuid.UUID) error {
	query := `
		INSERT INTO company_members (company_id, member_id)
		VALUES ($1, $2)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, companyID, memberID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetCompanyMembers(companyID uuid.UUID) ([]*domain.CompanyMember, error) {
	query := `
		SELECT cm.company_id, cm.member_id, m.name, m.email, cm.joined_at
		FROM company_members cm
		JOIN members m ON m.id = cm.member_id
		WHERE cm.company_id = $1
		ORDER BY cm.joined_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.CompanyMember, 0)
	for rows.Next() {
		cm := &domain.CompanyMember{}
		dst := []any{&cm.CompanyID, &cm.MemberID, &cm.Name, &cm.Email, &cm.JoinedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		members = append(members, cm)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *Repository) IsCompanyMember(companyID, memberID uuid.UUID) (bool, error) {
	isMember := false

	query := `
		SELECT EXISTS (SELECT 1 FROM company_members WHERE company_id = $1 AND member_id = $2)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, companyID, memberID).Scan(&isMember); err != nil {
		return false, err
	}

	return isMember, nil
}
