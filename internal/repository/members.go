package repository

import (
	"context"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateMember(member *domain.Member) error {
	query := `
		INSERT INTO members (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{member.Name, member.Email, member.PasswordHash}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&member.ID, &member.CreatedAt, &member.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetMemberByID(id uuid.UUID) (*domain.Member, error) {
	query := `
		SELECT name, email, password_hash, created_at, version
		FROM members WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	member := &domain.Member{
		ID: id,
	}

	dst := []any{&member.Name, &member.Email, &member.PasswordHash, &member.CreatedAt, &member.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return member, nil
}

func (r *Repository) GetMemberByEmail(email string) (*domain.Member, error) {
	query := `
		SELECT id, name, password_hash, created_at, version
		FROM members WHERE email = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	member := &domain.Member{
		Email: email,
	}

	dst := []any{&member.ID, &member.Name, &member.PasswordHash, &member.CreatedAt, &member.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return member, nil
}

func (r *Repository) UpdateMember(member *domain.Member) error {
	query := `
		UPDATE members
		SET
			name = $1,
			password_hash = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING email, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{member.Name, member.PasswordHash, member.ID, member.Version}
	dst := []any{&member.Email, &member.CreatedAt, &member.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}
