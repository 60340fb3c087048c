package repository

import (
	"context"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateWorkRole(role *domain.WorkRole) error {
	query := `
		INSERT INTO work_roles (company_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, role.CompanyID, role.Name).Scan(&role.ID, &role.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetCompanyWorkRoles(companyID uuid.UUID) ([]*domain.WorkRole, error) {
	query := `
		SELECT id, name, created_at
		FROM work_roles WHERE company_id = $1
		ORDER BY created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]*domain.WorkRole, 0)
	for rows.Next() {
		role := &domain.WorkRole{CompanyID: companyID}
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

func (r *Repository) CreateSchedule(schedule *domain.Schedule) error {
	query := `
		INSERT INTO schedules (company_id, role_id, work_date, start_time, end_time, required_headcount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{schedule.CompanyID, schedule.RoleID, schedule.WorkDate, schedule.StartTime, schedule.EndTime, schedule.RequiredHeadcount}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetScheduleByID(id uuid.UUID) (*domain.Schedule, error) {
	query := `
		SELECT s.company_id, s.role_id, wr.name, s.work_date::text, s.start_time::text, s.end_time::text, s.required_headcount, s.created_at, s.version
		FROM schedules s
		JOIN work_roles wr ON wr.id = s.role_id
		WHERE s.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	schedule := &domain.Schedule{
		ID: id,
	}

	dst := []any{&schedule.CompanyID, &schedule.RoleID, &schedule.RoleName, &schedule.WorkDate, &schedule.StartTime, &schedule.EndTime, &schedule.RequiredHeadcount, &schedule.CreatedAt, &schedule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return schedule, nil
}

// GetCompanySchedules 는 기간 내의 슬롯들을 배정 근무자까지 붙여서 반환한다.
func (r *Repository) GetCompanySchedules(companyID uuid.UUID, from, to string) ([]*domain.Schedule, error) {
	query := `
		SELECT s.id, s.role_id, wr.name, s.work_date::text, s.start_time::text, s.end_time::text, s.required_headcount, s.created_at, s.version
		FROM schedules s
		JOIN work_roles wr ON wr.id = s.role_id
		WHERE s.company_id = $1 AND s.work_date BETWEEN $2 AND $3
		ORDER BY s.work_date, s.start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	schedulesMap := make(map[uuid.UUID]*domain.Schedule)
	for rows.Next() {
		schedule := &domain.Schedule{CompanyID: companyID}
		dst := []any{&schedule.ID, &schedule.RoleID, &schedule.RoleName, &schedule.WorkDate, &schedule.StartTime, &schedule.EndTime, &schedule.RequiredHeadcount, &schedule.CreatedAt, &schedule.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		schedule.Workers = make([]domain.ScheduleWorker, 0)
		schedules = append(schedules, schedule)
		schedulesMap[schedule.ID] = schedule
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT sa.schedule_id, sa.id, sa.member_id, m.name
		FROM schedule_assignments sa
		JOIN schedules s ON s.id = sa.schedule_id
		JOIN members m ON m.id = sa.member_id
		WHERE s.company_id = $1 AND s.work_date BETWEEN $2 AND $3
	`

	workerRows, err := r.dbpool.QueryContext(ctx, query, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer workerRows.Close()

	for workerRows.Next() {
		var scheduleID uuid.UUID
		worker := domain.ScheduleWorker{}
		if err := workerRows.Scan(&scheduleID, &worker.AssignmentID, &worker.MemberID, &worker.MemberName); err != nil {
			return nil, err
		}
		if schedule, ok := schedulesMap[scheduleID]; ok {
			schedule.Workers = append(schedule.Workers, worker)
		}
	}
	if err := workerRows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) DeleteSchedule(id uuid.UUID) error {
	query := `
		DELETE FROM schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateScheduleAssignment(assignment *domain.ScheduleAssignment) error {
	query := `
		INSERT INTO schedule_assignments (schedule_id, member_id)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{assignment.ScheduleID, assignment.MemberID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetScheduleAssignmentByID(id uuid.UUID) (*domain.ScheduleAssignment, error) {
	query := `
		SELECT sa.schedule_id, s.company_id, sa.member_id, sa.created_at, sa.version
		FROM schedule_assignments sa
		JOIN schedules s ON s.id = sa.schedule_id
		WHERE sa.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	assignment := &domain.ScheduleAssignment{
		ID: id,
	}

	dst := []any{&assignment.ScheduleID, &assignment.CompanyID, &assignment.MemberID, &assignment.CreatedAt, &assignment.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (r *Repository) DeleteScheduleAssignment(id uuid.UUID) error {
	query := `
		DELETE FROM schedule_assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
