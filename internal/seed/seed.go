package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/config"
	"github.com/MyRealChoco/ArbeitMate/internal/domain"
	"github.com/MyRealChoco/ArbeitMate/internal/repository"
	"github.com/MyRealChoco/ArbeitMate/internal/utils"
)

var demoRoleNames = []string{"홀", "주방", "캐셔"}

var demoShiftHours = [][2]string{
	{"09:00:00", "13:00:00"},
	{"13:00:00", "18:00:00"},
	{"18:00:00", "23:00:00"},
}

// SeedDemoCompany 는 데모 매장 하나를 통째로 만든다: 사장님과 알바생들,
// 역할, 앞으로 일주일치 근무 슬롯과 배정, 그리고 교환 요청 몇 건.
func SeedDemoCompany(r *repository.Repository, cfg *config.Config, workerCount int) {
	owner, err := utils.GenerateRandomMember(cfg.Seed.MemberPassword, cfg.Seed.EmailDomain)
	if err != nil {
		slog.Error("사장님 생성 실패", "error", err)
		return
	}
	if err := r.CreateMember(owner); err != nil {
		slog.Error("사장님 저장 실패", "error", err)
		return
	}

	company := &domain.Company{
		Name:    fmt.Sprintf("아르바이트메이트 데모점 %02d호", rand.Intn(100)),
		OwnerID: owner.ID,
	}
	if err := r.CreateCompany(company); err != nil {
		slog.Error("매장 생성 실패", "error", err)
		return
	}

	workers := make([]*domain.Member, 0, workerCount)
	for i := 0; i < workerCount; i++ {
		worker, err := utils.GenerateRandomMember(cfg.Seed.MemberPassword, cfg.Seed.EmailDomain)
		if err != nil {
			slog.Error("알바생 생성 실패", "error", err)
			continue
		}
		if err := r.CreateMember(worker); err != nil {
			slog.Error("알바생 저장 실패", "error", err)
			continue
		}
		if err := r.AddCompanyMember(company.ID, worker.ID); err != nil {
			slog.Error("알바생 매장 등록 실패", "error", err)
			continue
		}
		workers = append(workers, worker)
	}
	if len(workers) < 2 {
		slog.Error("교환 요청을 만들기에 알바생이 부족합니다", "count", len(workers))
		return
	}

	roles := make([]*domain.WorkRole, 0, len(demoRoleNames))
	for _, name := range demoRoleNames {
		role := &domain.WorkRole{CompanyID: company.ID, Name: name}
		if err := r.CreateWorkRole(role); err != nil {
			slog.Error("역할 생성 실패", "error", err)
			return
		}
		roles = append(roles, role)
	}

	// 일주일치 근무 슬롯을 만들고 알바생을 돌아가며 배정한다
	assignments := make([]*domain.ScheduleAssignment, 0)
	next := 0
	for day := 0; day < 7; day++ {
		workDate := time.Now().AddDate(0, 0, day+1).Format("2006-01-02")
		for _, hours := range demoShiftHours {
			role := roles[rand.Intn(len(roles))]
			schedule := &domain.Schedule{
				CompanyID:         company.ID,
				RoleID:            role.ID,
				WorkDate:          workDate,
				StartTime:         hours[0],
				EndTime:           hours[1],
				RequiredHeadcount: 1,
			}
			if err := r.CreateSchedule(schedule); err != nil {
				slog.Error("근무 슬롯 생성 실패", "error", err)
				return
			}

			assignment := &domain.ScheduleAssignment{
				ScheduleID: schedule.ID,
				CompanyID:  company.ID,
				MemberID:   workers[next%len(workers)].ID,
			}
			next++
			if err := r.CreateScheduleAssignment(assignment); err != nil {
				slog.Error("근무자 배정 실패", "error", err)
				return
			}
			assignments = append(assignments, assignment)
		}
	}

	// 공개 대타 한 건과 맞교환 한 건
	openGiveAway := domain.NewOpenGiveAway(company.ID, assignments[0].ID, assignments[0].MemberID, "개인 사정으로 대타를 구합니다")
	if err := r.CreateSwapRequest(openGiveAway); err != nil {
		slog.Error("공개 대타 요청 생성 실패", "error", err)
		return
	}

	var from, to *domain.ScheduleAssignment
	for _, a := range assignments[1:] {
		if from == nil {
			from = a
			continue
		}
		if a.MemberID != from.MemberID {
			to = a
			break
		}
	}
	if from != nil && to != nil {
		directSwap, err := domain.NewDirectSwap(company.ID, from.ID, to.ID, from.MemberID, to.MemberID, "시간표가 겹쳐서 맞바꾸고 싶습니다")
		if err != nil {
			slog.Error("맞교환 요청 생성 실패", "error", err)
			return
		}
		if err := r.CreateSwapRequest(directSwap); err != nil {
			slog.Error("맞교환 요청 저장 실패", "error", err)
			return
		}
	}

	slog.Info("데모 매장 생성 완료",
		"company", company.Name,
		"owner", owner.Email,
		"workers", len(workers),
		"assignments", len(assignments),
	)
}
