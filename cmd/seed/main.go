package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/MyRealChoco/ArbeitMate/internal/config"
	"github.com/MyRealChoco/ArbeitMate/internal/repository"
	"github.com/MyRealChoco/ArbeitMate/internal/seed"
	"github.com/MyRealChoco/ArbeitMate/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "실행할 작업 (1: 무작위 회원 삽입, 2: 데모 매장 생성)")
	flag.IntVar(&n, "n", 5, "삽입할 레코드 수")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 데이터베이스 연결 풀 생성
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("데이터베이스 연결 풀을 만들 수 없습니다", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 은 연결 풀 객체만 만들 뿐 실제로 접속하지 않으므로 명시적으로 ping 해야 한다
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("데이터베이스에 연결할 수 없습니다", "error", err)
		return
	}

	// repository 생성
	repo := repository.NewRepository(cfg, dbpool)

	// 작업 실행
	switch op {
	case 0:
		slog.Error("작업이 지정되지 않았습니다")
	case 1:
		if n <= 0 {
			slog.Error("올바른 회원 수를 입력해 주세요")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				member, err := utils.GenerateRandomMember(cfg.Seed.MemberPassword, cfg.Seed.EmailDomain)
				if err != nil {
					slog.Error("무작위 회원을 생성할 수 없습니다", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateMember(member); err != nil {
					slog.Error("회원을 삽입할 수 없습니다", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("회원 삽입 완료", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 1 {
			slog.Error("데모 매장에는 알바생이 두 명 이상 필요합니다")
		} else {
			seed.SeedDemoCompany(repo, cfg, n)
		}
	default:
		slog.Error("지정한 작업이 올바르지 않습니다")
	}
}
