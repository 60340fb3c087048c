package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/MyRealChoco/ArbeitMate/internal/config"
	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

func main() {
	/**********************************************
	 * logger 생성
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * 설정 로드
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * 메일 클라이언트 생성
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("메일 클라이언트를 만들 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// 메일 서버에 실제로 접속되는지 확인한다
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("메일 서버에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * RabbitMQ 연결
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("RabbitMQ 에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// 채널 생성
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("채널을 만들 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	// 큐 선언
	q, err := ch.QueueDeclare(
		"email_queue", // 큐 이름
		true,          // 지속성 여부
		false,         // 소비자가 없을 때 자동 삭제하지 않도록 false
		false,         // 독점 여부
		false,         // 큐 생성 확인을 기다리도록 false
		nil,           // 추가 인자
	)
	if err != nil {
		logger.Error("큐를 선언할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	// CTRL+C 감지
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// 메시지 소비
	msgs, err := ch.Consume(
		q.Name, // 큐
		"",     // 소비자 식별자, 빈 문자열이면 RabbitMQ 가 자동 할당
		false,  // 자동 ack 여부
		false,  // 독점 여부
		false,  // no-local, RabbitMQ 가 지원하지 않으므로 false
		false,  // RabbitMQ 응답을 기다리도록 false
		nil,    // 추가 인자
	)
	if err != nil {
		logger.Error("메시지를 소비할 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// goroutine 종료용 컨텍스트
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("메시지 수신", slog.String("message", string(msg.Body)))
				// 메일 정보 역직렬화
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("메일 정보 역직렬화에 실패했습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// 메일 작성
				mail := mail.NewMsg()
				if err := mail.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("발신자를 설정할 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := mail.To(mailMessage.To); err != nil {
					logger.Error("수신자를 설정할 수 없습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// 메일 종류에 따라 본문을 채운다
				switch mailMessage.Type {
				case "welcome":
					tmpl, err := template.ParseFiles("./templates/welcome_email.html")
					if err != nil {
						logger.Error("메일 템플릿을 해석할 수 없습니다", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := mail.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("메일 본문을 설정할 수 없습니다", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					mail.Subject("아르바이트메이트 - 가입을 환영합니다")
				case "reset_password":
					tmpl, err := template.ParseFiles("./templates/reset_password_otp_email.html")
					if err != nil {
						logger.Error("메일 템플릿을 해석할 수 없습니다", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := mail.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("메일 본문을 설정할 수 없습니다", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					mail.Subject("아르바이트메이트 - 비밀번호 재설정")
				default:
					logger.Error("지원하지 않는 메일 종류입니다", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				// 메일 발송
				if err := client.DialAndSend(mail); err != nil {
					logger.Error("메일 발송에 실패했습니다", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // 메시지를 다시 큐에 넣는다
					continue
				}

				// 메시지 확인
				_ = msg.Ack(false)
			}
		}
	}()

	// CTRL+C 신호 대기
	logger.Info("메시지를 기다립니다...(CTRL+C 로 종료)")
	<-sigChan

	// 정상 종료
	slog.Info("mail worker 를 종료합니다...")
	cancel()
	wg.Wait() // 모든 goroutine 이 끝날 때까지 기다린다
	slog.Info("mail worker 가 정상적으로 종료되었습니다")
}
