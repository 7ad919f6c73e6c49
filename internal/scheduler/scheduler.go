package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	sendReminders "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/send_reminders"
)

const reminderJobName = "booking_reminders"

var (
	ErrEmptyJobName  = errors.New("scheduler: job name is required")
	ErrEmptyCronExpr = errors.New("scheduler: cron expression is required")
)

// ReminderSender интерфейс рассылки напоминаний
type ReminderSender interface {
	Execute(ctx context.Context) (*sendReminders.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service обертка над планировщиком gocron
type Service struct {
	scheduler gocron.Scheduler
	log       Logger
	stopOnce  sync.Once
	stopErr   error
}

// New создает планировщик. Паника в задаче логируется и не останавливает процесс
func New(log Logger) (*Service, error) {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error("Scheduler: job %s (id=%s) panicked: %v", jobName, jobID, recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &Service{scheduler: sched, log: log}, nil
}

// Start запускает выполнение задач
func (s *Service) Start() {
	s.log.Info("Scheduler: starting")
	s.scheduler.Start()
}

// Stop останавливает планировщик и дожидается выполняющихся задач
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		s.log.Info("Scheduler: stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// AddJob регистрирует задачу по cron-выражению.
// Следующий запуск ждет окончания предыдущего
func (s *Service) AddJob(name, cronExpr string, task func()) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}

	wrapped := func() {
		s.log.Debug("Scheduler: job %s started", name)
		task()
		s.log.Debug("Scheduler: job %s completed", name)
	}

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(wrapped),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeWait),
	)
	if err != nil {
		s.log.Error("Scheduler: failed to register job %s (cron=%s): %v", name, cronExpr, err)
		return nil, err
	}

	s.log.Info("Scheduler: job %s registered, cron=%s", name, cronExpr)
	return job, nil
}

// RegisterReminderJob регистрирует рассылку напоминаний
func (s *Service) RegisterReminderJob(sender ReminderSender, cronExpr string, timeout time.Duration) error {
	_, err := s.AddJob(reminderJobName, cronExpr, reminderTask(sender, timeout, s.log))
	return err
}

func reminderTask(sender ReminderSender, timeout time.Duration, log Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := sender.Execute(ctx)
		if err != nil {
			log.Error("Scheduler: reminder job failed: %v", err)
			return
		}
		log.Debug("Scheduler: reminder job sent=%d failed=%d", result.Sent, result.Failed)
	}
}
