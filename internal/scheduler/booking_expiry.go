package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/config"
)

// BookingExpiryConfig representa a configuração do job de expiração de agendamentos
type BookingExpiryConfig struct {
	CronSchedule string
	MaxAgeDays   int
	Enabled      bool
}

// BookingExpiryService cancela agendamentos "requested" que ficaram sem
// resposta por tempo demais
type BookingExpiryService struct {
	scheduler         *gocron.Scheduler
	config            BookingExpiryConfig
	bookingRepo       repository.BookingRepository
	jobRunning        bool
	jobMutex          sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

// NewBookingExpiryService cria uma nova instância do serviço de expiração
func NewBookingExpiryService(
	bookingRepo repository.BookingRepository,
	appConfig *config.Config,
) *BookingExpiryService {
	expiryConfig := BookingExpiryConfig{
		CronSchedule: appConfig.BookingExpiry.CronSchedule,
		MaxAgeDays:   appConfig.BookingExpiry.MaxAgeDays,
		Enabled:      appConfig.BookingExpiry.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": expiryConfig.CronSchedule,
		"max_age_days":  expiryConfig.MaxAgeDays,
		"enabled":       expiryConfig.Enabled,
	}).Info("Configuração do job de expiração de agendamentos carregada")

	return &BookingExpiryService{
		scheduler:   scheduler,
		config:      expiryConfig,
		bookingRepo: bookingRepo,
		jobRunning:  false,
	}
}

// Start inicia o agendador
func (s *BookingExpiryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Job de expiração de agendamentos desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando job de expiração de agendamentos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.expireStaleBookings()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de expiração de agendamentos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando job de expiração de agendamentos")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara a execução fora do horário agendado
func (s *BookingExpiryService) RunNow() {
	go s.expireStaleBookings()
}

func (s *BookingExpiryService) expireStaleBookings() {
	s.jobMutex.Lock()
	if s.jobRunning {
		s.jobMutex.Unlock()
		logrus.Info("Expiração de agendamentos já em andamento, ignorando")
		return
	}
	s.jobRunning = true
	s.jobMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.jobMutex.Lock()
		s.jobRunning = false
		s.jobMutex.Unlock()
	}()

	logrus.WithField("max_age_days", s.config.MaxAgeDays).Info("Iniciando expiração de agendamentos antigos")

	cancelled, err := s.bookingRepo.CancelStaleRequested(s.config.MaxAgeDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao cancelar agendamentos expirados")
		return
	}

	s.lastRunFinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"cancelled":   cancelled,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Expiração de agendamentos concluída")
}
