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

// VendorStatsSyncConfig representa a configuração do job de recálculo de
// estatísticas de fornecedores
type VendorStatsSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// VendorStatsSyncService mantém o contador total_jobs dos fornecedores
// consistente com os agendamentos concluídos
type VendorStatsSyncService struct {
	scheduler         *gocron.Scheduler
	config            VendorStatsSyncConfig
	vendorRepo        repository.VendorRepository
	jobRunning        bool
	jobMutex          sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

// NewVendorStatsSyncService cria uma nova instância do serviço de recálculo
func NewVendorStatsSyncService(
	vendorRepo repository.VendorRepository,
	appConfig *config.Config,
) *VendorStatsSyncService {
	syncConfig := VendorStatsSyncConfig{
		CronSchedule: appConfig.VendorStatsSync.CronSchedule,
		Enabled:      appConfig.VendorStatsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
	}).Info("Configuração do job de estatísticas de fornecedores carregada")

	return &VendorStatsSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		vendorRepo: vendorRepo,
		jobRunning: false,
	}
}

// Start inicia o agendador
func (s *VendorStatsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Job de estatísticas de fornecedores desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando job de estatísticas de fornecedores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.recomputeVendorStats()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de estatísticas de fornecedores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando job de estatísticas de fornecedores")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara a execução fora do horário agendado
func (s *VendorStatsSyncService) RunNow() {
	go s.recomputeVendorStats()
}

func (s *VendorStatsSyncService) recomputeVendorStats() {
	s.jobMutex.Lock()
	if s.jobRunning {
		s.jobMutex.Unlock()
		logrus.Info("Recálculo de estatísticas já em andamento, ignorando")
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

	logrus.Info("Iniciando recálculo de total_jobs dos fornecedores")

	updated, err := s.vendorRepo.RecomputeTotalJobs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao recalcular estatísticas de fornecedores")
		return
	}

	s.lastRunFinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"updated":     updated,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Recálculo de estatísticas de fornecedores concluído")
}
