// Package scheduler runs the daily compliance sweep: a scheduled count of
// open compliance flags per severity, logged so the advisor's morning
// digest has fresh numbers.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/finxpert/advisor-api/infrastructure/repository"
	"github.com/finxpert/advisor-api/internal/advisor"
	"github.com/finxpert/advisor-api/internal/config"
	"github.com/finxpert/advisor-api/internal/domain"
)

type ComplianceSweepService struct {
	scheduler      *gocron.Scheduler
	cfg            config.ComplianceSweep
	advisorCfg     config.Advisor
	complianceRepo repository.ComplianceRepository
	sweepRunning   bool
	sweepMutex     sync.Mutex
	lastSweepAt    time.Time
}

func NewComplianceSweepService(
	complianceRepo repository.ComplianceRepository,
	appConfig *config.Config,
) *ComplianceSweepService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.ComplianceSweep.CronSchedule,
		"sweep_enabled": appConfig.ComplianceSweep.Enabled,
	}).Info("compliance sweep scheduler configured")

	return &ComplianceSweepService{
		scheduler:      gocron.NewScheduler(time.Local),
		cfg:            appConfig.ComplianceSweep,
		advisorCfg:     appConfig.Advisor,
		complianceRepo: complianceRepo,
	}
}

// Start schedules the sweep. Disabled config or a missing store turns the
// scheduler into a no-op.
func (s *ComplianceSweepService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("compliance sweep disabled by configuration")
		return nil
	}

	if s.complianceRepo == nil {
		logrus.Warn("compliance sweep skipped: no backing store configured")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("starting compliance sweep scheduler")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *ComplianceSweepService) Stop() {
	s.scheduler.Stop()
}

func (s *ComplianceSweepService) runSweep(ctx context.Context) {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Warn("compliance sweep already running, skipping this tick")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.lastSweepAt = time.Now().UTC()
		s.sweepMutex.Unlock()
	}()

	sweepCtx := advisor.NewContext(ctx, s.advisorCfg.DefaultAdvisorID, s.advisorCfg.DefaultTenantID)

	flags, err := s.complianceRepo.ListFlags(sweepCtx, s.advisorCfg.DefaultAdvisorID)
	if err != nil {
		logrus.WithError(err).Error("compliance sweep failed to list flags")
		return
	}

	logrus.WithFields(logrus.Fields(summarizeFlags(flags))).Info("compliance sweep completed")
}

// summarizeFlags counts open flags per severity.
func summarizeFlags(flags []domain.ComplianceFlag) map[string]interface{} {
	openBySeverity := map[string]int{
		domain.SeverityLow:    0,
		domain.SeverityMedium: 0,
		domain.SeverityHigh:   0,
	}

	open := 0
	for _, flag := range flags {
		if flag.Status != "OPEN" {
			continue
		}
		open++
		openBySeverity[flag.Severity]++
	}

	return map[string]interface{}{
		"total_flags": len(flags),
		"open_flags":  open,
		"open_low":    openBySeverity[domain.SeverityLow],
		"open_medium": openBySeverity[domain.SeverityMedium],
		"open_high":   openBySeverity[domain.SeverityHigh],
	}
}
