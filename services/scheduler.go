package services

import (
	"log"
	"os"

	"github.com/Kashishghuliani/xeno-fde/repository"
	"github.com/robfig/cron/v3"
)

const defaultSyncCron = "*/10 * * * *"

// SyncScheduler runs a sync pass for every tenant on a fixed cron tick.
// Tenants are synced sequentially within a tick; a failing tenant is
// logged and skipped so the rest of the fleet still syncs.
type SyncScheduler struct {
	cron    *cron.Cron
	tenants repository.TenantRepo
	sync    *SyncService
}

func NewSyncScheduler(tenants repository.TenantRepo, sync *SyncService) *SyncScheduler {
	return &SyncScheduler{
		cron:    cron.New(),
		tenants: tenants,
		sync:    sync,
	}
}

func (s *SyncScheduler) Start() error {
	spec := os.Getenv("SYNC_CRON")
	if spec == "" {
		spec = defaultSyncCron
	}

	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("[SCHEDULER] sync scheduler started (%s)", spec)
	return nil
}

func (s *SyncScheduler) Stop() {
	s.cron.Stop()
}

// RunOnce executes a single scheduler tick.
func (s *SyncScheduler) RunOnce() {
	tenants, err := s.tenants.FindAll()
	if err != nil {
		log.Printf("[SCHEDULER] failed to list tenants: %v", err)
		return
	}

	log.Printf("[SCHEDULER] tick: syncing %d tenants", len(tenants))
	for _, tenant := range tenants {
		if err := s.sync.SyncTenant(tenant.ID); err != nil {
			log.Printf("[SCHEDULER] tenant %s sync failed: %v", tenant.ID, err)
			continue
		}
	}
}
