package service

import (
	"context"
	"log"
	"time"
)

// Scheduler triggers a periodic full sync so the mirror tracks new game
// versions without manual intervention. An interval of zero or less disables
// it entirely.
type Scheduler struct {
	syncService *SyncService
	interval    time.Duration
	stop        chan struct{}
	done        chan struct{}
}

func NewScheduler(syncService *SyncService, interval time.Duration) *Scheduler {
	return &Scheduler{
		syncService: syncService,
		interval:    interval,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the tick loop. The first run happens after one full
// interval; startup sync is the caller's decision, not the scheduler's.
func (s *Scheduler) Start() {
	if s.interval <= 0 {
		log.Printf("INFO [scheduler] disabled")
		close(s.done)
		return
	}
	log.Printf("INFO [scheduler] running full sync every %s", s.interval)

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				report := s.syncService.SyncAll(context.Background(), false, false)
				log.Printf("INFO [scheduler] full sync finished: %s: %s", report.Status, report.Message)
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop halts the tick loop and waits for it to exit. A sync already running
// finishes on its own.
func (s *Scheduler) Stop() {
	if s.interval <= 0 {
		return
	}
	close(s.stop)
	<-s.done
}
