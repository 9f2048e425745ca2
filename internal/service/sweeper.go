package service

import (
	"context"
	"log"
	"time"
)

// Sweeper 定期清理心跳逾時的參與者
// 單一 goroutine 依序執行，清理過慢時只會延後下一輪，不會重疊
type Sweeper struct {
	participantService *ParticipantService
	interval           time.Duration
	staleThreshold     time.Duration
}

func NewSweeper(participantService *ParticipantService, interval, staleThreshold time.Duration) *Sweeper {
	return &Sweeper{
		participantService: participantService,
		interval:           interval,
		staleThreshold:     staleThreshold,
	}
}

// Run 啟動清理循環，直到 ctx 被取消為止
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("sweeper stopped")
			return
		case now := <-ticker.C:
			removed, err := s.participantService.Sweep(now, s.staleThreshold)
			if err != nil {
				log.Printf("sweep failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("sweep removed %d stale participant(s)", removed)
			}
		}
	}
}
