package main

import (
	"context"
	"log"
	"sync"
	"time"
)

// SpeedInterval converts a speed slider value to the per-frame delay.
// The slider is clamped to [5,100]; 100 means no delay and 5 means 1.9s.
func SpeedInterval(slider float64) time.Duration {
	v := clamp(slider, sliderMin, sliderMax)
	return time.Duration((sliderMax - v) * float64(intervalStep))
}

// frameDelay is the actual wait between frames; zero rounds up to one tick.
func frameDelay(interval time.Duration) time.Duration {
	return max(interval, minTick)
}

// Scheduler runs at most one playback loop at a time. Each run gets its own
// context; Stop cancels it and the loop notices at its next check.
type Scheduler struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (p *Scheduler) Active() bool { return p.cancel != nil }

// Start launches loop unless a run is already active.
func (p *Scheduler) Start(loop func(ctx context.Context)) bool {
	if p.cancel != nil {
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		loop(ctx)
	}()
	return true
}

func (p *Scheduler) Stop() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Wait blocks until every started loop has returned.
func (p *Scheduler) Wait() { p.wg.Wait() }

func (s *Session) resumeLocked() {
	if s.player.Active() {
		return
	}
	s.modes.disable()
	s.player.Start(s.play)
	log.Printf("[playback] started, %d frames every %v", s.store.Len(), s.interval)
}

func (s *Session) pauseLocked() {
	if s.modes.Mode() != ModeDisabled {
		return
	}
	s.player.Stop()
	s.modes.restore()
	s.showing = nil
	log.Printf("[playback] stopped, back to %v", s.modes.Mode())
}

// play walks the reel until the run is cancelled or the mode leaves
// ModeDisabled. A frame is never interrupted once published.
func (s *Session) play(ctx context.Context) {
	for {
		reel, ok := s.playingReel(ctx)
		if !ok {
			return
		}
		for _, frame := range reel {
			delay, ok := s.showFrame(ctx, frame)
			if !ok {
				return
			}
			if !sleepContext(ctx, delay) {
				return
			}
		}
	}
}

func (s *Session) live(ctx context.Context) bool {
	return ctx.Err() == nil && !s.closed && s.modes.Mode() == ModeDisabled
}

func (s *Session) playingReel(ctx context.Context) (Reel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live(ctx) {
		return nil, false
	}
	return s.store.Reel(), true
}

// showFrame publishes frame as the current one and returns the delay to
// wait before the next frame.
func (s *Session) showFrame(ctx context.Context, frame Frame) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live(ctx) {
		return 0, false
	}
	s.showing = &frame
	s.publishLocked()
	return frameDelay(s.interval), true
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
