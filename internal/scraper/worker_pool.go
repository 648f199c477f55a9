package scraper

import (
	"context"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool fans scrape tasks out over a fixed set of goroutines with an
// optional requests-per-second cap shared by all workers.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup

	mu     sync.RWMutex
	rate   <-chan time.Time
	ticker *time.Ticker
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{workers: workers, tasks: make(chan Task, buffer)}
}

func (p *WorkerPool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	if rps <= 0 {
		return
	}
	p.ticker = time.NewTicker(time.Second / time.Duration(rps))
	p.rate = p.ticker.C
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close stops accepting tasks; workers drain the queue and the results
// channel from Run closes once they finish.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	close(p.tasks)
}

func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	out := make(chan Result, p.workers*64)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.worker(ctx, out)
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

func (p *WorkerPool) worker(ctx context.Context, out chan<- Result) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			if t == nil {
				continue
			}

			p.mu.RLock()
			rate := p.rate
			p.mu.RUnlock()
			if rate != nil {
				select {
				case <-ctx.Done():
					return
				case <-rate:
				}
			}

			err := t(ctx)
			select {
			case <-ctx.Done():
				return
			case out <- Result{Err: err}:
			}
		}
	}
}
