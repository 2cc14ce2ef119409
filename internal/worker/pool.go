package worker

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

var ErrPoolClosed = errors.New("worker pool já foi encerrado")
var ErrQueueFull = errors.New("fila de jobs cheia")

type Job struct {
	Name string
	Run  func()
}

// Pool executa jobs em segundo plano de forma supervisionada: o caller
// recebe o aceite na hora e o shutdown do processo drena a fila antes de
// sair, em vez de abandonar goroutines soltas.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
	workers int
}

func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 16
	}

	pool := &Pool{
		jobs:    make(chan Job, queueSize),
		workers: workers,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		p.run(id, job)
	}
}

func (p *Pool) run(workerID int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			metrics.WorkerJobPanics.Inc()
			logrus.WithFields(logrus.Fields{
				"worker": workerID,
				"job":    job.Name,
				"panic":  r,
			}).Error("worker: job panicked")
		}
	}()

	start := time.Now()
	job.Run()

	logrus.WithFields(logrus.Fields{
		"worker":   workerID,
		"job":      job.Name,
		"duration": time.Since(start).String(),
	}).Debug("worker: job finished")
}

// Submit enfileira um job sem bloquear. Fila cheia é recusada na hora para
// o caller decidir o que fazer, em vez de segurar a requisição HTTP.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.jobs <- job:
		metrics.WorkerJobsSubmitted.Inc()
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown para de aceitar jobs e espera os enfileirados terminarem, até o
// timeout informado.
func (p *Pool) Shutdown(timeout time.Duration) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errors.New("timeout ao drenar o worker pool")
	}
}
