package worker

import (
	"context"
	"runtime"
	"sync"

	"github.com/alde/notewall/pkg/progress"
)

// Job is one unit of work, typically one wallpaper render (one phone, one to-do list, zero excuses)
type Job interface {
	Process(ctx context.Context) error
	ID() string
}

// Result contains the outcome of processing a job
type Result struct {
	JobID string
	Error error
}

// Pool runs jobs on a fixed set of goroutines (a small crew, all painting wallpapers)
type Pool struct {
	workerCount int
	jobs        chan Job
	results     chan Result
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	progress    *progress.Tracker
}

// NewPool creates a pool bound to ctx. workerCount <= 0 uses one worker
// per CPU. tracker may be nil.
func NewPool(ctx context.Context, workerCount int, tracker *progress.Tracker) *Pool {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workerCount: workerCount,
		jobs:        make(chan Job, workerCount*2),
		results:     make(chan Result, workerCount*2),
		ctx:         ctx,
		cancel:      cancel,
		progress:    tracker,
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop waits for queued jobs to finish and closes Results
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	p.cancel()

	if p.progress != nil {
		p.progress.Finish()
	}
}

// Cancel aborts jobs that have not started yet. Jobs already running get to
// finish their brushstroke.
func (p *Pool) Cancel() {
	p.cancel()
}

// Submit queues a job. If the pool is cancelled the job is reported as
// failed with the context error.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	case <-p.ctx.Done():
		p.results <- Result{JobID: job.ID(), Error: p.ctx.Err()}
	}
}

// Results returns the results channel
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Run submits all jobs, waits for them, and returns the results in
// completion order.
func (p *Pool) Run(jobs []Job) []Result {
	p.Start()

	collected := make([]Result, 0, len(jobs))
	done := make(chan struct{})
	go func() {
		for r := range p.results {
			collected = append(collected, r)
		}
		close(done)
	}()

	for _, job := range jobs {
		p.Submit(job)
	}
	p.Stop()
	<-done

	return collected
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.progress != nil {
			p.progress.Start(id, job.ID())
		}

		err := p.ctx.Err()
		if err == nil {
			err = job.Process(p.ctx)
		}

		if p.progress != nil {
			p.progress.Done(id, job.ID(), err)
		}

		p.results <- Result{JobID: job.ID(), Error: err}
	}
}

// WorkerCount returns the number of workers in the pool
func (p *Pool) WorkerCount() int {
	return p.workerCount
}
