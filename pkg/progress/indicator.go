package progress

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// WorkerProgress tracks one worker's renders
type WorkerProgress struct {
	WorkerID      int
	JobsCompleted int
	CurrentJob    string
	LastUpdate    time.Time
}

// Tracker reports batch render progress across workers (so you know whether to get coffee)
type Tracker struct {
	mu            sync.RWMutex
	out           io.Writer
	workers       map[int]*WorkerProgress
	totalJobs     int
	completedJobs int
	failedJobs    int
	startTime     time.Time
	lastDisplay   time.Time
	displayRate   time.Duration
}

// NewTracker creates a tracker that prints to out. A nil writer disables
// output but keeps the statistics.
func NewTracker(out io.Writer, workerCount, totalJobs int) *Tracker {
	if out == nil {
		out = io.Discard
	}

	t := &Tracker{
		out:         out,
		workers:     make(map[int]*WorkerProgress),
		totalJobs:   totalJobs,
		startTime:   time.Now(),
		displayRate: 500 * time.Millisecond,
	}

	for i := 0; i < workerCount; i++ {
		t.workers[i] = &WorkerProgress{WorkerID: i, LastUpdate: time.Now()}
	}

	return t
}

// Start records that a worker picked up a job
func (t *Tracker) Start(workerID int, job string) {
	t.update(workerID, job, false, nil)
}

// Done records a finished job; err marks it as failed
func (t *Tracker) Done(workerID int, job string, err error) {
	t.update(workerID, job, true, err)
}

func (t *Tracker) update(workerID int, job string, completed bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w := t.workers[workerID]
	if w == nil {
		return
	}

	w.CurrentJob = job
	w.LastUpdate = time.Now()

	if completed {
		w.CurrentJob = ""
		w.JobsCompleted++
		t.completedJobs++
		if err != nil {
			t.failedJobs++
			fmt.Fprintf(t.out, "  ✗ %s: %v\n", job, err)
		}
	}

	if time.Since(t.lastDisplay) >= t.displayRate || t.completedJobs == t.totalJobs {
		t.display()
		t.lastDisplay = time.Now()
	}
}

func (t *Tracker) display() {
	elapsed := time.Since(t.startTime)

	var eta time.Duration
	if t.completedJobs > 0 {
		perJob := elapsed / time.Duration(t.completedJobs)
		eta = perJob * time.Duration(t.totalJobs-t.completedJobs)
	}

	fmt.Fprintf(t.out, "Progress: %d/%d (%.1f%%) | Elapsed: %v | ETA: %v\n",
		t.completedJobs, t.totalJobs, t.percentage(),
		elapsed.Round(time.Millisecond), eta.Round(time.Millisecond))
}

func (t *Tracker) percentage() float64 {
	if t.totalJobs == 0 {
		return 100
	}
	return float64(t.completedJobs) / float64(t.totalJobs) * 100
}

// Finish prints the final per-worker summary, the part everybody actually reads
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := time.Since(t.startTime)
	fmt.Fprintf(t.out, "Rendered %d/%d wallpapers in %v",
		t.completedJobs-t.failedJobs, t.totalJobs, elapsed.Round(time.Millisecond))
	if t.failedJobs > 0 {
		fmt.Fprintf(t.out, " (%d failed)", t.failedJobs)
	}
	fmt.Fprintln(t.out)

	ids := make([]int, 0, len(t.workers))
	for id := range t.workers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		w := t.workers[id]
		rate := 0.0
		if elapsed.Seconds() > 0 {
			rate = float64(w.JobsCompleted) / elapsed.Seconds()
		}
		fmt.Fprintf(t.out, "  Worker %d: %d jobs (%.1f jobs/sec)\n", id, w.JobsCompleted, rate)
	}
}

// Stats returns current progress statistics
func (t *Tracker) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	elapsed := time.Since(t.startTime)
	rate := 0.0
	if elapsed.Seconds() > 0 {
		rate = float64(t.completedJobs) / elapsed.Seconds()
	}

	return Stats{
		TotalJobs:     t.totalJobs,
		CompletedJobs: t.completedJobs,
		FailedJobs:    t.failedJobs,
		WorkerCount:   len(t.workers),
		Elapsed:       elapsed,
		Rate:          rate,
		Percentage:    t.percentage(),
	}
}

// Stats contains progress statistics
type Stats struct {
	TotalJobs     int
	CompletedJobs int
	FailedJobs    int
	WorkerCount   int
	Elapsed       time.Duration
	Rate          float64 // jobs per second
	Percentage    float64
}
