// Package scheduler runs maintenance jobs on cron schedules, replacing the
// crontab entries the previous system documented for its cleanup commands.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled maintenance task
type Job struct {
	Name string
	Spec string // cron expression, robfig/cron v3 syntax
	Run  func(ctx context.Context) error
}

// Scheduler handles scheduling and execution of maintenance jobs
type Scheduler struct {
	cron *cron.Cron
	jobs []Job

	mutex  sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a stopped scheduler
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job with the scheduler. Returns an error when the cron
// spec does not parse or the job has no run function.
func (s *Scheduler) AddJob(job Job) error {
	if job.Run == nil {
		return fmt.Errorf("job %q has no run function", job.Name)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, err := s.cron.AddFunc(job.Spec, func() {
		log.Printf("[SCHEDULER]: Running job %q", job.Name)
		if err := job.Run(s.ctx); err != nil {
			log.Printf("[SCHEDULER]: Job %q failed: %v", job.Name, err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %q: %w", job.Name, err)
	}

	s.jobs = append(s.jobs, job)
	return nil
}

// Jobs returns the registered jobs
func (s *Scheduler) Jobs() []Job {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]Job{}, s.jobs...)
}

// Start begins running scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop gracefully stops the scheduler and cancels running jobs
func (s *Scheduler) Stop() {
	s.cancel()
	s.cron.Stop()
}
