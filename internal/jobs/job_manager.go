package jobs

import (
	"fmt"
)

// Job is a scheduled task that can be started and stopped.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates a manager for the sales summary report. Further jobs
// can be attached with Add before StartAll.
func NewJobManager(salesSummaryJob *SalesSummaryJob) *JobManager {
	jm := &JobManager{}
	jm.Add("sales summary", salesSummaryJob)
	return jm
}

func (jm *JobManager) Add(name string, job Job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: job})
}

// StartAll starts every job in registration order. If one fails, the jobs
// already started are stopped again.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		jm.started = append(jm.started, nj)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}
