package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/task"
)

// Jobs bundles the background work the API process runs: carrying weekly
// schedules over at the week boundary and flipping past-due tasks to
// overdue.
type Jobs struct {
	scheduleSvc schedule.ScheduleService
	taskSvc     task.TaskService
}

func NewJobs(scheduleSvc schedule.ScheduleService, taskSvc task.TaskService) *Jobs {
	return &Jobs{
		scheduleSvc: scheduleSvc,
		taskSvc:     taskSvc,
	}
}

func (j *Jobs) RegisterJobs(scheduler *Scheduler, rolloverInterval, taskSweepInterval time.Duration) {
	scheduler.AddJob("schedule_week_rollover", rolloverInterval, j.RolloverSchedules)
	scheduler.AddJob("task_overdue_sweep", taskSweepInterval, j.SweepOverdueTasks)
}

// RolloverSchedules copies the latest saved week into the current week for
// employees who have none yet. Running it repeatedly within the same week
// is a no-op for users already carried over.
func (j *Jobs) RolloverSchedules(ctx context.Context) error {
	carried, err := j.scheduleSvc.RolloverWeek(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("rollover schedules: %w", err)
	}
	if carried > 0 {
		slog.Info("Cron: carried schedules into current week", "count", carried)
	}
	return nil
}

// SweepOverdueTasks marks uncompleted tasks past their due date overdue.
func (j *Jobs) SweepOverdueTasks(ctx context.Context) error {
	marked, err := j.taskSvc.SweepOverdue(ctx)
	if err != nil {
		return fmt.Errorf("sweep overdue tasks: %w", err)
	}
	if marked > 0 {
		slog.Info("Cron: marked tasks overdue", "count", marked)
	}
	return nil
}
