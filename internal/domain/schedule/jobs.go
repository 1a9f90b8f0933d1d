package schedule

import (
	"khitma/internal/errors"
)

// Action is the batch work a job performs for the users of a timezone.
type Action string

const (
	ActionAssign Action = "assign" // pre-assign the daily verse
	ActionNotify Action = "notify" // send the motivational verse
	ActionRemind Action = "remind" // send the evening reminder
)

// Job names as they appear in logs and in the lease table.
const (
	JobMidnightVerseAssignment = "timezone-aware-midnight-verse-assignment"
	JobNineAmNotifications     = "timezone-aware-9am-notifications"
	JobEveningReminders        = "timezone-aware-6pm-personal-reminders"
)

// ErrUnknownJob is returned for names or actions no job carries.
var ErrUnknownJob = errors.New("unknown job")

// Job is a timezone-aware job that runs once the local clock reaches TargetHour.
type Job struct {
	Name       string
	Action     Action
	TargetHour int
}

var jobs = []Job{
	{Name: JobMidnightVerseAssignment, Action: ActionAssign, TargetHour: 0},
	{Name: JobNineAmNotifications, Action: ActionNotify, TargetHour: 9},
	{Name: JobEveningReminders, Action: ActionRemind, TargetHour: 18},
}

// Jobs returns every job in execution order of the local day.
func Jobs() []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)

	return out
}

// JobByName looks a job up by its name.
func JobByName(name string) (Job, error) {
	for _, job := range jobs {
		if job.Name == name {
			return job, nil
		}
	}

	return Job{}, errors.Wrapf(ErrUnknownJob, "name %q", name)
}

// JobByAction looks a job up by its action.
func JobByAction(action string) (Job, error) {
	for _, job := range jobs {
		if string(job.Action) == action {
			return job, nil
		}
	}

	return Job{}, errors.Wrapf(ErrUnknownJob, "action %q", action)
}
