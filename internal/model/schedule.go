package model

import (
	"time"

	"github.com/costwise/costwise/internal/common"
)

// DateLayout is the calendar-date format used throughout scheduling.
// Tasks carry no time component.
const DateLayout = "2006-01-02"

// ScheduleTask is one row of the project schedule. No ordering is
// enforced between start and end dates. The assigned ID lists never
// reference a removed material or equipment item; the session strips
// dangling IDs reactively.
type ScheduleTask struct {
	Start                time.Time
	End                  time.Time
	ID                   string
	TaskName             string
	SubcontractorID      string
	AssignedMaterialIDs  []string
	AssignedEquipmentIDs []string
}

// ScheduleTaskInput carries raw form values for a new schedule task.
type ScheduleTaskInput struct {
	TaskName             string
	StartDate            string
	EndDate              string
	SubcontractorID      string
	AssignedMaterialIDs  []string
	AssignedEquipmentIDs []string
}

// Validate checks that the task has a name and both dates, and that the
// dates are real calendar dates.
func (in ScheduleTaskInput) Validate() error {
	if in.TaskName == "" {
		return common.MissingFieldError("task name")
	}
	if in.StartDate == "" {
		return common.MissingFieldError("start date")
	}
	if in.EndDate == "" {
		return common.MissingFieldError("end date")
	}
	if _, err := time.Parse(DateLayout, in.StartDate); err != nil {
		return common.NewUserError("start date must be YYYY-MM-DD", common.ErrInvalidNumber)
	}
	if _, err := time.Parse(DateLayout, in.EndDate); err != nil {
		return common.NewUserError("end date must be YYYY-MM-DD", common.ErrInvalidNumber)
	}
	return nil
}

// ScheduleTask builds the entity. The caller is expected to have
// validated the input first.
func (in ScheduleTaskInput) ScheduleTask() ScheduleTask {
	start, _ := time.Parse(DateLayout, in.StartDate)
	end, _ := time.Parse(DateLayout, in.EndDate)
	return ScheduleTask{
		TaskName:             in.TaskName,
		Start:                start,
		End:                  end,
		SubcontractorID:      in.SubcontractorID,
		AssignedMaterialIDs:  append([]string(nil), in.AssignedMaterialIDs...),
		AssignedEquipmentIDs: append([]string(nil), in.AssignedEquipmentIDs...),
	}
}
