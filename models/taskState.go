package models

import (
	"errors"
	"time"

	"hotelrev/constants"
)

// TaskState defines the legal transitions for a task.
type TaskState interface {
	Start(task *Task) error
	Complete(task *Task) error
	Cancel(task *Task) error
}

// PendingState: not started yet.
type PendingState struct{}

func (s *PendingState) Start(task *Task) error {
	task.Status = constants.TaskStatusInProgress
	return nil
}

func (s *PendingState) Complete(task *Task) error {
	now := time.Now()
	task.Status = constants.TaskStatusCompleted
	task.CompletedAt = &now
	return nil
}

func (s *PendingState) Cancel(task *Task) error {
	task.Status = constants.TaskStatusCancelled
	return nil
}

// InProgressState: being worked on.
type InProgressState struct{}

func (s *InProgressState) Start(task *Task) error {
	return errors.New("task already in progress")
}

func (s *InProgressState) Complete(task *Task) error {
	now := time.Now()
	task.Status = constants.TaskStatusCompleted
	task.CompletedAt = &now
	return nil
}

func (s *InProgressState) Cancel(task *Task) error {
	task.Status = constants.TaskStatusCancelled
	return nil
}

// CompletedState: terminal.
type CompletedState struct{}

func (s *CompletedState) Start(task *Task) error {
	return errors.New("task already completed")
}

func (s *CompletedState) Complete(task *Task) error {
	return errors.New("task already completed")
}

func (s *CompletedState) Cancel(task *Task) error {
	return errors.New("cannot cancel completed task")
}

// CancelledState: terminal.
type CancelledState struct{}

func (s *CancelledState) Start(task *Task) error {
	return errors.New("cannot start cancelled task")
}

func (s *CancelledState) Complete(task *Task) error {
	return errors.New("cannot complete cancelled task")
}

func (s *CancelledState) Cancel(task *Task) error {
	return errors.New("task already cancelled")
}

// GetTaskState maps a status string to its state object.
func GetTaskState(status string) TaskState {
	switch status {
	case constants.TaskStatusInProgress:
		return &InProgressState{}
	case constants.TaskStatusCompleted:
		return &CompletedState{}
	case constants.TaskStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
