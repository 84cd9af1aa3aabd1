package commands

import (
	"hotelrev/models"

	"gorm.io/gorm"
)

// TaskCommand is one persistence step of the task workflow.
type TaskCommand interface {
	Execute() error
}

// CreateTaskCommand inserts a new task.
type CreateTaskCommand struct {
	task *models.Task
	db   *gorm.DB
}

func NewCreateTaskCommand(task *models.Task, db *gorm.DB) *CreateTaskCommand {
	return &CreateTaskCommand{
		task: task,
		db:   db,
	}
}

func (c *CreateTaskCommand) Execute() error {
	return c.db.Create(c.task).Error
}

// UpdateTaskCommand saves task field changes.
type UpdateTaskCommand struct {
	task *models.Task
	db   *gorm.DB
}

func NewUpdateTaskCommand(task *models.Task, db *gorm.DB) *UpdateTaskCommand {
	return &UpdateTaskCommand{
		task: task,
		db:   db,
	}
}

func (c *UpdateTaskCommand) Execute() error {
	return c.db.Save(c.task).Error
}

// TransitionTaskCommand moves a task through its state machine and
// persists the result. Illegal transitions fail before any write.
type TransitionTaskCommand struct {
	task       *models.Task
	transition func(models.TaskState, *models.Task) error
	db         *gorm.DB
}

func NewTransitionTaskCommand(task *models.Task, transition func(models.TaskState, *models.Task) error, db *gorm.DB) *TransitionTaskCommand {
	return &TransitionTaskCommand{
		task:       task,
		transition: transition,
		db:         db,
	}
}

func (c *TransitionTaskCommand) Execute() error {
	state := models.GetTaskState(c.task.Status)
	if err := c.transition(state, c.task); err != nil {
		return err
	}
	return c.db.Save(c.task).Error
}

// DeleteTaskCommand removes a task.
type DeleteTaskCommand struct {
	taskID uint
	db     *gorm.DB
}

func NewDeleteTaskCommand(taskID uint, db *gorm.DB) *DeleteTaskCommand {
	return &DeleteTaskCommand{
		taskID: taskID,
		db:     db,
	}
}

func (c *DeleteTaskCommand) Execute() error {
	return c.db.Delete(&models.Task{}, c.taskID).Error
}
