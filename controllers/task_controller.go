package controllers

import (
	"time"

	"hotelrev/commands"
	"hotelrev/config"
	"hotelrev/constants"
	"hotelrev/dto"
	"hotelrev/errors"
	"hotelrev/models"
	"hotelrev/response"
	"hotelrev/services"
	"hotelrev/validator"

	"github.com/gin-gonic/gin"
)

// GetTasks lists tasks filtered by status, assignee and hotel.
func GetTasks(c *gin.Context) {
	page, limit := parsePageLimit(c)

	tx := config.DB.Model(&models.Task{}).Preload("Assignee").Preload("Hotel")
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if assignee := c.Query("assignedTo"); assignee != "" {
		tx = tx.Where("assigned_to = ?", assignee)
	}
	if hotelID := c.Query("hotelId"); hotelID != "" {
		tx = tx.Where("hotel_id = ?", hotelID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var tasks []models.Task
	if err := tx.Order("due_date NULLS LAST, created_at").Offset(page * limit).Limit(limit).Find(&tasks).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, tasks, page, limit, int(total))
}

// GetUpcomingTasks returns open tasks due within the next week.
func GetUpcomingTasks(c *gin.Context) {
	cutoff := time.Now().AddDate(0, 0, 7)

	var tasks []models.Task
	err := config.DB.Preload("Assignee").
		Where("status IN ? AND due_date IS NOT NULL AND due_date <= ?",
			[]string{constants.TaskStatusPending, constants.TaskStatusInProgress}, cutoff).
		Order("due_date").
		Find(&tasks).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, tasks)
}

// CreateTask registers a task.
func CreateTask(c *gin.Context) {
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	task := models.Task{
		Title:       request.Title,
		Description: request.Description,
		Status:      constants.TaskStatusPending,
		Priority:    request.Priority,
		AssignedTo:  request.AssignedTo,
		HotelID:     request.HotelID,
		EventID:     request.EventID,
		CreatedBy:   c.GetUint("userID"),
	}
	if task.Priority == "" {
		task.Priority = constants.TaskPriorityMedium
	}

	if request.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", request.DueDate)
		if err != nil {
			response.BadRequest(c, "Invalid dueDate, expected YYYY-MM-DD")
			return
		}
		task.DueDate = &dueDate
	}

	if err := validator.ValidateTask(&task); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := commands.NewCreateTaskCommand(&task, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionCreate, "task", task.ID, map[string]interface{}{"title": task.Title})

	response.Created(c, task)
}

// UpdateTask applies partial field updates to a task.
func UpdateTask(c *gin.Context) {
	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var task models.Task
	if err := config.DB.First(&task, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Title != nil {
		task.Title = *request.Title
	}
	if request.Description != nil {
		task.Description = *request.Description
	}
	if request.Priority != nil {
		task.Priority = *request.Priority
	}
	if request.AssignedTo != nil {
		task.AssignedTo = request.AssignedTo
	}
	if request.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *request.DueDate)
		if err != nil {
			response.BadRequest(c, "Invalid dueDate, expected YYYY-MM-DD")
			return
		}
		task.DueDate = &dueDate
	}

	if err := validator.ValidateTask(&task); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := commands.NewUpdateTaskCommand(&task, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionUpdate, "task", task.ID, nil)

	response.Success(c, task)
}

// TransitionTask moves a task through its workflow. Completion stamps
// completedAt automatically.
func TransitionTask(c *gin.Context) {
	var request dto.TransitionTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var task models.Task
	if err := config.DB.First(&task, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	var transition func(models.TaskState, *models.Task) error
	switch request.Action {
	case "start":
		transition = models.TaskState.Start
	case "complete":
		transition = models.TaskState.Complete
	case "cancel":
		transition = models.TaskState.Cancel
	default:
		response.BadRequest(c, "Unknown action: "+request.Action)
		return
	}

	if err := commands.NewTransitionTaskCommand(&task, transition, config.DB).Execute(); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionUpdate, "task", task.ID, map[string]interface{}{"action": request.Action})

	response.Success(c, task)
}

// DeleteTask removes a task.
func DeleteTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid task id")
		return
	}

	var task models.Task
	if err := config.DB.First(&task, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := commands.NewDeleteTaskCommand(id, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionDelete, "task", id, nil)

	response.Success(c, nil)
}
