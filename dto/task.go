package dto

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"` // 2006-01-02
	AssignedTo  *uint  `json:"assignedTo"`
	HotelID     *uint  `json:"hotelId"`
	EventID     *uint  `json:"eventId"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	AssignedTo  *uint   `json:"assignedTo"`
}

// TransitionTaskRequest moves a task through its workflow.
type TransitionTaskRequest struct {
	Action string `json:"action" binding:"required"` // start, complete, cancel
}
