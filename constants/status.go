package constants

// Task status
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

// Task priority
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
	TaskPriorityUrgent = "urgent"
)

// Hotel status
const (
	HotelStatusActive      = "active"
	HotelStatusInactive    = "inactive"
	HotelStatusMaintenance = "maintenance"
)

// Forecast confidence
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Activity actions
const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionUpload    = "upload"
	ActionLogin     = "login"
	ActionChatQuery = "chat_query"
)
