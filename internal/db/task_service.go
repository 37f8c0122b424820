package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task
type CreateTaskRequest struct {
	UserID      uint
	Title       string
	Description string
	Category    string // one of models.Categories, empty for "other"
	DueDate     *time.Time
}

// CreateTask creates a new pending task for a user
func CreateTask(req CreateTaskRequest) (*models.Task, error) {
	task := models.Task{
		UserID:      req.UserID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    parseCategory(req.Category),
		Status:      models.StatusPending,
		Due:         req.DueDate,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}
	if err := DB.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// parseCategory normalizes a category string, defaulting to "other"
func parseCategory(raw string) models.Category {
	c := models.Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return models.CategoryOther
	}
	if !c.IsValid() {
		return models.CategoryOther
	}
	return c
}

// GetTasks retrieves a user's tasks, optionally filtered by status
func GetTasks(userID uint, status models.Status) ([]models.Task, error) {
	var tasks []models.Task

	q := DB.Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetPendingTasks returns the user's pending tasks, the batch the
// planner schedules
func GetPendingTasks(userID uint) ([]models.Task, error) {
	return GetTasks(userID, models.StatusPending)
}

// GetHistory returns every task for a user, the snapshot the engine
// estimates and profiles from
func GetHistory(userID uint) ([]models.Task, error) {
	return GetTasks(userID, "")
}

// GetTaskByID retrieves a task by ID
func GetTaskByID(id uint) (*models.Task, error) {
	var task models.Task

	if err := DB.First(&task, id).Error; err != nil {
		return nil, fmt.Errorf("task #%d not found", id)
	}

	return &task, nil
}

// MarkTaskDone completes a task: stops its open time log if any, sums
// finished log durations into ActualMinutes, and stamps CompletedAt
func MarkTaskDone(taskID uint) (*models.Task, error) {
	task, err := GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == models.StatusCompleted {
		return nil, fmt.Errorf("task #%d is already completed", taskID)
	}
	if task.Status == models.StatusCancelled {
		return nil, fmt.Errorf("task #%d is cancelled", taskID)
	}

	// Stop an open log for this task first so its time counts.
	var open models.TimeLog
	if err := DB.Where("task_id = ? AND finished_at IS NULL", taskID).First(&open).Error; err == nil {
		if _, err := StopActiveLog(task.UserID); err != nil {
			return nil, fmt.Errorf("failed to stop active log: %w", err)
		}
	}

	var total int
	var logs []models.TimeLog
	if err := DB.Where("task_id = ? AND finished_at IS NOT NULL", taskID).Find(&logs).Error; err != nil {
		return nil, err
	}
	for _, l := range logs {
		total += l.DurationMinutes
	}

	now := time.Now()
	task.Status = models.StatusCompleted
	task.CompletedAt = &now
	if total > 0 {
		task.ActualMinutes = &total
	}

	if err := DB.Save(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

// CancelTask marks a task as cancelled
func CancelTask(taskID uint) (*models.Task, error) {
	task, err := GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == models.StatusCompleted {
		return nil, fmt.Errorf("task #%d is already completed", taskID)
	}
	if task.Status == models.StatusCancelled {
		return nil, fmt.Errorf("task #%d is already cancelled", taskID)
	}

	task.Status = models.StatusCancelled
	if err := DB.Save(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

// SetEstimate records the last estimate shown for a task, in minutes
func SetEstimate(taskID uint, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("estimate must be positive, got %d", minutes)
	}
	return DB.Model(&models.Task{}).Where("id = ?", taskID).
		Update("estimated_minutes", minutes).Error
}
