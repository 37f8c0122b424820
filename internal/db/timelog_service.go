package db

import (
	"fmt"
	"math"
	"time"

	"github.com/avoronova/ritmo/internal/models"
)

// StartLog starts a new time log on a task. Only one log may run per
// user at a time; starting also moves a pending task to in_progress.
func StartLog(taskID uint) (*models.TimeLog, error) {
	task, err := GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsOpen() {
		return nil, fmt.Errorf("task #%d is %s, not trackable", taskID, task.Status)
	}

	var active models.TimeLog
	err = DB.Where("user_id = ? AND finished_at IS NULL", task.UserID).First(&active).Error
	if err == nil {
		return nil, fmt.Errorf("a log is already running for task #%d. Stop it first with 'ritmo stop'", active.TaskID)
	}

	log := models.TimeLog{
		TaskID:    taskID,
		UserID:    task.UserID,
		StartedAt: time.Now(),
	}
	if err := DB.Create(&log).Error; err != nil {
		return nil, err
	}

	if task.Status == models.StatusPending {
		task.Status = models.StatusInProgress
		DB.Save(task)
	}

	DB.Preload("Task").First(&log, log.ID)
	return &log, nil
}

// StopActiveLog stops the user's running time log and derives its
// duration in minutes.
func StopActiveLog(userID uint) (*models.TimeLog, error) {
	var log models.TimeLog

	err := DB.Where("user_id = ? AND finished_at IS NULL", userID).Preload("Task").First(&log).Error
	if err != nil {
		return nil, fmt.Errorf("no active time log found")
	}

	now := time.Now()
	log.FinishedAt = &now
	log.DurationMinutes = int(math.Round(now.Sub(log.StartedAt).Minutes()))

	if err := DB.Save(&log).Error; err != nil {
		return nil, err
	}

	return &log, nil
}

// GetActiveLog returns the user's running time log, if any
func GetActiveLog(userID uint) (*models.TimeLog, error) {
	var log models.TimeLog

	err := DB.Where("user_id = ? AND finished_at IS NULL", userID).Preload("Task").First(&log).Error
	if err != nil {
		return nil, nil // No active log is not an error
	}

	return &log, nil
}

// GetLogs returns all of a user's time logs, oldest first
func GetLogs(userID uint) ([]models.TimeLog, error) {
	var logs []models.TimeLog

	err := DB.Where("user_id = ?", userID).Order("started_at ASC").Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}
