package models

import "time"

// Todo is a single to-do item owned by a user.
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"todo_title"`
	DueTime     time.Time `json:"todo_duetime"`
	Priority    string    `json:"todo_priority"`
	Status      string    `json:"todo_status"`
	Category    string    `json:"todo_category"`
	IsImportant bool      `json:"is_important"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArchivedTodo mirrors Todo; rows move here when a todo is archived.
type ArchivedTodo struct {
	ID          string    `json:"id"`
	Title       string    `json:"archived_todo_title"`
	DueTime     time.Time `json:"archived_todo_duetime"`
	Priority    string    `json:"archived_todo_priority"`
	Status      string    `json:"archived_todo_status"`
	Category    string    `json:"archived_todo_category"`
	IsImportant bool      `json:"archived_is_important"`
	UserID      string    `json:"user_id"`
	ArchivedAt  time.Time `json:"archived_at"`
}

// Job is a tracked job application.
type Job struct {
	ID         string    `json:"id"`
	Title      string    `json:"job_title"`
	Company    string    `json:"company"`
	AppliedAt  time.Time `json:"applied_at"`
	Status     string    `json:"job_status"`
	Type       string    `json:"job_type"`
	WebsiteURL string    `json:"website_url"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Event is a calendar entry.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"event_name"`
	Description string    `json:"event_description"`
	Date        time.Time `json:"event_date"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
