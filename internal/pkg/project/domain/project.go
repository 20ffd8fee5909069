package project

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("project: not found")
	ErrPhaseNotFound = errors.New("project: phase not found")
	ErrTaskNotFound  = errors.New("project: task not found")
	ErrInvalidStatus = errors.New("project: invalid status")
)

// Project statuses.
const (
	StatusPlanned    = "Planned"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

// Task statuses and priorities.
const (
	TaskToDo       = "To Do"
	TaskInProgress = "In Progress"
	TaskDone       = "Done"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

func ValidTaskStatus(s string) bool {
	switch s {
	case TaskToDo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Project struct {
	ID           string
	Name         string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	Status       string
	ManagerID    string
	Participants []string
	CreatedAt    time.Time
}

// AddParticipants merges new participant IDs, skipping duplicates and blanks.
func (p *Project) AddParticipants(ids []string) {
	seen := make(map[string]bool, len(p.Participants))
	for _, id := range p.Participants {
		seen[id] = true
	}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		p.Participants = append(p.Participants, id)
		seen[id] = true
	}
}

type Phase struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}

type Comment struct {
	AuthorID  string    `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Task struct {
	ID          string
	PhaseID     string
	Title       string
	Description string
	AssigneeID  string
	Status      string
	Priority    string
	DueDate     time.Time
	Comments    []Comment
	CreatedAt   time.Time
}

type Expense struct {
	ID          string
	ProjectID   string
	PhaseID     string
	UserID      string
	Description string
	Amount      float64
	Date        time.Time
	Category    string
	CreatedBy   string
	CreatedAt   time.Time
}
