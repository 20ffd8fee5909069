package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	project "github.com/MdialloC19/backend-IPDL/internal/pkg/project/domain"
	repository "github.com/MdialloC19/backend-IPDL/internal/pkg/project/persistence/repository/port"
)

var ErrPersistence = fmt.Errorf("project service persistence error")

// ProjectService covers projects and their nested phases, tasks and expenses.
type ProjectService struct {
	Repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{Repo: repo}
}

type ProjectInput struct {
	Name         string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	Status       string
	ManagerID    string
	Participants []string
}

func (s *ProjectService) CreateProject(ctx context.Context, in ProjectInput) (*project.Project, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if in.Status == "" {
		in.Status = project.StatusPlanned
	}
	if !project.ValidStatus(in.Status) {
		return nil, project.ErrInvalidStatus
	}

	p := project.Project{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       in.Status,
		ManagerID:    in.ManagerID,
		Participants: in.Participants,
	}
	id, err := s.Repo.CreateProject(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	p.ID = id
	return &p, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*project.Project, error) {
	p, err := s.Repo.GetProject(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	return &p, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	out, err := s.Repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, in ProjectInput) (*project.Project, error) {
	p, err := s.Repo.GetProject(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if in.Name != "" {
		p.Name = strings.TrimSpace(in.Name)
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if !in.StartDate.IsZero() {
		p.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		p.EndDate = in.EndDate
	}
	if in.Status != "" {
		if !project.ValidStatus(in.Status) {
			return nil, project.ErrInvalidStatus
		}
		p.Status = in.Status
	}
	if err := s.Repo.UpdateProject(ctx, p); err != nil {
		return nil, wrapRepoErr(err)
	}
	return &p, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.Repo.DeleteProject(ctx, id); err != nil {
		return wrapRepoErr(err)
	}
	return nil
}

func (s *ProjectService) AddParticipants(ctx context.Context, id string, participants []string) (*project.Project, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("participants are required")
	}
	p, err := s.Repo.GetProject(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	p.AddParticipants(participants)
	if err := s.Repo.UpdateProject(ctx, p); err != nil {
		return nil, wrapRepoErr(err)
	}
	return &p, nil
}

type PhaseInput struct {
	ProjectID   string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

func (s *ProjectService) CreatePhase(ctx context.Context, in PhaseInput) (*project.Phase, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("phase name is required")
	}
	// reject phases against unknown or deleted projects
	if _, err := s.Repo.GetProject(ctx, in.ProjectID); err != nil {
		return nil, wrapRepoErr(err)
	}

	ph := project.Phase{
		ProjectID:   in.ProjectID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	id, err := s.Repo.CreatePhase(ctx, ph)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	ph.ID = id
	return &ph, nil
}

func (s *ProjectService) GetPhase(ctx context.Context, id string) (*project.Phase, error) {
	ph, err := s.Repo.GetPhase(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	return &ph, nil
}

func (s *ProjectService) ListPhases(ctx context.Context, projectID string) ([]project.Phase, error) {
	out, err := s.Repo.ListPhasesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

func (s *ProjectService) UpdatePhase(ctx context.Context, id string, in PhaseInput) (*project.Phase, error) {
	ph, err := s.Repo.GetPhase(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if in.Name != "" {
		ph.Name = strings.TrimSpace(in.Name)
	}
	if in.Description != "" {
		ph.Description = in.Description
	}
	if !in.StartDate.IsZero() {
		ph.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		ph.EndDate = in.EndDate
	}
	if err := s.Repo.UpdatePhase(ctx, ph); err != nil {
		return nil, wrapRepoErr(err)
	}
	return &ph, nil
}

func (s *ProjectService) DeletePhase(ctx context.Context, id string) error {
	if err := s.Repo.DeletePhase(ctx, id); err != nil {
		return wrapRepoErr(err)
	}
	return nil
}

type TaskInput struct {
	PhaseID     string
	Title       string
	Description string
	AssigneeID  string
	Status      string
	Priority    string
	DueDate     time.Time
}

func (s *ProjectService) CreateTask(ctx context.Context, in TaskInput) (*project.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if in.Status == "" {
		in.Status = project.TaskToDo
	}
	if in.Priority == "" {
		in.Priority = project.PriorityMedium
	}
	if !project.ValidTaskStatus(in.Status) || !project.ValidPriority(in.Priority) {
		return nil, project.ErrInvalidStatus
	}
	if _, err := s.Repo.GetPhase(ctx, in.PhaseID); err != nil {
		return nil, wrapRepoErr(err)
	}

	t := project.Task{
		PhaseID:     in.PhaseID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		AssigneeID:  in.AssigneeID,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		Comments:    make([]project.Comment, 0),
	}
	id, err := s.Repo.CreateTask(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	t.ID = id
	return &t, nil
}

func (s *ProjectService) GetTask(ctx context.Context, id string) (*project.Task, error) {
	t, err := s.Repo.GetTask(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	return &t, nil
}

func (s *ProjectService) ListTasks(ctx context.Context, phaseID string) ([]project.Task, error) {
	out, err := s.Repo.ListTasksByPhase(ctx, phaseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

func (s *ProjectService) UpdateTask(ctx context.Context, id string, in TaskInput) (*project.Task, error) {
	t, err := s.Repo.GetTask(ctx, id)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if in.Title != "" {
		t.Title = strings.TrimSpace(in.Title)
	}
	if in.Description != "" {
		t.Description = in.Description
	}
	if in.AssigneeID != "" {
		t.AssigneeID = in.AssigneeID
	}
	if in.Status != "" {
		if !project.ValidTaskStatus(in.Status) {
			return nil, project.ErrInvalidStatus
		}
		t.Status = in.Status
	}
	if in.Priority != "" {
		if !project.ValidPriority(in.Priority) {
			return nil, project.ErrInvalidStatus
		}
		t.Priority = in.Priority
	}
	if !in.DueDate.IsZero() {
		t.DueDate = in.DueDate
	}
	if err := s.Repo.UpdateTask(ctx, t); err != nil {
		return nil, wrapRepoErr(err)
	}
	return &t, nil
}

func (s *ProjectService) DeleteTask(ctx context.Context, id string) error {
	if err := s.Repo.DeleteTask(ctx, id); err != nil {
		return wrapRepoErr(err)
	}
	return nil
}

func (s *ProjectService) CommentTask(ctx context.Context, taskID, authorID, text string) (*project.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("comment text is required")
	}
	t, err := s.Repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	t.Comments = append(t.Comments, project.Comment{
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err := s.Repo.UpdateTask(ctx, t); err != nil {
		return nil, wrapRepoErr(err)
	}
	return &t, nil
}

type ExpenseInput struct {
	ProjectID   string
	PhaseID     string
	UserID      string
	Description string
	Amount      float64
	Date        time.Time
	Category    string
	CreatedBy   string
}

func (s *ProjectService) CreateExpense(ctx context.Context, in ExpenseInput) (*project.Expense, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("expense amount must be positive")
	}
	if _, err := s.Repo.GetProject(ctx, in.ProjectID); err != nil {
		return nil, wrapRepoErr(err)
	}
	if in.Date.IsZero() {
		in.Date = time.Now().UTC()
	}

	e := project.Expense{
		ProjectID:   in.ProjectID,
		PhaseID:     in.PhaseID,
		UserID:      in.UserID,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		Category:    in.Category,
		CreatedBy:   in.CreatedBy,
	}
	id, err := s.Repo.CreateExpense(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	e.ID = id
	return &e, nil
}

func (s *ProjectService) ListExpenses(ctx context.Context, projectID string) ([]project.Expense, error) {
	out, err := s.Repo.ListExpensesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}

func wrapRepoErr(err error) error {
	switch {
	case errors.Is(err, project.ErrNotFound),
		errors.Is(err, project.ErrPhaseNotFound),
		errors.Is(err, project.ErrTaskNotFound):
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
