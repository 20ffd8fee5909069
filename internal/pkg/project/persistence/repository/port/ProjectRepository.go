package port

import (
	"context"

	project "github.com/MdialloC19/backend-IPDL/internal/pkg/project/domain"
)

type ProjectRepository interface {
	CreateProject(ctx context.Context, p project.Project) (string, error)
	GetProject(ctx context.Context, id string) (project.Project, error)
	ListProjects(ctx context.Context) ([]project.Project, error)
	UpdateProject(ctx context.Context, p project.Project) error
	DeleteProject(ctx context.Context, id string) error

	CreatePhase(ctx context.Context, ph project.Phase) (string, error)
	GetPhase(ctx context.Context, id string) (project.Phase, error)
	ListPhasesByProject(ctx context.Context, projectID string) ([]project.Phase, error)
	UpdatePhase(ctx context.Context, ph project.Phase) error
	DeletePhase(ctx context.Context, id string) error

	CreateTask(ctx context.Context, t project.Task) (string, error)
	GetTask(ctx context.Context, id string) (project.Task, error)
	ListTasksByPhase(ctx context.Context, phaseID string) ([]project.Task, error)
	UpdateTask(ctx context.Context, t project.Task) error
	DeleteTask(ctx context.Context, id string) error

	CreateExpense(ctx context.Context, e project.Expense) (string, error)
	ListExpensesByProject(ctx context.Context, projectID string) ([]project.Expense, error)
}
