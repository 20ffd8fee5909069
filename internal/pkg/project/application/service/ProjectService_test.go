package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	project "github.com/MdialloC19/backend-IPDL/internal/pkg/project/domain"
)

type memoryProjectRepo struct {
	projects map[string]project.Project
	phases   map[string]project.Phase
	tasks    map[string]project.Task
	expenses map[string]project.Expense
	seq      int
}

func newMemoryProjectRepo() *memoryProjectRepo {
	return &memoryProjectRepo{
		projects: make(map[string]project.Project),
		phases:   make(map[string]project.Phase),
		tasks:    make(map[string]project.Task),
		expenses: make(map[string]project.Expense),
	}
}

func (m *memoryProjectRepo) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memoryProjectRepo) CreateProject(_ context.Context, p project.Project) (string, error) {
	p.ID = m.nextID("proj")
	m.projects[p.ID] = p
	return p.ID, nil
}

func (m *memoryProjectRepo) GetProject(_ context.Context, id string) (project.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (m *memoryProjectRepo) ListProjects(_ context.Context) ([]project.Project, error) {
	out := make([]project.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryProjectRepo) UpdateProject(_ context.Context, p project.Project) error {
	if _, ok := m.projects[p.ID]; !ok {
		return project.ErrNotFound
	}
	m.projects[p.ID] = p
	return nil
}

func (m *memoryProjectRepo) DeleteProject(_ context.Context, id string) error {
	if _, ok := m.projects[id]; !ok {
		return project.ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

func (m *memoryProjectRepo) CreatePhase(_ context.Context, ph project.Phase) (string, error) {
	ph.ID = m.nextID("phase")
	m.phases[ph.ID] = ph
	return ph.ID, nil
}

func (m *memoryProjectRepo) GetPhase(_ context.Context, id string) (project.Phase, error) {
	ph, ok := m.phases[id]
	if !ok {
		return project.Phase{}, project.ErrPhaseNotFound
	}
	return ph, nil
}

func (m *memoryProjectRepo) ListPhasesByProject(_ context.Context, projectID string) ([]project.Phase, error) {
	out := make([]project.Phase, 0)
	for _, ph := range m.phases {
		if ph.ProjectID == projectID {
			out = append(out, ph)
		}
	}
	return out, nil
}

func (m *memoryProjectRepo) UpdatePhase(_ context.Context, ph project.Phase) error {
	if _, ok := m.phases[ph.ID]; !ok {
		return project.ErrPhaseNotFound
	}
	m.phases[ph.ID] = ph
	return nil
}

func (m *memoryProjectRepo) DeletePhase(_ context.Context, id string) error {
	if _, ok := m.phases[id]; !ok {
		return project.ErrPhaseNotFound
	}
	delete(m.phases, id)
	return nil
}

func (m *memoryProjectRepo) CreateTask(_ context.Context, t project.Task) (string, error) {
	t.ID = m.nextID("task")
	m.tasks[t.ID] = t
	return t.ID, nil
}

func (m *memoryProjectRepo) GetTask(_ context.Context, id string) (project.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return project.Task{}, project.ErrTaskNotFound
	}
	return t, nil
}

func (m *memoryProjectRepo) ListTasksByPhase(_ context.Context, phaseID string) ([]project.Task, error) {
	out := make([]project.Task, 0)
	for _, t := range m.tasks {
		if t.PhaseID == phaseID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryProjectRepo) UpdateTask(_ context.Context, t project.Task) error {
	if _, ok := m.tasks[t.ID]; !ok {
		return project.ErrTaskNotFound
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *memoryProjectRepo) DeleteTask(_ context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return project.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *memoryProjectRepo) CreateExpense(_ context.Context, e project.Expense) (string, error) {
	e.ID = m.nextID("exp")
	m.expenses[e.ID] = e
	return e.ID, nil
}

func (m *memoryProjectRepo) ListExpensesByProject(_ context.Context, projectID string) ([]project.Expense, error) {
	out := make([]project.Expense, 0)
	for _, e := range m.expenses {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func seedProject(t *testing.T, svc *ProjectService) *project.Project {
	t.Helper()
	p, err := svc.CreateProject(context.Background(), ProjectInput{
		Name:      "Covoiturage campus",
		ManagerID: "manager-1",
	})
	require.NoError(t, err)
	return p
}

func TestCreateProjectDefaultsStatus(t *testing.T) {
	svc := NewProjectService(newMemoryProjectRepo())
	p := seedProject(t, svc)
	assert.Equal(t, project.StatusPlanned, p.Status)
}

func TestCreateProjectRejectsBadStatus(t *testing.T) {
	svc := NewProjectService(newMemoryProjectRepo())
	_, err := svc.CreateProject(context.Background(), ProjectInput{Name: "x", Status: "Done-ish"})
	assert.ErrorIs(t, err, project.ErrInvalidStatus)
}

func TestAddParticipantsDeduplicates(t *testing.T) {
	svc := NewProjectService(newMemoryProjectRepo())
	p := seedProject(t, svc)

	updated, err := svc.AddParticipants(context.Background(), p.ID, []string{"alice", "bob"})
	require.NoError(t, err)
	updated, err = svc.AddParticipants(context.Background(), updated.ID, []string{"bob", "carol", " "})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"alice", "bob", "carol"}, updated.Participants)
}

func TestUpdateProjectKeepsUnsetFields(t *testing.T) {
	repo := newMemoryProjectRepo()
	svc := NewProjectService(repo)
	p := seedProject(t, svc)

	updated, err := svc.UpdateProject(context.Background(), p.ID, ProjectInput{Status: project.StatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, "Covoiturage campus", updated.Name)
	assert.Equal(t, project.StatusInProgress, updated.Status)
}

func TestPhaseRequiresExistingProject(t *testing.T) {
	svc := NewProjectService(newMemoryProjectRepo())
	_, err := svc.CreatePhase(context.Background(), PhaseInput{ProjectID: "ghost", Name: "Design"})
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestTaskLifecycle(t *testing.T) {
	svc := NewProjectService(newMemoryProjectRepo())
	p := seedProject(t, svc)
	ph, err := svc.CreatePhase(context.Background(), PhaseInput{ProjectID: p.ID, Name: "Design"})
	require.NoError(t, err)

	task, err := svc.CreateTask(context.Background(), TaskInput{PhaseID: ph.ID, Title: "Wireframes"})
	require.NoError(t, err)
	assert.Equal(t, project.TaskToDo, task.Status)
	assert.Equal(t, project.PriorityMedium, task.Priority)
	assert.NotNil(t, task.Comments)

	task, err = svc.UpdateTask(context.Background(), task.ID, TaskInput{Status: project.TaskDone})
	require.NoError(t, err)
	assert.Equal(t, project.TaskDone, task.Status)
	assert.Equal(t, "Wireframes", task.Title)

	_, err = svc.UpdateTask(context.Background(), task.ID, TaskInput{Priority: "Urgent"})
	assert.ErrorIs(t, err, project.ErrInvalidStatus)
}

func TestCommentTaskAppends(t *testing.T) {
	svc := NewProjectService(newMemoryProjectRepo())
	p := seedProject(t, svc)
	ph, err := svc.CreatePhase(context.Background(), PhaseInput{ProjectID: p.ID, Name: "Design"})
	require.NoError(t, err)
	task, err := svc.CreateTask(context.Background(), TaskInput{PhaseID: ph.ID, Title: "Wireframes"})
	require.NoError(t, err)

	task, err = svc.CommentTask(context.Background(), task.ID, "alice", "looks good")
	require.NoError(t, err)
	task, err = svc.CommentTask(context.Background(), task.ID, "bob", "one more pass")
	require.NoError(t, err)

	require.Len(t, task.Comments, 2)
	assert.Equal(t, "alice", task.Comments[0].AuthorID)
	assert.Equal(t, "one more pass", task.Comments[1].Text)

	_, err = svc.CommentTask(context.Background(), task.ID, "alice", "   ")
	assert.Error(t, err)
}

func TestExpenseRequiresPositiveAmountAndProject(t *testing.T) {
	svc := NewProjectService(newMemoryProjectRepo())
	p := seedProject(t, svc)

	_, err := svc.CreateExpense(context.Background(), ExpenseInput{ProjectID: p.ID, Amount: 0})
	assert.Error(t, err)

	_, err = svc.CreateExpense(context.Background(), ExpenseInput{ProjectID: "ghost", Amount: 50})
	assert.ErrorIs(t, err, project.ErrNotFound)

	e, err := svc.CreateExpense(context.Background(), ExpenseInput{
		ProjectID: p.ID, UserID: "alice", Amount: 1500.50, Category: "Carburant",
	})
	require.NoError(t, err)
	assert.False(t, e.Date.IsZero())

	list, err := svc.ListExpenses(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1500.50, list[0].Amount)
}

func TestExpenseDefaultsDate(t *testing.T) {
	svc := NewProjectService(newMemoryProjectRepo())
	p := seedProject(t, svc)

	before := time.Now().UTC()
	e, err := svc.CreateExpense(context.Background(), ExpenseInput{ProjectID: p.ID, Amount: 10})
	require.NoError(t, err)
	assert.False(t, e.Date.Before(before))
}
