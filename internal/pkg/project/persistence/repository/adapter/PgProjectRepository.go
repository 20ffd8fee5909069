package adapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	project "github.com/MdialloC19/backend-IPDL/internal/pkg/project/domain"
)

// PgProjectRepository stores projects, phases, tasks and expenses in Postgres.
// Deletions are soft: rows carry is_deleted and every read filters on it.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectColumns = `id, name, description, start_date, end_date, status, manager_id, participants, created_at`

func (r *PgProjectRepository) CreateProject(ctx context.Context, p project.Project) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO projects (name, description, start_date, end_date, status, manager_id, participants)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		p.Name, p.Description, p.StartDate, p.EndDate, p.Status, p.ManagerID, p.Participants,
	).Scan(&id)
	return id, err
}

func (r *PgProjectRepository) GetProject(ctx context.Context, id string) (project.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1 AND is_deleted = false`, id)
	return scanProject(row)
}

func (r *PgProjectRepository) ListProjects(ctx context.Context) ([]project.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE is_deleted = false ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PgProjectRepository) UpdateProject(ctx context.Context, p project.Project) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects
		 SET name = $2, description = $3, start_date = $4, end_date = $5, status = $6, participants = $7
		 WHERE id = $1 AND is_deleted = false`,
		p.ID, p.Name, p.Description, p.StartDate, p.EndDate, p.Status, p.Participants,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}

func (r *PgProjectRepository) DeleteProject(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET is_deleted = true WHERE id = $1 AND is_deleted = false`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
		&p.Status, &p.ManagerID, &p.Participants, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return project.Project{}, project.ErrNotFound
	}
	return p, err
}

const phaseColumns = `id, project_id, name, description, start_date, end_date, created_at`

func (r *PgProjectRepository) CreatePhase(ctx context.Context, ph project.Phase) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO phases (project_id, name, description, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		ph.ProjectID, ph.Name, ph.Description, ph.StartDate, ph.EndDate,
	).Scan(&id)
	return id, err
}

func (r *PgProjectRepository) GetPhase(ctx context.Context, id string) (project.Phase, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+phaseColumns+` FROM phases WHERE id = $1 AND is_deleted = false`, id)
	var ph project.Phase
	err := row.Scan(&ph.ID, &ph.ProjectID, &ph.Name, &ph.Description, &ph.StartDate, &ph.EndDate, &ph.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return project.Phase{}, project.ErrPhaseNotFound
	}
	return ph, err
}

func (r *PgProjectRepository) ListPhasesByProject(ctx context.Context, projectID string) ([]project.Phase, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+phaseColumns+` FROM phases
		 WHERE project_id = $1 AND is_deleted = false
		 ORDER BY start_date ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Phase, 0)
	for rows.Next() {
		var ph project.Phase
		if err := rows.Scan(&ph.ID, &ph.ProjectID, &ph.Name, &ph.Description, &ph.StartDate, &ph.EndDate, &ph.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ph)
	}
	return out, rows.Err()
}

func (r *PgProjectRepository) UpdatePhase(ctx context.Context, ph project.Phase) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE phases
		 SET name = $2, description = $3, start_date = $4, end_date = $5
		 WHERE id = $1 AND is_deleted = false`,
		ph.ID, ph.Name, ph.Description, ph.StartDate, ph.EndDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrPhaseNotFound
	}
	return nil
}

func (r *PgProjectRepository) DeletePhase(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE phases SET is_deleted = true WHERE id = $1 AND is_deleted = false`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrPhaseNotFound
	}
	return nil
}

const taskColumns = `id, phase_id, title, description, assignee_id, status, priority, due_date, comments, created_at`

func (r *PgProjectRepository) CreateTask(ctx context.Context, t project.Task) (string, error) {
	comments, err := encodeComments(t.Comments)
	if err != nil {
		return "", err
	}
	var id string
	err = r.pool.QueryRow(ctx,
		`INSERT INTO tasks (phase_id, title, description, assignee_id, status, priority, due_date, comments)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		t.PhaseID, t.Title, t.Description, t.AssigneeID, t.Status, t.Priority, t.DueDate, comments,
	).Scan(&id)
	return id, err
}

func (r *PgProjectRepository) GetTask(ctx context.Context, id string) (project.Task, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND is_deleted = false`, id)
	return scanTask(row)
}

func (r *PgProjectRepository) ListTasksByPhase(ctx context.Context, phaseID string) ([]project.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE phase_id = $1 AND is_deleted = false
		 ORDER BY created_at ASC`, phaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgProjectRepository) UpdateTask(ctx context.Context, t project.Task) error {
	comments, err := encodeComments(t.Comments)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks
		 SET title = $2, description = $3, assignee_id = $4, status = $5, priority = $6, due_date = $7, comments = $8
		 WHERE id = $1 AND is_deleted = false`,
		t.ID, t.Title, t.Description, t.AssigneeID, t.Status, t.Priority, t.DueDate, comments,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrTaskNotFound
	}
	return nil
}

func (r *PgProjectRepository) DeleteTask(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks SET is_deleted = true WHERE id = $1 AND is_deleted = false`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (project.Task, error) {
	var (
		t   project.Task
		raw []byte
	)
	err := row.Scan(&t.ID, &t.PhaseID, &t.Title, &t.Description, &t.AssigneeID,
		&t.Status, &t.Priority, &t.DueDate, &raw, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return project.Task{}, project.ErrTaskNotFound
	}
	if err != nil {
		return project.Task{}, err
	}
	t.Comments = make([]project.Comment, 0)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &t.Comments); err != nil {
			return project.Task{}, err
		}
	}
	return t, nil
}

func encodeComments(comments []project.Comment) ([]byte, error) {
	if comments == nil {
		comments = make([]project.Comment, 0)
	}
	return json.Marshal(comments)
}

func (r *PgProjectRepository) CreateExpense(ctx context.Context, e project.Expense) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO expenses (project_id, phase_id, user_id, description, amount, date, category, created_by)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		e.ProjectID, e.PhaseID, e.UserID, e.Description, e.Amount, e.Date, e.Category, e.CreatedBy,
	).Scan(&id)
	return id, err
}

func (r *PgProjectRepository) ListExpensesByProject(ctx context.Context, projectID string) ([]project.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, project_id, COALESCE(phase_id::text, ''), user_id, description, amount, date, category, created_by, created_at
		 FROM expenses
		 WHERE project_id = $1 AND is_deleted = false
		 ORDER BY date DESC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Expense, 0)
	for rows.Next() {
		var e project.Expense
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.PhaseID, &e.UserID, &e.Description,
			&e.Amount, &e.Date, &e.Category, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
