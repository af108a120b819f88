package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrSnakeDoc/keepdash/internal/domain"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
)

// startLockKey serializes StartTask transactions across connections.
const startLockKey int64 = 0x6b64_7461_736b // "kdtask"

const taskColumns = `id, title, status, notes, started_at, completed_at, created_at`

// TaskStore persists tasks in the task table.
// Methods return (nil, nil) when the referenced task does not exist.
type TaskStore struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

func NewTaskStore(pool *pgxpool.Pool, log logger.Logger) *TaskStore {
	return &TaskStore{pool: pool, log: log}
}

func (s *TaskStore) List(ctx context.Context, status *domain.TaskStatus, limit int) ([]domain.Task, error) {
	start := time.Now()
	defer logSlow(s.log, "task.list", start)

	var filter *string
	if status != nil {
		v := string(*status)
		filter = &v
	}

	rows, err := s.pool.Query(ctx, `
	SELECT `+taskColumns+`
	FROM task
	WHERE ($1::text IS NULL OR status = $1)
	ORDER BY created_at DESC, id
	LIMIT $2`, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0, limit)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskStore) Get(ctx context.Context, id string) (*domain.Task, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM task WHERE id = $1`, id)
	return optionalTask(scanTask(row))
}

// Current returns the in-progress task, latest started first.
func (s *TaskStore) Current(ctx context.Context) (*domain.Task, error) {
	row := s.pool.QueryRow(ctx, `
	SELECT `+taskColumns+`
	FROM task
	WHERE status = 'in_progress'
	ORDER BY started_at DESC NULLS LAST
	LIMIT 1`)
	t, err := optionalTask(scanTask(row))
	if err != nil {
		return nil, fmt.Errorf("current task: %w", err)
	}
	return t, nil
}

func (s *TaskStore) Create(ctx context.Context, t *domain.Task) error {
	start := time.Now()
	defer logSlow(s.log, "task.create", start)

	err := s.pool.QueryRow(ctx, `
	INSERT INTO task (id, title, status, notes, started_at, completed_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at`,
		t.ID, t.Title, string(t.Status), t.Notes, t.StartedAt, t.CompletedAt, t.CreatedAt,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Start makes id the only in-progress task. The demotion of the previous
// task and the promotion run in one transaction holding an advisory lock,
// so concurrent starts cannot leave two tasks in progress. A missing task
// changes nothing; a done task is returned untouched.
func (s *TaskStore) Start(ctx context.Context, id string, at time.Time) (*domain.Task, error) {
	start := time.Now()
	defer logSlow(s.log, "task.start", start)

	var result *domain.Task
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, startLockKey); err != nil {
			return fmt.Errorf("lock: %w", err)
		}

		target, err := optionalTask(scanTask(tx.QueryRow(ctx,
			`SELECT `+taskColumns+` FROM task WHERE id = $1 FOR UPDATE`, id)))
		if err != nil {
			return fmt.Errorf("load target: %w", err)
		}
		if target == nil || target.IsDone() {
			result = target
			return nil
		}

		tag, err := tx.Exec(ctx, `
		UPDATE task SET status = 'todo'
		WHERE status = 'in_progress' AND id <> $1`, id)
		if err != nil {
			return fmt.Errorf("demote: %w", err)
		}
		if n := tag.RowsAffected(); n > 0 {
			s.log.Debug("demoted in-progress tasks", logger.Int64("count", n))
		}

		result, err = scanTask(tx.QueryRow(ctx, `
		UPDATE task SET status = 'in_progress', started_at = $2
		WHERE id = $1
		RETURNING `+taskColumns, id, at))
		if err != nil {
			return fmt.Errorf("promote: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("start task: %w", err)
	}
	return result, nil
}

// Pause moves a task back to todo and keeps started_at.
func (s *TaskStore) Pause(ctx context.Context, id string) (*domain.Task, error) {
	t, err := optionalTask(scanTask(s.pool.QueryRow(ctx, `
	UPDATE task SET status = 'todo'
	WHERE id = $1 AND status <> 'done'
	RETURNING `+taskColumns, id)))
	if err != nil {
		return nil, fmt.Errorf("pause task: %w", err)
	}
	if t == nil {
		// either missing or done, Get tells which
		return s.Get(ctx, id)
	}
	return t, nil
}

// Complete marks a task done. completed_at keeps its first value.
func (s *TaskStore) Complete(ctx context.Context, id string, at time.Time) (*domain.Task, error) {
	t, err := optionalTask(scanTask(s.pool.QueryRow(ctx, `
	UPDATE task SET status = 'done', completed_at = COALESCE(completed_at, $2)
	WHERE id = $1
	RETURNING `+taskColumns, id, at)))
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	return t, nil
}

// Update applies the non-nil fields of patch.
func (s *TaskStore) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	t, err := optionalTask(scanTask(s.pool.QueryRow(ctx, `
	UPDATE task
	SET title = COALESCE($2, title),
		notes = COALESCE($3, notes)
	WHERE id = $1
	RETURNING `+taskColumns, id, patch.Title, patch.Notes)))
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM task WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t      domain.Task
		status string
	)
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&status,
		&t.Notes,
		&t.StartedAt,
		&t.CompletedAt,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	t.Status = domain.TaskStatus(status)
	return &t, nil
}

// optionalTask turns pgx.ErrNoRows into a nil task.
func optionalTask(t *domain.Task, err error) (*domain.Task, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}
