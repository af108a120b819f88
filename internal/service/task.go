package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/keepdash/internal/domain"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
	"github.com/MrSnakeDoc/keepdash/internal/signal"
)

const defaultTaskLimit = 50

// TaskRepository is the storage the task service relies on.
// Lookups of a missing id return (nil, nil).
type TaskRepository interface {
	List(ctx context.Context, status *domain.TaskStatus, limit int) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Current(ctx context.Context) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Start(ctx context.Context, id string, at time.Time) (*domain.Task, error)
	Pause(ctx context.Context, id string) (*domain.Task, error)
	Complete(ctx context.Context, id string, at time.Time) (*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type GetTasksInput struct {
	Status *string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Limit  *int    `json:"limit" validate:"omitempty,min=1,max=500"`
}

type CreateTaskInput struct {
	Title string  `json:"title" validate:"required"`
	Notes *string `json:"notes"`
}

type TaskIDInput struct {
	TaskID string `json:"taskId" validate:"required"`
}

type UpdateTaskInput struct {
	TaskID string  `json:"taskId" validate:"required"`
	Title  *string `json:"title" validate:"omitempty,min=1"`
	Notes  *string `json:"notes"`
}

// TaskService implements the task list with a single in-progress task.
type TaskService struct {
	repo  TaskRepository
	hub   signal.Hub
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

func NewTaskService(repo TaskRepository, hub signal.Hub, log logger.Logger, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{
		repo:  repo,
		hub:   hub,
		log:   log.With(logger.String("service", "tasks")),
		now:   now,
		newID: uuid.NewString,
	}
}

func (s *TaskService) GetTasks(ctx context.Context, in GetTasksInput) ([]domain.Task, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	var status *domain.TaskStatus
	if in.Status != nil {
		st := domain.TaskStatus(*in.Status)
		status = &st
	}
	return s.repo.List(ctx, status, intOr(in.Limit, defaultTaskLimit))
}

func (s *TaskService) GetCurrentTask(ctx context.Context) (*domain.Task, error) {
	return s.repo.Current(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	t := &domain.Task{
		ID:        s.newID(),
		Title:     in.Title,
		Notes:     in.Notes,
		Status:    domain.TaskTodo,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info("task created", logger.String("task_id", t.ID))
	s.changed(ctx)
	return t, nil
}

// StartTask makes the task the only one in progress. A done task is
// returned unchanged and a missing one yields nil.
func (s *TaskService) StartTask(ctx context.Context, in TaskIDInput) (*domain.Task, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	t, err := s.repo.Start(ctx, in.TaskID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if t != nil && t.Status == domain.TaskInProgress {
		s.log.Info("task started", logger.String("task_id", t.ID))
		s.changed(ctx)
	}
	return t, nil
}

func (s *TaskService) PauseTask(ctx context.Context, in TaskIDInput) (*domain.Task, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	t, err := s.repo.Pause(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	if t != nil && !t.IsDone() {
		s.changed(ctx)
	}
	return t, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, in TaskIDInput) (*domain.Task, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	t, err := s.repo.Complete(ctx, in.TaskID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if t != nil {
		s.log.Info("task completed", logger.String("task_id", t.ID))
		s.changed(ctx)
	}
	return t, nil
}

// UpdateTask changes the supplied fields only. With nothing to change it
// returns the current row without writing.
func (s *TaskService) UpdateTask(ctx context.Context, in UpdateTaskInput) (*domain.Task, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	patch := domain.TaskPatch{Title: in.Title, Notes: in.Notes}
	if patch.Empty() {
		return s.repo.Get(ctx, in.TaskID)
	}
	t, err := s.repo.Update(ctx, in.TaskID, patch)
	if err != nil {
		return nil, err
	}
	if t != nil {
		s.changed(ctx)
	}
	return t, nil
}

// DeleteTask removes the task. Deleting an unknown id is not an error.
func (s *TaskService) DeleteTask(ctx context.Context, in TaskIDInput) error {
	if err := check(in); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, in.TaskID); err != nil {
		return err
	}
	s.changed(ctx)
	return nil
}

func (s *TaskService) changed(ctx context.Context) {
	bump(ctx, s.hub, signal.TopicTasks, s.log)
}

// bump publishes a change signal. Failures are logged and swallowed.
func bump(ctx context.Context, hub signal.Hub, topic signal.Topic, log logger.Logger) {
	if hub == nil {
		return
	}
	if _, err := hub.Bump(ctx, topic); err != nil {
		log.Warn("failed to publish change signal",
			logger.String("topic", string(topic)),
			logger.Error(err))
	}
}
