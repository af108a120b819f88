package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/keepdash/internal/domain"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/service"
)

// Task handlers answer 200 with a JSON null when the task does not exist.

func GetTasks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit")
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		tasks, err := d.Tasks.GetTasks(r.Context(), service.GetTasksInput{
			Status: queryString(r, "status"),
			Limit:  limit,
		})
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, tasks)
	}
}

func GetCurrentTask(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := d.Tasks.GetCurrentTask(r.Context())
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func CreateTask(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.CreateTaskInput
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		t, err := d.Tasks.CreateTask(r.Context(), in)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

type taskTransition func(ctx context.Context, in service.TaskIDInput) (*domain.Task, error)

// taskCommand runs a transition that only needs the task id from the path.
func taskCommand(d deps.Deps, run taskTransition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := service.TaskIDInput{TaskID: chi.URLParam(r, "taskId")}
		t, err := run(r.Context(), in)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func StartTask(d deps.Deps) http.HandlerFunc {
	return taskCommand(d, d.Tasks.StartTask)
}

func PauseTask(d deps.Deps) http.HandlerFunc {
	return taskCommand(d, d.Tasks.PauseTask)
}

func CompleteTask(d deps.Deps) http.HandlerFunc {
	return taskCommand(d, d.Tasks.CompleteTask)
}

type updateTaskBody struct {
	Title *string `json:"title"`
	Notes *string `json:"notes"`
}

func UpdateTask(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateTaskBody
		if err := decodeJSON(w, r, &body); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		t, err := d.Tasks.UpdateTask(r.Context(), service.UpdateTaskInput{
			TaskID: chi.URLParam(r, "taskId"),
			Title:  body.Title,
			Notes:  body.Notes,
		})
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func DeleteTask(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := d.Tasks.DeleteTask(r.Context(), service.TaskIDInput{TaskID: chi.URLParam(r, "taskId")})
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
