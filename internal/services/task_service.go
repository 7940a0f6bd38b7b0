package services

import (
	"context"
	"fmt"
	"log"

	"timebill-api/ent"
	"timebill-api/internal/storage"
	"timebill-api/internal/storage/postgres"
	"timebill-api/internal/transport/dto"
)

type taskService struct {
	taskRepo   storage.TaskRepository
	clientRepo storage.ClientRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(db *ent.Client) TaskService {
	return &taskService{
		taskRepo:   postgres.NewTaskRepo(db),
		clientRepo: postgres.NewClientRepo(db),
	}
}

func (s *taskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*ent.Task, error) {
	if !req.Hours.IsPositive() {
		return nil, fmt.Errorf("%w: hours must be positive", ErrValidation)
	}

	// The client must exist before work can be logged against it.
	if _, err := s.clientRepo.GetByID(ctx, &dto.GetClientByIDRequest{ID: req.ClientID}); err != nil {
		return nil, mapRepoError(err, "fetching client for task")
	}

	task, err := s.taskRepo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating task")
	}
	return task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, req *dto.GetTaskByIDRequest) (*ent.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting task")
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, req *dto.ListTasksRequest) ([]*ent.Task, error) {
	tasks, err := s.taskRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing tasks")
	}
	return tasks, nil
}

func (s *taskService) ListUnbilledTasks(ctx context.Context, req *dto.ListUnbilledTasksRequest) ([]*ent.Task, error) {
	tasks, err := s.taskRepo.ListUnbilled(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing unbilled tasks")
	}
	return tasks, nil
}

// UpdateTask edits a task's details. Billed tasks are frozen: their hours are
// an invoice's line item, so the invoice must be edited instead.
func (s *taskService) UpdateTask(ctx context.Context, req *dto.UpdateTaskRequest) (*ent.Task, error) {
	if req.Hours != nil && !req.Hours.IsPositive() {
		return nil, fmt.Errorf("%w: hours must be positive", ErrValidation)
	}

	current, err := s.taskRepo.GetByID(ctx, &dto.GetTaskByIDRequest{ID: req.ID})
	if err != nil {
		return nil, mapRepoError(err, "getting task for update")
	}
	if current.Billed {
		log.Printf("UpdateTask: Attempt to edit billed task %s", req.ID)
		return nil, fmt.Errorf("%w: task is on an invoice", ErrInvalidState)
	}

	task, err := s.taskRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating task")
	}
	return task, nil
}

// DeleteTask removes a task. Billed tasks cannot be deleted for the same
// reason they cannot be edited.
func (s *taskService) DeleteTask(ctx context.Context, req *dto.DeleteTaskRequest) error {
	current, err := s.taskRepo.GetByID(ctx, &dto.GetTaskByIDRequest{ID: req.ID})
	if err != nil {
		return mapRepoError(err, "getting task for deletion")
	}
	if current.Billed {
		log.Printf("DeleteTask: Attempt to delete billed task %s", req.ID)
		return fmt.Errorf("%w: task is on an invoice", ErrInvalidState)
	}

	if err := s.taskRepo.Delete(ctx, req); err != nil {
		return mapRepoError(err, "deleting task")
	}
	return nil
}
