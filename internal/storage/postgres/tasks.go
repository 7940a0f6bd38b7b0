package postgres

import (
	"context"
	"fmt"
	"log"

	"timebill-api/ent"
	"timebill-api/ent/task"
	"timebill-api/internal/storage"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
)

// TaskRepo implements the storage.TaskRepository interface using Ent.
type TaskRepo struct {
	client *ent.Client
}

// NewTaskRepo creates a new TaskRepo.
func NewTaskRepo(client *ent.Client) *TaskRepo {
	return &TaskRepo{client: client}
}

func (r *TaskRepo) WithTx(tx *ent.Tx) storage.TaskRepository {
	return &TaskRepo{client: tx.Client()}
}

var _ storage.TaskRepository = (*TaskRepo)(nil)

// Create logs a new unit of billable work.
func (r *TaskRepo) Create(ctx context.Context, req *dto.CreateTaskRequest) (*ent.Task, error) {
	builder := r.client.Task.Create().
		SetClientID(req.ClientID).
		SetDescription(req.Description).
		SetHours(req.Hours).
		SetDate(req.Date).
		SetNillableServiceID(req.ServiceID)

	if req.Platform != "" {
		builder.SetPlatform(task.Platform(req.Platform))
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating task (constraint violation, client %s): %v\n", req.ClientID, err)
			return nil, fmt.Errorf("failed to create task: invalid client or service reference: %w", storage.ErrConflict)
		}
		log.Printf("Error creating task for client %s: %v\n", req.ClientID, err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Printf("Task created successfully with ID: %s for client %s", created.ID, created.ClientID)
	return created, nil
}

// GetByID retrieves a single task.
func (r *TaskRepo) GetByID(ctx context.Context, req *dto.GetTaskByIDRequest) (*ent.Task, error) {
	entTask, err := r.client.Task.Get(ctx, req.ID)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Task not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving task by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get task by ID %s: %w", req.ID, err)
	}

	return entTask, nil
}

// GetByIDs retrieves the full set of requested tasks. A partial hit is an
// error: invoice composition must never work from a silently shrunken
// selection.
func (r *TaskRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*ent.Task, error) {
	tasks, err := r.client.Task.
		Query().
		Where(task.IDIn(ids...)).
		All(ctx)

	if err != nil {
		log.Printf("Error querying tasks by IDs: %v\n", err)
		return nil, fmt.Errorf("failed to query tasks by IDs: %w", err)
	}

	if len(tasks) != len(ids) {
		log.Printf("Task selection incomplete: requested %d, found %d\n", len(ids), len(tasks))
		return nil, fmt.Errorf("%d of %d selected tasks missing: %w", len(ids)-len(tasks), len(ids), storage.ErrNotFound)
	}

	// Return tasks in the order they were selected.
	byID := make(map[uuid.UUID]*ent.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	ordered := make([]*ent.Task, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byID[id])
	}

	return ordered, nil
}

// List retrieves tasks, optionally filtered by client, billed state, platform
// and work-date window.
func (r *TaskRepo) List(ctx context.Context, req *dto.ListTasksRequest) ([]*ent.Task, error) {
	query := r.client.Task.Query()

	if req.ClientID != nil {
		query = query.Where(task.ClientID(*req.ClientID))
	}
	if req.Billed != nil {
		query = query.Where(task.Billed(*req.Billed))
	}
	if req.Platform != nil {
		query = query.Where(task.PlatformEQ(task.Platform(*req.Platform)))
	}
	if req.From != nil {
		query = query.Where(task.DateGTE(*req.From))
	}
	if req.To != nil {
		query = query.Where(task.DateLT(*req.To))
	}

	tasks, err := query.
		Order(ent.Desc(task.FieldDate)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying tasks: %v\n", err)
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}

	return tasks, nil
}

// ListUnbilled retrieves every task of a client that no invoice has captured
// yet, oldest work first.
func (r *TaskRepo) ListUnbilled(ctx context.Context, req *dto.ListUnbilledTasksRequest) ([]*ent.Task, error) {
	tasks, err := r.client.Task.
		Query().
		Where(task.ClientID(req.ClientID), task.Billed(false)).
		Order(ent.Asc(task.FieldDate)).
		All(ctx)

	if err != nil {
		log.Printf("Error querying unbilled tasks for client %s: %v\n", req.ClientID, err)
		return nil, fmt.Errorf("failed to query unbilled tasks: %w", err)
	}

	return tasks, nil
}

// Update modifies an existing task based on non-nil fields in the request.
func (r *TaskRepo) Update(ctx context.Context, req *dto.UpdateTaskRequest) (*ent.Task, error) {
	builder := r.client.Task.UpdateOneID(req.ID)

	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.Hours != nil {
		builder.SetHours(*req.Hours)
	}
	if req.Date != nil {
		builder.SetDate(*req.Date)
	}
	if req.ServiceID != nil {
		builder.SetServiceID(*req.ServiceID)
	}
	if req.Platform != nil {
		builder.SetPlatform(task.Platform(*req.Platform))
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Task not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		if ent.IsConstraintError(err) {
			log.Printf("Error updating task %s (constraint violation): %v\n", req.ID, err)
			return nil, fmt.Errorf("failed to update task: invalid service reference: %w", storage.ErrConflict)
		}
		log.Printf("Error updating task %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update task %s: %w", req.ID, err)
	}

	return updated, nil
}

// SetBilled flips the billed flag on the whole selection and reports how many
// rows changed. Anything short of the full selection is treated as a missing
// task so the surrounding transaction rolls back.
func (r *TaskRepo) SetBilled(ctx context.Context, ids []uuid.UUID, billed bool) (int, error) {
	n, err := r.client.Task.
		Update().
		Where(task.IDIn(ids...)).
		SetBilled(billed).
		Save(ctx)

	if err != nil {
		log.Printf("Error setting billed=%t on %d tasks: %v\n", billed, len(ids), err)
		return 0, fmt.Errorf("failed to set billed flag: %w", err)
	}

	if n != len(ids) {
		log.Printf("SetBilled touched %d of %d tasks\n", n, len(ids))
		return n, fmt.Errorf("billed flag set on %d of %d tasks: %w", n, len(ids), storage.ErrNotFound)
	}

	return n, nil
}

// Delete removes a task by its ID.
func (r *TaskRepo) Delete(ctx context.Context, req *dto.DeleteTaskRequest) error {
	err := r.client.Task.DeleteOneID(req.ID).Exec(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Task not found for deletion with ID: %s\n", req.ID)
			return storage.ErrNotFound
		}
		log.Printf("Error deleting task %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete task %s: %w", req.ID, err)
	}

	log.Printf("Task deleted successfully: %s", req.ID)
	return nil
}
