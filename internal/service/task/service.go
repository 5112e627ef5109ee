// Package task implements the task operations: create, list, partial update
// and delete. The service validates input against the member directory and
// the priority enum before anything reaches storage.
package task

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/directory"
	"taskboard/internal/events"
	"taskboard/internal/model"
	"taskboard/pkg/cache"
	"taskboard/pkg/metrics"
)

// Store is the storage surface the service needs. *repository.TaskRepository
// implements it; tests substitute an in-memory fake.
type Store interface {
	Insert(ctx context.Context, t *model.Task) (int, error)
	GetByID(ctx context.Context, id int) (*model.Task, error)
	List(ctx context.Context, f model.TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	store     Store
	users     *directory.Directory
	cache     *cache.Cache // nil disables list caching
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store Store, users *directory.Directory, listCache *cache.Cache, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		store:     store,
		users:     users,
		cache:     listCache,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

type CreateInput struct {
	Title       string
	Description string
	AssigneeID  *int
	Priority    *string
	DueDate     *model.Date
}

// Create validates the input and persists a new incomplete task. Returns the
// storage-assigned id.
func (s *Service) Create(ctx context.Context, in CreateInput) (int, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return 0, invalidInput("title is required")
	}

	if in.AssigneeID != nil && !s.users.Exists(in.AssigneeID) {
		return 0, invalidInput("assignee_id is invalid")
	}

	priority, err := ValidatePriority(in.Priority)
	if err != nil {
		return 0, err
	}

	now := s.now().UTC()
	t := &model.Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Completed:   false,
		AssigneeID:  in.AssigneeID,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.store.Insert(ctx, t)
	if err != nil {
		return 0, err
	}

	metrics.IncrementTaskOperation("create")
	s.invalidateListCache(ctx)

	payload := events.TaskCreatedPayload{
		TaskID:     id,
		Title:      t.Title,
		Priority:   t.Priority,
		AssigneeID: t.AssigneeID,
	}
	if t.DueDate != nil {
		payload.DueDate = t.DueDate.String()
	}
	s.publish(ctx, events.TaskCreated, payload)

	return id, nil
}

type ListInput struct {
	Search     string
	Status     string
	AssigneeID *int
	Priority   string
	Due        string
}

// List runs the filtered, ordered query and shapes each row with the
// assignee name resolved through the directory. "Today" for the due buckets
// is resolved once per call.
func (s *Service) List(ctx context.Context, in ListInput) ([]model.TaskView, error) {
	filter := model.TaskFilter{
		Search:     in.Search,
		Status:     in.Status,
		AssigneeID: in.AssigneeID,
		Due:        in.Due,
		Today:      model.DateOf(s.now().UTC()),
	}

	// Only the priority filter is strict; unknown status/due values fall
	// through as "no filter".
	if in.Priority != "" {
		p, err := ValidatePriority(&in.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = p
	}

	key := listCacheKey(filter)
	if s.cache != nil {
		var cached []model.TaskView
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("List cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	tasks, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]model.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, model.TaskView{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			Completed:    t.Completed,
			AssigneeID:   t.AssigneeID,
			AssigneeName: s.users.NameOf(t.AssigneeID),
			Priority:     t.Priority,
			DueDate:      t.DueDate,
			CreatedAt:    t.CreatedAt,
			UpdatedAt:    t.UpdatedAt,
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, views); err != nil {
			s.logger.Warn("List cache write failed", zap.Error(err))
		}
	}

	return views, nil
}

type UpdateInput struct {
	Title       *string
	Description *string
	AssigneeID  *int
	Completed   *bool
	Priority    *string
	DueDate     *model.Date
}

// Update applies the present fields of in to the task. All present fields
// are validated against the loaded record in memory before the single write,
// so a late validation failure persists nothing. Every successful update
// bumps updated_at, even when no field changed.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) error {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return invalidInput("title cannot be empty")
		}
		t.Title = title
	}

	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}

	if in.AssigneeID != nil {
		if !s.users.Exists(in.AssigneeID) {
			return invalidInput("assignee_id is invalid")
		}
		t.AssigneeID = in.AssigneeID
	}

	if in.Completed != nil {
		t.Completed = *in.Completed
	}

	if in.Priority != nil {
		p, err := ValidatePriority(in.Priority)
		if err != nil {
			return err
		}
		t.Priority = p
	}

	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}

	t.UpdatedAt = s.now().UTC()

	if err := s.store.Update(ctx, t); err != nil {
		return err
	}

	metrics.IncrementTaskOperation("update")
	s.invalidateListCache(ctx)
	s.publish(ctx, events.TaskUpdated, events.TaskUpdatedPayload{
		TaskID:    t.ID,
		Completed: t.Completed,
	})

	return nil
}

// Delete permanently removes the task.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	metrics.IncrementTaskOperation("delete")
	s.invalidateListCache(ctx)
	s.publish(ctx, events.TaskDeleted, events.TaskDeletedPayload{TaskID: id})

	return nil
}

func (s *Service) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "tasks:*"); err != nil {
		s.logger.Warn("List cache invalidation failed", zap.Error(err))
	}
}

func (s *Service) publish(ctx context.Context, routingKey string, payload any) {
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		metrics.IncrementEventPublish(routingKey, "failed")
		s.logger.Warn("Failed to publish task event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
		return
	}
	metrics.IncrementEventPublish(routingKey, "success")
}

// listCacheKey derives the cache key from the full filter set. The filter is
// JSON-encoded so that filter values containing separator characters cannot
// collide across fields.
func listCacheKey(f model.TaskFilter) string {
	data, err := json.Marshal(f)
	if err != nil {
		// TaskFilter only holds strings, ints and a date; this cannot fail.
		panic(err)
	}
	return "tasks:" + string(data)
}
