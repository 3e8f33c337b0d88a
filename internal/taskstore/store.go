package taskstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/slok/tasks/internal/conventions"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/metrics"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/storage"
)

// StoreConfig is the configuration for the task store.
type StoreConfig struct {
	// KV is where the task collection is persisted.
	KV storage.KV
	// Key is the KV key that holds the collection.
	Key string
	// IDsKey is the KV key that holds the task IDs, in collection order.
	IDsKey          string
	Logger          log.Logger
	MetricsRecorder metrics.Recorder
	// IDGenerator returns a new unique task ID, defaults to ULIDs.
	IDGenerator func() string
}

func (c *StoreConfig) defaults() error {
	if c.KV == nil {
		return fmt.Errorf("kv is required")
	}
	if c.Key == "" {
		c.Key = conventions.TasksKey
	}
	if c.IDsKey == "" {
		c.IDsKey = conventions.TaskIDsKey
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "taskstore.Store"})
	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.Noop
	}
	if c.IDGenerator == nil {
		c.IDGenerator = func() string { return ulid.Make().String() }
	}
	return nil
}

// LoadStatus is the outcome of loading the persisted collection.
type LoadStatus string

const (
	// LoadStatusNoData means nothing was persisted, the collection is unchanged.
	LoadStatusNoData LoadStatus = "no-data"
	// LoadStatusParseFailure means the persisted data is not valid, the collection is unchanged.
	LoadStatusParseFailure LoadStatus = "parse-failure"
	// LoadStatusLoaded means the collection was replaced by the persisted one.
	LoadStatusLoaded LoadStatus = "loaded"
)

// LoadResult is the result of Store.Load.
type LoadResult struct {
	Status LoadStatus
	// Count is the number of loaded tasks.
	Count int
	// Err is the parse error when the status is LoadStatusParseFailure.
	Err error
}

// Store is the owner of the ordered task collection. Every mutation is persisted
// on the KV before being applied in memory.
//
// Store is safe for concurrent use.
type Store struct {
	kv      storage.KV
	key     string
	idsKey  string
	logger  log.Logger
	metrics metrics.Recorder
	newID   func() string

	mu    sync.RWMutex
	tasks []model.Task
}

// NewStore returns a new empty task store, call Load to restore the persisted collection.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Store{
		kv:      cfg.KV,
		key:     cfg.Key,
		idsKey:  cfg.IDsKey,
		logger:  cfg.Logger,
		metrics: cfg.MetricsRecorder,
		newID:   cfg.IDGenerator,
		tasks:   []model.Task{},
	}, nil
}

// Load replaces the collection with the persisted one. Missing or invalid persisted
// data leaves the collection unchanged and is reported on the result, only storage
// read failures are returned as errors. Task IDs are restored when the persisted IDs
// match the collection, otherwise new ones are assigned.
func (s *Store) Load(ctx context.Context) (res LoadResult, err error) {
	defer s.observe(ctx, "load", time.Now(), &err)

	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return LoadResult{}, fmt.Errorf("could not read tasks: %w", err)
	}
	if !ok {
		s.logger.Debugf("No persisted tasks on key %s", s.key)
		return LoadResult{Status: LoadStatusNoData}, nil
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		s.logger.Warningf("Ignoring persisted tasks: %s", err)
		return LoadResult{Status: LoadStatusParseFailure, Err: err}, nil
	}
	if tasks == nil {
		return LoadResult{Status: LoadStatusNoData}, nil
	}

	ids := s.loadIDs(ctx, len(tasks))
	for i := range tasks {
		tasks[i].ID = ids[i]
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()

	s.metrics.SetTaskCount(ctx, len(tasks))
	s.logger.Debugf("Loaded %d tasks", len(tasks))

	return LoadResult{Status: LoadStatusLoaded, Count: len(tasks)}, nil
}

// Create appends a new task built from the draft.
func (s *Store) Create(ctx context.Context, d model.Draft) (task model.Task, err error) {
	defer s.observe(ctx, "create", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	task = d.ToTask()
	task.ID = s.newID()

	tasks := append(cloneTasks(s.tasks), task)
	if err := s.commit(ctx, tasks); err != nil {
		return model.Task{}, err
	}

	s.logger.Debugf("Created task %s", task.ID)
	return cloneTask(task), nil
}

// Update replaces the whole task with the ID by a new one built from the draft, the
// ID is kept.
func (s *Store) Update(ctx context.Context, id string, d model.Draft) (task model.Task, err error) {
	defer s.observe(ctx, "update", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, model.ErrNotFound)
	}

	return s.replaceAt(ctx, i, d)
}

// UpdateAt is like Update but addresses the task by its collection index.
func (s *Store) UpdateAt(ctx context.Context, index int, d model.Draft) (task model.Task, err error) {
	defer s.observe(ctx, "update", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.tasks) {
		return model.Task{}, fmt.Errorf("task index %d: %w", index, model.ErrNotFound)
	}

	return s.replaceAt(ctx, index, d)
}

// Delete removes the task with the ID, the following tasks shift one position. An
// unknown ID is a no-op that returns false.
func (s *Store) Delete(ctx context.Context, id string) (deleted bool, err error) {
	defer s.observe(ctx, "delete", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debugf("Ignoring delete of unknown task %s", id)
		return false, nil
	}

	return s.deleteAt(ctx, i)
}

// DeleteAt is like Delete but addresses the task by its collection index. An out of
// bounds index is a no-op that returns false.
func (s *Store) DeleteAt(ctx context.Context, index int) (deleted bool, err error) {
	defer s.observe(ctx, "delete", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.tasks) {
		s.logger.Debugf("Ignoring delete of out of bounds index %d", index)
		return false, nil
	}

	return s.deleteAt(ctx, index)
}

// Replace replaces the whole collection with tasks built from the drafts.
func (s *Store) Replace(ctx context.Context, ds []model.Draft) (tasks []model.Task, err error) {
	defer s.observe(ctx, "replace", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks = make([]model.Task, 0, len(ds))
	for _, d := range ds {
		t := d.ToTask()
		t.ID = s.newID()
		tasks = append(tasks, t)
	}

	if err := s.commit(ctx, tasks); err != nil {
		return nil, err
	}

	s.logger.Debugf("Replaced collection with %d tasks", len(tasks))
	return cloneTasks(tasks), nil
}

// Get returns the task with the ID.
func (s *Store) Get(ctx context.Context, id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, model.ErrNotFound)
	}

	return cloneTask(s.tasks[i]), nil
}

// Tasks returns a copy of the collection in order.
func (s *Store) Tasks(ctx context.Context) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneTasks(s.tasks)
}

// View returns a filtered and sorted snapshot of the collection. It has no side effects.
func (s *Store) View(ctx context.Context, opts model.ViewOptions) View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return NewView(s.tasks, opts)
}

// replaceAt must be called with the lock held.
func (s *Store) replaceAt(ctx context.Context, i int, d model.Draft) (model.Task, error) {
	task := d.ToTask()
	task.ID = s.tasks[i].ID

	tasks := cloneTasks(s.tasks)
	tasks[i] = task
	if err := s.commit(ctx, tasks); err != nil {
		return model.Task{}, err
	}

	s.logger.Debugf("Updated task %s", task.ID)
	return cloneTask(task), nil
}

// deleteAt must be called with the lock held.
func (s *Store) deleteAt(ctx context.Context, i int) (bool, error) {
	id := s.tasks[i].ID

	tasks := cloneTasks(s.tasks)
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := s.commit(ctx, tasks); err != nil {
		return false, err
	}

	s.logger.Debugf("Deleted task %s", id)
	return true, nil
}

// commit persists the collection and, only if that succeeds, makes it the current
// one. Must be called with the lock held.
func (s *Store) commit(ctx context.Context, tasks []model.Task) error {
	data, err := EncodeTasks(tasks)
	if err != nil {
		return err
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("could not save tasks: %w", err)
	}

	// The collection is already saved, a lost ID index only means new IDs on next load.
	if err := s.saveIDs(ctx, tasks); err != nil {
		s.logger.Warningf("Could not save task IDs: %s", err)
	}

	s.tasks = tasks
	s.metrics.SetTaskCount(ctx, len(tasks))

	return nil
}

func (s *Store) saveIDs(ctx context.Context, tasks []model.Task) error {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("could not encode task IDs: %w", err)
	}

	return s.kv.Set(ctx, s.idsKey, string(data))
}

// loadIDs returns n task IDs, the persisted ones if they are valid for a collection
// of n tasks, new ones otherwise.
func (s *Store) loadIDs(ctx context.Context, n int) []string {
	newIDs := func() []string {
		ids := make([]string, 0, n)
		for range n {
			ids = append(ids, s.newID())
		}
		return ids
	}

	data, ok, err := s.kv.Get(ctx, s.idsKey)
	if err != nil {
		s.logger.Warningf("Could not read task IDs, assigning new ones: %s", err)
		return newIDs()
	}
	if !ok {
		return newIDs()
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil || len(ids) != n {
		s.logger.Debugf("Persisted task IDs don't match the collection, assigning new ones")
		return newIDs()
	}

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == "" {
			s.logger.Debugf("Persisted task IDs are not unique, assigning new ones")
			return newIDs()
		}
		seen[id] = struct{}{}
	}

	return ids
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) observe(ctx context.Context, op string, start time.Time, err *error) {
	s.metrics.ObserveTaskStoreOp(ctx, op, *err == nil, time.Since(start))
}
