package handlers

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"taskmanager/models"
	"taskmanager/store"
)

// fakeStore is an in-memory stand-in for store.Storage. It reproduces
// the store's observable semantics: newest-first ordering, ErrNotFound
// on absent documents, defaults on insert, no cascades.
type fakeStore struct {
	mu sync.Mutex

	nextID int64
	clock  time.Time

	users         map[int64]models.User
	projects      map[int64]models.Project
	tasks         map[int64]models.Task
	comments      map[int64]models.Comment
	history       []models.History
	notifications map[int64]models.Notification
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:        1,
		clock:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:         map[int64]models.User{},
		projects:      map[int64]models.Project{},
		tasks:         map[int64]models.Task{},
		comments:      map[int64]models.Comment{},
		notifications: map[int64]models.Notification{},
	}
}

// install points every handler repository at the fake.
func (f *fakeStore) install() {
	users = f
	projects = f
	tasks = f
	comments = f
	history = f
	notifications = f
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

// tick hands out strictly increasing timestamps so newest-first sorts
// are deterministic.
func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

// Users

func (f *fakeStore) CreateUser(u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.id()
	now := f.tick()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.users[u.ID] = *u
	return nil
}

func (f *fakeStore) GetUserByID(id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) GetUserByUsername(username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListUsers() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// Projects

func (f *fakeStore) CreateProject(p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.id()
	now := f.tick()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.projects[p.ID] = *p
	return nil
}

func (f *fakeStore) GetProjectByID(id int64) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) ListProjects() ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) UpdateProject(p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[p.ID]; !ok {
		return store.ErrNotFound
	}
	p.UpdatedAt = f.tick()
	f.projects[p.ID] = *p
	return nil
}

func (f *fakeStore) DeleteProject(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

// Tasks

func (f *fakeStore) CreateTask(t *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = f.id()
	if t.Status == "" {
		t.Status = models.StatusPendiente
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedia
	}
	now := f.tick()
	t.CreatedAt = now
	t.UpdatedAt = now
	f.tasks[t.ID] = *t
	return nil
}

func (f *fakeStore) GetTaskByID(id int64) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (f *fakeStore) ListTasks() ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sortedTasksLocked(), nil
}

func (f *fakeStore) sortedTasksLocked() []models.Task {
	out := make([]models.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeStore) SearchTasks(filter models.TaskFilter) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Task
	needle := strings.ToLower(filter.SearchText)
	for _, t := range f.sortedTasksLocked() {
		if filter.SearchText != "" {
			title := strings.ToLower(t.Title)
			desc := strings.ToLower(t.Description)
			if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
				continue
			}
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.ProjectID != "" && filter.ProjectID != "0" {
			if t.ProjectID == nil || filter.ProjectID != strconv.FormatInt(*t.ProjectID, 10) {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) UpdateTask(t *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[t.ID]; !ok {
		return store.ErrNotFound
	}
	t.UpdatedAt = f.tick()
	f.tasks[t.ID] = *t
	return nil
}

func (f *fakeStore) DeleteTask(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

// Comments

func (f *fakeStore) CreateComment(c *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = f.id()
	now := f.tick()
	c.CreatedAt = now
	c.UpdatedAt = now
	f.comments[c.ID] = *c
	return nil
}

func (f *fakeStore) GetCommentByID(id int64) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) ListCommentsByTask(taskID int64) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for _, c := range f.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) DeleteComment(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

// History

func (f *fakeStore) AppendHistory(h *models.History) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	h.ID = f.id()
	h.CreatedAt = f.tick()
	f.history = append(f.history, *h)
	return nil
}

func (f *fakeStore) ListHistoryByTask(taskID int64) ([]models.History, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.History
	for _, h := range f.history {
		if h.TaskID == taskID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) ListHistory(limit int) ([]models.History, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]models.History(nil), f.history...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Notifications

func (f *fakeStore) CreateNotification(n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n.ID = f.id()
	if n.Type == "" {
		n.Type = models.NotificationSystem
	}
	now := f.tick()
	n.CreatedAt = now
	n.UpdatedAt = now
	f.notifications[n.ID] = *n
	return nil
}

func (f *fakeStore) GetNotificationByID(id int64) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &n, nil
}

func (f *fakeStore) ListNotificationsForUser(userID int64, read *bool, limit int) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID != userID {
			continue
		}
		if read != nil && n.Read != *read {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) MarkAllRead(userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, n := range f.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			n.UpdatedAt = f.tick()
			f.notifications[id] = n
		}
	}
	return nil
}

func (f *fakeStore) DeleteNotification(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.notifications[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.notifications, id)
	return nil
}
