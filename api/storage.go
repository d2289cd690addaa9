package main

import (
	"errors"
	"sync"
	"time"
)

var (
	errNotFound       = errors.New("not found")
	errDuplicateEmail = errors.New("Email already exists")
)

// storage holds all entities in memory behind a single mutex. Ids are
// allocated from monotonic per-collection counters and never reused after a
// delete. List order is insertion order.
type storage struct {
	mu sync.RWMutex

	users    map[int]*user
	projects map[int]*project
	tasks    map[int]*task

	userOrder    []int
	projectOrder []int
	taskOrder    []int

	nextUserID    int
	nextProjectID int
	nextTaskID    int
}

func newStorage() *storage {
	return &storage{
		users:         make(map[int]*user),
		projects:      make(map[int]*project),
		tasks:         make(map[int]*task),
		nextUserID:    1,
		nextProjectID: 1,
		nextTaskID:    1,
	}
}

func (u *user) clone() *user {
	cp := *u
	cp.PasswordHash = append([]byte(nil), u.PasswordHash...)
	return &cp
}

func (p *project) clone() *project {
	cp := *p
	return &cp
}

func (t *task) clone() *task {
	cp := *t
	if t.ProjectID != nil {
		v := *t.ProjectID
		cp.ProjectID = &v
	}
	if t.DueDate != nil {
		v := *t.DueDate
		cp.DueDate = &v
	}
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		cp.CompletedAt = &v
	}
	cp.Tags = make([]string, len(t.Tags))
	copy(cp.Tags, t.Tags)
	return &cp
}

func removeID(order []int, id int) []int {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// --- users ---

func (s *storage) createUser(name, email string, passwordHash []byte) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.userOrder {
		if s.users[id].Email == email {
			return nil, errDuplicateEmail
		}
	}
	u := &user{
		ID:           s.nextUserID,
		CreatedAt:    time.Now(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	s.nextUserID++
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return u.clone(), nil
}

func (s *storage) getUserByID(id int) *user {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return u.clone()
}

func (s *storage) getUserByEmail(email string) *user {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if s.users[id].Email == email {
			return s.users[id].clone()
		}
	}
	return nil
}

type userPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (s *storage) updateUser(id int, patch userPatch) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	return u.clone(), nil
}

func (s *storage) deleteUser(id int) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	delete(s.users, id)
	s.userOrder = removeID(s.userOrder, id)
	return u, nil
}

// --- projects ---

func (s *storage) insertProject(p *project) *project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProjectID
	s.nextProjectID++
	p.CreatedAt = time.Now()
	s.projects[p.ID] = p
	s.projectOrder = append(s.projectOrder, p.ID)
	return p.clone()
}

func (s *storage) getProject(id int) *project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil
	}
	return p.clone()
}

func (s *storage) projectsOwnedBy(ownerID int) []*project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owned := make([]*project, 0)
	for _, id := range s.projectOrder {
		if s.projects[id].OwnerID == ownerID {
			owned = append(owned, s.projects[id].clone())
		}
	}
	return owned
}

type projectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (s *storage) updateProject(id int, patch projectPatch) (*project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, errNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return p.clone(), nil
}

// deleteProject removes the project only. Tasks keep their project_id; they
// stay reachable through the assignee scope and the stale reference is
// tolerated (see DESIGN.md).
func (s *storage) deleteProject(id int) (*project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, errNotFound
	}
	delete(s.projects, id)
	s.projectOrder = removeID(s.projectOrder, id)
	return p, nil
}

// --- tasks ---

func (s *storage) insertTask(t *task) *task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTaskID
	s.nextTaskID++
	t.CreatedAt = time.Now()
	if t.Tags == nil {
		t.Tags = []string{}
	}
	s.tasks[t.ID] = t
	s.taskOrder = append(s.taskOrder, t.ID)
	return t.clone()
}

func (s *storage) getTask(id int) *task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil
	}
	return t.clone()
}

func (s *storage) tasksAssignedTo(userID int) []*task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assigned := make([]*task, 0)
	for _, id := range s.taskOrder {
		if s.tasks[id].AssignedTo == userID {
			assigned = append(assigned, s.tasks[id].clone())
		}
	}
	return assigned
}

func (s *storage) countTasksForProject(projectID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, id := range s.taskOrder {
		t := s.tasks[id]
		if t.ProjectID != nil && *t.ProjectID == projectID {
			n++
		}
	}
	return n
}

type taskPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ProjectID   *int       `json:"project_id"`
	AssignedTo  *int       `json:"assigned_to"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
}

// updateTask merges the provided fields into the stored task. Completion
// stamping happens first: a transition into status "completed" sets
// completed_at to the current time, and a repeated "completed" update leaves
// the original stamp untouched. completed_at is never client-supplied.
func (s *storage) updateTask(id int, patch taskPatch) (*task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, errNotFound
	}
	if patch.Status != nil && *patch.Status == "completed" && t.Status != "completed" {
		now := time.Now()
		t.CompletedAt = &now
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ProjectID != nil {
		v := *patch.ProjectID
		t.ProjectID = &v
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = *patch.AssignedTo
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.DueDate != nil {
		v := *patch.DueDate
		t.DueDate = &v
	}
	if patch.Tags != nil {
		t.Tags = append([]string(nil), patch.Tags...)
	}
	return t.clone(), nil
}

func (s *storage) deleteTask(id int) (*task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, errNotFound
	}
	delete(s.tasks, id)
	s.taskOrder = removeID(s.taskOrder, id)
	return t, nil
}
