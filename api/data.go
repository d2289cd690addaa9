package main

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type user struct {
	ID           int       `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	IsActive     bool      `json:"is_active"`
}

type project struct {
	ID          int       `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     int       `json:"owner_id"`
	Status      string    `json:"status"`
}

type task struct {
	ID          int        `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ProjectID   *int       `json:"project_id"`
	AssignedTo  int        `json:"assigned_to"`
	CreatedBy   int        `json:"created_by"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
	Tags        []string   `json:"tags"`
}

// seedDemoData loads the demo accounts, projects and tasks behind the -seed
// flag; the test suite uses it as well. All demo users share the password
// "password123".
func seedDemoData(s *storage) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demoUsers := []struct {
		name  string
		email string
	}{
		{"Pradnya", "pradnya@example.com"},
		{"John", "john@example.com"},
		{"Jacky", "jackyy@example.com"},
	}
	for _, u := range demoUsers {
		if _, err := s.createUser(u.name, u.email, hash); err != nil {
			return err
		}
	}

	s.insertProject(&project{
		Name:        "Personal Development",
		Description: "Self-improvement tasks",
		OwnerID:     1,
		Status:      "active",
	})
	s.insertProject(&project{
		Name:        "Work Projects",
		Description: "Professional tasks",
		OwnerID:     1,
		Status:      "active",
	})

	projectID1, projectID2 := 1, 2
	due1 := time.Now().Add(7 * 24 * time.Hour)
	due2 := time.Now().Add(3 * 24 * time.Hour)
	s.insertTask(&task{
		Title:       "Learn Go Advanced Features",
		Description: "Study middleware, authentication, and storage design",
		ProjectID:   &projectID1,
		AssignedTo:  1,
		CreatedBy:   1,
		Priority:    "high",
		Status:      "in_progress",
		DueDate:     &due1,
		Tags:        []string{"learning", "programming"},
	})
	s.insertTask(&task{
		Title:       "Complete API Documentation",
		Description: "Document all endpoints with examples",
		ProjectID:   &projectID2,
		AssignedTo:  2,
		CreatedBy:   1,
		Priority:    "medium",
		Status:      "todo",
		DueDate:     &due2,
		Tags:        []string{"documentation", "work"},
	})
	return nil
}
