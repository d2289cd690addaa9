package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectIDAllocation(t *testing.T) {
	s := newStorage()
	for i, name := range []string{"one", "two", "three"} {
		p := s.insertProject(&project{Name: name, OwnerID: 1})
		assert.Equal(t, i+1, p.ID)
	}

	_, err := s.deleteProject(3)
	require.NoError(t, err)

	// ids are never reused after a delete
	p := s.insertProject(&project{Name: "four", OwnerID: 1})
	assert.Equal(t, 4, p.ID)

	_, err = s.deleteProject(2)
	require.NoError(t, err)
	p = s.insertProject(&project{Name: "five", OwnerID: 1})
	assert.Equal(t, 5, p.ID)
}

func TestTaskListInsertionOrder(t *testing.T) {
	s := newStorage()
	for _, title := range []string{"a", "b", "c", "d"} {
		s.insertTask(&task{Title: title, AssignedTo: 1, CreatedBy: 1})
	}
	_, err := s.deleteTask(2)
	require.NoError(t, err)
	s.insertTask(&task{Title: "e", AssignedTo: 1, CreatedBy: 1})

	titles := []string{}
	for _, tk := range s.tasksAssignedTo(1) {
		titles = append(titles, tk.Title)
	}
	assert.Equal(t, []string{"a", "c", "d", "e"}, titles)
}

func TestTasksScopedToAssignee(t *testing.T) {
	s := newStorage()
	s.insertTask(&task{Title: "mine", AssignedTo: 1, CreatedBy: 2})
	s.insertTask(&task{Title: "theirs", AssignedTo: 2, CreatedBy: 2})

	mine := s.tasksAssignedTo(1)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Title)
}

func TestUpdateProjectPartialMerge(t *testing.T) {
	s := newStorage()
	s.insertProject(&project{Name: "orig", Description: "desc", OwnerID: 1, Status: "active"})

	name := "renamed"
	p, err := s.updateProject(1, projectPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", p.Name)
	assert.Equal(t, "desc", p.Description)
	assert.Equal(t, "active", p.Status)

	// repeating the same patch is idempotent
	again, err := s.updateProject(1, projectPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestUpdateTaskTagsReplacedWholesale(t *testing.T) {
	s := newStorage()
	s.insertTask(&task{Title: "t", AssignedTo: 1, CreatedBy: 1, Tags: []string{"a", "b"}})

	tk, err := s.updateTask(1, taskPatch{Tags: []string{"c"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, tk.Tags)

	// absent tags leave the prior value untouched
	title := "renamed"
	tk, err = s.updateTask(1, taskPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, tk.Tags)
}

func TestCompletionStamping(t *testing.T) {
	s := newStorage()
	s.insertTask(&task{Title: "t", AssignedTo: 1, CreatedBy: 1, Status: "todo"})

	completed := "completed"
	tk, err := s.updateTask(1, taskPatch{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, tk.CompletedAt)
	stamp := *tk.CompletedAt

	// a repeated "completed" update must not move the stamp
	low := "low"
	tk, err = s.updateTask(1, taskPatch{Status: &completed, Priority: &low})
	require.NoError(t, err)
	require.NotNil(t, tk.CompletedAt)
	assert.True(t, stamp.Equal(*tk.CompletedAt))
	assert.Equal(t, "low", tk.Priority)
}

func TestCompletionStampOnlyOnTransition(t *testing.T) {
	s := newStorage()
	s.insertTask(&task{Title: "t", AssignedTo: 1, CreatedBy: 1, Status: "todo"})

	inProgress := "in_progress"
	tk, err := s.updateTask(1, taskPatch{Status: &inProgress})
	require.NoError(t, err)
	assert.Nil(t, tk.CompletedAt)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newStorage()
	_, err := s.createUser("Ann", "ann@x.com", []byte("hash"))
	require.NoError(t, err)

	_, err = s.createUser("Another Ann", "ann@x.com", []byte("hash"))
	assert.ErrorIs(t, err, errDuplicateEmail)

	u, err := s.createUser("Ben", "ben@x.com", []byte("hash"))
	require.NoError(t, err)
	assert.Equal(t, 2, u.ID)
}

func TestDeleteReturnsPriorValue(t *testing.T) {
	s := newStorage()
	due := time.Now().Add(time.Hour)
	s.insertTask(&task{Title: "t", AssignedTo: 1, CreatedBy: 1, DueDate: &due, Tags: []string{"x"}})

	tk, err := s.deleteTask(1)
	require.NoError(t, err)
	assert.Equal(t, "t", tk.Title)
	assert.Equal(t, []string{"x"}, tk.Tags)

	assert.Nil(t, s.getTask(1))
	_, err = s.deleteTask(1)
	assert.ErrorIs(t, err, errNotFound)
}

func TestUpdateMissingRecords(t *testing.T) {
	s := newStorage()
	name := "x"

	_, err := s.updateUser(42, userPatch{Name: &name})
	assert.ErrorIs(t, err, errNotFound)
	_, err = s.updateProject(42, projectPatch{Name: &name})
	assert.ErrorIs(t, err, errNotFound)
	_, err = s.updateTask(42, taskPatch{Title: &name})
	assert.ErrorIs(t, err, errNotFound)
}

func TestCountTasksForProject(t *testing.T) {
	s := newStorage()
	projectID := 7
	s.insertTask(&task{Title: "a", AssignedTo: 1, CreatedBy: 1, ProjectID: &projectID})
	s.insertTask(&task{Title: "b", AssignedTo: 2, CreatedBy: 2, ProjectID: &projectID})
	s.insertTask(&task{Title: "c", AssignedTo: 1, CreatedBy: 1})

	assert.Equal(t, 2, s.countTasksForProject(7))
	assert.Equal(t, 0, s.countTasksForProject(8))
}
