package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusIsTerminal(t *testing.T) {
	assert.False(t, RequestStatusWaiting.IsTerminal())
	assert.True(t, RequestStatusApproved.IsTerminal())
	assert.True(t, RequestStatusRejected.IsTerminal())
}

func TestProjectStatusPredicates(t *testing.T) {
	assert.True(t, ProjectStatusOpen.IsOpenForContinuation())
	assert.False(t, ProjectStatusCompleted.IsOpenForContinuation())
	assert.False(t, ProjectStatusDraft.IsOpenForContinuation())

	assert.True(t, ProjectStatusOpen.IsPublished())
	assert.True(t, ProjectStatusCompleted.IsPublished())
	assert.False(t, ProjectStatusInProgress.IsPublished())
	assert.False(t, ProjectStatusDraft.IsPublished())
}
