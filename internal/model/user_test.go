package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeSaveHashesPassword(t *testing.T) {
	user := User{Username: "alice", Email: "alice@example.com", Password: "hunter2hunter2"}

	require.NoError(t, user.BeforeSave(nil))
	assert.NotEqual(t, "hunter2hunter2", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"))

	assert.True(t, user.CheckPassword("hunter2hunter2"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestBeforeSaveSkipsExistingHash(t *testing.T) {
	user := User{Password: "plain"}
	require.NoError(t, user.BeforeSave(nil))
	hashed := user.Password

	// Saving again must not double-hash.
	require.NoError(t, user.BeforeSave(nil))
	assert.Equal(t, hashed, user.Password)
}

func TestQuestionAnswered(t *testing.T) {
	text := "answer"
	q := Question{}
	assert.False(t, q.HasResponse())
	assert.False(t, q.Answered())

	q.ResponseText = &text
	assert.True(t, q.HasResponse())
	assert.False(t, q.Answered())

	q.Analysis = &AnalysisResult{}
	assert.True(t, q.Answered())
}
