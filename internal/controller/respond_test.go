package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return ctx, rec
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperr.Validationf("bad input"), http.StatusBadRequest},
		{"invalid state", &apperr.InvalidStateError{Op: "start interview", Current: "completed", Required: "draft"}, http.StatusBadRequest},
		{"not found", &apperr.NotFoundError{Resource: "interview", ID: 7}, http.StatusNotFound},
		{"persistence", &apperr.PersistenceError{Err: errors.New("db down")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, rec := testContext()
			respondError(ctx, tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestQueryUserID(t *testing.T) {
	ctx, rec := testContext()
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?user_id=42", nil)
	id, ok := queryUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, http.StatusOK, rec.Code)

	ctx, rec = testContext()
	_, ok = queryUserID(ctx)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ctx, rec = testContext()
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?user_id=abc", nil)
	_, ok = queryUserID(ctx)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
