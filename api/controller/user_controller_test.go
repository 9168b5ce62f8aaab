package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clerk-user-sync/api/middleware"
	"clerk-user-sync/domain/entity"
	"clerk-user-sync/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserRouter(repo *fakeUserRepository, userID string) *gin.Engine {
	uc := usecase.NewUserSyncUseCase(repo, time.Now)
	ctrl := NewUserController(uc, zap.NewNop())

	r := gin.New()
	r.GET("/api/users/me", func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextKeyUserID, userID)
		}
		c.Next()
	}, ctrl.GetMe)
	return r
}

func TestUserController_GetMe(t *testing.T) {
	repo := newFakeUserRepository()
	email, first := "a@example.com", "Ada"
	require.NoError(t, repo.Upsert(context.Background(), &entity.User{
		ID:        "user_1",
		Email:     &email,
		FirstName: &first,
		UpdatedAt: time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
	}))

	w := httptest.NewRecorder()
	newUserRouter(repo, "user_1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user_1", resp.ID)
	assert.Equal(t, "a@example.com", *resp.Email)
	assert.Equal(t, "Ada", *resp.FirstName)
	assert.Nil(t, resp.LastName)
	assert.Equal(t, "2026-10-15T08:00:00Z", resp.UpdatedAt)
}

func TestUserController_GetMe_NotSynced(t *testing.T) {
	w := httptest.NewRecorder()
	newUserRouter(newFakeUserRepository(), "user_404").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserController_GetMe_NoUser(t *testing.T) {
	w := httptest.NewRecorder()
	newUserRouter(newFakeUserRepository(), "").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
