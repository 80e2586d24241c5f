package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dentalcare/internal/middleware"
	"dentalcare/internal/models"
)

func newReviewRouter(conn *gorm.DB) *gin.Engine {
	rc := NewReviewController(conn)
	r := gin.New()
	r.GET("/api/reviews", rc.List)
	authed := r.Group("/api", middleware.Session(testSecret))
	authed.POST("/reviews", rc.Create)
	authed.PUT("/reviews/:id", rc.Update)
	authed.DELETE("/reviews/:id", rc.Delete)
	return r
}

func createReview(t *testing.T, conn *gorm.DB, user models.User, text string, at time.Time) models.Review {
	t.Helper()
	review := models.Review{UserID: user.ID, Review: text, CreatedAt: at}
	require.NoError(t, conn.Create(&review).Error)
	return review
}

func TestReviewListNewestFirst(t *testing.T) {
	conn := newTestDB(t)
	user := createUser(t, conn, "alice", "alice@x.com", models.RoleUser)
	now := time.Now()
	createReview(t, conn, user, "older", now.Add(-time.Hour))
	createReview(t, conn, user, "newer", now)
	r := newReviewRouter(conn)

	w := doJSON(t, r, http.MethodGet, "/api/reviews", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	reviews, _ := decodeBody(t, w)["reviews"].([]any)
	require.Len(t, reviews, 2)
	first, _ := reviews[0].(map[string]any)
	assert.Equal(t, "newer", first["review"])
	assert.Equal(t, "alice", first["username"])
}

func TestReviewCreateRequiresSession(t *testing.T) {
	conn := newTestDB(t)
	r := newReviewRouter(conn)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", gin.H{"review": "nice clinic"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewCreate(t *testing.T) {
	conn := newTestDB(t)
	user := createUser(t, conn, "alice", "alice@x.com", models.RoleUser)
	r := newReviewRouter(conn)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", gin.H{"review": "nice clinic"}, sessionToken(t, user))
	require.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	require.NoError(t, conn.First(&review).Error)
	assert.Equal(t, user.ID, review.UserID)
	assert.Equal(t, "nice clinic", review.Review)
}

func TestReviewUpdateOwnerOnly(t *testing.T) {
	conn := newTestDB(t)
	owner := createUser(t, conn, "alice", "alice@x.com", models.RoleUser)
	other := createUser(t, conn, "bob", "bob@x.com", models.RoleUser)
	review := createReview(t, conn, owner, "original", time.Now())
	r := newReviewRouter(conn)
	path := "/api/reviews/" + itoa(review.ID)

	w := doJSON(t, r, http.MethodPut, path, gin.H{"review": "hacked"}, sessionToken(t, other))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, path, gin.H{"review": "edited"}, sessionToken(t, owner))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, conn.First(&review, review.ID).Error)
	assert.Equal(t, "edited", review.Review)
}

func TestReviewDeleteOwnerOnly(t *testing.T) {
	conn := newTestDB(t)
	owner := createUser(t, conn, "alice", "alice@x.com", models.RoleUser)
	other := createUser(t, conn, "bob", "bob@x.com", models.RoleUser)
	review := createReview(t, conn, owner, "to delete", time.Now())
	r := newReviewRouter(conn)
	path := "/api/reviews/" + itoa(review.ID)

	// anonymous and non-owner identities are both rejected
	w := doJSON(t, r, http.MethodDelete, path, nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, r, http.MethodDelete, path, nil, sessionToken(t, other))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, nil, sessionToken(t, owner))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, conn.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReviewUpdateMissing(t *testing.T) {
	conn := newTestDB(t)
	user := createUser(t, conn, "alice", "alice@x.com", models.RoleUser)
	r := newReviewRouter(conn)

	w := doJSON(t, r, http.MethodPut, "/api/reviews/42", gin.H{"review": "x"}, sessionToken(t, user))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
