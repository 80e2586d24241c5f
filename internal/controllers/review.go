package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dentalcare/internal/middleware"
	"dentalcare/internal/models"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type reviewPayload struct {
	Review string `json:"review" binding:"required,max=1000"`
}

type reviewResponse struct {
	ID        uint      `json:"id"`
	Review    string    `json:"review"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// List returns all reviews, newest first, with author usernames.
func (r *ReviewController) List(c *gin.Context) {
	var reviews []models.Review
	if err := r.db.Preload("User").Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load reviews"})
		return
	}
	out := make([]reviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		out = append(out, reviewResponse{
			ID:        rev.ID,
			Review:    rev.Review,
			Username:  rev.User.Username,
			CreatedAt: rev.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out})
}

func (r *ReviewController) Create(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var p reviewPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review := models.Review{UserID: id.UserID, Review: p.Review}
	if err := r.db.Create(&review).Error; err != nil {
		logrus.WithError(err).Error("review insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// Update changes the text of a review. Only the owning user may do this.
func (r *ReviewController) Update(c *gin.Context) {
	review, ok := r.ownedReview(c)
	if !ok {
		return
	}
	var p reviewPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := r.db.Model(&review).Update("review", p.Review).Error; err != nil {
		logrus.WithError(err).Error("review update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review updated"})
}

func (r *ReviewController) Delete(c *gin.Context) {
	review, ok := r.ownedReview(c)
	if !ok {
		return
	}
	if err := r.db.Delete(&review).Error; err != nil {
		logrus.WithError(err).Error("review delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

// ownedReview loads the review from the path id and enforces ownership,
// writing the error response itself when the check fails.
func (r *ReviewController) ownedReview(c *gin.Context) (models.Review, bool) {
	id, authed := middleware.CurrentIdentity(c)
	if !authed {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return models.Review{}, false
	}
	var review models.Review
	if err := r.db.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return models.Review{}, false
	}
	if review.UserID != id.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return models.Review{}, false
	}
	return review, true
}
