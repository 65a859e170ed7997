package contactControllers

import (
	"net/http"
	"time"

	"github.com/Deepakbasel-7/Sajilo-mart/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type contactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// POST /contact
func CreateContactMessageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input contactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		msg := models.ContactMessage{
			Name:          input.Name,
			Email:         input.Email,
			Message:       input.Message,
			DateSubmitted: time.Now(),
		}
		if err := db.Create(&msg).Error; err != nil {
			log.WithField("kind", "Unexpected").Error("contact message save failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Message received"})
	}
}

type reviewInput struct {
	UserName   string `json:"user_name" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text" binding:"required"`
}

// GET /reviews
func GetReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /reviews
func CreateReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input reviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review := models.Review{
			UserName:   input.UserName,
			UserType:   "Customer",
			Rating:     input.Rating,
			ReviewText: input.ReviewText,
			CreatedAt:  time.Now(),
		}
		if err := db.Create(&review).Error; err != nil {
			log.WithField("kind", "Unexpected").Error("review save failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}
