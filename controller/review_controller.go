package controller

import (
	"log"
	"net/http"

	model "github.com/araad04/eqms/models"
	service "github.com/araad04/eqms/service"

	"github.com/gin-gonic/gin"
)

// ReviewController manages HTTP requests for management reviews.
type ReviewController struct {
	service *service.ReviewService
}

// NewReviewController initializes the controller with the service
func NewReviewController(service *service.ReviewService) *ReviewController {
	return &ReviewController{service}
}

// CreateReview handles review creation
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var rev model.Review
	if err := ctx.ShouldBindJSON(&rev); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review payload", "details": err.Error()})
		return
	}

	if err := c.service.CreateReview(&rev); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Review created successfully",
		"review":  rev,
	})
}

// GetAllReviews retrieves all reviews from the database
func (c *ReviewController) GetAllReviews(ctx *gin.Context) {
	log.Println("ReviewController: Fetching all reviews")

	reviews, err := c.service.GetAllReviews()
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve reviews",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

// GetReview retrieves a single review with its inputs, actions and attendees
func (c *ReviewController) GetReview(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Review ID required"})
		return
	}

	rev, inputs, actions, users, err := c.service.GetReviewBundle(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"review":    rev,
		"inputs":    inputs,
		"actions":   actions,
		"attendees": users,
	})
}

// SearchReviews runs a full-text search over the review index
func (c *ReviewController) SearchReviews(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	results, err := c.service.SearchReviews(query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"results": results,
	})
}

// AddReviewInput attaches an input item to a review
func (c *ReviewController) AddReviewInput(ctx *gin.Context) {
	reviewID := ctx.Param("id")
	if reviewID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Review ID required"})
		return
	}

	var input model.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input payload", "details": err.Error()})
		return
	}
	input.ReviewID = reviewID

	if err := c.service.AddReviewInput(&input); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Review input added successfully",
		"input":   input,
	})
}

// AddActionItem attaches an action item to a review
func (c *ReviewController) AddActionItem(ctx *gin.Context) {
	reviewID := ctx.Param("id")
	if reviewID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Review ID required"})
		return
	}

	var item model.ActionItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action item payload", "details": err.Error()})
		return
	}
	item.ReviewID = reviewID

	if err := c.service.AddActionItem(&item); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Action item added successfully",
		"item":    item,
	})
}

// CompleteActionItem marks an action as completed
func (c *ReviewController) CompleteActionItem(ctx *gin.Context) {
	actionID := ctx.Param("id")
	if actionID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Action ID required"})
		return
	}
	if err := c.service.CompleteActionItem(actionID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Action item marked as completed"})
}
