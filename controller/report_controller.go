package controller

import (
	"fmt"
	"log"
	"net/http"

	service "github.com/araad04/eqms/service"

	"github.com/araad04/eqms/pdf"
	"github.com/gin-gonic/gin"
)

// ReportController serves the generated review documents.
type ReportController struct {
	service *service.ReportService
}

func NewReportController(service *service.ReportService) *ReportController {
	return &ReportController{service}
}

// GeneratePresentation renders and returns the presentation PDF
func (c *ReportController) GeneratePresentation(ctx *gin.Context) {
	c.serveReport(ctx, pdf.KindPresentation, c.service.GeneratePresentation)
}

// GenerateMinutes renders and returns the minutes PDF
func (c *ReportController) GenerateMinutes(ctx *gin.Context) {
	c.serveReport(ctx, pdf.KindMinutes, c.service.GenerateMinutes)
}

// GenerateAttendanceSheet renders and returns the attendance sheet PDF
func (c *ReportController) GenerateAttendanceSheet(ctx *gin.Context) {
	c.serveReport(ctx, pdf.KindAttendance, c.service.GenerateAttendanceSheet)
}

// serveReport runs one generation and streams the resulting PDF. The error
// body carries the same title/description pair the notifier emits.
func (c *ReportController) serveReport(ctx *gin.Context, kind string, generate func(string) (*pdf.Artifact, error)) {
	reviewID := ctx.Param("id")
	if reviewID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Review ID required"})
		return
	}

	artifact, err := generate(reviewID)
	if err != nil {
		log.Printf("[serveReport] %s generation failed for review %s: %v", kind, reviewID, err)
		title, description := service.FailureNotification(kind)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"title":       title,
			"description": description,
			"error":       err.Error(),
		})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	ctx.Data(http.StatusOK, "application/pdf", artifact.Bytes)
}

// GetReports lists the generated-report audit records of a review
func (c *ReportController) GetReports(ctx *gin.Context) {
	reviewID := ctx.Param("id")
	if reviewID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Review ID required"})
		return
	}

	records, err := c.service.GetReportsForReview(reviewID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"reports": records,
		"total":   len(records),
	})
}
