package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	model "github.com/araad04/eqms/models"
	"github.com/araad04/eqms/pdf"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type reportState int

const (
	stateIdle reportState = iota
	stateGenerating
)

// reportRun is the request-scoped generation state: idle -> generating(kind)
// -> idle. Each request owns its own run value, so two concurrent
// generations never share a cursor or a flag.
type reportRun struct {
	kind  string
	state reportState
}

// ReportService builds review documents and stores the resulting artifacts.
type ReportService struct {
	db       *gorm.DB
	reviews  *ReviewService
	notifier Notifier
	s3Client *s3.S3
	bucket   string
	baseURL  string
}

// NewReportService wires the PDF pipeline to the review snapshot loader and
// the artifact store. Missing S3 configuration disables uploads (the PDF is
// still returned to the caller) rather than blocking startup.
func NewReportService(db *gorm.DB, reviews *ReviewService, notifier Notifier) (*ReportService, error) {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	svc := &ReportService{db: db, reviews: reviews, notifier: notifier}

	region := os.Getenv("S3_REGION")
	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")

	if region == "" || endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		log.Println("Warning: S3 configuration incomplete; generated reports will not be uploaded")
		return svc, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(region),
		Endpoint:         aws.String(endpoint),
		DisableSSL:       aws.Bool(false),
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	svc.s3Client = s3.New(sess)
	svc.bucket = bucket
	svc.baseURL = os.Getenv("S3_PUBLIC_URL")
	return svc, nil
}

// GeneratePresentation builds the landscape slide deck for a review.
func (s *ReportService) GeneratePresentation(reviewID string) (*pdf.Artifact, error) {
	return s.generate(reviewID, pdf.KindPresentation,
		func(rev model.Review, inputs []model.ReviewInput, actions []model.ActionItem, _ []model.User) (*pdf.Artifact, error) {
			return pdf.BuildPresentation(rev, inputs, actions)
		})
}

// GenerateMinutes builds the portrait minutes document for a review.
func (s *ReportService) GenerateMinutes(reviewID string) (*pdf.Artifact, error) {
	return s.generate(reviewID, pdf.KindMinutes,
		func(rev model.Review, inputs []model.ReviewInput, actions []model.ActionItem, users []model.User) (*pdf.Artifact, error) {
			return pdf.BuildMinutes(rev, inputs, actions, users)
		})
}

// GenerateAttendanceSheet builds the sign-in sheet for a review.
func (s *ReportService) GenerateAttendanceSheet(reviewID string) (*pdf.Artifact, error) {
	return s.generate(reviewID, pdf.KindAttendance,
		func(rev model.Review, _ []model.ReviewInput, _ []model.ActionItem, users []model.User) (*pdf.Artifact, error) {
			return pdf.BuildAttendanceSheet(rev, users)
		})
}

type builderFunc func(model.Review, []model.ReviewInput, []model.ActionItem, []model.User) (*pdf.Artifact, error)

// generate runs one document build end to end: load snapshot, compose,
// upload, record, notify. The run state resets on every exit path, success
// or failure, and a failed attempt produces no partial file (serialization
// happens only after all composers succeed).
func (s *ReportService) generate(reviewID, kind string, build builderFunc) (artifact *pdf.Artifact, err error) {
	run := &reportRun{kind: kind, state: stateGenerating}
	log.Printf("[generate] %s: generation started for review %s", kind, reviewID)
	defer func() {
		run.state = stateIdle
		if err != nil {
			title, desc := FailureNotification(kind)
			s.notifier.Failure(title, desc)
			log.Printf("[generate] %s: generation failed for review %s: %v", kind, reviewID, err)
		}
	}()

	rev, inputs, actions, users, err := s.reviews.GetReviewBundle(reviewID)
	if err != nil {
		return nil, err
	}

	artifact, err = build(*rev, inputs, actions, users)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", kind, err)
	}
	log.Printf("[generate] %s: built %s (%d pages, %d bytes)",
		kind, artifact.Filename, artifact.Pages, len(artifact.Bytes))

	// Upload and audit record are best-effort: the caller still gets the
	// document when the store is unreachable.
	fileURL := s.uploadArtifact(artifact)
	s.recordReport(reviewID, artifact, fileURL, len(inputs), len(actions), len(users))

	title, desc := SuccessNotification(kind)
	s.notifier.Success(title, desc)
	return artifact, nil
}

// uploadArtifact stores the PDF in the artifact bucket and returns its URL,
// or "" when S3 is not configured or the upload fails.
func (s *ReportService) uploadArtifact(artifact *pdf.Artifact) string {
	if s.s3Client == nil {
		return ""
	}

	key := fmt.Sprintf("reports/%s", artifact.Filename)
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(artifact.Bytes),
		ACL:         aws.String("public-read"),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		log.Printf("[uploadArtifact] S3 upload error for %s: %v", artifact.Filename, err)
		return ""
	}

	fileURL := fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
	log.Printf("[uploadArtifact] Report stored at: %s", fileURL)
	return fileURL
}

// recordReport writes the GeneratedReport audit row. Failures are logged
// and swallowed; the document was already built.
func (s *ReportService) recordReport(reviewID string, artifact *pdf.Artifact, fileURL string, inputCount, actionCount, attendeeCount int) {
	summary, err := json.Marshal(map[string]interface{}{
		"inputs":    inputCount,
		"actions":   actionCount,
		"attendees": attendeeCount,
		"pages":     artifact.Pages,
	})
	if err != nil {
		log.Printf("[recordReport] Error marshaling summary: %v", err)
		summary = []byte("{}")
	}

	record := model.GeneratedReport{
		ReviewID:  reviewID,
		Kind:      artifact.Kind,
		Filename:  artifact.Filename,
		ObjectKey: fmt.Sprintf("reports/%s", artifact.Filename),
		FileURL:   fileURL,
		SizeBytes: int64(len(artifact.Bytes)),
		Pages:     artifact.Pages,
		Summary:   datatypes.JSON(summary),
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("[recordReport] Error saving report record for review %s: %v", reviewID, err)
		return
	}
	log.Printf("[recordReport] Report record %s saved for review %s", record.ID, reviewID)
}

// GetReportsForReview lists the audit records of a review's generated documents.
func (s *ReportService) GetReportsForReview(reviewID string) ([]model.GeneratedReport, error) {
	var records []model.GeneratedReport
	if err := s.db.Where("review_id = ?", reviewID).Order("created_at DESC").Find(&records).Error; err != nil {
		log.Printf("[GetReportsForReview] Error fetching reports for review %s: %v", reviewID, err)
		return nil, fmt.Errorf("failed to fetch report records: %w", err)
	}
	return records, nil
}

// successNotification returns the fixed title/description pair emitted when
// a document of the given kind is generated.
func SuccessNotification(kind string) (string, string) {
	switch kind {
	case pdf.KindPresentation:
		return "Presentation Generated", "The management review presentation has been generated."
	case pdf.KindMinutes:
		return "Minutes Generated", "The management review minutes have been generated."
	case pdf.KindAttendance:
		return "Attendance Sheet Generated", "The attendance sheet has been generated."
	}
	return "Report Generated", "The requested document has been generated."
}

// failureNotification returns the fixed pair emitted when generation fails.
func FailureNotification(kind string) (string, string) {
	switch kind {
	case pdf.KindPresentation:
		return "Presentation Failed", "The management review presentation could not be generated."
	case pdf.KindMinutes:
		return "Minutes Failed", "The management review minutes could not be generated."
	case pdf.KindAttendance:
		return "Attendance Sheet Failed", "The attendance sheet could not be generated."
	}
	return "Report Failed", "The requested document could not be generated."
}
