package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	model "github.com/araad04/eqms/models"

	"github.com/elastic/go-elasticsearch/v8"
	"gorm.io/gorm"
)

// ReviewService handles management review records and their search index.
type ReviewService struct {
	db       *gorm.DB
	esClient *elasticsearch.Client
}

// NewReviewService initializes the service with the database handle and an
// optional Elasticsearch client. A missing ELASTICSEARCH_URL only disables
// search; it never blocks startup.
func NewReviewService(db *gorm.DB) (*ReviewService, error) {
	esURL := os.Getenv("ELASTICSEARCH_URL")
	var esClient *elasticsearch.Client
	if esURL != "" {
		esConfig := elasticsearch.Config{
			Addresses: []string{esURL},
		}
		var err error
		esClient, err = elasticsearch.NewClient(esConfig)
		if err != nil {
			log.Printf("Warning: Failed to create Elasticsearch client: %v", err)
		}
	}

	return &ReviewService{db: db, esClient: esClient}, nil
}

// CreateReview stores a new review and indexes it for search.
func (s *ReviewService) CreateReview(rev *model.Review) error {
	rev.Status = orDefault(rev.Status, "scheduled")
	rev.ReviewType = orDefault(rev.ReviewType, "scheduled")
	rev.CreatedAt = time.Now()
	rev.UpdatedAt = time.Now()

	if err := s.db.Create(rev).Error; err != nil {
		log.Printf("[CreateReview] Error saving review: %v", err)
		return fmt.Errorf("failed to save review: %w", err)
	}
	log.Printf("[CreateReview] Review %s created", rev.ID)

	s.indexReview(*rev)
	return nil
}

// GetReview fetches a single review by ID.
func (s *ReviewService) GetReview(id string) (*model.Review, error) {
	var rev model.Review
	if err := s.db.First(&rev, "id = ?", id).Error; err != nil {
		log.Printf("[GetReview] Error fetching review %s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch review %s: %w", id, err)
	}
	return &rev, nil
}

// GetAllReviews lists every review, newest first.
func (s *ReviewService) GetAllReviews() ([]model.Review, error) {
	var reviews []model.Review
	if err := s.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		log.Printf("[GetAllReviews] Error fetching reviews: %v", err)
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	log.Printf("[GetAllReviews] Retrieved %d reviews", len(reviews))
	return reviews, nil
}

// GetReviewBundle loads the immutable snapshot a document build consumes:
// the review plus its inputs, actions and attendees in insertion order.
// The generator never touches the database again after this.
func (s *ReviewService) GetReviewBundle(id string) (*model.Review, []model.ReviewInput, []model.ActionItem, []model.User, error) {
	rev, err := s.GetReview(id)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var inputs []model.ReviewInput
	if err := s.db.Where("review_id = ?", id).Order("created_at ASC").Find(&inputs).Error; err != nil {
		log.Printf("[GetReviewBundle] Error fetching inputs for review %s: %v", id, err)
		return nil, nil, nil, nil, fmt.Errorf("failed to fetch review inputs: %w", err)
	}

	var actions []model.ActionItem
	if err := s.db.Where("review_id = ?", id).Order("created_at ASC").Find(&actions).Error; err != nil {
		log.Printf("[GetReviewBundle] Error fetching actions for review %s: %v", id, err)
		return nil, nil, nil, nil, fmt.Errorf("failed to fetch action items: %w", err)
	}

	var users []model.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		log.Printf("[GetReviewBundle] Error fetching attendees: %v", err)
		return nil, nil, nil, nil, fmt.Errorf("failed to fetch attendees: %w", err)
	}

	log.Printf("[GetReviewBundle] Review %s: %d inputs, %d actions, %d attendees",
		id, len(inputs), len(actions), len(users))
	return rev, inputs, actions, users, nil
}

// AddReviewInput attaches an input item to a review.
func (s *ReviewService) AddReviewInput(input *model.ReviewInput) error {
	input.CreatedAt = time.Now()
	if err := s.db.Create(input).Error; err != nil {
		log.Printf("[AddReviewInput] Error saving input: %v", err)
		return fmt.Errorf("failed to save review input: %w", err)
	}
	log.Printf("[AddReviewInput] Input %s added to review %s", input.ID, input.ReviewID)
	return nil
}

// AddActionItem attaches an action item to a review.
func (s *ReviewService) AddActionItem(item *model.ActionItem) error {
	item.Status = orDefault(item.Status, "pending")
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	if err := s.db.Create(item).Error; err != nil {
		log.Printf("[AddActionItem] Error saving action item: %v", err)
		return fmt.Errorf("failed to save action item: %w", err)
	}
	log.Printf("[AddActionItem] Action %s added to review %s", item.ID, item.ReviewID)
	return nil
}

// CompleteActionItem marks an action as completed.
func (s *ReviewService) CompleteActionItem(actionID string) error {
	var action model.ActionItem
	if err := s.db.First(&action, "id = ?", actionID).Error; err != nil {
		log.Printf("[CompleteActionItem] Error fetching action item %s: %v", actionID, err)
		return fmt.Errorf("failed to fetch action item %s: %w", actionID, err)
	}

	if err := s.db.Model(&action).Updates(map[string]interface{}{
		"Status":    "completed",
		"UpdatedAt": time.Now(),
	}).Error; err != nil {
		log.Printf("[CompleteActionItem] Error updating action item %s: %v", actionID, err)
		return fmt.Errorf("failed to update action item %s: %w", actionID, err)
	}
	log.Printf("[CompleteActionItem] Action item %s marked completed", actionID)
	return nil
}

// indexReview indexes the review in Elasticsearch. Indexing failures are
// logged and swallowed so they never break the write path.
func (s *ReviewService) indexReview(rev model.Review) {
	if s.esClient == nil {
		log.Println("Elasticsearch client not initialized. Skipping indexing.")
		return
	}

	doc := map[string]interface{}{
		"title":       rev.Title,
		"status":      rev.Status,
		"review_type": rev.ReviewType,
		"description": rev.Description,
		"timestamp":   time.Now().UTC(),
	}

	body, err := json.Marshal(doc)
	if err != nil {
		log.Printf("[indexReview] Error marshaling review %s: %v", rev.ID, err)
		return
	}

	res, err := s.esClient.Index(
		"reviews",
		bytes.NewReader(body),
		s.esClient.Index.WithDocumentID(rev.ID),
		s.esClient.Index.WithContext(context.Background()),
	)
	if err != nil {
		log.Printf("[indexReview] Elasticsearch indexing error: %v", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("[indexReview] Elasticsearch indexing failed: %s", res.String())
		return
	}
	log.Printf("[indexReview] Review %s indexed", rev.ID)
}

// SearchReviews runs a multi_match query over the review index.
func (s *ReviewService) SearchReviews(query string) ([]map[string]interface{}, error) {
	if s.esClient == nil {
		return nil, fmt.Errorf("elasticsearch client is not initialized")
	}

	searchQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title", "description"},
			},
		},
	}
	body, err := json.Marshal(searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(context.Background()),
		s.esClient.Search.WithIndex("reviews"),
		s.esClient.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch search failed: %s", res.String())
	}

	var result map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hitsMap, ok := result["hits"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid hits structure in search response")
	}
	hitsArray, ok := hitsMap["hits"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid hits array in search response")
	}

	var reviews []map[string]interface{}
	for _, hit := range hitsArray {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		source, ok := hitMap["_source"].(map[string]interface{})
		if !ok {
			continue
		}
		reviews = append(reviews, source)
	}
	return reviews, nil
}

// orDefault centralizes the empty-field fallback used across the services.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
