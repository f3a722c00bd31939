package services

import (
	"fmt"
	"regexp"

	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var bannedWords = []string{
	"spam", "scam", "scammer", "phishing", "malware",
}

type ReviewService struct {
	db                *gorm.DB
	bannedWordRegexps []*regexp.Regexp
}

func NewReviewService(db *gorm.DB) *ReviewService {
	s := &ReviewService{db: db}
	for _, word := range bannedWords {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		if err == nil {
			s.bannedWordRegexps = append(s.bannedWordRegexps, re)
		}
	}
	return s
}

func (s *ReviewService) Create(userEmail string, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	for _, re := range s.bannedWordRegexps {
		if re.MatchString(req.Comment) {
			return nil, fmt.Errorf("%w: comment contains prohibited content", ErrInvalidInput)
		}
	}

	review := models.Review{
		ID:        uuid.New(),
		UserEmail: userEmail,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

func (s *ReviewService) List() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
