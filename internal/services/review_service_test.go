package services

import (
	"errors"
	"testing"

	"github.com/drilledtools/backend/internal/dto"
)

func TestReviewService_Create(t *testing.T) {
	db := newTestDB(t, "reviewsvc")
	svc := NewReviewService(db)

	review, err := svc.Create("alice@x.com", &dto.CreateReviewRequest{
		Name: "Alice", Rating: 5, Comment: "great drill",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if review.UserEmail != "alice@x.com" || review.Rating != 5 {
		t.Fatalf("stored review mismatch: %+v", review)
	}

	list, err := svc.List()
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
}

func TestReviewService_Validation(t *testing.T) {
	db := newTestDB(t, "reviewvalid")
	svc := NewReviewService(db)

	if _, err := svc.Create("a@x.com", &dto.CreateReviewRequest{Rating: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("rating 0 = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create("a@x.com", &dto.CreateReviewRequest{Rating: 6}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("rating 6 = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create("a@x.com", &dto.CreateReviewRequest{Rating: 3, Comment: "this is SPAM"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("banned word = %v, want ErrInvalidInput", err)
	}
}
