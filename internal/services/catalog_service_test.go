package services

import (
	"errors"
	"testing"

	"github.com/drilledtools/backend/internal/dto"
	"github.com/shopspring/decimal"
)

func TestCatalogService_CreateValidation(t *testing.T) {
	db := newTestDB(t, "catalogvalid")
	svc := NewCatalogService(db)

	cases := []struct {
		name string
		req  dto.CreateItemRequest
	}{
		{"empty name", dto.CreateItemRequest{Price: decimal.NewFromInt(5), Quantity: 1}},
		{"zero price", dto.CreateItemRequest{Name: "drill", Price: decimal.Zero, Quantity: 1}},
		{"negative price", dto.CreateItemRequest{Name: "drill", Price: decimal.NewFromInt(-1), Quantity: 1}},
		{"negative quantity", dto.CreateItemRequest{Name: "drill", Price: decimal.NewFromInt(5), Quantity: -1}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(&tc.req); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestCatalogService_CRUD(t *testing.T) {
	db := newTestDB(t, "catalogcrud")
	svc := NewCatalogService(db)

	item, err := svc.Create(&dto.CreateItemRequest{
		Name:     "hammer drill",
		Price:    decimal.RequireFromString("10.00"),
		Quantity: 3,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Price.Equal(decimal.RequireFromString("10.00")) || got.Quantity != 3 {
		t.Fatalf("stored item mismatch: %+v", got)
	}

	qty := 7
	got, err = svc.Update(item.ID, &dto.UpdateItemRequest{Quantity: &qty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Quantity != 7 {
		t.Fatalf("quantity after update = %d, want 7", got.Quantity)
	}

	if err := svc.Delete(item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get deleted = %v, want ErrNotFound", err)
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price string
		want  int64
	}{
		{"10.00", 1000},
		{"10", 1000},
		{"0.01", 1},
		{"19.99", 1999},
		{"19.999", 2000},
	}
	for _, tc := range cases {
		got := MinorUnits(decimal.RequireFromString(tc.price))
		if got != tc.want {
			t.Errorf("MinorUnits(%s) = %d, want %d", tc.price, got, tc.want)
		}
	}
}
