package services

import (
	"context"
	"errors"
	"testing"

	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/models"
	"github.com/drilledtools/backend/internal/payments"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string) (*payments.Intent, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.lastAmount = amount
	g.lastCurrency = currency
	return &payments.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

func TestPaymentService_CreateIntentConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(nil, gw, "usd")

	intent, err := svc.CreateIntent(context.Background(), decimal.RequireFromString("10.00"))
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if intent.ClientSecret != "pi_test_secret" {
		t.Fatalf("client secret mismatch: %q", intent.ClientSecret)
	}
	if gw.lastAmount != 1000 || gw.lastCurrency != "usd" {
		t.Fatalf("gateway called with amount=%d currency=%q", gw.lastAmount, gw.lastCurrency)
	}
}

func TestPaymentService_CreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := NewPaymentService(nil, &fakeGateway{}, "usd")
	if _, err := svc.CreateIntent(context.Background(), decimal.Zero); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero price = %v, want ErrInvalidInput", err)
	}
}

func TestPaymentService_CreateIntentSurfacesGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: payments.ErrGatewayUnavailable}
	svc := NewPaymentService(nil, gw, "usd")
	if _, err := svc.CreateIntent(context.Background(), decimal.NewFromInt(5)); !errors.Is(err, payments.ErrGatewayUnavailable) {
		t.Fatalf("gateway error = %v, want ErrGatewayUnavailable", err)
	}
}

func TestPaymentService_ConfirmPaymentTransitionsAndLinksReceipt(t *testing.T) {
	db := newTestDB(t, "paymentconfirm")
	item := seedItem(t, db, 1)
	purchases := NewPurchaseService(db)
	svc := NewPaymentService(db, &fakeGateway{}, "usd")

	p, err := purchases.Create("a@x.com", &dto.CreatePurchaseRequest{ItemID: item.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create purchase: %v", err)
	}

	paid, err := svc.ConfirmPayment(p.ID, "tx_1", decimal.RequireFromString("10.00"), "")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !paid.Paid || paid.Delivery {
		t.Fatalf("state after confirm: %+v", paid)
	}
	if paid.TransactionID == nil || *paid.TransactionID != "tx_1" {
		t.Fatalf("transaction id not bound: %+v", paid.TransactionID)
	}

	receipt, err := svc.ReceiptFor(p.ID)
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if receipt.TransactionID != "tx_1" || receipt.Currency != "usd" {
		t.Fatalf("receipt mismatch: %+v", receipt)
	}
}

func TestPaymentService_ConfirmPaymentIsIdempotent(t *testing.T) {
	db := newTestDB(t, "paymentidem")
	item := seedItem(t, db, 1)
	purchases := NewPurchaseService(db)
	svc := NewPaymentService(db, &fakeGateway{}, "usd")

	p, err := purchases.Create("a@x.com", &dto.CreatePurchaseRequest{ItemID: item.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create purchase: %v", err)
	}

	first, err := svc.ConfirmPayment(p.ID, "tx_1", decimal.RequireFromString("10.00"), "")
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	second, err := svc.ConfirmPayment(p.ID, "tx_1", decimal.RequireFromString("10.00"), "")
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}

	if *first.TransactionID != *second.TransactionID || first.Paid != second.Paid {
		t.Fatalf("second confirm diverged: %+v vs %+v", first, second)
	}

	var receipts int64
	db.Model(&models.PaymentReceipt{}).Where("purchase_id = ?", p.ID).Count(&receipts)
	if receipts != 1 {
		t.Fatalf("receipt count = %d, want exactly 1", receipts)
	}
}

func TestPaymentService_ConfirmPaymentMissingPurchase(t *testing.T) {
	db := newTestDB(t, "paymentmissing")
	svc := NewPaymentService(db, &fakeGateway{}, "usd")

	if _, err := svc.ConfirmPayment(uuid.New(), "tx_1", decimal.NewFromInt(5), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing purchase = %v, want ErrNotFound", err)
	}
}

// Random interleavings of create and confirm must keep transactionId and paid
// in lockstep.
func TestPaymentService_TransactionIDIffPaid(t *testing.T) {
	db := newTestDB(t, "paymentinvariant")
	item := seedItem(t, db, 100)
	purchases := NewPurchaseService(db)
	svc := NewPaymentService(db, &fakeGateway{}, "usd")

	for i := 0; i < 20; i++ {
		p, err := purchases.Create("a@x.com", &dto.CreatePurchaseRequest{ItemID: item.ID, Quantity: 1})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if i%3 == 0 {
			if _, err := svc.ConfirmPayment(p.ID, "tx_inv", decimal.NewFromInt(10), ""); err != nil {
				t.Fatalf("confirm: %v", err)
			}
		}
	}

	var all []models.Purchase
	db.Find(&all)
	for _, p := range all {
		hasTxn := p.TransactionID != nil && *p.TransactionID != ""
		if hasTxn != p.Paid {
			t.Fatalf("invariant broken: paid=%v transactionId=%v", p.Paid, p.TransactionID)
		}
	}
}

// Full lifecycle walk: created -> paid -> delivered, with an idempotent
// re-confirmation at the end.
func TestPaymentService_EndToEndLifecycle(t *testing.T) {
	db := newTestDB(t, "paymentlifecycle")
	item := seedItem(t, db, 1)
	purchases := NewPurchaseService(db)
	svc := NewPaymentService(db, &fakeGateway{}, "usd")

	p, err := purchases.Create("a@x.com", &dto.CreatePurchaseRequest{ItemID: item.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.ConfirmPayment(p.ID, "tx_1", decimal.RequireFromString("10.00"), ""); err != nil {
		t.Fatalf("confirm payment: %v", err)
	}

	delivered, err := purchases.ConfirmDelivery(p.ID)
	if err != nil {
		t.Fatalf("confirm delivery: %v", err)
	}
	if !delivered.Paid || !delivered.Delivery {
		t.Fatalf("state after delivery: %+v", delivered)
	}

	// Re-confirming after delivery stays a no-op with a single receipt.
	again, err := svc.ConfirmPayment(p.ID, "tx_1", decimal.RequireFromString("10.00"), "")
	if err != nil {
		t.Fatalf("re-confirm: %v", err)
	}
	if !again.Delivery {
		t.Fatalf("re-confirm reset delivery: %+v", again)
	}
	var receipts int64
	db.Model(&models.PaymentReceipt{}).Where("purchase_id = ?", p.ID).Count(&receipts)
	if receipts != 1 {
		t.Fatalf("receipt count = %d, want 1", receipts)
	}

	// Delivery cannot be confirmed twice.
	if _, err := purchases.ConfirmDelivery(p.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second delivery = %v, want ErrInvalidState", err)
	}
}
