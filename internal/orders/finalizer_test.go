package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/internal/checkout"
	"github.com/skyburst/storefront-backend/pkg/config"
	pkgerrors "github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/types"
)

func finalizeInput() checkout.FinalizeInput {
	return checkout.FinalizeInput{
		UserID:            uuid.New(),
		ShippingAddressID: uuid.New(),
		Amounts: types.Amounts{
			SubtotalCents:   50000,
			ShippingCents:   30000,
			TaxCents:        2113,
			GrandTotalCents: 82113,
		},
	}
}

func TestMakePurchasePostsSnapshot(t *testing.T) {
	in := finalizeInput()
	var captured map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/purchases" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	finalizer, err := NewFinalizer(config.OrdersAPIConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new finalizer: %v", err)
	}
	if err := finalizer.MakePurchase(context.Background(), in); err != nil {
		t.Fatalf("make purchase: %v", err)
	}

	var amounts types.Amounts
	if err := json.Unmarshal(captured["amounts"], &amounts); err != nil {
		t.Fatalf("decode amounts: %v", err)
	}
	if amounts != in.Amounts {
		t.Fatalf("amounts snapshot altered in flight: %+v", amounts)
	}
}

func TestMakePurchaseMapsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "write conflict", http.StatusConflict)
	}))
	defer server.Close()

	finalizer, err := NewFinalizer(config.OrdersAPIConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new finalizer: %v", err)
	}
	err = finalizer.MakePurchase(context.Background(), finalizeInput())
	if err == nil {
		t.Fatalf("expected upstream failure to surface")
	}
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestMakePurchaseValidatesIdentifiers(t *testing.T) {
	finalizer, err := NewFinalizer(config.OrdersAPIConfig{BaseURL: "http://localhost:1"})
	if err != nil {
		t.Fatalf("new finalizer: %v", err)
	}
	in := finalizeInput()
	in.UserID = uuid.Nil
	if err := finalizer.MakePurchase(context.Background(), in); err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestNewFinalizerRequiresBaseURL(t *testing.T) {
	if _, err := NewFinalizer(config.OrdersAPIConfig{}); err == nil {
		t.Fatalf("expected base url requirement")
	}
}
