package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/pkg/config"
	pkgerrors "github.com/skyburst/storefront-backend/pkg/errors"
)

func TestGetLinesDecodesSnapshot(t *testing.T) {
	t.Parallel()

	cartID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/carts/"+cartID.String()+"/lines" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"product":{"title":"Artillery Shells","sku":"AS-24","case_price_cents":24000,"unit_product":{"unit_price_cents":1500}},"case_quantity":2,"unit_quantity":3},
			{"product":{"title":"Crew Tee","sku":"TEE-1","is_apparel":true},"unit_quantity":1,"variant":{"unit_price_cents":2200,"size":"L"}}
		]}`))
	}))
	defer server.Close()

	client, err := NewClient(config.CartAPIConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	lines, err := client.GetLines(context.Background(), cartID)
	if err != nil {
		t.Fatalf("get lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].SubtotalCents() != 52500 {
		t.Fatalf("unexpected subtotal: %d", lines[0].SubtotalCents())
	}
	if !lines[1].Product.IsApparel || lines[1].Variant == nil {
		t.Fatalf("apparel line not decoded: %+v", lines[1])
	}
}

func TestGetLinesMapsNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, err := NewClient(config.CartAPIConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	_, err = client.GetLines(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGetLinesRequiresCartID(t *testing.T) {
	t.Parallel()

	client, err := NewClient(config.CartAPIConfig{BaseURL: "http://localhost:9"})
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	_, err = client.GetLines(context.Background(), uuid.Nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
