package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/api/responses"
	"github.com/skyburst/storefront-backend/api/validators"
	cartsvc "github.com/skyburst/storefront-backend/internal/cart"
	"github.com/skyburst/storefront-backend/internal/pricing"
	"github.com/skyburst/storefront-backend/pkg/enums"
	pkgerrors "github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/logger"
	"github.com/skyburst/storefront-backend/pkg/redis"
	"github.com/skyburst/storefront-backend/pkg/types"
)

const quoteCacheTTL = 10 * time.Minute

// QuoteRequest carries everything one pricing computation needs.
type QuoteRequest struct {
	Destination  string        `json:"destination" validate:"required,oneof=anywhere terminal"`
	Address      types.Address `json:"address"`
	NeedLiftGate bool          `json:"need_lift_gate"`
	TOSAccepted  bool          `json:"tos_accepted"`
}

// QuoteResponse is the derived cart state the storefront renders.
type QuoteResponse struct {
	Quote       pricing.Quote       `json:"quote"`
	Eligibility pricing.Eligibility `json:"eligibility"`
}

type cachedQuote struct {
	Destination  string        `json:"destination"`
	State        string        `json:"state"`
	NeedLiftGate bool          `json:"need_lift_gate"`
	Quote        pricing.Quote `json:"quote"`
}

// CartQuote prices a cart snapshot and evaluates the checkout gate.
func CartQuote(carts *cartsvc.Client, cache *redis.Client, settle *cartsvc.SettleTracker, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cartID, err := uuid.Parse(chi.URLParam(r, "cartID"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid cart id"))
			return
		}
		if logg != nil {
			ctx = logg.WithCartID(ctx, cartID.String())
		}

		var payload QuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		destination, err := enums.ParseDestination(payload.Destination)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid destination"))
			return
		}
		state := payload.Address.NormalizedState()

		quote := lookupCachedQuote(ctx, cache, cartID, payload, state)
		if quote == nil {
			lines, err := carts.GetLines(ctx, cartID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			quote, err = pricing.ComputeQuote(pricing.QuoteInput{
				Lines:        lines,
				Destination:  destination,
				StateCode:    state,
				NeedLiftGate: payload.NeedLiftGate,
			})
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			storeCachedQuote(ctx, cache, logg, cartID, payload, state, quote)
		}

		eligibility := pricing.CheckEligibility(pricing.EligibilityInput{
			AddressComplete: payload.Address.IsComplete(),
			StateShippable:  quote.Shippable,
			TOSAccepted:     payload.TOSAccepted,
			CartSettled:     settle == nil || settle.Settled(cartID),
		})

		responses.WriteSuccess(w, QuoteResponse{Quote: *quote, Eligibility: eligibility})
	}
}

// CartChanged records a cart mutation: the quote cache entry is dropped
// and the settle window re-armed so checkout stays gated until pricing
// catches up.
func CartChanged(cache *redis.Client, settle *cartsvc.SettleTracker, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cartID, err := uuid.Parse(chi.URLParam(r, "cartID"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid cart id"))
			return
		}
		if logg != nil {
			ctx = logg.WithCartID(ctx, cartID.String())
		}

		if settle != nil {
			settle.Touch(cartID)
		}
		if cache != nil {
			if err := cache.InvalidateQuote(ctx, cartID.String()); err != nil && logg != nil {
				logg.Warn(ctx, "failed to invalidate quote cache on cart change")
			}
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "acknowledged"})
	}
}

func lookupCachedQuote(ctx context.Context, cache *redis.Client, cartID uuid.UUID, payload QuoteRequest, state string) *pricing.Quote {
	if cache == nil {
		return nil
	}
	raw, err := cache.GetQuote(ctx, cartID.String())
	if err != nil {
		return nil
	}
	var cached cachedQuote
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil
	}
	if cached.Destination != payload.Destination || cached.State != state || cached.NeedLiftGate != payload.NeedLiftGate {
		return nil
	}
	return &cached.Quote
}

func storeCachedQuote(ctx context.Context, cache *redis.Client, logg *logger.Logger, cartID uuid.UUID, payload QuoteRequest, state string, quote *pricing.Quote) {
	if cache == nil {
		return
	}
	raw, err := json.Marshal(cachedQuote{
		Destination:  payload.Destination,
		State:        state,
		NeedLiftGate: payload.NeedLiftGate,
		Quote:        *quote,
	})
	if err != nil {
		return
	}
	if err := cache.SetQuote(ctx, cartID.String(), raw, quoteCacheTTL); err != nil && logg != nil {
		logg.Warn(ctx, "failed to cache quote")
	}
}
