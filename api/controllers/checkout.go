package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/api/responses"
	"github.com/skyburst/storefront-backend/api/validators"
	checkoutsvc "github.com/skyburst/storefront-backend/internal/checkout"
	"github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/helcim"
	"github.com/skyburst/storefront-backend/pkg/logger"
	"github.com/skyburst/storefront-backend/pkg/types"
)

// CheckoutStartRequest commits a shopper to pay a frozen snapshot.
type CheckoutStartRequest struct {
	CartID            uuid.UUID     `json:"cart_id" validate:"required"`
	UserID            uuid.UUID     `json:"user_id" validate:"required"`
	ShippingAddressID uuid.UUID     `json:"shipping_address_id" validate:"required"`
	Amounts           types.Amounts `json:"amounts" validate:"required"`
}

// CheckoutStartResponse returns the token the widget mounts against.
type CheckoutStartResponse struct {
	CheckoutToken string `json:"checkout_token"`
	Status        string `json:"status"`
}

// CheckoutEventRequest is one relayed hosted-payment widget event.
type CheckoutEventRequest struct {
	EventName   string `json:"event_name" validate:"required"`
	EventStatus string `json:"event_status" validate:"required"`
}

// CheckoutStatusResponse is the session state the storefront polls.
type CheckoutStatusResponse struct {
	CheckoutToken string `json:"checkout_token"`
	Status        string `json:"status"`
	FinalizeError string `json:"finalize_error,omitempty"`
}

// CheckoutStart begins a payment attempt for a cart.
func CheckoutStart(coordinator *checkoutsvc.Coordinator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload CheckoutStartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		session, err := coordinator.Start(ctx, checkoutsvc.StartInput{
			CartID:            payload.CartID,
			UserID:            payload.UserID,
			ShippingAddressID: payload.ShippingAddressID,
			Amounts:           payload.Amounts,
			InvoiceNumber:     payload.CartID.String(),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		status, _ := session.Status()
		responses.WriteSuccessStatus(w, http.StatusCreated, CheckoutStartResponse{
			CheckoutToken: session.Token(),
			Status:        status.String(),
		})
	}
}

// CheckoutEvents ingests relayed widget events. Events whose name does
// not match the live token for this path are dropped with a 404 so the
// relay can tell a stale page apart from a delivery.
func CheckoutEvents(coordinator *checkoutsvc.Coordinator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := chi.URLParam(r, "token")
		if logg != nil {
			ctx = logg.WithCheckoutToken(ctx, token)
		}

		var payload CheckoutEventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		event := helcim.PayEvent{EventName: payload.EventName, EventStatus: payload.EventStatus}
		if !event.Matches(token) || !coordinator.Deliver(event) {
			responses.WriteError(ctx, logg, w, errors.New(errors.CodeNotFound, "no live checkout for this token"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "delivered"})
	}
}

// CheckoutCancel aborts a live attempt. Repeat cancels are harmless.
func CheckoutCancel(coordinator *checkoutsvc.Coordinator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := chi.URLParam(r, "token")

		session, ok := coordinator.Lookup(token)
		if !ok {
			responses.WriteError(ctx, logg, w, errors.New(errors.CodeNotFound, "no live checkout for this token"))
			return
		}
		session.Cancel()
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "canceling"})
	}
}

// CheckoutResume signals that the shopper's context regained visibility
// while a payment was pending.
func CheckoutResume(coordinator *checkoutsvc.Coordinator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := chi.URLParam(r, "token")

		session, ok := coordinator.Lookup(token)
		if !ok {
			responses.WriteError(ctx, logg, w, errors.New(errors.CodeNotFound, "no live checkout for this token"))
			return
		}
		session.Resume()
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "resumed"})
	}
}

// CheckoutStatus returns the state of a live attempt.
func CheckoutStatus(coordinator *checkoutsvc.Coordinator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := chi.URLParam(r, "token")

		session, ok := coordinator.Lookup(token)
		if !ok {
			responses.WriteError(ctx, logg, w, errors.New(errors.CodeNotFound, "no live checkout for this token"))
			return
		}

		status, finalizeErr := session.Status()
		resp := CheckoutStatusResponse{
			CheckoutToken: session.Token(),
			Status:        status.String(),
		}
		if finalizeErr != nil {
			resp.FinalizeError = finalizeErr.Error()
		}
		responses.WriteSuccess(w, resp)
	}
}

// CheckoutHeartbeat keeps the payment surface's presence alive while
// the shopper has the widget open.
func CheckoutHeartbeat(coordinator *checkoutsvc.Coordinator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := chi.URLParam(r, "token")

		if !coordinator.Heartbeat(token) {
			responses.WriteError(ctx, logg, w, errors.New(errors.CodeNotFound, "no live checkout for this token"))
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "alive"})
	}
}
