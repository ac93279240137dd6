package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bloomcart/checkout-backend/api/middleware"
	"github.com/bloomcart/checkout-backend/api/responses"
	"github.com/bloomcart/checkout-backend/api/validators"
	checkoutsvc "github.com/bloomcart/checkout-backend/internal/checkout"
	pkgerrors "github.com/bloomcart/checkout-backend/pkg/errors"
	"github.com/bloomcart/checkout-backend/pkg/logger"
)

// CheckoutSessionCreate starts a new checkout session for the caller.
func CheckoutSessionCreate(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := callerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Create(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newSessionResponse(session))
	}
}

// CheckoutSessionFetch returns the caller's session by id.
func CheckoutSessionFetch(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, sessionID, err := callerAndSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Get(r.Context(), userID, sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newSessionResponse(session))
	}
}

type setFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// CheckoutSetField writes one form field and clears its recorded error.
func CheckoutSetField(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, sessionID, err := callerAndSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setFieldRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		field, err := checkoutsvc.ParseField(payload.Field)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid field"))
			return
		}

		session, err := svc.SetField(r.Context(), userID, sessionID, field, payload.Value)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newSessionResponse(session))
	}
}

// CheckoutAdvance validates the current step and moves forward when it passes.
func CheckoutAdvance(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, sessionID, err := callerAndSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Advance(r.Context(), userID, sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newSessionResponse(session))
	}
}

// CheckoutRetreat moves back one step without validating.
func CheckoutRetreat(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, sessionID, err := callerAndSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Retreat(r.Context(), userID, sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newSessionResponse(session))
	}
}

// CheckoutSubmit places the order from the review step.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, sessionID, err := callerAndSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, session, err := svc.Submit(r.Context(), userID, sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, submitResponse{
			Order:   summary,
			Session: newSessionResponse(session),
		})
	}
}

type sessionResponse struct {
	ID        uuid.UUID                    `json:"id"`
	Step      int                          `json:"step"`
	StepName  string                       `json:"step_name"`
	Form      checkoutsvc.FormState        `json:"form"`
	Errors    map[checkoutsvc.Field]string `json:"errors"`
	Status    string                       `json:"status"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

type submitResponse struct {
	Order   *checkoutsvc.OrderSummary `json:"order"`
	Session sessionResponse           `json:"session"`
}

func newSessionResponse(session *checkoutsvc.Session) sessionResponse {
	errs := session.Errors
	if errs == nil {
		errs = map[checkoutsvc.Field]string{}
	}
	return sessionResponse{
		ID:        session.ID,
		Step:      int(session.Step),
		StepName:  session.Step.String(),
		Form:      session.Form,
		Errors:    errs,
		Status:    session.Status.String(),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func callerID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return userID, nil
}

func callerAndSession(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	userID, err := callerID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid session id")
	}
	return userID, sessionID, nil
}
