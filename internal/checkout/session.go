package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bloomcart/checkout-backend/internal/cart"
	"github.com/bloomcart/checkout-backend/internal/payment"
	"github.com/bloomcart/checkout-backend/internal/profile"
	"github.com/bloomcart/checkout-backend/pkg/config"
	"github.com/bloomcart/checkout-backend/pkg/enums"
	pkgerrors "github.com/bloomcart/checkout-backend/pkg/errors"
	"github.com/bloomcart/checkout-backend/pkg/logger"
	"github.com/bloomcart/checkout-backend/pkg/metrics"
)

// Session is one user's in-flight checkout: current step, form values,
// recorded field errors, and the submission state machine.
type Session struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Step      Step                   `json:"step"`
	Form      FormState              `json:"form"`
	Errors    map[Field]string       `json:"errors"`
	Status    enums.SubmissionStatus `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func (s *Session) clone() *Session {
	clone := *s
	clone.Errors = make(map[Field]string, len(s.Errors))
	for k, v := range s.Errors {
		clone.Errors[k] = v
	}
	return &clone
}

// editable reports whether form mutations and navigation are allowed. The
// session locks while a submission is in flight and stays locked once the
// order is placed.
func (s *Session) editable() bool {
	return s.Status == enums.SubmissionStatusIdle || s.Status == enums.SubmissionStatusFailed
}

// CartCollaborator is the slice of the cart service checkout depends on.
type CartCollaborator interface {
	Quote(ctx context.Context, userID uuid.UUID, method enums.ShippingMethod) (*cart.Quote, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// CompletePublisher receives the OrderSummary exactly once per successful
// submission.
type CompletePublisher interface {
	Publish(ctx context.Context, summary *OrderSummary) error
}

// Service drives the checkout workflow.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID) (*Session, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	SetField(ctx context.Context, userID, sessionID uuid.UUID, field Field, value string) (*Session, error)
	Advance(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	Retreat(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
	Submit(ctx context.Context, userID, sessionID uuid.UUID) (*OrderSummary, *Session, error)
}

// ServiceParams collects the collaborators the service needs.
type ServiceParams struct {
	Store     Store
	Cart      CartCollaborator
	Profiles  profile.Source
	Gateway   payment.Gateway
	Publisher CompletePublisher
	Metrics   *metrics.CheckoutMetrics
	Config    config.CheckoutConfig
	Logger    *logger.Logger
	Currency  string
}

type service struct {
	store     Store
	cart      CartCollaborator
	profiles  profile.Source
	gateway   payment.Gateway
	publisher CompletePublisher
	metrics   *metrics.CheckoutMetrics
	cfg       config.CheckoutConfig
	logg      *logger.Logger
	currency  string
	now       func() time.Time
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart collaborator required")
	}
	if params.Gateway == nil {
		return nil, fmt.Errorf("payment gateway required")
	}
	if params.Publisher == nil {
		return nil, fmt.Errorf("order-complete publisher required")
	}
	if params.Config.DeliveryLeadDays <= 0 {
		params.Config.DeliveryLeadDays = 7
	}
	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}
	return &service{
		store:     params.Store,
		cart:      params.Cart,
		profiles:  params.Profiles,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		cfg:       params.Config,
		logg:      params.Logger,
		currency:  currency,
		now:       time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID) (*Session, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	seed := "blank"
	var saved *profile.Profile
	if s.profiles != nil {
		fetched, err := s.profiles.Fetch(ctx, userID)
		if err != nil {
			// A blank form is always an acceptable fallback.
			if s.logg != nil {
				s.logg.Warn(s.logg.WithUserID(ctx, userID.String()), "profile fetch failed, starting blank checkout")
			}
		} else if fetched != nil {
			saved = fetched
			seed = "profile"
		}
	}

	now := s.now()
	session := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Step:      StepShipping,
		Form:      NewFormState(saved),
		Errors:    map[Field]string{},
		Status:    enums.SubmissionStatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving checkout session")
	}
	s.metrics.IncSession(seed)
	return session, nil
}

func (s *service) Get(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	return s.load(ctx, userID, sessionID)
}

func (s *service) SetField(ctx context.Context, userID, sessionID uuid.UUID, field Field, value string) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.editable() {
		return nil, lockedError(session.Status)
	}

	if err := session.Form.Set(field, value); err != nil {
		return nil, err
	}
	// Error-on-edit: touching a field clears only that field's error.
	delete(session.Errors, field)

	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving checkout session")
	}
	return session, nil
}

func (s *service) Advance(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.editable() {
		return nil, lockedError(session.Status)
	}

	errs := ValidateStep(session.Step, &session.Form)
	if len(errs) > 0 {
		session.Errors = errs
	} else {
		session.Errors = map[Field]string{}
		session.Step = session.Step.Next()
	}

	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving checkout session")
	}
	return session, nil
}

func (s *service) Retreat(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.editable() {
		return nil, lockedError(session.Status)
	}

	// Going back never validates.
	session.Step = session.Step.Prev()
	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving checkout session")
	}
	return session, nil
}

func (s *service) Submit(ctx context.Context, userID, sessionID uuid.UUID) (*OrderSummary, *Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Step != StepReview {
		return nil, session, pkgerrors.New(pkgerrors.CodeStateConflict, "submission requires the review step")
	}
	if !session.Status.CanBegin() {
		return nil, session, lockedError(session.Status)
	}

	if err := s.transition(ctx, session, enums.SubmissionStatusSubmitting); err != nil {
		return nil, session, err
	}

	started := s.now()
	summary, err := s.execute(ctx, session)
	s.metrics.ObserveDuration(s.now().Sub(started))
	if err != nil {
		if transErr := s.transition(ctx, session, enums.SubmissionStatusFailed); transErr != nil && s.logg != nil {
			s.logg.Error(ctx, "recording failed submission", transErr)
		}
		return nil, session, err
	}

	if err := s.transition(ctx, session, enums.SubmissionStatusSucceeded); err != nil {
		return summary, session, err
	}
	s.metrics.IncSuccess()
	return summary, session, nil
}

// execute runs the submission pipeline: quote, charge, publish, clear. The
// cart is cleared only after the publisher accepts the order, so a publish
// failure leaves the cart intact for retry.
func (s *service) execute(ctx context.Context, session *Session) (*OrderSummary, error) {
	quote, err := s.cart.Quote(ctx, session.UserID, session.Form.ShippingMethod)
	if err != nil {
		s.metrics.IncFailure("cart_unavailable")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart for submission")
	}
	if len(quote.Items) == 0 {
		s.metrics.IncFailure("empty_cart")
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	_, err = s.gateway.Charge(ctx, payment.ChargeRequest{
		Amount:     quote.Totals.Total,
		Currency:   s.currency,
		CardNumber: session.Form.CardNumber,
		Expiry:     session.Form.CardExpiry,
		CVV:        session.Form.CardCVV,
		Holder:     session.Form.CardName,
	})
	if err != nil {
		if errors.Is(err, payment.ErrDeclined) {
			s.metrics.IncFailure("declined")
			return nil, pkgerrors.Wrap(pkgerrors.CodePaymentFailed, err, "card was declined")
		}
		s.metrics.IncFailure("gateway")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "charging card")
	}

	summary := newOrderSummary(s.now(), s.cfg.DeliveryLeadDays, session.Form, quote)

	if err := s.publisher.Publish(ctx, summary); err != nil {
		s.metrics.IncFailure("publish")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "publishing completed order")
	}

	if err := s.cart.Clear(ctx, session.UserID); err != nil {
		// The order is already placed; losing the clear only leaves a stale
		// cart behind.
		if s.logg != nil {
			s.logg.Error(s.logg.WithUserID(ctx, session.UserID.String()), "clearing cart after order completion", err)
		}
	}

	return summary, nil
}

func (s *service) transition(ctx context.Context, session *Session, status enums.SubmissionStatus) error {
	session.Status = status
	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving checkout session")
	}
	return nil
}

func (s *service) load(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	session, err := s.store.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading checkout session")
	}
	// Sessions are private; an id guessed by another user reads as missing.
	if session.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
	}
	return session, nil
}

func lockedError(status enums.SubmissionStatus) *pkgerrors.Error {
	switch status {
	case enums.SubmissionStatusSubmitting:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "submission already in progress")
	case enums.SubmissionStatusSucceeded:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "order already placed")
	}
	return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("session is locked in status %s", status))
}
