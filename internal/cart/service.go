package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bloomcart/checkout-backend/pkg/enums"
	pkgerrors "github.com/bloomcart/checkout-backend/pkg/errors"
)

// Service owns the storefront cart: contents, quantities, and money totals.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Quote(ctx context.Context, userID uuid.UUID, method enums.ShippingMethod) (*Quote, error)
	AddItem(ctx context.Context, userID uuid.UUID, input ItemInput) (*Cart, error)
	UpdateItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ItemInput is the payload for adding a product to the cart.
type ItemInput struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Size      string
	Color     string
	Variant   string
	ImageURL  string
}

type service struct {
	repo    Repository
	pricing Pricing
	now     func() time.Time
}

// NewService builds the cart service.
func NewService(repo Repository, pricing Pricing) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo, pricing: pricing, now: time.Now}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	return s.repo.Find(ctx, userID)
}

func (s *service) Quote(ctx context.Context, userID uuid.UUID, method enums.ShippingMethod) (*Quote, error) {
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid shipping method %q", method))
	}
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Quote{
		Items:  cart.Items,
		Method: method,
		Totals: s.pricing.Totals(cart.Items, method),
	}, nil
}

func (s *service) AddItem(ctx context.Context, userID uuid.UUID, input ItemInput) (*Cart, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if sameVariant(cart.Items[i], input) {
			cart.Items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, Item{
			ID:        uuid.New(),
			ProductID: input.ProductID,
			Name:      input.Name,
			UnitPrice: input.UnitPrice,
			Quantity:  input.Quantity,
			Size:      input.Size,
			Color:     input.Color,
			Variant:   input.Variant,
			ImageURL:  input.ImageURL,
		})
	}

	cart.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) UpdateItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			cart.UpdatedAt = s.now()
			if err := s.repo.Save(ctx, userID, cart); err != nil {
				return nil, err
			}
			return cart, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
}

func (s *service) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := cart.Items[:0]
	found := false
	for _, item := range cart.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	cart.Items = kept
	cart.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	return s.repo.Delete(ctx, userID)
}

func validateItemInput(input ItemInput) error {
	if input.ProductID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	if input.Quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if input.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return pkgerrors.New(pkgerrors.CodeValidation, "unit price must be positive")
	}
	return nil
}

func sameVariant(item Item, input ItemInput) bool {
	return item.ProductID == input.ProductID &&
		item.Size == input.Size &&
		item.Color == input.Color &&
		item.Variant == input.Variant
}
