package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rizkypra/storefront/internal/adapter/snap"
	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/domain/repository"
)

// CheckoutUseCase turns a validated cart into a pending order with a
// payment session token. Order, items, total and token are committed in a
// single transaction: a gateway failure leaves no trace in storage.
type CheckoutUseCase struct {
	orders      repository.OrderRepository
	users       repository.UserRepository
	gateway     snap.Client
	shippingFee int64
	logger      *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, users repository.UserRepository, gateway snap.Client, shippingFee int64, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, users: users, gateway: gateway, shippingFee: shippingFee, logger: logger}
}

// Process validates the submission and creates the order.
func (u *CheckoutUseCase) Process(ctx context.Context, userID int64, input model.CheckoutSubmission) (*model.Order, error) {
	if userID <= 0 {
		return nil, domainErrors.ErrUnauthorized
	}
	if err := validateCheckout(&input); err != nil {
		return nil, err
	}

	customer, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUnauthorized
		}
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		items = append(items, model.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	draft := model.OrderDraft{
		UserID:          userID,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
		ShippingFee:     u.shippingFee,
		Items:           items,
	}

	order, err := u.orders.CreateCheckout(ctx, draft, func(ctx context.Context, order *model.Order, items []model.OrderItem) (string, error) {
		token, err := u.gateway.CreateTransaction(ctx, snap.Transaction{
			OrderCode:   order.Code,
			GrossAmount: order.TotalAmount,
			Items:       snap.ItemsFromOrder(items, u.shippingFee),
			Customer: snap.Customer{
				Name:    input.Name,
				Email:   customer.Email,
				Phone:   input.Phone,
				Address: input.ShippingAddress,
			},
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", domainErrors.ErrPaymentGateway, err)
		}
		return token, nil
	})
	if err != nil {
		u.logger.Error("checkout failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	u.logger.Info("checkout completed",
		slog.Int64("order_id", order.ID),
		slog.String("order_code", order.Code),
		slog.Int64("total", order.TotalAmount),
	)
	return order, nil
}
