package orderaction

import (
	"context"
	"errors"
	"fmt"

	"adminpanel/internal/entities"
)

// Details карточка заказа вместе с доступными действиями.
type Details struct {
	Order   entities.Order
	Actions []entities.OrderAction
}

type Request struct {
	Action  entities.OrderAction
	Reason  *string
	RiderID *string
}

type Service struct {
	orders  OrderRepository
	drivers DriverRepository
	mutator OrderMutator
	printer Printer
}

func New(orders OrderRepository, drivers DriverRepository, mutator OrderMutator, printer Printer) *Service {
	return &Service{
		orders:  orders,
		drivers: drivers,
		mutator: mutator,
		printer: printer,
	}
}

func (s *Service) GetOrder(ctx context.Context, principal entities.Principal, orderID string) (*Details, error) {
	order, err := s.getOrder(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}

	return &Details{
		Order:   *order,
		Actions: AvailableActions(*order),
	}, nil
}

// Execute только просит внешний сервис выполнить действие, статус здесь не меняется.
func (s *Service) Execute(ctx context.Context, principal entities.Principal, orderID string, req Request) error {
	if !isKnownAction(req.Action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	order, err := s.getOrder(ctx, principal, orderID)
	if err != nil {
		return err
	}

	if !isAllowed(*order, req.Action) {
		return fmt.Errorf("%w: %s on %s", ErrActionNotAllowed, req.Action, order.Status)
	}

	switch req.Action {
	case entities.ActionReprint:
		if err := s.printer.PrintReceipt(ctx, order.ID); err != nil {
			return fmt.Errorf("%w: print receipt: %w", ErrCollaboratorFailed, err)
		}
		return nil

	case entities.ActionAssignRider:
		if req.RiderID == nil || *req.RiderID == "" {
			return ErrMissingRiderID
		}
		return s.assign(ctx, *order, *req.RiderID)

	case entities.ActionCancel:
		reason, ok := normalizeReason(req.Reason)
		if !ok {
			return ErrMissingCancelReason
		}
		return s.updateStatus(ctx, principal, order.ID, entities.OrderCancelled, &reason)

	default:
		status, _ := targetStatus(req.Action)
		return s.updateStatus(ctx, principal, order.ID, status, nil)
	}
}

// ListRiders свободные курьеры на линии, работающие в филиале заказа.
func (s *Service) ListRiders(ctx context.Context, principal entities.Principal, orderID string) ([]entities.Driver, error) {
	order, err := s.getOrder(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}

	if !isAllowed(*order, entities.ActionAssignRider) {
		return nil, fmt.Errorf("%w: %s on %s", ErrActionNotAllowed, entities.ActionAssignRider, order.Status)
	}

	return s.eligibleRiders(ctx, *order)
}

func (s *Service) AssignRider(ctx context.Context, principal entities.Principal, orderID string, riderID string) error {
	return s.Execute(ctx, principal, orderID, Request{
		Action:  entities.ActionAssignRider,
		RiderID: &riderID,
	})
}

func (s *Service) assign(ctx context.Context, order entities.Order, riderID string) error {
	riders, err := s.eligibleRiders(ctx, order)
	if err != nil {
		return err
	}

	listed := false
	for _, rider := range riders {
		if rider.ID == riderID {
			listed = true
			break
		}
	}
	if !listed {
		return fmt.Errorf("%w: %s", ErrRiderNotAvailable, riderID)
	}

	if err := s.mutator.ManualAssign(ctx, order.ID, riderID); err != nil {
		return fmt.Errorf("%w: manual assign: %w", ErrCollaboratorFailed, err)
	}
	return nil
}

func (s *Service) eligibleRiders(ctx context.Context, order entities.Order) ([]entities.Driver, error) {
	if len(order.BranchIDs) == 0 {
		return []entities.Driver{}, nil
	}

	drivers, err := s.drivers.ListAvailable(ctx, order.BranchIDs)
	if err != nil {
		return nil, fmt.Errorf("list available drivers: %w", err)
	}

	riders := make([]entities.Driver, 0, len(drivers))
	for _, driver := range drivers {
		if driver.CanTakeOrder(order.BranchIDs) {
			riders = append(riders, driver)
		}
	}
	return riders, nil
}

func (s *Service) updateStatus(
	ctx context.Context,
	principal entities.Principal,
	orderID string,
	status entities.OrderStatusType,
	reason *string,
) error {
	if err := s.mutator.UpdateStatus(ctx, orderID, status, reason, principal.UserID); err != nil {
		return fmt.Errorf("%w: update status to %s: %w", ErrCollaboratorFailed, status, err)
	}
	return nil
}

func (s *Service) getOrder(ctx context.Context, principal entities.Principal, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrMissingOrderID
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !principal.CanAccess(order.BranchIDs) {
		return nil, ErrForbidden
	}
	return order, nil
}
