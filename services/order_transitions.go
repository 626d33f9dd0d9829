package services

import (
	"context"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

// Status transitions ride on conditional UPDATEs (status must still equal
// the value we read); a lost race re-reads and reports the real current
// status instead of guessing.

// Cancel is the user-facing cancellation: allowed only while the order is
// still pending or confirmed.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	o, err := s.DetailForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !o.Status.Cancellable() {
		return nil, apperr.Newf(apperr.KindInvalidState, "cannot cancel order with status: %s", o.Status)
	}

	var moved bool
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		moved, err = s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.StatusCancelled)
		return err
	})
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	if !moved {
		return nil, s.staleTransition(ctx, orderID, "cannot cancel order with status: %s")
	}

	o.Status = entity.StatusCancelled
	s.publish(o)
	return o, nil
}

// Advance moves an order one step along the monotonic happy path
// (pending → confirmed → preparing → on-the-way → delivered).
func (s *OrderService) Advance(ctx context.Context, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, apperr.FromDB(err, "order not found")
	}

	next, ok := o.Status.Next()
	if !ok {
		return nil, apperr.Newf(apperr.KindInvalidState, "no further transition from status: %s", o.Status)
	}

	var moved bool
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		moved, err = s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		return err
	})
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	if !moved {
		return nil, s.staleTransition(ctx, orderID, "order already moved past status: %s")
	}

	o.Status = next
	s.publish(o)
	return o, nil
}

// MarkPayment records the payment outcome; it never touches the frozen
// money fields.
func (s *OrderService) MarkPayment(ctx context.Context, orderID uint, status entity.PaymentStatus) (*entity.Order, error) {
	switch status {
	case entity.PaymentPending, entity.PaymentCompleted, entity.PaymentFailed:
	default:
		return nil, apperr.Newf(apperr.KindValidation, "unknown payment status: %s", status)
	}

	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, apperr.FromDB(err, "order not found")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdatePaymentStatus(tx, o.ID, status)
	})
	if err != nil {
		return nil, apperr.FromDB(err, "")
	}
	o.PaymentStatus = status
	return o, nil
}

func (s *OrderService) staleTransition(ctx context.Context, orderID uint, format string) error {
	cur, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return apperr.New(apperr.KindInvalidState, "order status changed concurrently")
	}
	return apperr.Newf(apperr.KindInvalidState, format, cur.Status)
}
