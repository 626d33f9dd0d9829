package entity

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on-the-way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// nextStatus is the monotonic happy path; delivered and cancelled are final.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusOnTheWay,
	StatusOnTheWay:  StatusDelivered,
}

// Next returns the following status on the happy path, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	n, ok := nextStatus[s]
	return n, ok
}

// Cancellable reports whether a user cancel is still allowed.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
