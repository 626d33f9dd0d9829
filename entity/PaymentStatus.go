package entity

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}
