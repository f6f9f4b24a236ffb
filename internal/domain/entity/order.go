package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the order lifecycle state. Statuses only move forward
// through the fixed sequence; there is no cancelled or refunded state,
// cancellation is handled out of band.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusFinalizing OrderStatus = "finalizing"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// orderStatusSequence is the only legal progression.
var orderStatusSequence = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusFinalizing,
	OrderStatusDelivered,
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	return s.index() >= 0
}

// Next returns the following status in the sequence, or "" when s is
// terminal or unknown.
func (s OrderStatus) Next() OrderStatus {
	i := s.index()
	if i < 0 || i+1 >= len(orderStatusSequence) {
		return ""
	}

	return orderStatusSequence[i+1]
}

// CanAdvanceTo reports whether target is the immediate next status. The
// sequence permits no skipping and no regression.
func (s OrderStatus) CanAdvanceTo(target OrderStatus) bool {
	return target != "" && s.Next() == target
}

func (s OrderStatus) index() int {
	for i, st := range orderStatusSequence {
		if st == s {
			return i
		}
	}

	return -1
}

// PaymentStatus tracks the gateway side of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// DeliveryPreference selects how finished work reaches the customer.
type DeliveryPreference string

const (
	DeliveryPlatform DeliveryPreference = "platform"
	DeliveryEmail    DeliveryPreference = "email"
)

// Order is a customer request for a service. ServiceName is free text on
// purpose: it is not a foreign key into the catalog, so ad-hoc and custom
// requests are representable.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID // May point at a lazily created guest user.
	ServiceName   string
	CustomerEmail string
	CustomerName  string
	Requirements  string
	FileURLs      []string // Uploaded by the customer.

	Status OrderStatus
	// AmountPaid is in the currency's smallest unit (paise).
	AmountPaid    int
	PaymentID     string
	PaymentStatus PaymentStatus

	DeliveryPreference DeliveryPreference
	DeliveryFileURLs   []string // Attached by the admin.
	DeliveryNotes      string
	// DeliveredAt is set if and only if Status == delivered.
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
