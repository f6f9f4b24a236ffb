package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusDelivered.Valid())
	assert.False(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Next(t *testing.T) {
	assert.Equal(t, OrderStatusProcessing, OrderStatusPending.Next())
	assert.Equal(t, OrderStatusFinalizing, OrderStatusProcessing.Next())
	assert.Equal(t, OrderStatusDelivered, OrderStatusFinalizing.Next())
	assert.Equal(t, OrderStatus(""), OrderStatusDelivered.Next())
	assert.Equal(t, OrderStatus(""), OrderStatus("cancelled").Next())
}

func TestOrderStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		expect bool
	}{
		{"single step forward", OrderStatusPending, OrderStatusProcessing, true},
		{"processing to finalizing", OrderStatusProcessing, OrderStatusFinalizing, true},
		{"finalizing to delivered", OrderStatusFinalizing, OrderStatusDelivered, true},
		{"skipping a step", OrderStatusPending, OrderStatusFinalizing, false},
		{"skipping to terminal", OrderStatusPending, OrderStatusDelivered, false},
		{"regression", OrderStatusDelivered, OrderStatusProcessing, false},
		{"same status", OrderStatusProcessing, OrderStatusProcessing, false},
		{"terminal has no next", OrderStatusDelivered, OrderStatusDelivered, false},
		{"unknown target", OrderStatusPending, "cancelled", false},
		{"empty target", OrderStatusPending, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.from.CanAdvanceTo(tt.to))
		})
	}
}
