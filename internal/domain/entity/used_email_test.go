package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"lowercases", "Ravi@Example.COM", "ravi@example.com"},
		{"trims whitespace", "  ravi@example.com ", "ravi@example.com"},
		{"strips plus suffix", "ravi+promo@example.com", "ravi@example.com"},
		{"strips gmail dots", "r.a.v.i@gmail.com", "ravi@gmail.com"},
		{"strips googlemail dots", "r.avi@googlemail.com", "ravi@googlemail.com"},
		{"keeps dots on other domains", "r.avi@example.com", "r.avi@example.com"},
		{"gmail dots and plus together", "R.avi+offers@Gmail.com", "ravi@gmail.com"},
		{"no at sign passes through", "not-an-email", "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.email))
		})
	}
}
