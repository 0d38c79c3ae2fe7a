package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{1500, "$1,500"},
		{92500, "$92,500"},
		{132270.4, "$132,270"},
		{132270.6, "$132,271"},
		{1250000, "$1,250,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.in))
	}
}
