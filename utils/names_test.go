package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name      string
		full      string
		wantFirst string
		wantLast  string
	}{
		{name: "first and last", full: "Priya Sharma", wantFirst: "Priya", wantLast: "Sharma"},
		{name: "single name", full: "Priya", wantFirst: "Priya", wantLast: ""},
		{name: "three parts join into last", full: "Anna Maria Silva", wantFirst: "Anna", wantLast: "Maria Silva"},
		{name: "empty", full: "", wantFirst: "", wantLast: ""},
		{name: "whitespace only", full: "   ", wantFirst: "", wantLast: ""},
		{name: "extra spaces between tokens", full: "  Priya   Sharma  ", wantFirst: "Priya", wantLast: "Sharma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitFullName(tt.full)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
