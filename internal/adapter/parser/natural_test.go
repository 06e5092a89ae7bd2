package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortNaturalMessageParts(t *testing.T) {
	var names []string
	for i := 12; i >= 1; i-- {
		names = append(names, fmt.Sprintf("message_%d.json", i))
	}

	sortNatural(names)

	want := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		want = append(want, fmt.Sprintf("message_%d.json", i))
	}
	assert.Equal(t, want, names)
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"message_2.json", "message_10.json", true},
		{"message_10.json", "message_2.json", false},
		{"Message_1.json", "message_2.json", true},
		{"a", "b", true},
		{"file", "file1", true},
		{"file01", "file1", false},
		{"file1", "file01", true},
		{"discord.json", "message_1.json", true},
		{"x.json", "x.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"<"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, naturalLess(tt.a, tt.b))
		})
	}
}
