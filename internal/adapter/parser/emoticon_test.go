package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteEmoticons(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "isolated token", in: "hi :) you", want: "hi 🙂 you"},
		{name: "attached to word", in: "hi:)you", want: "hi:)you"},
		{name: "suffix of token", in: "hello:)", want: "hello:)"},
		{name: "several", in: "<3 (y) :'( o.O", want: "❤️ 👍 😢 😳"},
		{name: "case matters", in: ":d :D", want: ":d 😀"},
		{name: "whitespace collapsed", in: "  a \n\t b  ", want: "a b"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteEmoticons(tt.in))
		})
	}
}
