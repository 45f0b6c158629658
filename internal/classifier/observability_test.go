//nolint:testpackage // Testing internal helpers requires same package access
package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "under limit", in: "short text", n: 10, want: "short text"},
		{name: "at limit", in: "one two three", n: 3, want: "one two three"},
		{name: "over limit", in: "one two three four", n: 2, want: "one two..."},
		{name: "empty", in: "", n: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateWords(tt.in, tt.n))
		})
	}
}

func TestClassifyErrorType(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{name: "timeout", msg: "context deadline exceeded", want: "timeout"},
		{name: "server error", msg: "model service returned 503", want: "5xx"},
		{name: "client error", msg: "model service returned 422", want: "4xx"},
		{name: "refused", msg: "dial tcp 127.0.0.1:8081: connection refused", want: "connection"},
		{name: "decode", msg: "decode response: unexpected EOF", want: "decode"},
		{name: "other", msg: "something odd", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyErrorType(tt.msg))
		})
	}
}
