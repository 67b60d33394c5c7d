package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-feedback/bff/util"
)

func TestTruthy(t *testing.T) {
	tests := map[string]bool{
		"true":   true,
		"TRUE":   true,
		" yes ":  true,
		"1":      true,
		"on":     true,
		"\tOn\n": true,
		"false":  false,
		"0":      false,
		"no":     false,
		"off":    false,
		"foo":    false,
		" ":      false,
		"":       false,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, util.Truthy(in))
		})
	}
}
