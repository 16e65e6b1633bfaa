package strutils_test

import (
	"strings"
	"testing"

	"github.com/simplexservers/mojangapi/internal/strutils"
	"github.com/stretchr/testify/require"
)

func TestIsValidUsername(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		valid bool
	}{
		{input: "Notch", valid: true},
		{input: "Skydeath", valid: true},
		{input: "ab", valid: true},
		{input: "_1", valid: true},
		{input: "a_b_c_1_2_3", valid: true},
		{input: strings.Repeat("a", 16), valid: true},
		{input: "0123456789012345", valid: true},
		{input: "", valid: false},
		{input: "a", valid: false},
		{input: strings.Repeat("a", 17), valid: false},
		{input: "with space", valid: false},
		{input: "dash-ed", valid: false},
		{input: "dot.ted", valid: false},
		{input: "ünïcödé", valid: false},
		{input: " Notch", valid: false},
		{input: "Notch\n", valid: false},
	}

	for _, symbol := range `!@#$%^&*()+[]{}|;':",.<>?/—` {
		cases = append(cases, struct {
			input string
			valid bool
		}{
			input: "user" + string(symbol),
			valid: false,
		})
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.valid, strutils.IsValidUsername(tc.input))
		})
	}
}
