package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestMustGetEnvAsStrings(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "empty", value: "", expected: []string{}},
		{name: "single", value: "example.com", expected: []string{"example.com"}},
		{name: "trims_entries", value: "a.example.com, b.example.com ", expected: []string{"a.example.com", "b.example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_HOSTNAMES", tc.value)
			assert.Equal(t, tc.expected, MustGetEnvAsStrings(testContext(), "TEST_HOSTNAMES"))
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	t.Setenv("TEST_NOT_A_NUMBER", "abc")

	assert.Panics(t, func() { MustGetEnvAsString(testContext(), "TEST_DEFINITELY_UNSET_VARIABLE") })
	assert.Panics(t, func() { MustGetEnvAsInt(testContext(), "TEST_NOT_A_NUMBER") })
	assert.Panics(t, func() { MustGetEnvAsFloat(testContext(), "TEST_NOT_A_NUMBER") })
	assert.Panics(t, func() { MustGetEnvAsBoolean(testContext(), "TEST_NOT_A_NUMBER") })
}

func TestGetEnvWithFallback(t *testing.T) {
	t.Setenv("TEST_SET_INT", "7")
	t.Setenv("TEST_SET_DURATION", "90s")

	assert.Equal(t, 7, GetEnvAsInt(testContext(), "TEST_SET_INT", 3))
	assert.Equal(t, 3, GetEnvAsInt(testContext(), "TEST_UNSET_INT", 3))
	assert.Equal(t, 90*time.Second, GetEnvAsDuration(testContext(), "TEST_SET_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvAsDuration(testContext(), "TEST_UNSET_DURATION", time.Minute))
	assert.Equal(t, "fallback", GetEnvAsString("TEST_UNSET_STRING", "fallback"))
}
