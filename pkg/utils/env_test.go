package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	t.Setenv("INCUBATOR_TEST_KEY", "set-value")
	assert.Equal(t, "set-value", Getenv("INCUBATOR_TEST_KEY", "fallback"))

	t.Setenv("INCUBATOR_TEST_KEY", "")
	assert.Equal(t, "fallback", Getenv("INCUBATOR_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", Getenv("INCUBATOR_TEST_MISSING_KEY", "fallback"))
}
