package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneKeepsSentinelIdentity(t *testing.T) {
	err := Validation("workSatisfaction", "invalid option")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "workSatisfaction", err.Details["field"])
	assert.Nil(t, ErrValidation.Details)
}

func TestUpstreamIsRetryable(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := Upstream("classifier", cause)

	require.ErrorIs(t, err, ErrUpstream)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.Equal(t, true, err.Details["retryable"])
	assert.Equal(t, "classifier", err.Details["service"])
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	err := FromError(assertErr("boom"))
	assert.Equal(t, ErrInternal.Code, err.Code)

	wrapped := fmt.Errorf("ctx: %w", TeamNotFound(4))
	assert.Equal(t, ErrNotFound.Code, FromError(wrapped).Code)
	assert.Equal(t, 4, FromError(wrapped).Details["teamNumber"])
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
