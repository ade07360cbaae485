package scholar

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingParameterError(t *testing.T) {
	err := NewMissingParameterError("paper_id")

	assert.Equal(t, `missing required parameter "paper_id"`, err.Error())
	assert.ErrorIs(t, err, ErrMissingParameter)

	wrapped := fmt.Errorf("calling tool: %w", err)
	assert.ErrorIs(t, wrapped, ErrMissingParameter)

	var missingErr *MissingParameterError
	require.ErrorAs(t, wrapped, &missingErr)
	assert.Equal(t, "paper_id", missingErr.Name)
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(http.StatusNotFound, "Paper not found")

	assert.Equal(t, "semantic scholar API error (status 404): Paper not found", err.Error())

	var apiErr *APIError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Paper not found", apiErr.Message)

	assert.False(t, errors.Is(err, ErrMissingParameter))
}
