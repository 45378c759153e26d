//go:build e2e

package test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPJSONStep represents a single HTTP JSON request step in a test
type HTTPJSONStep struct {
	Name           string
	Method         string
	URL            string
	Body           any
	Headers        map[string]string
	ExpectedStatus int
	Validator      func(*testing.T, map[string]any) // Optional response validator
}

// ExecuteHTTPJSONStep executes a single HTTP JSON step and handles all the common boilerplate
func ExecuteHTTPJSONStep(t *testing.T, step HTTPJSONStep, baseURL string) map[string]any {
	t.Helper()
	t.Logf("step: %s", step.Name)

	url := baseURL + step.URL
	resp, err := httpJSON(step.Method, url, step.Body, step.Headers)
	require.NoError(t, err)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Errorf("failed to close response body: %v", err)
		}
	}()

	assert.Equal(t, step.ExpectedStatus, resp.StatusCode)

	var respData map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respData))

	if step.Validator != nil {
		step.Validator(t, respData)
	}

	return respData
}

// ExecuteHTTPJSONSteps executes a sequence of HTTP JSON steps
func ExecuteHTTPJSONSteps(t *testing.T, steps []HTTPJSONStep, baseURL string) []map[string]any {
	t.Helper()
	var results []map[string]any

	for _, step := range steps {
		result := ExecuteHTTPJSONStep(t, step, baseURL)
		results = append(results, result)
	}

	return results
}

// ErrorDetailValidator checks the response is an ErrorResponse with one
// entry of the given code and detail
func ErrorDetailValidator(code, detail string) func(*testing.T, map[string]any) {
	return func(t *testing.T, respData map[string]any) {
		t.Helper()
		errs, ok := respData["errors"].([]any)
		require.True(t, ok, "Expected errors array in response: %v", respData)
		require.Len(t, errs, 1)
		entry := errs[0].(map[string]any)
		assert.Equal(t, code, entry["code"])
		assert.Equal(t, detail, entry["detail"])
	}
}

// DataMessageValidator checks a SuccessResponse carrying a string
func DataMessageValidator(expected string) func(*testing.T, map[string]any) {
	return func(t *testing.T, respData map[string]any) {
		t.Helper()
		assert.Equal(t, expected, respData["data"])
	}
}

// GetNoteFromResponse extracts the note held in a SuccessResponse
func GetNoteFromResponse(t *testing.T, respData map[string]any) map[string]any {
	t.Helper()
	note, ok := respData["data"].(map[string]any)
	require.True(t, ok, "Expected data to be an object, got %T", respData["data"])
	id, ok := note["id"].(string)
	require.True(t, ok, "Expected note id to be a string")
	require.NotEmpty(t, id)
	return note
}
