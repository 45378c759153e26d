//go:build e2e

package test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthzE2E(t *testing.T) {
	for _, driver := range []string{StoreMongo, StoreRedis} {
		t.Run(driver, func(t *testing.T) {
			env := SetupTestEnvironmentWithEnv(t, driver, nil)

			resp, err := env.Client.Get(env.BaseURL + "/healthz")
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.Equal(t, "ok", payload["status"])
		})
	}
}
