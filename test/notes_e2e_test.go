//go:build e2e

package test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validationDetail = "Validation error: Description is 'Null/Empty'"

func createNoteE2E(t *testing.T, baseURL, description string) map[string]any {
	t.Helper()
	resp := ExecuteHTTPJSONStep(t, HTTPJSONStep{
		Name:           "create " + description,
		Method:         http.MethodPost,
		URL:            notesEndpoint,
		Body:           map[string]string{"description": description},
		ExpectedStatus: http.StatusCreated,
	}, baseURL)
	return GetNoteFromResponse(t, resp)
}

func TestNotesE2E(t *testing.T) {
	for _, driver := range []string{StoreMongo, StoreRedis} {
		t.Run(driver, func(t *testing.T) {
			env := SetupTestEnvironmentWithEnv(t, driver, nil)
			runNotesScenario(t, env.BaseURL)
		})
	}
}

func runNotesScenario(t *testing.T, baseURL string) {
	var a, b map[string]any

	t.Run("create_sets_id_and_time", func(t *testing.T) {
		before := time.Now()
		a = createNoteE2E(t, baseURL, "Buy milk")
		assert.Equal(t, "Buy milk", a["description"])

		ts, err := time.Parse(time.RFC3339Nano, a["dateTime"].(string))
		require.NoError(t, err)
		assert.False(t, ts.Before(before), "dateTime %s before %s", ts, before)
	})

	t.Run("create_blank_rejected", func(t *testing.T) {
		for _, desc := range []string{"", "   "} {
			ExecuteHTTPJSONStep(t, HTTPJSONStep{
				Name:           "blank " + desc,
				Method:         http.MethodPost,
				URL:            notesEndpoint,
				Body:           map[string]string{"description": desc},
				ExpectedStatus: http.StatusBadRequest,
				Validator:      ErrorDetailValidator("400_BAD_REQUEST", validationDetail),
			}, baseURL)
		}
	})

	t.Run("list_newest_first", func(t *testing.T) {
		b = createNoteE2E(t, baseURL, "Walk dog")

		resp := ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "list",
			Method:         http.MethodGet,
			URL:            notesEndpoint,
			ExpectedStatus: http.StatusOK,
		}, baseURL)

		items := resp["data"].([]any)
		require.Len(t, items, 2)
		assert.Equal(t, b["id"], items[0].(map[string]any)["id"])
		assert.Equal(t, a["id"], items[1].(map[string]any)["id"])
	})

	t.Run("get_round_trip", func(t *testing.T) {
		resp := ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "get",
			Method:         http.MethodGet,
			URL:            notesEndpoint + "/" + a["id"].(string),
			ExpectedStatus: http.StatusOK,
		}, baseURL)

		got := GetNoteFromResponse(t, resp)
		assert.Equal(t, a["id"], got["id"])
		assert.Equal(t, a["description"], got["description"])
	})

	t.Run("get_unknown", func(t *testing.T) {
		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "get unknown",
			Method:         http.MethodGet,
			URL:            notesEndpoint + "/does-not-exist",
			ExpectedStatus: http.StatusBadRequest,
			Validator:      ErrorDetailValidator("400_BAD_REQUEST", "No note found for id -> does-not-exist"),
		}, baseURL)
	})

	t.Run("update_keeps_position", func(t *testing.T) {
		resp := ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:   "update",
			Method: http.MethodPut,
			URL:    notesEndpoint,
			Body: map[string]any{
				"id":          a["id"],
				"description": "Buy oat milk",
				"dateTime":    a["dateTime"],
			},
			ExpectedStatus: http.StatusOK,
		}, baseURL)
		got := GetNoteFromResponse(t, resp)
		assert.Equal(t, "Buy oat milk", got["description"])

		list := ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "list after update",
			Method:         http.MethodGet,
			URL:            notesEndpoint,
			ExpectedStatus: http.StatusOK,
		}, baseURL)
		items := list["data"].([]any)
		require.Len(t, items, 2)
		assert.Equal(t, a["id"], items[1].(map[string]any)["id"])
	})

	t.Run("delete_idempotent", func(t *testing.T) {
		id := b["id"].(string)
		for range 2 {
			ExecuteHTTPJSONStep(t, HTTPJSONStep{
				Name:           "delete",
				Method:         http.MethodDelete,
				URL:            notesEndpoint + "/" + id,
				ExpectedStatus: http.StatusOK,
				Validator:      DataMessageValidator("Note with id -> " + id + " successfully deleted."),
			}, baseURL)
		}

		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "get deleted",
			Method:         http.MethodGet,
			URL:            notesEndpoint + "/" + id,
			ExpectedStatus: http.StatusBadRequest,
		}, baseURL)
	})

	t.Run("descriptions_stored_verbatim", func(t *testing.T) {
		for _, desc := range []string{
			"if a<b then swap",
			"literal &amp; text",
			"line1\n\n    indented code",
			"<script>alert(1)</script>",
		} {
			created := createNoteE2E(t, baseURL, desc)
			assert.Equal(t, desc, created["description"])

			resp := ExecuteHTTPJSONStep(t, HTTPJSONStep{
				Name:           "get verbatim",
				Method:         http.MethodGet,
				URL:            notesEndpoint + "/" + created["id"].(string),
				ExpectedStatus: http.StatusOK,
			}, baseURL)
			assert.Equal(t, desc, GetNoteFromResponse(t, resp)["description"])

			created["description"] = desc + "\n  edited"
			resp = ExecuteHTTPJSONStep(t, HTTPJSONStep{
				Name:           "update verbatim",
				Method:         http.MethodPut,
				URL:            notesEndpoint,
				Body:           created,
				ExpectedStatus: http.StatusOK,
			}, baseURL)
			assert.Equal(t, desc+"\n  edited", GetNoteFromResponse(t, resp)["description"])
		}
	})
}
