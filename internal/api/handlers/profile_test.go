package handlers_test

import (
	"net/http"
	"testing"

	"github.com/notebuddy/notebuddy-backend/internal/api/handlers"
	"github.com/notebuddy/notebuddy-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestProfileEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	builder := testutil.NewUserBuilder().WithEmail("profile@example.com")
	user, token := builder.BuildAndAuthenticate(t, ts)

	t.Run("get", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/profile"), nil, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var profile handlers.UserResponse
		testutil.AssertJSONResponse(t, resp, &profile)
		assert.Equal(t, user.ID.String(), profile.ID)
		assert.Equal(t, "profile@example.com", profile.Email)
	})

	t.Run("update language", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/profile"), map[string]string{
			"preferredLanguage": "English",
		}, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var profile handlers.UserResponse
		testutil.AssertJSONResponse(t, resp, &profile)
		assert.Equal(t, "English", profile.PreferredLanguage)
	})

	t.Run("language change steers generation prompts", func(t *testing.T) {
		var transcript handlers.TranscriptResponse
		resp := testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/transcripts"), map[string]string{
			"title": "t", "content": "c",
		}, token)
		testutil.AssertJSONResponse(t, resp, &transcript)
		resp.Body.Close()

		resp = testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/transcripts/"+transcript.ID+"/generate-note"), nil, token)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		assert.Equal(t, "English", ts.Generator.LastLanguage)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/profile"), map[string]string{
			"displayName": "Profile Person",
		}, token)
		defer resp.Body.Close()

		var profile handlers.UserResponse
		testutil.AssertJSONResponse(t, resp, &profile)
		assert.Equal(t, "Profile Person", profile.DisplayName)
		assert.Equal(t, "English", profile.PreferredLanguage, "language set earlier survives")
	})
}
