package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/api/handlers"
	"github.com/notebuddy/notebuddy-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptEndpoints_CRUD(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	var created handlers.TranscriptResponse

	t.Run("create", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/transcripts"), map[string]string{
			"title":   "Standup recording",
			"content": "We talked about the release.",
		}, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)
		testutil.AssertJSONResponse(t, resp, &created)
		assert.Equal(t, "Standup recording", created.Title)
		assert.Nil(t, created.UpdatedAt)
	})

	t.Run("create rejects blank fields", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/transcripts"), map[string]string{
			"title": "   ",
		}, token)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Title and content are required")
	})

	t.Run("get", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/transcripts/"+created.ID), nil, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var fetched handlers.TranscriptResponse
		testutil.AssertJSONResponse(t, resp, &fetched)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "We talked about the release.", fetched.Content)
	})

	t.Run("list", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/transcripts"), nil, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var transcripts []handlers.TranscriptResponse
		testutil.AssertJSONResponse(t, resp, &transcripts)
		require.Len(t, transcripts, 1)
		assert.Equal(t, created.ID, transcripts[0].ID)
	})

	t.Run("partial update", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/transcripts/"+created.ID), map[string]string{
			"title": "Standup recording (edited)",
		}, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var updated handlers.TranscriptResponse
		testutil.AssertJSONResponse(t, resp, &updated)
		assert.Equal(t, "Standup recording (edited)", updated.Title)
		assert.Equal(t, "We talked about the release.", updated.Content, "omitted fields survive")
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("delete", func(t *testing.T) {
		resp := testutil.DoAuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/transcripts/"+created.ID), nil, token)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		gone := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/transcripts/"+created.ID), nil, token)
		defer gone.Body.Close()
		testutil.AssertErrorResponse(t, gone, http.StatusNotFound, "Transcript not found")
	})
}

func TestTranscriptEndpoints_TenantIsolation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	transcript := testutil.NewTranscriptBuilder().WithOwner(owner).Build(t, ts.DB.DB)

	_, intruderToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	url := ts.APIURL("/transcripts/" + transcript.ID.String())

	// Another user's transcript is indistinguishable from a missing one.
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp := testutil.DoAuthenticatedRequest(t, method, url, nil, intruderToken)
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Transcript not found")
		resp.Body.Close()
	}

	resp := testutil.DoAuthenticatedRequest(t, http.MethodPut, url, map[string]string{"title": "hijacked"}, intruderToken)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Transcript not found")

	generate := testutil.DoAuthenticatedRequest(t, http.MethodPost, url+"/generate-note", nil, intruderToken)
	defer generate.Body.Close()
	testutil.AssertErrorResponse(t, generate, http.StatusNotFound, "Transcript not found")
	assert.Zero(t, ts.Generator.GenerateCalls)
}

func TestTranscriptEndpoints_UnknownID(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/transcripts/"+uuid.NewString()), nil, token)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Transcript not found")

	malformed := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/transcripts/not-a-uuid"), nil, token)
	defer malformed.Body.Close()
	testutil.AssertErrorResponse(t, malformed, http.StatusNotFound, "Transcript not found")
}

func TestTranscriptEndpoints_DeleteCascadesNote(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	transcript := testutil.NewTranscriptBuilder().WithOwner(user).Build(t, ts.DB.DB)
	note := testutil.NewNoteBuilder().WithOwner(user).WithTranscript(transcript).Build(t, ts.DB.DB)

	resp := testutil.DoAuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/transcripts/"+transcript.ID.String()), nil, token)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	gone := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/notes/"+note.ID.String()), nil, token)
	defer gone.Body.Close()
	testutil.AssertErrorResponse(t, gone, http.StatusNotFound, "Note not found")
}
