package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
	"github.com/notebuddy/notebuddy-backend/internal/repository/postgres"
	"github.com/notebuddy/notebuddy-backend/internal/service"
	"github.com/notebuddy/notebuddy-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTranscriptService_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	transcriptService := service.NewTranscriptService(repos.Transcript)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	created, err := transcriptService.Create(ctx, user.ID, service.CreateTranscriptInput{
		Title:   "Meeting notes",
		Content: "Raw meeting transcript.",
	})
	require.NoError(t, err)
	assert.Nil(t, created.UpdatedAt, "updated_at must be null before any mutation")

	fetched, err := transcriptService.Get(ctx, created.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meeting notes", fetched.Title)
	assert.Equal(t, "Raw meeting transcript.", fetched.Content)
}

func TestTranscriptService_TenantIsolation(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	transcriptService := service.NewTranscriptService(repos.Transcript)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	transcript := testutil.NewTranscriptBuilder().WithOwner(owner).Build(t, testDB.DB)

	_, err := transcriptService.Get(ctx, transcript.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)

	_, err = transcriptService.Update(ctx, transcript.ID, other.ID, service.UpdateTranscriptInput{
		Title: strPtr("hijacked"),
	})
	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)

	err = transcriptService.Delete(ctx, transcript.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)

	// Still intact for the owner.
	fetched, err := transcriptService.Get(ctx, transcript.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, transcript.Title, fetched.Title)
}

func TestTranscriptService_PartialUpdate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	transcriptService := service.NewTranscriptService(repos.Transcript)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	transcript := testutil.NewTranscriptBuilder().
		WithOwner(user).
		WithTitle("original title").
		WithContent("original content").
		Build(t, testDB.DB)

	updated, err := transcriptService.Update(ctx, transcript.ID, user.ID, service.UpdateTranscriptInput{
		Title: strPtr("new title"),
	})
	require.NoError(t, err)

	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "original content", updated.Content, "omitted fields keep prior values")
	require.NotNil(t, updated.UpdatedAt, "updated_at is stamped on first mutation")
}

func TestTranscriptService_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	transcriptService := service.NewTranscriptService(repos.Transcript)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	for i := 0; i < 3; i++ {
		testutil.NewTranscriptBuilder().WithOwner(user).Build(t, testDB.DB)
	}
	testutil.NewTranscriptBuilder().WithOwner(other).Build(t, testDB.DB)

	transcripts, err := transcriptService.List(ctx, user.ID, 100, 0)
	require.NoError(t, err)
	assert.Len(t, transcripts, 3, "listing is scoped to the requesting user")

	page, err := transcriptService.List(ctx, user.ID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestTranscriptService_DeleteCascadesNote(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	transcriptService := service.NewTranscriptService(repos.Transcript)
	noteService := service.NewNoteService(repos.Note, repos.Transcript, repos.User, testutil.NewStubGenerator())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	transcript := testutil.NewTranscriptBuilder().WithOwner(user).Build(t, testDB.DB)
	note := testutil.NewNoteBuilder().WithOwner(user).WithTranscript(transcript).Build(t, testDB.DB)

	require.NoError(t, transcriptService.Delete(ctx, transcript.ID, user.ID))

	_, err := transcriptService.Get(ctx, transcript.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)

	_, err = noteService.Get(ctx, note.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestTranscriptService_DeleteWithoutNote(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	transcriptService := service.NewTranscriptService(repos.Transcript)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	transcript := testutil.NewTranscriptBuilder().WithOwner(user).Build(t, testDB.DB)

	require.NoError(t, transcriptService.Delete(ctx, transcript.ID, user.ID))

	_, err := transcriptService.Get(ctx, transcript.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)
}

func TestTranscriptService_GetMissing(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	transcriptService := service.NewTranscriptService(repos.Transcript)

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := transcriptService.Get(context.Background(), uuid.New(), user.ID)
	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)
}
