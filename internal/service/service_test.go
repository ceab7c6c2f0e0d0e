package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccrayp/portfolio-api/internal/domain"
	"github.com/ccrayp/portfolio-api/internal/platform/database"
	"github.com/ccrayp/portfolio-api/internal/service"
	"github.com/ccrayp/portfolio-api/internal/store"
	"github.com/ccrayp/portfolio-api/internal/testdb"
)

func newPostService(t *testing.T) (service.PostService, *sql.DB) {
	t.Helper()
	db := testdb.OpenSQLite(t)
	svc, err := service.NewPostService(db, database.NewPostStore(db, nil), nil)
	require.NoError(t, err)
	return svc, db
}

var postFields = domain.PostFields{
	Label: "Hello",
	Text:  "First post",
	Img:   "hello.png",
	Date:  "2024-05-01",
	Link:  "https://example.com/hello",
	Mode:  "dark",
}

func TestPostServiceCreateThenGet(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, postFields)
	require.NoError(t, err)
	require.Positive(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	want := domain.NewPost(postFields)
	want.ID = created.ID
	assert.Equal(t, want, got)
}

func TestPostServiceUpdateOverwritesEveryField(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, postFields)
	require.NoError(t, err)

	replacement := domain.PostFields{Label: "New", Text: "", Img: "n.png", Date: "2025", Link: "l", Mode: "light"}
	require.NoError(t, svc.UpdateByID(ctx, created.ID, replacement))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	want := domain.NewPost(replacement)
	want.ID = created.ID
	assert.Equal(t, want, got)
}

func TestPostServiceMissingRows(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, service.ErrPostNotFound)

	err = svc.UpdateByID(ctx, 42, postFields)
	assert.ErrorIs(t, err, service.ErrPostNotFound)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.DeleteByID(ctx, 42)
	assert.ErrorIs(t, err, service.ErrPostNotFound)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPostServiceDeleteReturnsSnapshot(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, postFields)
	require.NoError(t, err)

	deleted, err := svc.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = svc.DeleteByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrPostNotFound, "second delete reports not found")
}

func TestPostServiceCreateRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO posts").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	svc, err := service.NewPostService(db, database.NewPostStore(db, nil), nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), postFields)
	require.Error(t, err)

	var svcErr *service.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create", svcErr.Operation)
	assert.NotErrorIs(t, err, service.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// failingPostStore wraps a real store and fails Update after delegating
// lookups, so the surrounding transaction has to roll back.
type failingPostStore struct {
	store.PostStore
}

func (f failingPostStore) Update(context.Context, *domain.Post) error {
	return errors.New("simulated update failure")
}

func (f failingPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return failingPostStore{PostStore: f.PostStore.WithTx(tx)}
}

func TestPostServiceUpdateFailureLeavesRowUntouched(t *testing.T) {
	db := testdb.OpenSQLite(t)
	ctx := context.Background()
	posts := database.NewPostStore(db, nil)

	good, err := service.NewPostService(db, posts, nil)
	require.NoError(t, err)
	created, err := good.Create(ctx, postFields)
	require.NoError(t, err)

	bad, err := service.NewPostService(db, failingPostStore{PostStore: posts}, nil)
	require.NoError(t, err)
	err = bad.UpdateByID(ctx, created.ID, domain.PostFields{Label: "changed"})
	require.Error(t, err)

	got, err := good.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Label)
}

func TestNewServicesRejectNilDependencies(t *testing.T) {
	db := testdb.OpenSQLite(t)

	_, err := service.NewPostService(nil, database.NewPostStore(db, nil), nil)
	assert.Error(t, err)
	_, err = service.NewProjectService(db, nil, nil)
	assert.Error(t, err)
	_, err = service.NewTechnologyService(db, nil, nil)
	assert.Error(t, err)
}

func TestProjectServiceLifecycle(t *testing.T) {
	db := testdb.OpenSQLite(t)
	svc, err := service.NewProjectService(db, database.NewProjectStore(db, nil), nil)
	require.NoError(t, err)
	ctx := context.Background()

	fields := domain.ProjectFields{Label: "CMS", Text: "API", Img: "c.png", Stack: "Go, SQLite", Link: "https://x"}
	created, err := svc.Create(ctx, fields)
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])

	err = svc.UpdateByID(ctx, created.ID+100, fields)
	assert.ErrorIs(t, err, service.ErrProjectNotFound)

	fields.Stack = "Go"
	require.NoError(t, svc.UpdateByID(ctx, created.ID, fields))
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Stack)

	deleted, err := svc.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, deleted)
}

func TestTechnologyServiceGetByGroup(t *testing.T) {
	db := testdb.OpenSQLite(t)
	svc, err := service.NewTechnologyService(db, database.NewTechnologyStore(db, nil), nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Create(ctx, domain.TechnologyFields{Label: "Go", Img: "go.png", Group: "backend", Mode: "dark"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.TechnologyFields{Label: "Vue", Img: "vue.png", Group: "frontend", Mode: "dark"})
	require.NoError(t, err)

	backend, err := svc.GetByGroup(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, backend, 1)
	assert.Equal(t, "Go", backend[0].Label)

	none, err := svc.GetByGroup(ctx, "devops")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, service.ErrTechnologyNotFound)
}
