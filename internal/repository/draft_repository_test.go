package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mailsmith/internal/model"
	mysqlClient "mailsmith/internal/platform/mysql"
	"mailsmith/internal/repository"
)

// Integration tests against a real MySQL instance. Set MYSQL_TEST_DSN to run,
// e.g. root:@tcp(127.0.0.1:3306)/mailsmith_test?parseTime=true
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	db, err := mysqlClient.New(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Draft{}, &model.Lead{}))

	t.Cleanup(func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Draft{})
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Lead{})
	})
	return db
}

func TestDraftRepository(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDraftRepository(db)

	t.Run("create assigns increasing ids", func(t *testing.T) {
		first := &model.Draft{Subject: "first"}
		second := &model.Draft{Subject: "second"}

		require.NoError(t, repo.Create(first))
		require.NoError(t, repo.Create(second))

		assert.NotZero(t, first.ID)
		assert.Greater(t, second.ID, first.ID)
		assert.False(t, first.CreatedAt.IsZero())
	})

	t.Run("list returns newest first", func(t *testing.T) {
		latest := &model.Draft{Subject: "latest", To: "x@example.com"}
		require.NoError(t, repo.Create(latest))

		drafts, err := repo.ListNewestFirst()
		require.NoError(t, err)
		require.NotEmpty(t, drafts)
		assert.Equal(t, latest.ID, drafts[0].ID)
		assert.Equal(t, "latest", drafts[0].Subject)
	})
}

func TestLeadRepository(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewLeadRepository(db)

	lead := &model.Lead{Name: "Ada", Email: "ada@example.com", Message: "demo request"}
	require.NoError(t, repo.Create(lead))
	assert.NotZero(t, lead.ID)
}
