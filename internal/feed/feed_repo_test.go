package feed

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
)

// openTestDB connects to the MySQL instance named by MYSQL_TEST_DSN. Tests
// in this file are skipped when it is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set, skipping repository integration tests")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&dbmysql.User{},
		&dbmysql.Post{},
		&dbmysql.Like{},
		&dbmysql.Comment{},
		&dbmysql.Message{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *dbmysql.User {
	t.Helper()
	u := &dbmysql.User{
		Username:     fmt.Sprintf("%s_%d", name, time.Now().UnixNano()),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(u).Error)
	t.Cleanup(func() { db.Unscoped().Delete(u) })
	return u
}

func TestFeedRepository_ToggleLikeParity(t *testing.T) {
	db := openTestDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	liker := createTestUser(t, db, "liker")

	post := &dbmysql.Post{AuthorID: author.ID, Content: "hello"}
	require.NoError(t, repo.CreatePost(ctx, post))
	defer repo.DeletePostCascade(ctx, post.ID)

	// odd number of toggles leaves a like, even removes it
	liked, err := repo.ToggleLike(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	require.True(t, liked)

	count, err := repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	liked, err = repo.ToggleLike(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	require.False(t, liked)

	count, err = repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	liked, err = repo.ToggleLike(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	require.True(t, liked)

	count, err = repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestFeedRepository_DeletePostCascade(t *testing.T) {
	db := openTestDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	commenter := createTestUser(t, db, "commenter")

	post := &dbmysql.Post{AuthorID: author.ID, Content: "doomed"}
	require.NoError(t, repo.CreatePost(ctx, post))

	_, err := repo.ToggleLike(ctx, commenter.ID, post.ID)
	require.NoError(t, err)
	require.NoError(t, repo.AddComment(ctx, &dbmysql.Comment{
		UserID: commenter.ID, PostID: post.ID, Content: "nice",
	}))

	require.NoError(t, repo.DeletePostCascade(ctx, post.ID))

	_, err = repo.GetPostByID(ctx, post.ID)
	require.ErrorIs(t, err, common.ErrNotFound)

	count, err := repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	comments, err := repo.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Empty(t, comments)

	// deleting again is a silent no-op
	require.NoError(t, repo.DeletePostCascade(ctx, post.ID))
}

func TestFeedRepository_ListPostsOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")

	// inserted within the same second on purpose; ids break the tie
	first := &dbmysql.Post{AuthorID: author.ID, Content: "first"}
	second := &dbmysql.Post{AuthorID: author.ID, Content: "second"}
	require.NoError(t, repo.CreatePost(ctx, first))
	require.NoError(t, repo.CreatePost(ctx, second))
	defer repo.DeletePostCascade(ctx, first.ID)
	defer repo.DeletePostCascade(ctx, second.ID)

	posts, err := repo.ListPosts(ctx)
	require.NoError(t, err)

	var firstIdx, secondIdx = -1, -1
	for i, p := range posts {
		switch p.ID {
		case first.ID:
			firstIdx = i
		case second.ID:
			secondIdx = i
		}
	}
	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	require.Less(t, secondIdx, firstIdx, "newer post must come first")
}
