package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PickMe/internal/core/likes"
	"PickMe/internal/core/posts"
)

func createTestPost(t *testing.T, repo posts.Repository, authorID int64, text string) *posts.Post {
	post, err := repo.Create(context.Background(), &posts.Post{
		AuthorID:    authorID,
		ContentType: posts.ContentTypeText,
		TextContent: text,
		Audience:    posts.AudienceEveryone,
	})
	require.NoError(t, err, "Failed to create test post")
	return post
}

func TestLikeRepo_UpsertIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupAll(t, db)

	likeRepo := NewLikeRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	authorID := createTestUser(t, db, "test_like_author")
	likerID := createTestUser(t, db, "test_like_liker")
	post := createTestPost(t, postRepo, authorID, "likeable")

	created, err := likeRepo.Upsert(ctx, likerID, post.ID)
	require.NoError(t, err)
	assert.True(t, created, "first like should create a row")

	created, err = likeRepo.Upsert(ctx, likerID, post.ID)
	require.NoError(t, err)
	assert.False(t, created, "second like should be a no-op")

	count, err := likeRepo.CountForPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLikeRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupAll(t, db)

	likeRepo := NewLikeRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	authorID := createTestUser(t, db, "test_unlike_author")
	likerID := createTestUser(t, db, "test_unlike_liker")
	post := createTestPost(t, postRepo, authorID, "likeable")

	// Unliking before liking reports nothing removed
	removed, err := likeRepo.Delete(ctx, likerID, post.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = likeRepo.Upsert(ctx, likerID, post.ID)
	require.NoError(t, err)

	removed, err = likeRepo.Delete(ctx, likerID, post.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	count, err := likeRepo.CountForPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestLikeRepo_UpsertMissingPost(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupAll(t, db)

	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	likerID := createTestUser(t, db, "test_ghost_liker")

	_, err := likeRepo.Upsert(ctx, likerID, 999999999)
	assert.ErrorIs(t, err, likes.ErrPostNotFound)
}

func TestLikeRepo_ListForPost(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupAll(t, db)

	likeRepo := NewLikeRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	authorID := createTestUser(t, db, "test_list_author")
	liker1 := createTestUser(t, db, "test_list_liker1")
	liker2 := createTestUser(t, db, "test_list_liker2")
	post := createTestPost(t, postRepo, authorID, "popular")

	_, err := likeRepo.Upsert(ctx, liker1, post.ID)
	require.NoError(t, err)
	_, err = likeRepo.Upsert(ctx, liker2, post.ID)
	require.NoError(t, err)

	likers, err := likeRepo.ListForPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, likers, 2)

	ids := []int64{likers[0].User.ID, likers[1].User.ID}
	assert.ElementsMatch(t, []int64{liker1, liker2}, ids)
	assert.NotEmpty(t, likers[0].User.Username)
}

// TestLikeRepo_PostDeleteCascades checks that deleting a post removes its
// ledger rows
func TestLikeRepo_PostDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupAll(t, db)

	likeRepo := NewLikeRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	authorID := createTestUser(t, db, "test_casc_author")
	likerID := createTestUser(t, db, "test_casc_liker")
	post := createTestPost(t, postRepo, authorID, "doomed")

	_, err := likeRepo.Upsert(ctx, likerID, post.ID)
	require.NoError(t, err)

	require.NoError(t, postRepo.Delete(ctx, post.ID))

	count, err := likeRepo.CountForPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
