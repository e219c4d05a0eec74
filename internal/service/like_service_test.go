package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleVideoLikeTwiceRestoresCount(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	video := db.addVideo(alice.ID, "Clip", true)
	svc := NewLikeService(fakeLikes{db}, fakeVideos{db}, fakeComments{db})
	ctx := context.Background()

	first, err := svc.ToggleVideoLike(ctx, video.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, int64(1), first.LikesCount)

	second, err := svc.ToggleVideoLike(ctx, video.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, int64(0), second.LikesCount)
}

func TestToggleLikeMissingTargets(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	draft := db.addVideo(alice.ID, "Draft", false)
	svc := NewLikeService(fakeLikes{db}, fakeVideos{db}, fakeComments{db})
	ctx := context.Background()

	_, err := svc.ToggleVideoLike(ctx, 404, bob.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)
	_, err = svc.ToggleVideoLike(ctx, draft.ID, bob.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)
	_, err = svc.ToggleCommentLike(ctx, 404, bob.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestToggleCommentLikeAndLikedVideos(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	v1 := db.addVideo(alice.ID, "One", true)
	v2 := db.addVideo(alice.ID, "Two", true)
	comments := NewCommentService(fakeComments{db}, fakeVideos{db})
	svc := NewLikeService(fakeLikes{db}, fakeVideos{db}, fakeComments{db})
	ctx := context.Background()

	c, err := comments.AddComment(ctx, v1.ID, alice, "hello")
	require.NoError(t, err)
	liked, err := svc.ToggleCommentLike(ctx, c.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, int64(1), liked.LikesCount)

	_, err = svc.ToggleVideoLike(ctx, v1.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.ToggleVideoLike(ctx, v2.ID, bob.ID)
	require.NoError(t, err)

	data, err := svc.ListLikedVideos(ctx, bob.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	require.Len(t, data.Videos, 2)
	assert.Equal(t, int64(1), data.Videos[0].LikesCount)
}

func TestLikedVideosHideOthersUnpublished(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	theirs := db.addVideo(alice.ID, "Theirs", true)
	own := db.addVideo(bob.ID, "Own", true)
	svc := NewLikeService(fakeLikes{db}, fakeVideos{db}, fakeComments{db})
	ctx := context.Background()

	_, err := svc.ToggleVideoLike(ctx, theirs.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.ToggleVideoLike(ctx, own.ID, bob.ID)
	require.NoError(t, err)

	// 点赞之后两条视频都被下架
	db.mu.Lock()
	db.videos[theirs.ID].IsPublished = false
	db.videos[own.ID].IsPublished = false
	db.mu.Unlock()

	data, err := svc.ListLikedVideos(ctx, bob.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Total)
	require.Len(t, data.Videos, 1)
	assert.Equal(t, own.ID, data.Videos[0].ID)
}
