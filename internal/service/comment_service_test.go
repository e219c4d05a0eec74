package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommentsPagination(t *testing.T) {
	db := newMemDB()
	alice := db.addUser("alice")
	video := db.addVideo(alice.ID, "Clip", true)
	svc := NewCommentService(fakeComments{db}, fakeVideos{db})
	ctx := context.Background()

	var ids []int64
	for i := 1; i <= 12; i++ {
		c, err := svc.AddComment(ctx, video.ID, alice, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	data, err := svc.ListComments(ctx, video.ID, alice.ID, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), data.Total)
	assert.Equal(t, int64(3), data.TotalPages)
	require.Len(t, data.Comments, 5)

	// 最新在前：第二页是第 6 到第 10 新的评论
	for i, c := range data.Comments {
		assert.Equal(t, ids[len(ids)-6-i], c.ID)
		assert.True(t, c.IsOwner)
	}

	data, err = svc.ListComments(ctx, video.ID, alice.ID, 4, 5)
	require.NoError(t, err)
	assert.Empty(t, data.Comments)
	assert.Equal(t, int64(12), data.Total)

	// 超大页码不能让偏移量溢出成负数
	data, err = svc.ListComments(ctx, video.ID, alice.ID, 1<<58, 50)
	require.NoError(t, err)
	assert.Empty(t, data.Comments)
	assert.Equal(t, int64(12), data.Total)
}

func TestOffsetSaturates(t *testing.T) {
	assert.Equal(t, 0, offset(0, 10))
	assert.Equal(t, 10, offset(2, 10))
	assert.Equal(t, 0, offset(5, 0))
	assert.Equal(t, math.MaxInt32, offset(1<<58, 50))
	assert.Equal(t, math.MaxInt32, offset(math.MaxInt, math.MaxInt))
}

func TestCommentValidationAndOwnership(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	video := db.addVideo(alice.ID, "Clip", true)
	draft := db.addVideo(alice.ID, "Draft", false)
	svc := NewCommentService(fakeComments{db}, fakeVideos{db})
	ctx := context.Background()

	_, err := svc.AddComment(ctx, video.ID, bob, "   ")
	assert.ErrorIs(t, err, ErrCommentEmpty)
	_, err = svc.AddComment(ctx, video.ID, bob, strings.Repeat("x", 1001))
	assert.ErrorIs(t, err, ErrCommentTooLong)
	_, err = svc.AddComment(ctx, draft.ID, bob, "hi")
	assert.ErrorIs(t, err, ErrVideoNotFound)

	c, err := svc.AddComment(ctx, video.ID, bob, " nice ")
	require.NoError(t, err)
	assert.Equal(t, "nice", c.Content)
	assert.Equal(t, "bob", c.Owner.Username)

	_, err = svc.UpdateComment(ctx, c.ID, alice, "edited")
	assert.ErrorIs(t, err, ErrCommentNotOwner)

	updated, err := svc.UpdateComment(ctx, c.ID, bob, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	assert.ErrorIs(t, svc.DeleteComment(ctx, c.ID, alice.ID), ErrCommentNotOwner)
	require.NoError(t, svc.DeleteComment(ctx, c.ID, bob.ID))
	assert.ErrorIs(t, svc.DeleteComment(ctx, c.ID, bob.ID), ErrCommentNotFound)
}
