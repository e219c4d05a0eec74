package service

import (
	"context"
	"testing"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/infra/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVideoService(db *memDB, m *fakeMedia, events *fakeEvents) *VideoService {
	if events == nil {
		return NewVideoService(fakeVideos{db}, fakeLikes{db}, m, nil, "VIDTUBE")
	}
	return NewVideoService(fakeVideos{db}, fakeLikes{db}, m, events, "VIDTUBE")
}

func TestGetVideoCountsViewsForOthersOnly(t *testing.T) {
	db := newMemDB()
	owner, viewer := db.addUser("alice"), db.addUser("bob")
	video := db.addVideo(owner.ID, "Intro", true)
	svc := newVideoService(db, &fakeMedia{}, nil)
	ctx := context.Background()

	detail, err := svc.GetVideo(ctx, video.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsOwner)
	assert.Equal(t, int64(0), detail.Views)

	detail, err = svc.GetVideo(ctx, video.ID, viewer.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsOwner)
	assert.Equal(t, int64(1), detail.Views)
	assert.Equal(t, "alice", detail.Owner.Username)

	_, err = svc.GetVideo(ctx, video.ID, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), db.videos[video.ID].Views)

	// 重复观看只记录一次
	assert.Equal(t, []int64{video.ID}, db.history[viewer.ID])
	assert.Empty(t, db.history[owner.ID])
}

func TestGetUnpublishedVideoHiddenFromOthers(t *testing.T) {
	db := newMemDB()
	owner, viewer := db.addUser("alice"), db.addUser("bob")
	video := db.addVideo(owner.ID, "Draft", false)
	svc := newVideoService(db, &fakeMedia{}, nil)

	_, err := svc.GetVideo(context.Background(), video.ID, viewer.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	_, err = svc.GetVideo(context.Background(), video.ID, owner.ID)
	assert.NoError(t, err)

	_, err = svc.GetVideo(context.Background(), 999, owner.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestUploadVideo(t *testing.T) {
	db, m, events := newMemDB(), &fakeMedia{}, &fakeEvents{}
	owner := db.addUser("alice")
	svc := newVideoService(db, m, events)

	info, err := svc.Upload(context.Background(), owner, &dto.VideoUploadRequest{
		Title:    "  First  ",
		Duration: 12.5,
	}, "/tmp/upload/clip.mp4", "/tmp/upload/thumb.png")
	require.NoError(t, err)

	assert.Equal(t, "First", info.Title)
	assert.True(t, info.IsPublished)
	assert.Equal(t, 12.5, info.Duration)
	assert.Equal(t, "https://cdn.test/VIDTUBE/1/clip.mp4", info.VideoFile)
	assert.Equal(t, "alice", info.Owner.Username)
	assert.Equal(t, []string{kafka.VideoPublished}, events.types())

	_, err = svc.Upload(context.Background(), owner, &dto.VideoUploadRequest{Title: "x"}, "/tmp/upload/clip.mp4", "")
	assert.ErrorIs(t, err, ErrVideoFilesRequired)
}

func TestUploadVideoCleansUpWhenThumbnailFails(t *testing.T) {
	db, m := newMemDB(), &fakeMedia{failAfter: 1}
	owner := db.addUser("alice")
	svc := newVideoService(db, m, nil)

	_, err := svc.Upload(context.Background(), owner, &dto.VideoUploadRequest{Title: "x"}, "/tmp/upload/clip.mp4", "/tmp/upload/thumb.png")
	assert.ErrorIs(t, err, ErrMediaUploadFailed)
	assert.Equal(t, []string{"VIDTUBE/1/clip.mp4"}, m.deleted)
	assert.Empty(t, db.videos)
}

func TestUpdateVideoOwnership(t *testing.T) {
	db, m := newMemDB(), &fakeMedia{}
	owner, other := db.addUser("alice"), db.addUser("bob")
	video := db.addVideo(owner.ID, "Old", true)
	video.ThumbnailID = "VIDTUBE/1/old.png"
	svc := newVideoService(db, m, nil)
	ctx := context.Background()

	title := "New"
	_, err := svc.Update(ctx, video.ID, other.ID, &dto.VideoUpdateRequest{Title: &title}, "")
	assert.ErrorIs(t, err, ErrVideoNotOwner)

	_, err = svc.Update(ctx, video.ID, owner.ID, &dto.VideoUpdateRequest{}, "")
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	info, err := svc.Update(ctx, video.ID, owner.ID, &dto.VideoUpdateRequest{Title: &title}, "/tmp/upload/new.png")
	require.NoError(t, err)
	assert.Equal(t, "New", info.Title)
	assert.Equal(t, "https://cdn.test/VIDTUBE/1/new.png", info.Thumbnail)
	assert.Equal(t, []string{"VIDTUBE/1/old.png"}, m.deleted)
}

func TestTogglePublishAndDelete(t *testing.T) {
	db, m, events := newMemDB(), &fakeMedia{}, &fakeEvents{}
	owner := db.addUser("alice")
	video := db.addVideo(owner.ID, "Clip", true)
	video.VideoFileID, video.ThumbnailID = "v.mp4", "t.png"
	svc := newVideoService(db, m, events)
	ctx := context.Background()

	info, err := svc.TogglePublish(ctx, video.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, info.IsPublished)

	info, err = svc.TogglePublish(ctx, video.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, info.IsPublished)

	assert.ErrorIs(t, svc.Delete(ctx, video.ID, owner.ID+100), ErrVideoNotOwner)
	require.NoError(t, svc.Delete(ctx, video.ID, owner.ID))
	assert.ElementsMatch(t, []string{"v.mp4", "t.png"}, m.deleted)
	assert.Equal(t, []string{kafka.VideoUpdated, kafka.VideoPublished, kafka.VideoDeleted}, events.types())

	assert.ErrorIs(t, svc.Delete(ctx, video.ID, owner.ID), ErrVideoNotFound)
}

func TestListFeed(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	db.addVideo(alice.ID, "a1", true)
	db.addVideo(alice.ID, "a2", false)
	db.addVideo(bob.ID, "b1", true)
	svc := newVideoService(db, &fakeMedia{}, nil)
	ctx := context.Background()

	all, err := svc.ListFeed(ctx, bob.ID, 1, 10, &dto.VideoFeedQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	own, err := svc.ListFeed(ctx, alice.ID, 1, 10, &dto.VideoFeedQuery{UserID: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), own.Total)

	others, err := svc.ListFeed(ctx, bob.ID, 1, 10, &dto.VideoFeedQuery{UserID: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), others.Total)

	_, err = svc.ListFeed(ctx, bob.ID, 1, 10, &dto.VideoFeedQuery{UserID: "abc"})
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestDeletePublishesAfterRequestCancelled(t *testing.T) {
	db, m, events := newMemDB(), &fakeMedia{}, &fakeEvents{}
	owner := db.addUser("alice")
	video := db.addVideo(owner.ID, "Clip", true)
	svc := newVideoService(db, m, events)

	// 客户端断开后请求 ctx 已取消，删除事件仍需送达索引
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, svc.Delete(ctx, video.ID, owner.ID))
	assert.Equal(t, []string{kafka.VideoDeleted}, events.types())
	assert.Equal(t, []bool{true}, events.deadlines)
}
