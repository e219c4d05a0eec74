package service

import (
	"context"
	"testing"

	"vidtube-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlaylistService(db *memDB) *PlaylistService {
	return NewPlaylistService(fakePlaylists{db}, fakeVideos{db}, fakeLikes{db})
}

func TestCreatePlaylistUniquePerOwner(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	svc := newPlaylistService(db)
	ctx := context.Background()

	p, err := svc.Create(ctx, alice.ID, &dto.CreatePlaylistRequest{Name: " Favourites ", Description: "best"})
	require.NoError(t, err)
	assert.Equal(t, "Favourites", p.Name)
	assert.Equal(t, alice.ID, p.OwnerID)
	assert.Empty(t, p.Videos)

	_, err = svc.Create(ctx, alice.ID, &dto.CreatePlaylistRequest{Name: "Favourites"})
	assert.ErrorIs(t, err, ErrPlaylistExists)

	_, err = svc.Create(ctx, bob.ID, &dto.CreatePlaylistRequest{Name: "Favourites"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, bob.ID, &dto.CreatePlaylistRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrPlaylistNameRequired)
}

func TestAddAndRemovePlaylistVideos(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	video := db.addVideo(bob.ID, "Clip", true)
	draft := db.addVideo(bob.ID, "Draft", false)
	svc := newPlaylistService(db)
	ctx := context.Background()

	p, err := svc.Create(ctx, alice.ID, &dto.CreatePlaylistRequest{Name: "Later"})
	require.NoError(t, err)

	_, err = svc.AddVideo(ctx, alice.ID, &dto.AddToPlaylistRequest{VideoID: video.ID})
	assert.ErrorIs(t, err, ErrPlaylistRefRequired)

	info, err := svc.AddVideo(ctx, alice.ID, &dto.AddToPlaylistRequest{PlaylistName: "Later", VideoID: video.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, info.TotalVideos)

	// 重复加入不产生重复项
	info, err = svc.AddVideo(ctx, alice.ID, &dto.AddToPlaylistRequest{PlaylistID: p.ID, VideoID: video.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, info.TotalVideos)

	_, err = svc.AddVideo(ctx, alice.ID, &dto.AddToPlaylistRequest{PlaylistID: p.ID, VideoID: draft.ID})
	assert.ErrorIs(t, err, ErrVideoNotFound)

	_, err = svc.AddVideo(ctx, bob.ID, &dto.AddToPlaylistRequest{PlaylistID: p.ID, VideoID: video.ID})
	assert.ErrorIs(t, err, ErrPlaylistNotOwner)

	_, err = svc.AddVideo(ctx, alice.ID, &dto.AddToPlaylistRequest{PlaylistName: "Missing", VideoID: video.ID})
	assert.ErrorIs(t, err, ErrPlaylistNotFound)

	info, err = svc.RemoveVideo(ctx, alice.ID, p.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, info.TotalVideos)

	_, err = svc.RemoveVideo(ctx, alice.ID, p.ID, video.ID)
	assert.ErrorIs(t, err, ErrVideoNotInPlaylist)
}

func TestGetPlaylistHidesUnpublishedFromOthers(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	public := db.addVideo(alice.ID, "Public", true)
	draft := db.addVideo(alice.ID, "Draft", false)
	svc := newPlaylistService(db)
	ctx := context.Background()

	p, err := svc.Create(ctx, alice.ID, &dto.CreatePlaylistRequest{Name: "Mine"})
	require.NoError(t, err)
	for _, id := range []int64{public.ID, draft.ID} {
		_, err = svc.AddVideo(ctx, alice.ID, &dto.AddToPlaylistRequest{PlaylistID: p.ID, VideoID: id})
		require.NoError(t, err)
	}

	mine, err := svc.Get(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, mine.TotalVideos)

	theirs, err := svc.Get(ctx, p.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, theirs.TotalVideos)
	assert.Equal(t, public.ID, theirs.Videos[0].ID)

	list, err := svc.ListMine(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].TotalVideos)

	_, err = svc.Get(ctx, 999, alice.ID)
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestUpdateAndDeletePlaylist(t *testing.T) {
	db := newMemDB()
	alice, bob := db.addUser("alice"), db.addUser("bob")
	svc := newPlaylistService(db)
	ctx := context.Background()

	a, err := svc.Create(ctx, alice.ID, &dto.CreatePlaylistRequest{Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice.ID, &dto.CreatePlaylistRequest{Name: "B"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, alice.ID, a.ID, &dto.UpdatePlaylistRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	taken := "B"
	_, err = svc.Update(ctx, alice.ID, a.ID, &dto.UpdatePlaylistRequest{Name: &taken})
	assert.ErrorIs(t, err, ErrPlaylistExists)

	renamed, desc := "Renamed", "new description"
	info, err := svc.Update(ctx, alice.ID, a.ID, &dto.UpdatePlaylistRequest{Name: &renamed, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", info.Name)
	assert.Equal(t, "new description", info.Description)

	_, err = svc.Update(ctx, bob.ID, a.ID, &dto.UpdatePlaylistRequest{Name: &renamed})
	assert.ErrorIs(t, err, ErrPlaylistNotOwner)

	assert.ErrorIs(t, svc.Delete(ctx, bob.ID, a.ID), ErrPlaylistNotOwner)
	require.NoError(t, svc.Delete(ctx, alice.ID, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, alice.ID, a.ID), ErrPlaylistNotFound)
}
