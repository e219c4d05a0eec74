package service

import (
	"context"
	"errors"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound     = errors.New("Playlist not found")
	ErrPlaylistNotOwner     = errors.New("You are not the owner of this playlist")
	ErrPlaylistExists       = errors.New("A playlist with this name already exists")
	ErrPlaylistNameRequired = errors.New("Playlist name is required")
	ErrPlaylistRefRequired  = errors.New("playlistId or playlistName is required")
	ErrVideoNotInPlaylist   = errors.New("Video is not in this playlist")
)

type PlaylistService struct {
	playlists PlaylistStore
	videos    VideoStore
	likes     LikeStore
}

func NewPlaylistService(playlists PlaylistStore, videos VideoStore, likes LikeStore) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos, likes: likes}
}

// Create 创建播放列表，同一用户下名称唯一
func (s *PlaylistService) Create(ctx context.Context, ownerID int64, req *dto.CreatePlaylistRequest) (*dto.PlaylistInfo, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrPlaylistNameRequired
	}

	exists, err := s.playlists.ExistsByName(ctx, ownerID, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPlaylistExists
	}

	playlist := &model.Playlist{
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlaylistExists
		}
		return nil, err
	}
	return toPlaylistInfo(playlist, nil, nil), nil
}

// ListMine 当前用户的全部播放列表（含视频）
func (s *PlaylistService) ListMine(ctx context.Context, ownerID int64) ([]dto.PlaylistInfo, error) {
	playlists, err := s.playlists.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(playlists))
	for i := range playlists {
		ids = append(ids, playlists[i].ID)
	}
	videosByPlaylist, err := s.playlists.ListVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	likes, err := s.countLikes(ctx, videosByPlaylist)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PlaylistInfo, 0, len(playlists))
	for i := range playlists {
		items = append(items, *toPlaylistInfo(&playlists[i], videosByPlaylist[playlists[i].ID], likes))
	}
	return items, nil
}

// Get 播放列表详情；非作者看不到其中未公开的视频
func (s *PlaylistService) Get(ctx context.Context, playlistID, viewerID int64) (*dto.PlaylistInfo, error) {
	playlist, err := s.find(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return s.withVideos(ctx, playlist, viewerID)
}

// AddVideo 按 ID 或名称定位播放列表并加入视频，重复加入忽略
func (s *PlaylistService) AddVideo(ctx context.Context, ownerID int64, req *dto.AddToPlaylistRequest) (*dto.PlaylistInfo, error) {
	var (
		playlist *model.Playlist
		err      error
	)
	switch name := strings.TrimSpace(req.PlaylistName); {
	case req.PlaylistID > 0:
		playlist, err = s.find(ctx, req.PlaylistID)
	case name != "":
		playlist, err = s.playlists.GetByOwnerAndName(ctx, ownerID, name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrPlaylistNotFound
		}
	default:
		return nil, ErrPlaylistRefRequired
	}
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != ownerID {
		return nil, ErrPlaylistNotOwner
	}

	video, err := s.videos.GetByID(ctx, req.VideoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != ownerID {
		return nil, ErrVideoNotFound
	}

	if err := s.playlists.AddVideo(ctx, playlist.ID, video.ID); err != nil {
		return nil, err
	}
	return s.withVideos(ctx, playlist, ownerID)
}

// RemoveVideo 从播放列表移除视频
func (s *PlaylistService) RemoveVideo(ctx context.Context, ownerID, playlistID, videoID int64) (*dto.PlaylistInfo, error) {
	playlist, err := s.owned(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}

	removed, err := s.playlists.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrVideoNotInPlaylist
	}
	return s.withVideos(ctx, playlist, ownerID)
}

// Update 修改名称和描述
func (s *PlaylistService) Update(ctx context.Context, ownerID, playlistID int64, req *dto.UpdatePlaylistRequest) (*dto.PlaylistInfo, error) {
	if _, err := s.owned(ctx, playlistID, ownerID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrPlaylistNameRequired
		}
		exists, err := s.playlists.ExistsByName(ctx, ownerID, name, playlistID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrPlaylistExists
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	updated, err := s.playlists.Update(ctx, playlistID, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrPlaylistExists
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return s.withVideos(ctx, updated, ownerID)
}

// Delete 删除播放列表
func (s *PlaylistService) Delete(ctx context.Context, ownerID, playlistID int64) error {
	if _, err := s.owned(ctx, playlistID, ownerID); err != nil {
		return err
	}
	if err := s.playlists.Delete(ctx, playlistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	return nil
}

func (s *PlaylistService) find(ctx context.Context, playlistID int64) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) owned(ctx context.Context, playlistID, ownerID int64) (*model.Playlist, error) {
	playlist, err := s.find(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != ownerID {
		return nil, ErrPlaylistNotOwner
	}
	return playlist, nil
}

func (s *PlaylistService) withVideos(ctx context.Context, playlist *model.Playlist, viewerID int64) (*dto.PlaylistInfo, error) {
	byPlaylist, err := s.playlists.ListVideos(ctx, []int64{playlist.ID})
	if err != nil {
		return nil, err
	}

	videos := byPlaylist[playlist.ID]
	if playlist.OwnerID != viewerID {
		visible := videos[:0]
		for _, v := range videos {
			if v.IsPublished || v.OwnerID == viewerID {
				visible = append(visible, v)
			}
		}
		videos = visible
	}

	likes, err := s.likes.CountByVideos(ctx, videoIDs(videos))
	if err != nil {
		return nil, err
	}
	return toPlaylistInfo(playlist, videos, likes), nil
}

func (s *PlaylistService) countLikes(ctx context.Context, byPlaylist map[int64][]model.Video) (map[int64]int64, error) {
	var ids []int64
	for _, videos := range byPlaylist {
		ids = append(ids, videoIDs(videos)...)
	}
	return s.likes.CountByVideos(ctx, ids)
}

func toPlaylistInfo(p *model.Playlist, videos []model.Video, likes map[int64]int64) *dto.PlaylistInfo {
	return &dto.PlaylistInfo{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Videos:      toVideoInfos(videos, likes),
		TotalVideos: len(videos),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
