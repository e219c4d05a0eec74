package service

import (
	"context"
	"errors"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

var ErrEmptySearchQuery = errors.New("Search query is required")

// VideoSearcher 搜索引擎查询，返回命中的视频 ID
type VideoSearcher interface {
	SearchVideoIDs(ctx context.Context, term string, from, size int) ([]int64, int64, error)
}

type SearchService struct {
	videos   VideoStore
	likes    LikeStore
	searcher VideoSearcher
}

// NewSearchService searcher 为 nil 时只走数据库
func NewSearchService(videos VideoStore, likes LikeStore, searcher VideoSearcher) *SearchService {
	return &SearchService{videos: videos, likes: likes, searcher: searcher}
}

// SearchVideos 标题子串搜索（ES 优先，失败则降级到 DB）
func (s *SearchService) SearchVideos(ctx context.Context, query string, page, limit int) (*dto.VideoListData, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil, ErrEmptySearchQuery
	}

	if s.searcher != nil {
		data, err := s.searchFromES(ctx, term, page, limit)
		if err == nil {
			return data, nil
		}
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
	}
	return s.searchFromDB(ctx, term, page, limit)
}

func (s *SearchService) searchFromES(ctx context.Context, term string, page, limit int) (*dto.VideoListData, error) {
	ids, total, err := s.searcher.SearchVideoIDs(ctx, term, offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return buildVideoListData(nil, nil, total, page, limit), nil
	}

	videos, err := s.videos.GetByIDsWithOwner(ctx, ids)
	if err != nil {
		return nil, err
	}
	videoMap := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		videoMap[videos[i].ID] = &videos[i]
	}

	// 索引可能滞后，过滤掉已删除或已下架的视频
	ordered := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := videoMap[id]; ok && v.IsPublished {
			ordered = append(ordered, *v)
		}
	}

	likes, err := s.likes.CountByVideos(ctx, videoIDs(ordered))
	if err != nil {
		return nil, err
	}
	return buildVideoListData(ordered, likes, total, page, limit), nil
}

func (s *SearchService) searchFromDB(ctx context.Context, term string, page, limit int) (*dto.VideoListData, error) {
	videos, total, err := s.videos.List(ctx, repository.VideoQuery{
		Skip:     offset(page, limit),
		Limit:    limit,
		Title:    term,
		SortBy:   "createdAt",
		SortDesc: true,
	})
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.CountByVideos(ctx, videoIDs(videos))
	if err != nil {
		return nil, err
	}
	return buildVideoListData(videos, likes, total, page, limit), nil
}
