package service

import (
	"math"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
)

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Fullname:   user.Fullname,
		Avatar:     user.AvatarURL,
		CoverImage: user.CoverImageURL,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toOwnerBrief(user *model.User) *dto.OwnerBrief {
	if user == nil || user.ID == 0 {
		return nil
	}
	return &dto.OwnerBrief{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
		Avatar:   user.AvatarURL,
	}
}

func toOwnerBriefs(users []model.User) []dto.OwnerBrief {
	items := make([]dto.OwnerBrief, 0, len(users))
	for i := range users {
		items = append(items, *toOwnerBrief(&users[i]))
	}
	return items
}

func toVideoInfo(v *model.Video, likes int64) dto.VideoInfo {
	return dto.VideoInfo{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		VideoFile:   v.VideoFileURL,
		Thumbnail:   v.ThumbnailURL,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		LikesCount:  likes,
		Owner:       toOwnerBrief(&v.Owner),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toVideoInfos(videos []model.Video, likes map[int64]int64) []dto.VideoInfo {
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, toVideoInfo(&videos[i], likes[videos[i].ID]))
	}
	return items
}

func buildVideoListData(videos []model.Video, likes map[int64]int64, total int64, page, limit int) *dto.VideoListData {
	return &dto.VideoListData{
		Videos:     toVideoInfos(videos, likes),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}
}

func buildUserListData(users []model.User, total int64, page, limit int) *dto.UserListData {
	return &dto.UserListData{
		Users:      toOwnerBriefs(users),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// offset 换算分页偏移，溢出时饱和到 MaxInt32，查询结果为空页
func offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt32/limit {
		return math.MaxInt32
	}
	return (page - 1) * limit
}

func videoIDs(videos []model.Video) []int64 {
	ids := make([]int64, 0, len(videos))
	for i := range videos {
		ids = append(ids, videos[i].ID)
	}
	return ids
}
