package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLength = 1000

var (
	ErrCommentNotFound = errors.New("Comment not found")
	ErrCommentNotOwner = errors.New("You are not the owner of this comment")
	ErrCommentEmpty    = errors.New("Comment content is required")
	ErrCommentTooLong  = errors.New("Comment must be at most 1000 characters")
)

type CommentService struct {
	comments CommentStore
	videos   VideoStore
}

func NewCommentService(comments CommentStore, videos VideoStore) *CommentService {
	return &CommentService{comments: comments, videos: videos}
}

// ListComments 视频评论，最新在前；超出最后一页返回空列表
func (s *CommentService) ListComments(ctx context.Context, videoID, viewerID int64, page, limit int) (*dto.CommentListData, error) {
	if _, err := s.visibleVideo(ctx, videoID, viewerID); err != nil {
		return nil, err
	}

	rows, total, err := s.comments.ListByVideo(ctx, videoID, viewerID, offset(page, limit), limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentInfo, 0, len(rows))
	for i := range rows {
		items = append(items, toCommentInfo(&rows[i], viewerID))
	}
	return &dto.CommentListData{
		Comments:   items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// AddComment 发表评论
func (s *CommentService) AddComment(ctx context.Context, videoID int64, author *model.User, content string) (*dto.CommentInfo, error) {
	content, err := normalizeComment(content)
	if err != nil {
		return nil, err
	}
	if _, err := s.visibleVideo(ctx, videoID, author.ID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		OwnerID: author.ID,
		VideoID: videoID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Owner = *author
	return commentInfoFromModel(comment, author.ID), nil
}

// UpdateComment 修改评论内容，仅作者可操作
func (s *CommentService) UpdateComment(ctx context.Context, commentID int64, author *model.User, content string) (*dto.CommentInfo, error) {
	content, err := normalizeComment(content)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedComment(ctx, commentID, author.ID); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContent(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	updated.Owner = *author
	return commentInfoFromModel(updated, author.ID), nil
}

// DeleteComment 删除评论及其点赞，仅作者可操作
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID int64) error {
	if _, err := s.ownedComment(ctx, commentID, userID); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (s *CommentService) ownedComment(ctx context.Context, commentID, userID int64) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.OwnerID != userID {
		return nil, ErrCommentNotOwner
	}
	return comment, nil
}

// visibleVideo 未公开视频仅作者可见
func (s *CommentService) visibleVideo(ctx context.Context, videoID, viewerID int64) (*model.Video, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

func normalizeComment(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrCommentEmpty
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return "", ErrCommentTooLong
	}
	return content, nil
}

func toCommentInfo(row *repository.CommentRow, viewerID int64) dto.CommentInfo {
	return dto.CommentInfo{
		ID:      row.ID,
		Content: row.Content,
		VideoID: row.VideoID,
		Owner: &dto.OwnerBrief{
			ID:       row.OwnerID,
			Username: row.OwnerUsername,
			Fullname: row.OwnerFullname,
			Avatar:   row.OwnerAvatar,
		},
		LikesCount: row.LikesCount,
		IsLiked:    row.IsLiked,
		IsOwner:    row.OwnerID == viewerID,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func commentInfoFromModel(c *model.Comment, viewerID int64) *dto.CommentInfo {
	return &dto.CommentInfo{
		ID:         c.ID,
		Content:    c.Content,
		VideoID:    c.VideoID,
		Owner:      toOwnerBrief(&c.Owner),
		LikesCount: c.LikeCount,
		IsOwner:    c.OwnerID == viewerID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
