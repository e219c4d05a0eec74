package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"path"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/media"
	"vidtube-go/internal/model"
	"vidtube-go/pkg/logger"
	"vidtube-go/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("User does not exist")
	ErrUserExists          = errors.New("User with email or username already exists")
	ErrAvatarRequired      = errors.New("Avatar file is required")
	ErrCredentialsRequired = errors.New("Username or email is required")
	ErrInvalidCredentials  = errors.New("Invalid user credentials")
	ErrRefreshTokenMissing = errors.New("Unauthorized request")
	ErrInvalidRefreshToken = errors.New("Invalid refresh token")
	ErrRefreshTokenUsed    = errors.New("Refresh token is expired or used")
	ErrInvalidOldPassword  = errors.New("Invalid old password")
	ErrPasswordUnchanged   = errors.New("New password must differ from the old one")
	ErrMediaUploadFailed   = errors.New("Failed to upload media")
)

type AuthService struct {
	users  UserStore
	media  MediaStore
	tokens *utils.TokenManager
	folder string
}

func NewAuthService(users UserStore, mediaStore MediaStore, tokens *utils.TokenManager, folder string) *AuthService {
	return &AuthService{users: users, media: mediaStore, tokens: tokens, folder: folder}
}

// Register 用户注册：头像必填，封面可选；写库失败时删除已上传的文件
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, avatarPath, coverPath string) (*dto.UserInfo, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullname := strings.TrimSpace(req.Fullname)

	if avatarPath == "" {
		return nil, ErrAvatarRequired
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	folder := path.Join(s.folder, username)
	avatar, err := s.media.Upload(ctx, avatarPath, folder)
	if err != nil {
		return nil, errors.Join(ErrMediaUploadFailed, err)
	}
	uploaded := []string{avatar.PublicID}

	var cover *media.Asset
	if coverPath != "" {
		cover, err = s.media.Upload(ctx, coverPath, folder)
		if err != nil {
			s.discard(ctx, uploaded...)
			return nil, errors.Join(ErrMediaUploadFailed, err)
		}
		uploaded = append(uploaded, cover.PublicID)
	}

	user := &model.User{
		Username:  username,
		Email:     email,
		Fullname:  fullname,
		Password:  hashed,
		AvatarURL: avatar.URL,
		AvatarID:  avatar.PublicID,
	}
	if cover != nil {
		user.CoverImageURL = cover.URL
		user.CoverImageID = cover.PublicID
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.discard(ctx, uploaded...)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("username", username))
	return toUserInfo(user), nil
}

// Login 用户名或邮箱登录，签发 token 并保存 refresh token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginData, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" && email == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := s.users.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(identityOf(user))
	if err != nil {
		return nil, err
	}
	if err := s.users.SetRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	return &dto.LoginData{
		User:         toUserInfo(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Refresh 校验 refresh token 与保存值一致后轮换；旧 token 立即失效
func (s *AuthService) Refresh(ctx context.Context, presented string) (*dto.LoginData, error) {
	presented = strings.TrimSpace(presented)
	if presented == "" {
		return nil, ErrRefreshTokenMissing
	}

	claims, err := s.tokens.ParseRefreshToken(presented)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if user.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(presented)) != 1 {
		return nil, ErrRefreshTokenUsed
	}

	pair, err := s.tokens.Issue(identityOf(user))
	if err != nil {
		return nil, err
	}

	rotated, err := s.users.RotateRefreshToken(ctx, user.ID, presented, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !rotated {
		// 并发刷新时只有一个请求能完成轮换
		return nil, ErrRefreshTokenUsed
	}

	return &dto.LoginData{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout 清除保存的 refresh token
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.users.SetRefreshToken(ctx, userID, ""); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ChangePassword 修改密码：旧密码必须正确，新旧密码不能相同
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(req.OldPassword, user.Password) {
		return ErrInvalidOldPassword
	}
	if req.OldPassword == req.NewPassword {
		return ErrPasswordUnchanged
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	_, err = s.users.Update(ctx, userID, map[string]interface{}{"password": hashed})
	return err
}

func (s *AuthService) discard(ctx context.Context, publicIDs ...string) {
	for _, id := range publicIDs {
		_ = s.media.Delete(ctx, id)
	}
}

func identityOf(user *model.User) utils.Identity {
	return utils.Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Fullname: user.Fullname,
	}
}
