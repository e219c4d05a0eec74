package utils

import (
	"errors"
	"fmt"
	"time"

	"vidtube-go/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Identity access token 中携带的用户信息
type Identity struct {
	ID       int64
	Username string
	Email    string
	Fullname string
}

// AccessClaims access token 的 Claims
type AccessClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	jwt.RegisteredClaims
}

// RefreshClaims refresh token 的 Claims，只携带用户 ID 和 jti
type RefreshClaims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenPair 一次签发的两个令牌
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenManager 负责签发和校验 access/refresh token
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// NewTokenManager 根据 JWT 配置创建 TokenManager
func NewTokenManager(cfg *config.JWTConfig, issuer string) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessDuration(),
		refreshTTL:    cfg.RefreshDuration(),
		issuer:        issuer,
		now:           time.Now,
	}
}

// WithClock 替换时间源（测试用）
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// AccessTTL access token 有效期
func (m *TokenManager) AccessTTL() time.Duration { return m.accessTTL }

// RefreshTTL refresh token 有效期
func (m *TokenManager) RefreshTTL() time.Duration { return m.refreshTTL }

// Issue 同时签发 access 和 refresh token
func (m *TokenManager) Issue(id Identity) (*TokenPair, error) {
	access, err := m.GenerateAccessToken(id)
	if err != nil {
		return nil, err
	}
	refresh, err := m.GenerateRefreshToken(id.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// GenerateAccessToken 生成 access token
func (m *TokenManager) GenerateAccessToken(id Identity) (string, error) {
	now := m.now()
	claims := AccessClaims{
		UserID:   id.ID,
		Username: id.Username,
		Email:    id.Email,
		Fullname: id.Fullname,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}
	return sign(claims, m.accessSecret)
}

// GenerateRefreshToken 生成 refresh token，jti 保证每次轮换的值都不同
func (m *TokenManager) GenerateRefreshToken(userID int64) (string, error) {
	now := m.now()
	claims := RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}
	return sign(claims, m.refreshSecret)
}

// ParseAccessToken 解析并验证 access token
func (m *TokenManager) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := m.parse(tokenString, claims, m.accessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken 解析并验证 refresh token
func (m *TokenManager) ParseRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := m.parse(tokenString, claims, m.refreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *TokenManager) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

func sign(claims jwt.Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// HashPassword 使用 bcrypt 对密码进行哈希
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// VerifyPassword 验证密码是否与哈希匹配
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
