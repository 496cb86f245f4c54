package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"gorm.io/gorm"

	"MonthlyMasti/config"
	"MonthlyMasti/internal/cache"
	"MonthlyMasti/internal/model"
	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/pkg/errors"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/pkg/snowflake"
	"MonthlyMasti/pkg/token"
	"MonthlyMasti/storage/database"
	"MonthlyMasti/utils"
)

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

type AuthService struct{}

// SignUp 邮箱注册
func (s *AuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthTokenResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, errors.InvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, errors.WeakPassword
	}

	var existing model.User
	err := database.DB().WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, errors.EmailAlreadyRegistered
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	user := model.User{
		PublicID:     publicID,
		Email:        email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Provider:     model.AuthProviderEmail,
	}
	if err := database.DB().WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Logger.Info("New user created",
		zap.Int64("public_id", publicID),
		zap.String("email", email),
	)

	return s.issueTokens(ctx, &user)
}

// SignIn 邮箱登录
func (s *AuthService) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthTokenResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	var user model.User
	err := database.DB().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.InvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errors.InvalidCredentials
	}

	return s.issueTokens(ctx, &user)
}

// Refresh 用 refresh token 换新的 token 对
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthTokenResponse, error) {
	userID, err := token.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized
	}

	// refresh token 必须和 Redis 中缓存的一致，登出后立即失效
	if !cache.ValidateRefreshTokenExists(ctx, userID, refreshToken) {
		return nil, errors.Unauthorized
	}

	var user model.User
	err = database.DB().WithContext(ctx).Where("public_id = ?", userID).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.UserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return s.issueTokens(ctx, &user)
}

// SignOut 注销，删除缓存的 refresh token
func (s *AuthService) SignOut(ctx context.Context, userID string) error {
	if err := cache.DeleteRefreshToken(ctx, userID); err != nil {
		logger.Logger.Warn("Failed to delete refresh token",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// GetUser 按 public_id 查询用户快照
func (s *AuthService) GetUser(ctx context.Context, userID string) (*dto.AuthUserSnapshot, error) {
	var user model.User
	err := database.DB().WithContext(ctx).Where("public_id = ?", userID).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.UserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	snapshot := snapshotOf(&user)
	return &snapshot, nil
}

// BuildOAuthURL 生成第三方授权跳转地址，state 存入 Redis 防 CSRF
func (s *AuthService) BuildOAuthURL(ctx context.Context, provider string) (string, error) {
	conf, err := oauthConfig(provider)
	if err != nil {
		return "", err
	}

	state, err := randomState()
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}

	if err := cache.SetOAuthState(ctx, state, provider); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}

	return conf.AuthCodeURL(state), nil
}

// HandleOAuthCallback 用授权码换取用户信息并登录（不存在则创建）
func (s *AuthService) HandleOAuthCallback(ctx context.Context, provider, state, code string) (*dto.AuthTokenResponse, error) {
	storedProvider, err := cache.TakeOAuthState(ctx, state)
	if err != nil || storedProvider != provider {
		return nil, errors.OAuthStateInvalid
	}

	conf, err := oauthConfig(provider)
	if err != nil {
		return nil, err
	}

	oauthToken, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	email, name, err := fetchOAuthProfile(ctx, provider, conf, oauthToken)
	if err != nil {
		return nil, err
	}

	var user model.User
	err = database.DB().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to query user: %w", err)
		}

		publicID, err := snowflake.NextID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate user ID: %w", err)
		}

		user = model.User{
			PublicID:    publicID,
			Email:       email,
			DisplayName: name,
			Provider:    model.AuthProvider(provider),
		}
		if err := database.DB().WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		logger.Logger.Info("New user created via OAuth",
			zap.Int64("public_id", publicID),
			zap.String("provider", provider),
		)
	}

	return s.issueTokens(ctx, &user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (*dto.AuthTokenResponse, error) {
	userIDStr := fmt.Sprintf("%d", user.PublicID)
	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// 存储 refresh token 到 Redis，保持缓存即可
	if err := cache.SetRefreshToken(ctx, userIDStr, refreshToken); err != nil {
		logger.Logger.Warn("Failed to store refresh token in Redis",
			zap.String("user_id", userIDStr),
			zap.Error(err),
		)
		// 不返回错误，因为 token 已经生成成功
	}

	return &dto.AuthTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         snapshotOf(user),
	}, nil
}

func snapshotOf(user *model.User) dto.AuthUserSnapshot {
	return dto.AuthUserSnapshot{
		ID:          fmt.Sprintf("%d", user.PublicID),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Provider:    string(user.Provider),
	}
}

func oauthConfig(provider string) (*oauth2.Config, error) {
	cfg := config.Cfg

	switch provider {
	case "github":
		return &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.PublicURL + "/api/auth/callback/github",
			Scopes:       []string{"user:email"},
			Endpoint:     endpoints.GitHub,
		}, nil
	case "google":
		return &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.PublicURL + "/api/auth/callback/google",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoints.Google,
		}, nil
	default:
		return nil, errors.OAuthProviderInvalid
	}
}

func randomState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// fetchOAuthProfile 拉取第三方用户邮箱和昵称
func fetchOAuthProfile(ctx context.Context, provider string, conf *oauth2.Config, t *oauth2.Token) (email, name string, err error) {
	var profileURL string
	switch provider {
	case "github":
		profileURL = "https://api.github.com/user"
	case "google":
		profileURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	default:
		return "", "", errors.OAuthProviderInvalid
	}

	client := conf.Client(ctx, t)
	resp, err := client.Get(profileURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch oauth profile: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read oauth profile: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("oauth profile request failed: status %d", resp.StatusCode)
	}

	var profile struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Login string `json:"login"`
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		return "", "", fmt.Errorf("failed to parse oauth profile: %w", err)
	}

	if profile.Name == "" {
		profile.Name = profile.Login
	}
	if profile.Email == "" {
		return "", "", errors.InvalidEmail
	}

	return utils.NormalizeEmail(profile.Email), profile.Name, nil
}
