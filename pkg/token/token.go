package token

import (
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hertz-contrib/jwt"

	"MonthlyMasti/config"
	"MonthlyMasti/pkg/errors"
)

// IdentityKey 载荷里携带用户 public_id 的声明名，middleware 据此取身份
const IdentityKey = "uid"

const refreshTokenType = "refresh"

// Claims 本服务签发的 token 载荷。uid 是用户 public_id 的字符串形式，
// refresh token 额外带 type 和 jti
type Claims struct {
	UserID    string `json:"uid"`
	TokenType string `json:"type,omitempty"`
	jwtv5.RegisteredClaims
}

var (

	// 这个实例会被 middleware 和 token 包共同使用
	sharedGenerator *jwt.HertzJWTMiddleware
)

func Init() error {
	var err error
	sharedGenerator, err = jwt.New(&jwt.HertzJWTMiddleware{
		Key:         []byte(config.Cfg.JWTSecret),
		Timeout:     time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute,
		MaxRefresh:  time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour,
		IdentityKey: IdentityKey,
		TimeFunc:    time.Now,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize token generator: %w", err)
	}

	return nil
}

// GetGenerator 获取共享的 token 生成器（供 middleware 使用）
func GetGenerator() *jwt.HertzJWTMiddleware {
	return sharedGenerator
}

// GenerateTokenPair 签发 access token 和 refresh token。
// userID 是用户 public_id 的字符串形式
func GenerateTokenPair(userID string) (accessToken, refreshToken string, expiresIn int, err error) {
	if sharedGenerator == nil {
		return "", "", 0, errors.ErrTokenGeneratorNotInitialized
	}

	now := time.Now()
	accessExpiresAt := now.Add(time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute)
	refreshExpiresAt := now.Add(time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour)

	accessToken, err = sign(Claims{
		UserID: userID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(accessExpiresAt),
		},
	})
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	// jti 保证每次刷新得到不同的 refresh token
	refreshToken, err = sign(Claims{
		UserID:    userID,
		TokenType: refreshTokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(refreshExpiresAt),
		},
	})
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresIn = int(time.Until(accessExpiresAt).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	return accessToken, refreshToken, expiresIn, nil
}

func sign(claims Claims) (string, error) {
	return jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).
		SignedString([]byte(config.Cfg.JWTSecret))
}

// ValidateRefreshToken 验证 refresh token 并返回用户 public_id
func ValidateRefreshToken(tokenString string) (userID string, err error) {
	parsed, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if t.Method != jwtv5.SigningMethodHS256 {
			return nil, fmt.Errorf("%w: %v, expected HS256", errors.ErrUnexpectedSigningMethod, t.Header["alg"])
		}
		return []byte(config.Cfg.JWTSecret), nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !parsed.Valid {
		return "", errors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return "", errors.ErrInvalidTokenClaims
	}

	if claims.TokenType != refreshTokenType {
		return "", errors.ErrInvalidTokenType
	}

	if claims.UserID == "" {
		return "", errors.ErrUserIDNotFound
	}

	return claims.UserID, nil
}
