// File: internal/service/auth.go
package service

import (
	"fmt"

	"worklog/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 定義 JWT 負載內容，subject 不存在時退回 user_id claim
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// CurrentUser 代表通過驗證的呼叫者身分
type CurrentUser struct {
	ID    string
	Email string
	Role  string
}

var loadConfig = config.Get

// VerifyAccessToken 驗證並解析 bearer token。
// 檢查簽章、演算法與 audience；token 簽發由外部系統負責。
func VerifyAccessToken(tokenString string) (*CurrentUser, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{cfg.JWTAlgorithm})}
	if cfg.JWTAudience != "" {
		opts = append(opts, jwt.WithAudience(cfg.JWTAudience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	subject := claims.Subject
	if subject == "" {
		subject = claims.UserID
	}
	if subject == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	return &CurrentUser{ID: subject, Email: claims.Email, Role: claims.Role}, nil
}
