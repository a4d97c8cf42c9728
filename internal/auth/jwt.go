package auth

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 令牌错误定义
var (
	ErrTokenExpired   = stderrors.New("token已过期")
	ErrTokenMalformed = stderrors.New("token格式错误")
	ErrTokenInvalid   = stderrors.New("token无效")
)

const (
	issuer    = "anonboard"
	roleAdmin = "admin"
)

// Claims 管理员令牌载荷
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager JWT 管理器，HS256 对称签名
type Manager struct {
	signingKey []byte
	tokenTTL   time.Duration
}

// NewManager 创建 JWT 管理器。
// tokenTTL 照单全收，默认值由配置层负责
func NewManager(secret string, tokenTTL time.Duration) *Manager {
	return &Manager{
		signingKey: []byte(secret),
		tokenTTL:   tokenTTL,
	}
}

// Generate 为管理员签发令牌
func (m *Manager) Generate(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     roleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.signingKey)
}

// Parse 解析并校验令牌
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 校验签名方法，拒绝 none 和非对称算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名方法: %v", token.Header["alg"])
		}
		return m.signingKey, nil
	})

	if err != nil {
		switch {
		case stderrors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case stderrors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Role != roleAdmin {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// Refresh 基于未过期的旧令牌签发新令牌
func (m *Manager) Refresh(tokenString string) (string, error) {
	claims, err := m.Parse(tokenString)
	if err != nil {
		return "", err
	}

	return m.Generate(claims.Username)
}
