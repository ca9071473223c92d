package middleware

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ctxKeySession   = "session"
	ctxKeyUserID    = "user_id"
	ctxKeyUserName  = "user_name"
	ctxKeyUserEmail = "user_email"
	ctxKeyUserRole  = "user_role"
)

type SessionCfg struct {
	DB         *gorm.DB
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// Session is a database-backed login session. The cookie carries a random
// token; only its SHA-256 hash is stored.
type Session struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	UserID     string    `gorm:"type:char(36);not null;index:ix_sessions_user_id"`
	TokenHash  []byte    `gorm:"type:binary(32);not null;uniqueIndex:ux_sessions_token_hash"`
	ExpiresAt  time.Time `gorm:"type:datetime(3);not null"`
	CreatedAt  time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt  time.Time `gorm:"type:datetime(3);not null"`
	LastSeenAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Session) TableName() string { return "sessions" }

type sessionUser struct {
	Name  string
	Email string
	Role  string
}

// SessionMiddleware resolves the session cookie and puts the user on the context.
// An unknown or expired session clears the cookie and continues anonymously.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		var sess Session
		if err := cfg.DB.WithContext(ctx).Where("token_hash = ? AND expires_at > ?", hashToken(token), time.Now()).First(&sess).Error; err != nil {
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		var u sessionUser
		if err := cfg.DB.WithContext(ctx).Table("users").Select("name", "email", "role").Where("id = ?", sess.UserID).Take(&u).Error; err != nil {
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		c.Set(ctxKeySession, &sess)
		c.Set(ctxKeyUserID, sess.UserID)
		c.Set(ctxKeyUserName, u.Name)
		c.Set(ctxKeyUserEmail, u.Email)
		c.Set(ctxKeyUserRole, u.Role)

		c.Next()
	}
}

// CreateSession stores a new session for userID and returns it together with
// the cookie token.
func CreateSession(ctx context.Context, cfg SessionCfg, userID string) (*Session, string, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	sess := &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		TokenHash:  hashToken(token),
		ExpiresAt:  now.Add(cfg.TTL),
		CreatedAt:  now,
		UpdatedAt:  now,
		LastSeenAt: now,
	}
	if err := cfg.DB.WithContext(ctx).Create(sess).Error; err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

func DeleteSession(ctx context.Context, cfg SessionCfg, token string) error {
	return cfg.DB.WithContext(ctx).Delete(&Session{}, "token_hash = ?", hashToken(token)).Error
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

type ContextUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

func (u ContextUser) IsAdmin() bool { return u.Role == RoleAdmin }

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	id := c.GetString(ctxKeyUserID)
	if id == "" {
		return ContextUser{}, false
	}
	return ContextUser{
		ID:    id,
		Name:  c.GetString(ctxKeyUserName),
		Email: c.GetString(ctxKeyUserEmail),
		Role:  c.GetString(ctxKeyUserRole),
	}, true
}

// SetCurrentUser is used by tests and by handlers that authenticate within
// the same request.
func SetCurrentUser(c *gin.Context, u ContextUser) {
	c.Set(ctxKeyUserID, u.ID)
	c.Set(ctxKeyUserName, u.Name)
	c.Set(ctxKeyUserEmail, u.Email)
	c.Set(ctxKeyUserRole, u.Role)
}

// Sessions adapts CreateSession/DeleteSession to the store used by the login
// handlers.
type Sessions struct {
	Cfg SessionCfg
}

func (s Sessions) Create(ctx context.Context, userID string) (string, error) {
	_, token, err := CreateSession(ctx, s.Cfg, userID)
	return token, err
}

func (s Sessions) Delete(ctx context.Context, token string) error {
	return DeleteSession(ctx, s.Cfg, token)
}
