package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
)

var ErrInvalid = errors.New("invalid flash cookie")

// maxMessages keeps the cookie well under the 4KB browser limit.
const maxMessages = 5

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: cookieName, Secure: secure}
}

// value format: base64(json list).base64(hmac)
func (c *Codec) Encode(fs []view.Flash) (string, error) {
	if len(fs) > maxMessages {
		fs = fs[len(fs)-maxMessages:]
	}
	b, err := json.Marshal(fs)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) ([]view.Flash, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var fs []view.Flash
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, ErrInvalid
	}
	out := fs[:0]
	for _, f := range fs {
		if strings.TrimSpace(f.Message) != "" {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, ErrInvalid
	}
	return out, nil
}

// CookieMaxAge is short: the flash only has to survive one redirect.
func (c *Codec) CookieMaxAge() int {
	return int((2 * time.Minute).Seconds())
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	expected := sign(secret, payload)
	return hmac.Equal([]byte(expected), []byte(sig))
}
