// Package webhook guards the Telegram webhook endpoint: secret token
// verification plus per-chat rate limiting.
package webhook

import (
	"crypto/hmac"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// SecretTokenHeader is the header Telegram echoes the secret token in.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// SecurityValidator validates incoming webhook requests.
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
}

// ValidateSecretToken checks the token Telegram sent against the
// configured one. An empty configured secret disables the check (for
// local development against a tunnel).
func (v *SecurityValidator) ValidateSecretToken(token string) error {
	if v.config.Secret == "" {
		return nil
	}
	// Constant-time comparison.
	if !hmac.Equal([]byte(token), []byte(v.config.Secret)) {
		return fmt.Errorf("secret token verification failed")
	}
	return nil
}

// CheckRateLimit enforces the per-chat message budget. A non-positive
// budget disables the check.
func (v *SecurityValidator) CheckRateLimit(chatKey string) error {
	if v.config.RateLimitPerMin <= 0 {
		return nil
	}
	return v.rateLimiter.Allow(chatKey)
}

// rateLimiter keeps a token bucket per chat with auto-cleanup of idle
// entries.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked chats
			nil,           // no eviction callback
			time.Minute*5, // idle TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
