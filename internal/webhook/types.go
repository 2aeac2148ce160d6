package webhook

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	Secret          string // secret token registered with setWebhook
	RateLimitPerMin int    // per-chat message budget
}
