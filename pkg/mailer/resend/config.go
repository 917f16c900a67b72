package resend

import "time"

// DefaultBaseURL is the production Resend API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// DefaultTimeout bounds a single outbound call.
const DefaultTimeout = 30 * time.Second

// Config holds Resend provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	BaseURL string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	Timeout time.Duration `env:"RESEND_TIMEOUT" envDefault:"30s"`
}
