package config

import "time"

// AuthConfig groups session and password verification configuration.
type AuthConfig struct {
	// SessionTTL is the lifetime of a session from login.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// BcryptCost is the bcrypt work factor for hashing new passwords.
	// Verification always uses the cost embedded in the stored hash.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// LoginPath is where unauthenticated browser requests are sent.
	LoginPath string `env:"AUTH_LOGIN_PATH" envDefault:"/auth/login"`

	// SessionKeyPrefix namespaces session keys in the session store.
	SessionKeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"session:"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
	// Clamp cost to the range bcrypt accepts; values below 10 are too
	// weak for stored credentials.
	if a.BcryptCost < 10 {
		a.BcryptCost = 12
	}
	if a.BcryptCost > 31 {
		a.BcryptCost = 31
	}
	if a.LoginPath == "" || a.LoginPath[0] != '/' {
		a.LoginPath = "/auth/login"
	}
	if a.SessionKeyPrefix == "" {
		a.SessionKeyPrefix = "session:"
	}
}
