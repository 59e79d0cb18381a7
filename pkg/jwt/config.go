package jwt

import (
	"time"

	"github.com/dmitrymomot/jwtkit/pkg/secrets"
)

// Config holds Service settings loadable from the environment with
// config.Load.
type Config struct {
	SigningKey   string        `env:"JWT_SIGNING_KEY,required"`
	KeyPurpose   string        `env:"JWT_KEY_PURPOSE"` // derive the signing key with HKDF when set
	RequireExp   bool          `env:"JWT_REQUIRE_EXP" envDefault:"false"`
	CheckIAT     bool          `env:"JWT_CHECK_IAT" envDefault:"false"`
	Leeway       time.Duration `env:"JWT_LEEWAY" envDefault:"0s"`
	PublicErrors bool          `env:"JWT_PUBLIC_ERRORS" envDefault:"true"`
	TokenID      bool          `env:"JWT_TOKEN_ID" envDefault:"false"`
}

// Options converts cfg into Service options. Explicit options passed to
// NewFromConfig are applied after these.
func (cfg Config) Options() []Option {
	var opts []Option
	if cfg.RequireExp {
		opts = append(opts, WithRequireExpiration())
	}
	if cfg.CheckIAT {
		opts = append(opts, WithIssuedAtCheck())
	}
	if cfg.Leeway > 0 {
		opts = append(opts, WithLeeway(cfg.Leeway))
	}
	if cfg.PublicErrors {
		opts = append(opts, WithPublicErrors())
	}
	if cfg.TokenID {
		opts = append(opts, WithTokenID())
	}
	return opts
}

// NewFromConfig creates a Service from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}

	key := []byte(cfg.SigningKey)
	if cfg.KeyPurpose != "" {
		derived, err := secrets.DeriveKey(key, cfg.KeyPurpose)
		if err != nil {
			return nil, err
		}
		defer secrets.Wipe(derived)
		key = derived
	}

	return New(key, append(cfg.Options(), opts...)...)
}
