package jwt

import "time"

// Service issues and validates HS256 tokens.
// It is immutable after construction and safe for concurrent use.
type Service struct {
	signingKey []byte
	signer     Algorithm
	algorithms algorithms

	clock    Clock
	reporter Reporter
	leeway   time.Duration

	requireExpiration bool
	checkIssuedAt     bool
	publicErrors      bool
	tokenID           bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for iat/exp stamping and checks.
func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithReporter sets the sink that receives rejection diagnostics.
func WithReporter(r Reporter) Option {
	return func(s *Service) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithLeeway tolerates clock skew of d when checking exp, nbf and iat.
// Claims have whole-second precision, so d is rounded up to a whole second.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.leeway = d
		}
	}
}

// WithRequireExpiration rejects tokens that carry no exp claim.
func WithRequireExpiration() Option {
	return func(s *Service) { s.requireExpiration = true }
}

// WithIssuedAtCheck rejects tokens whose iat lies in the future.
func WithIssuedAtCheck() Option {
	return func(s *Service) { s.checkIssuedAt = true }
}

// WithPublicErrors makes returned errors print only the generic message.
// errors.Is still matches the specific kind; details go to the reporter.
func WithPublicErrors() Option {
	return func(s *Service) { s.publicErrors = true }
}

// WithTokenID stamps a random jti on created tokens that do not carry one.
func WithTokenID() Option {
	return func(s *Service) { s.tokenID = true }
}

// New creates a Service signing with a copy of signingKey.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: append([]byte(nil), signingKey...),
		signer:     HS256,
		algorithms: defaultAlgorithms,
		clock:      SystemClock,
		reporter:   discardReporter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromString is New for string keys.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}
	return New([]byte(signingKey), opts...)
}

func (s *Service) now() int64 {
	return s.clock.Now().Unix()
}
