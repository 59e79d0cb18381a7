// Package jwt issues and validates compact HS256 JSON Web Tokens.
//
// A token is base64url(header).base64url(payload).base64url(signature), with
// the header fixed to {"alg":"HS256","typ":"JWT"} and the signature computed
// with HMAC-SHA256 over the first two segments.
//
// # Architecture
//
//   - codec.go: segment encoding, decoding and token splitting. Pure functions.
//   - Service: holds the signing key and issues (Create, Generate) and checks
//     (Validate, ValidateRaw, Parse) tokens. PeekClaims decodes without any
//     verification.
//   - algorithm.go: the table of accepted algorithms. Only HS256 is registered.
//   - errors.go: one sentinel per rejection reason plus ValidationError.
//   - middleware.go, context.go: net/http integration.
//
// # Validation
//
// Validate stops at the first failing check, in this order: structure,
// header, typ, alg, signature, payload, time window. The signature is always
// recomputed from the token's own segments and compared in constant time.
// exp is inclusive (a token is still valid in the second it expires). nbf is
// always honoured; iat only with WithIssuedAtCheck.
//
// # Usage
//
//	svc, err := jwt.NewFromString("super-secret",
//		jwt.WithReporter(jwt.SlogReporter(log)),
//		jwt.WithPublicErrors(),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	token, err := svc.Create(jwt.Claims{"sub": "42"}, time.Hour)
//
//	claims, err := svc.Validate(token)
//	if err != nil {
//		// reject; do not branch on the kind except for metrics
//	}
//
//	http.Handle("/api", jwt.Middleware(svc)(yourHandler))
//
// # Error Handling
//
// Rejections are *ValidationError values. Match the reason with errors.Is
// (ErrTokenExpired, ErrInvalidSignature, ...); every rejection also matches
// ErrInvalidToken. With WithPublicErrors the error text is the generic
// "jwt: invalid token" and the detailed diagnostic only goes to the Reporter.
package jwt
