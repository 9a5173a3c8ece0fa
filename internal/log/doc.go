// Package log provides secure logging built on top of the standard slog
// package.
//
// The SecureHandler masks sensitive information before it is written:
//   - HTTP headers (Authorization, Cookie, Set-Cookie, X-Api-Key)
//   - secret values detected by pattern matching (bearer tokens, JWTs, keys)
//   - secret query parameters inside URLs and transport errors
//
// Headers and cookies from the configuration file end up in debug logs of
// the HTTP layer, so masking applies in verbose mode too.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Info("request failed",
//	    "url", "https://example.com/a?token=abc", // token value is masked
//	    "cookie", "session=abc123",               // masked entirely
//	)
package log
