package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// AWS access key ids, long-term (AKIA) and temporary (ASIA).
	awsAccessKeyPattern = regexp.MustCompile(`^(AKIA|ASIA)[A-Z0-9]{16}$`)

	jwtPattern    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)
)

// DefaultRedactOptions lists what the service never writes to a log: the
// store credentials from config, and anything shaped like a token.
// Extra options passed to NewReplaceAttr are appended.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, 24)

	for _, name := range []string{
		"password", "secret", "token", "credential", "credentials",
		"authorization", "auth", "cookie", "session",
		"apiKey", "api_key", "apikey",
		"accessToken", "access_token", "refreshToken", "refresh_token",
		"AccessKeyID", "access_key_id", "SecretAccessKey", "secret_access_key",
		"SessionToken", "session_token",
		"privateKey", "private_key", "secretKey", "secret_key",
	} {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(awsAccessKeyPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr hook that redacts with
// DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
