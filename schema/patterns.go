package schema

// DefaultPatterns is the built-in detector rule set, in scan order. Each
// entry is a regular expression; several rules capture the label so that the
// scanner reports the first capturing group rather than the whole match.
// Literal-prefix rules (AWS access key, GitHub token) are case-sensitive on
// purpose. The list is injected into the run configuration at startup and
// fully replaced when the user supplies custom patterns.
var DefaultPatterns = []string{
	// API keys and tokens
	`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?[\w-]{20,}`,
	`(?i)(access[_-]?token|auth[_-]?token)\s*[:=]\s*["']?[\w-]{20,}`,
	`(?i)(secret[_-]?key|private[_-]?key)\s*[:=]\s*["']?[\w-]{20,}`,

	// Passwords
	`(?i)password\s*[:=]\s*["'][^"']{4,}["']`,
	`(?i)passwd\s*[:=]\s*["'][^"']{4,}["']`,

	// AWS
	`AKIA[0-9A-Z]{16}`, // AWS access key literal
	`(?i)aws[_-]?secret[_-]?access[_-]?key\s*[:=]`,

	// GitHub
	`ghp_[a-zA-Z0-9]{36}`, // GitHub personal access token literal
	`github[_-]?token\s*[:=]`,

	// Generic secrets
	`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`,
	`(?i)-----BEGIN (RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`,

	// Database URLs
	`(?i)(postgres|mysql|mongodb|redis)://[^\s"']+`,

	// Environment variables with sensitive names
	`(?i)(DB_PASSWORD|DATABASE_PASSWORD|MYSQL_ROOT_PASSWORD)\s*=`,
	`(?i)(JWT_SECRET|SESSION_SECRET|ENCRYPTION_KEY)\s*=`,
}

// DefaultPatternLabels names each built-in rule, keyed by pattern text. The
// label is part of the rule's identifying text for severity classification,
// so the literal-prefix rules classify by what they detect (e.g. "AWS access
// key") rather than by their opaque regex. Custom patterns have no labels.
var DefaultPatternLabels = map[string]string{
	`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?[\w-]{20,}`:              "API key assignment",
	`(?i)(access[_-]?token|auth[_-]?token)\s*[:=]\s*["']?[\w-]{20,}`: "Access token assignment",
	`(?i)(secret[_-]?key|private[_-]?key)\s*[:=]\s*["']?[\w-]{20,}`:  "Secret key assignment",
	`(?i)password\s*[:=]\s*["'][^"']{4,}["']`:                        "Password assignment",
	`(?i)passwd\s*[:=]\s*["'][^"']{4,}["']`:                          "Passwd assignment",
	`AKIA[0-9A-Z]{16}`:                                               "AWS access key",
	`(?i)aws[_-]?secret[_-]?access[_-]?key\s*[:=]`:                   "AWS secret access key assignment",
	`ghp_[a-zA-Z0-9]{36}`:                                            "GitHub personal access token",
	`github[_-]?token\s*[:=]`:                                        "GitHub token assignment",
	`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`:                             "Bearer token",
	`(?i)-----BEGIN (RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`:       "PEM private-key block",
	`(?i)(postgres|mysql|mongodb|redis)://[^\s"']+`:                  "Database connection URL",
	`(?i)(DB_PASSWORD|DATABASE_PASSWORD|MYSQL_ROOT_PASSWORD)\s*=`:    "Database password env var",
	`(?i)(JWT_SECRET|SESSION_SECRET|ENCRYPTION_KEY)\s*=`:             "Secret env var",
}
