// Package redact scrubs sensitive material from strings before they reach
// logs or error responses: credentials, tokens, email addresses, row
// identifiers, and the SQL this service runs against its users, flights,
// orders, and tickets tables.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

// rule pairs a pattern with its replacement. Rules apply in order; earlier
// rules see the raw input, later ones the partially redacted string, so
// broad patterns (SQL statements) run after the narrow ones they would
// otherwise swallow.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var rules = []rule{
	// Connection strings carry credentials up to the @.
	{regexp.MustCompile(`(?i)(postgres|mysql|mongodb|db|database|connection)://[^@]+@`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`(AKIA|AccessKey(Id)?)([^a-zA-Z0-9])?[A-Z0-9]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},

	// File paths and panics.
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},

	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), "[REDACTED_EMAIL]"},

	// SQL keeps its shape (statement kind, table, column list) while the
	// values and predicates disappear. These cover the statement forms the
	// stores run: inserts into users/orders/tickets with literal values in
	// the error text, keyed updates and deletes, and the joined flight and
	// order detail selects.
	{regexp.MustCompile(`(?is)(INSERT\s+INTO\s+\w+\s*\([^)]*\)\s*VALUES)\s*\(.*\)`), "$1 [SQL_VALUES_REDACTED]"},
	{regexp.MustCompile(`(?is)(UPDATE\s+\w+\s+SET)\s.*`), "$1 [SQL_VALUES_REDACTED]"},
	{regexp.MustCompile(`(?is)(DELETE\s+FROM\s+\w+)\s+WHERE\b.*`), "$1 [SQL_WHERE_REDACTED]"},
	{regexp.MustCompile(`(?is)SELECT\s.*?\sFROM\s.*`), "SELECT FROM... [SQL_VALUES_REDACTED]"},

	// Row identifiers are UUIDs end to end; an ID in an error message maps
	// a log line back to a user's order or ticket.
	{regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`), "[REDACTED_UUID]"},

	{regexp.MustCompile(`(?:at )?line ?\d+`), "[REDACTED_LINE_NUMBER]"},
	{regexp.MustCompile(`(?i)syntax error|syntax problem|parse error`), "[REDACTED_SYNTAX_ERROR]"},
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`), "[REDACTED_HOST]"},
	{regexp.MustCompile(`(?i)(?:no such file|file not found|can't open|cannot open|file error)`), "[REDACTED_FILE_ERROR]"},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, rl := range rules {
		result = rl.pattern.ReplaceAllString(result, rl.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
