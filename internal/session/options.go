package session

type config struct {
	defaultDocument string
	defaultLanguage string
}

// Option configures a Store.
type Option func(*config)

// WithDefaultDocument sets the document text seeded into new sessions.
func WithDefaultDocument(text string) Option {
	return func(c *config) { c.defaultDocument = text }
}

// WithDefaultLanguage sets the language tag seeded into new sessions.
func WithDefaultLanguage(language string) Option {
	return func(c *config) { c.defaultLanguage = language }
}
