package ports

// PreferenceStore is a small string key/value store for per-user settings
// that survive restarts. Set must be durable when it returns nil.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
