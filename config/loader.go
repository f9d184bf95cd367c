package config

// Loader reads configuration into a target struct.
type Loader interface {
	Load(target any) error
}
