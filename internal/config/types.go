package config

import "time"

// DefaultSubmissionDelay is the simulated round trip of a lead submission.
const DefaultSubmissionDelay = 1500 * time.Millisecond

// Config is the optional techconsult.yaml file.
type Config struct {
	Version     string            `yaml:"version" validate:"required,semver"`
	Site        SiteConfig        `yaml:"site"`
	Submission  SubmissionConfig  `yaml:"submission"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SiteConfig controls the interactive site.
type SiteConfig struct {
	InitialRoute string `yaml:"initial_route" validate:"omitempty,oneof=/ /managed-services /ai-agent-request"`
}

// SubmissionConfig controls the simulated submission service.
type SubmissionConfig struct {
	Delay           time.Duration `yaml:"delay" validate:"gte=0s,lte=1m"`
	SimulateFailure bool          `yaml:"simulate_failure"`
}

// PreferencesConfig locates the preference file. An empty path means the
// default under the user's home directory.
type PreferencesConfig struct {
	Path string `yaml:"path" validate:"omitempty,filepath_like"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File          string `yaml:"file" validate:"omitempty,filepath_like"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Site: SiteConfig{
			InitialRoute: "/",
		},
		Submission: SubmissionConfig{
			Delay: DefaultSubmissionDelay,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
