package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	tcerrors "github.com/alexisbeaulieu97/techconsult/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "full file is parsed",
			contents: `version: "1.0"
site:
  initial_route: /ai-agent-request
submission:
  delay: 250ms
  simulate_failure: true
preferences:
  path: ~/.techconsult/prefs.json
logging:
  level: debug
  file: /tmp/techconsult.log
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "/ai-agent-request", cfg.Site.InitialRoute)
				require.Equal(t, 250*time.Millisecond, cfg.Submission.Delay)
				require.True(t, cfg.Submission.SimulateFailure)
				require.Equal(t, "~/.techconsult/prefs.json", cfg.Preferences.Path)
				require.Equal(t, "debug", cfg.Logging.Level)
			},
		},
		{
			name:     "absent keys keep defaults",
			contents: "version: \"1.0\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "/", cfg.Site.InitialRoute)
				require.Equal(t, DefaultSubmissionDelay, cfg.Submission.Delay)
				require.Equal(t, "info", cfg.Logging.Level)
			},
		},
		{
			name:     "syntax error reports line",
			contents: "version: \"1.0\"\nsite:\n  initial_route: [\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *tcerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown route is rejected",
			contents: "version: \"1.0\"\nsite:\n  initial_route: /contact\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var validationErr *tcerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "site.initial_route", validationErr.Field)
			},
		},
		{
			name:     "oversized delay is rejected",
			contents: "version: \"1.0\"\nsubmission:\n  delay: 5m\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tcerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "submission.delay", validationErr.Field)
			},
		},
		{
			name:     "bad version is rejected",
			contents: "version: beta\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tcerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "unknown log level is rejected",
			contents: "version: \"1.0\"\nlogging:\n  level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tcerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "logging.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var validationErr *tcerrors.ValidationError
	require.ErrorAs(t, Validate(nil), &validationErr)
}

func TestEncodeWritesDurationsAsText(t *testing.T) {
	t.Parallel()

	out, err := Encode(Default())
	require.NoError(t, err)
	require.Contains(t, string(out), "initial_route: /")
	require.Contains(t, string(out), "delay: 1.5s")
}
