package common

import (
	"bytes"
	"github.com/lni/dragonboat/v4/logger"
	"strings"
	"testing"
)

// TestParseLogLevel tests the conversion of level names
func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logger.LogLevel
		wantErr bool
	}{
		{in: "debug", want: logger.DEBUG},
		{in: "INFO", want: logger.INFO},
		{in: "warn", want: logger.WARNING},
		{in: "warning", want: logger.WARNING},
		{in: "error", want: logger.ERROR},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLogLevel(%q) should fail", tt.in)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

// TestLoggerLevels tests that messages below the configured level are dropped
func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("store", &buf)
	l.SetLevel(logger.INFO)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "INFO  | store | shown 2") {
		t.Errorf("missing info line:\n%s", out)
	}
	if !strings.Contains(out, "ERROR | store | shown 3") {
		t.Errorf("missing error line:\n%s", out)
	}
}

// TestConfigValidate tests configuration validation
func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	c := DefaultConfig()
	c.Format = "yaml"
	if err := c.Validate(); err == nil {
		t.Error("unknown format should be rejected")
	}

	c = DefaultConfig()
	c.LogLevel = "loud"
	if err := c.Validate(); err == nil {
		t.Error("unknown log level should be rejected")
	}

	c = DefaultConfig()
	c.DataFile = ""
	if err := c.Validate(); err == nil {
		t.Error("empty data file should be rejected")
	}
	c.Ephemeral = true
	if err := c.Validate(); err != nil {
		t.Errorf("ephemeral config needs no data file: %v", err)
	}
}
