package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    log.Level
		wantErr bool
	}{
		{"empty uses default", "", log.ErrorLevel, false},
		{"debug", "debug", log.DebugLevel, false},
		{"mixed case", " Info ", log.InfoLevel, false},
		{"warn", "warn", log.WarnLevel, false},
		{"fatal", "fatal", log.FatalLevel, false},
		{"unknown", "trace", log.InvalidLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandler_HandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf)

	entry := &log.Entry{
		Level:   log.DebugLevel,
		Message: "sections read",
		Fields:  log.Fields{"b": 2, "a": "x"},
	}

	require.NoError(t, h.HandleLog(entry))
	assert.Equal(t, "D sections read a=x b=2\n", buf.String())
}

func TestInit_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init("warn", &buf))
	t.Cleanup(func() { _ = Init(DefaultLevel, nil) })

	log.Debug("hidden")
	log.Warn("shown")

	assert.Equal(t, "W shown\n", buf.String())
}

func TestInit_BadLevel(t *testing.T) {
	err := Init("loud", &bytes.Buffer{})
	assert.Error(t, err)
}
