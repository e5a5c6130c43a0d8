package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	testCases := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			Init(tc.level, "json")
			assert.Equal(t, tc.expected, GetLogger().GetLevel())
		})
	}
}

func TestJSONOutputCarriesFields(t *testing.T) {
	Init("info", "json")
	var buf bytes.Buffer
	SetOutput(&buf)

	WithField("username", "octocat").Warn("profile unavailable")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "octocat", entry["username"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "profile unavailable", entry["msg"])
}

func TestTextFormat(t *testing.T) {
	Init("info", "text")
	_, ok := GetLogger().Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}
