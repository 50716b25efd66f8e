package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{" error ", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
	}
	for _, tt := range tests {
		require.NoError(t, SetLogLevel(tt.in), tt.in)
		assert.Equal(t, tt.want, Log.GetLevel(), tt.in)
	}

	assert.Error(t, SetLogLevel("verbose"))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
