package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestJSONOutputWithFields(t *testing.T) {
	Init("info")
	var buf bytes.Buffer
	SetOutput(&buf)

	WithField("employee_id", 7).Info("смена добавлена")
	Debugf("не попадёт в вывод")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "смена добавлена", entry["msg"])
	assert.Equal(t, float64(7), entry["employee_id"])
	assert.Equal(t, "info", entry["level"])
}
