package logrus_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/slok/tasks/internal/log"
	loglogrus "github.com/slok/tasks/internal/log/logrus"
)

func TestLogrusWithCtxValues(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.Out = &buf
	l.SetFormatter(&logrus.JSONFormatter{})

	logger := loglogrus.NewLogrus(logrus.NewEntry(l)).WithValues(log.Kv{"svc": "test"})
	ctx := logger.SetValuesOnCtx(context.Background(), log.Kv{"task": "01ABC"})
	logger.WithCtxValues(ctx).Infof("created %d", 1)

	out := buf.String()
	assert.Contains(t, out, `"msg":"created 1"`)
	assert.Contains(t, out, `"svc":"test"`)
	assert.Contains(t, out, `"task":"01ABC"`)
}

func TestLogrusDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.Out = &buf

	logger := loglogrus.NewLogrus(logrus.NewEntry(l))
	logger.Debugf("hidden")
	assert.Empty(t, buf.String())

	l.SetLevel(logrus.DebugLevel)
	logger.Debugf("shown")
	assert.Contains(t, buf.String(), "shown")
}
