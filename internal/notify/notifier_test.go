package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	n.Notify(context.Background(), SavedMessage)

	entries := logs.FilterMessage("notification").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, SavedMessage, entries[0].ContextMap()["message"])
	}
}
