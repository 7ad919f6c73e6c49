package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM entries WHERE room_id = $1"))
	assert.Equal(t, "update", operation("  UPDATE entries SET status = $1"))
	assert.Equal(t, "unknown", operation("   "))
}
