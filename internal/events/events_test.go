package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventJSONRoundTrip(t *testing.T) {
	ev := New(EntityTransaction, OpCreated, "t1")

	b, err := ev.ToJSON()
	require.NoError(t, err)

	got, err := FromJSON(b)
	require.NoError(t, err)
	assert.Equal(t, ev.Entity, got.Entity)
	assert.Equal(t, ev.Op, got.Op)
	assert.Equal(t, ev.ID, got.ID)
	assert.False(t, got.Timestamp.IsZero())
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte("{broken"))
	assert.Error(t, err)
}

func TestNilPublisherIsSafe(t *testing.T) {
	var p *Publisher
	assert.NoError(t, p.Publish(context.Background(), New(EntityAccount, OpDeleted, "a1")))
	assert.NoError(t, p.Close())
}
