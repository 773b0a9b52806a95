package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberEnqueue(t *testing.T) {
	t.Parallel()

	t.Run("accepts until buffer is full", func(t *testing.T) {
		t.Parallel()

		m := newMember(nil, 2)
		assert.True(t, m.enqueue([]byte("a")))
		assert.True(t, m.enqueue([]byte("b")))
		assert.False(t, m.enqueue([]byte("c")), "full buffer must not block")
	})

	t.Run("rejects after close", func(t *testing.T) {
		t.Parallel()

		m := newMember(nil, 2)
		m.close()
		assert.False(t, m.enqueue([]byte("a")))
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		m := newMember(nil, 1)
		assert.NotPanics(t, func() {
			m.close()
			m.close()
		})
	})

	t.Run("zero buffer size is clamped", func(t *testing.T) {
		t.Parallel()

		m := newMember(nil, 0)
		assert.True(t, m.enqueue([]byte("a")), "minimum buffer of one")
	})
}
