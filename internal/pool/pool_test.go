package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockResettable struct {
	Value       int
	ResetCalled int
}

func (m *mockResettable) Reset() {
	m.Value = 0
	m.ResetCalled++
}

func TestPoolGet_EmptyWithoutConstructor(t *testing.T) {
	p := New[*mockResettable](5, nil)

	assert.Nil(t, p.Get())
}

func TestPoolGet_EmptyWithConstructor(t *testing.T) {
	built := 0
	p := New(2, func() *mockResettable {
		built++
		return &mockResettable{Value: 7}
	})

	item := p.Get()
	require.NotNil(t, item)
	assert.Equal(t, 7, item.Value)
	assert.Equal(t, 1, built)
}

func TestPoolPutResetsAndReuses(t *testing.T) {
	p := New[*mockResettable](5, nil)

	obj := &mockResettable{Value: 42}
	p.Put(obj)

	assert.Equal(t, 1, obj.ResetCalled)
	assert.Equal(t, 0, obj.Value)
	assert.Equal(t, 1, p.Len())

	assert.Same(t, obj, p.Get())
	assert.Equal(t, 0, p.Len())
}

func TestPoolCapacityOverflow(t *testing.T) {
	p := New[*mockResettable](2, nil)

	p.Put(&mockResettable{Value: 1})
	p.Put(&mockResettable{Value: 2})
	p.Put(&mockResettable{Value: 3})

	assert.Equal(t, 2, p.Len())
	assert.NotNil(t, p.Get())
	assert.NotNil(t, p.Get())
	assert.Nil(t, p.Get())
}

func TestPoolNilHandling(t *testing.T) {
	p := New[*mockResettable](5, nil)

	var nilObj *mockResettable
	p.Put(nilObj)

	assert.Equal(t, 0, p.Len())
}

func TestPoolBuffers(t *testing.T) {
	p := New(1, func() *bytes.Buffer { return new(bytes.Buffer) })

	buf := p.Get()
	buf.WriteString("payload")
	p.Put(buf)

	reused := p.Get()
	assert.Same(t, buf, reused)
	assert.Zero(t, reused.Len())
}
