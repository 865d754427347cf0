package glpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goglpp/driver/drivertest"
)

type releaseCounter map[uint32]int

func (c releaseCounter) release(id uint32) { c[id]++ }

func TestHandleReleaseOnce(t *testing.T) {
	c := releaseCounter{}
	h := NewHandle(7, c.release)
	assert.True(t, h.Valid())
	h.Release()
	h.Release()
	assert.Equal(t, releaseCounter{7: 1}, c)
	assert.False(t, h.Valid())
}

func TestHandleSentinelNeverReleased(t *testing.T) {
	c := releaseCounter{}
	NewHandle(0, c.release).Release()
	var nilHandle *Handle
	nilHandle.Release()
	assert.Empty(t, c)
	assert.Zero(t, nilHandle.ID())
}

func TestHandleMove(t *testing.T) {
	c := releaseCounter{}
	a := NewHandle(1, c.release)
	b := a.Move()
	assert.Zero(t, a.ID())
	assert.Equal(t, uint32(1), b.ID())

	a.Release()
	assert.Empty(t, c)
	b.Release()
	assert.Equal(t, releaseCounter{1: 1}, c)
}

func TestHandleAssignReleasesTarget(t *testing.T) {
	c := releaseCounter{}
	a := NewHandle(1, c.release)
	b := NewHandle(2, c.release)
	a.Assign(b)
	assert.Equal(t, releaseCounter{1: 1}, c)
	assert.Equal(t, uint32(2), a.ID())
	assert.Zero(t, b.ID())

	a.Assign(a)
	assert.Equal(t, uint32(2), a.ID())
	assert.Equal(t, releaseCounter{1: 1}, c)
}

// Every identifier ever created is released exactly once, whatever sequence
// of moves and assignments it went through.
func TestHandleSequencesReleaseEachIDOnce(t *testing.T) {
	sequences := map[string]func(c releaseCounter){
		"move chain": func(c releaseCounter) {
			a := NewHandle(1, c.release)
			b := a.Move()
			d := b.Move()
			a.Release()
			b.Release()
			d.Release()
		},
		"assign over live": func(c releaseCounter) {
			a := NewHandle(1, c.release)
			b := NewHandle(2, c.release)
			d := NewHandle(3, c.release)
			a.Assign(b)
			a.Assign(d)
			b.Assign(a)
			a.Release()
			b.Release()
			d.Release()
		},
		"assign empty": func(c releaseCounter) {
			a := NewHandle(1, c.release)
			b := NewHandle(2, c.release)
			m := b.Move()
			a.Assign(b)
			a.Release()
			b.Release()
			m.Release()
		},
		"swap through temporary": func(c releaseCounter) {
			a := NewHandle(1, c.release)
			b := NewHandle(2, c.release)
			tmp := a.Move()
			a.Assign(b)
			b.Assign(tmp)
			a.Release()
			b.Release()
			tmp.Release()
		},
	}
	for name, run := range sequences {
		t.Run(name, func(t *testing.T) {
			c := releaseCounter{}
			run(c)
			for id, n := range c {
				assert.Equal(t, 1, n, "id %d", id)
			}
			assert.NotEmpty(t, c)
		})
	}
}

func TestObjectMoveAndAssign(t *testing.T) {
	f := drivertest.New()
	a := NewBuffer(f)
	b := NewBuffer(f)
	a.CreateStorage(16, nil, 0)
	idA, idB := a.ID(), b.ID()

	m := a.Move()
	assert.Zero(t, a.ID())
	assert.Zero(t, a.Size())
	assert.Equal(t, idA, m.ID())
	assert.Equal(t, 16, m.Size())

	b.Assign(m)
	assert.Equal(t, 1, f.DeleteCount(drivertest.KindBuffer, idB))
	assert.Equal(t, idA, b.ID())
	assert.Zero(t, m.ID())

	a.Destroy()
	m.Destroy()
	b.Destroy()
	b.Destroy()
	assert.Equal(t, 1, f.DeleteCount(drivertest.KindBuffer, idA))
	assert.Zero(t, f.Live(drivertest.KindBuffer))
	require.Empty(t, f.Errors())
}

func TestLabel(t *testing.T) {
	f := drivertest.New()
	vao := NewVertexArray(f)
	vao.Label("quad")
	assert.Equal(t, "quad", f.VertexArrays[vao.ID()].Label)

	tex := NewTexture2D(f)
	tex.Label("logo")
	assert.Equal(t, "logo", f.Textures[tex.ID()].Label)

	tex.Destroy()
	tex.Label("gone")
	assert.Empty(t, f.Errors())
}
