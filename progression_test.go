package apfind

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgression_Values(t *testing.T) {
	p := Progression{Length: 4, PrevIndex: 5, EndIndex: 9, Prev: 14, Last: 17}

	assert.Equal(t, uint64(3), p.Step())
	assert.Equal(t, uint64(8), p.First())
	assert.Equal(t, []uint64{8, 11, 14, 17}, p.Values())
	assert.Equal(t, "4: 8 11 14 17", p.String())
}

func TestProgression_SingleAndEmpty(t *testing.T) {
	single := Progression{Length: 1, PrevIndex: 3, EndIndex: 3, Prev: 42, Last: 42}
	assert.Equal(t, []uint64{42}, single.Values())
	assert.Equal(t, "1: 42", single.String())

	var empty Progression
	assert.Nil(t, empty.Values())
	assert.Equal(t, uint64(0), empty.First())
	assert.Equal(t, "0", empty.String())
}

func TestProgression_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	p := Progression{Length: 3, Prev: 5, Last: 5}

	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "3: 5 5 5\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}
