package enummap_test

import (
	"strconv"
	"testing"

	"github.com/graph-guard/enummap/pkg/enummap"
	"github.com/graph-guard/enummap/pkg/enumtest"
	"github.com/graph-guard/enummap/pkg/internal/testkeys"

	"github.com/stretchr/testify/require"
)

func newColors() *enummap.Map[testkeys.Color, int] {
	return enummap.New(func(k testkeys.Color) int { return int(k) * 100 })
}

var colorPairs = []enumtest.Pair[testkeys.Color, int]{
	{Key: testkeys.Red, Value: 100},
	{Key: testkeys.Green, Value: 200},
	{Key: testkeys.Blue, Value: 300},
}

func TestIter(t *testing.T) {
	m := newColors()
	i := m.Iter()
	for n, p := range colorPairs {
		require.Equal(t, n, i.Index())
		k, v, ok := i.Next()
		require.True(t, ok)
		require.Equal(t, p.Key, k)
		require.Equal(t, p.Value, v)
	}
	require.Equal(t, m.Len(), i.Index())

	// Exhausted iterators stay exhausted.
	for n := 0; n < 3; n++ {
		k, v, ok := i.Next()
		require.False(t, ok)
		require.Zero(t, k)
		require.Zero(t, v)
		require.Equal(t, m.Len(), i.Index())
	}
}

func TestIterFresh(t *testing.T) {
	m := newColors()
	a := m.Iter()
	for _, _, ok := a.Next(); ok; _, _, ok = a.Next() {
	}
	b := m.Iter()
	k, _, ok := b.Next()
	require.True(t, ok)
	require.Equal(t, testkeys.Red, k)
}

func TestIterModifiedPanics(t *testing.T) {
	for _, td := range []struct {
		name   string
		modify func(m *enummap.Map[testkeys.Color, int])
	}{
		{"set", func(m *enummap.Map[testkeys.Color, int]) {
			m.Set(testkeys.Green, 0)
		}},
		{"set_ref", func(m *enummap.Map[testkeys.Color, int]) {
			k := testkeys.Green
			m.SetRef(&k, 0)
		}},
		{"set_all", func(m *enummap.Map[testkeys.Color, int]) {
			m.SetAll(func(*testkeys.Color) int { return 0 })
		}},
		{"update", func(m *enummap.Map[testkeys.Color, int]) {
			m.Update(testkeys.Red, func(v *int) { *v = 0 })
		}},
	} {
		t.Run(td.name, func(t *testing.T) {
			m := newColors()
			i := m.Iter()
			_, _, ok := i.Next()
			require.True(t, ok)
			td.modify(m)
			require.Panics(t, func() { i.Next() })

			mi := m.IterMut()
			_, _, ok = mi.Next()
			require.True(t, ok)
			td.modify(m)
			require.Panics(t, func() { mi.Next() })
		})
	}
}

func TestIterMut(t *testing.T) {
	m := newColors()
	i := m.IterMut()
	var ptrs []*int
	for n, p := range colorPairs {
		require.Equal(t, n, i.Index())
		k, v, ok := i.Next()
		require.True(t, ok)
		require.Equal(t, p.Key, k)
		require.Equal(t, p.Value, *v)
		for _, prev := range ptrs {
			require.NotSame(t, prev, v)
		}
		ptrs = append(ptrs, v)
	}
	k, v, ok := i.Next()
	require.False(t, ok)
	require.Zero(t, k)
	require.Nil(t, v)

	// Every pointer is still live and writes are independent.
	for n, p := range ptrs {
		*p = n
	}
	Expect(t, m, 0, 1, 2)
}

func TestIterMutWriteDoesNotPanic(t *testing.T) {
	m := newColors()
	i := m.IterMut()
	for _, v, ok := i.Next(); ok; _, v, ok = i.Next() {
		*v++
	}
	Expect(t, m, 101, 201, 301)
}

func TestAll(t *testing.T) {
	m := newColors()
	enumtest.Pairs(t, "pair", colorPairs, m.All(), compareInts, strconv.Itoa)
}

func TestAllBreak(t *testing.T) {
	m := newColors()
	var keys []testkeys.Color
	for k := range m.All() {
		keys = append(keys, k)
		if k == testkeys.Green {
			break
		}
	}
	require.Equal(t, []testkeys.Color{testkeys.Red, testkeys.Green}, keys)
}

func TestAllPtr(t *testing.T) {
	m := newColors()
	for k, v := range m.AllPtr() {
		*v += k.Ordinal()
	}
	Expect(t, m, 100, 201, 302)
}

func TestAllPtrBreak(t *testing.T) {
	m := newColors()
	for k, v := range m.AllPtr() {
		*v = 0
		if k == testkeys.Red {
			break
		}
	}
	Expect(t, m, 0, 200, 300)
}

func TestVisit(t *testing.T) {
	m := newColors()
	var p []enumtest.Pair[testkeys.Color, int]
	m.Visit(func(k testkeys.Color, v int) (stop bool) {
		p = append(p, enumtest.Pair[testkeys.Color, int]{Key: k, Value: v})
		return false
	})
	require.Equal(t, colorPairs, p)
}

func TestVisitStop(t *testing.T) {
	m := newColors()
	calls := 0
	m.Visit(func(k testkeys.Color, v int) (stop bool) {
		require.Equal(t, testkeys.Red, k)
		require.Equal(t, 100, v)
		calls++
		return true
	})
	require.Equal(t, 1, calls)
}

func TestVisitMut(t *testing.T) {
	m := newColors()
	m.VisitMut(func(k testkeys.Color, v *int) (stop bool) {
		*v = -k.Ordinal()
		return k == testkeys.Green
	})
	Expect(t, m, 0, -1, 300)
}

func TestCollect(t *testing.T) {
	require.Equal(t, colorPairs, enumtest.Collect(newColors().All()))
}
