package codec

import (
	"testing"

	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/gocoll/arraylist"
	"github.com/npillmayer/gocoll/hashset"
	"github.com/npillmayer/gocoll/linkedlist"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestArrayListRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.codec")
	defer teardown()
	//
	l := arraylist.New[int]()
	for i := 1; i <= 3; i++ {
		l.Append(i)
	}
	data, err := Marshal[int](l)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: arraylist")
	assert.Contains(t, string(data), "capacity: 10")
	t.Logf("saved list:\n%s", data)
	//
	dec, err := NewDecoder[int](data)
	require.NoError(t, err)
	r, err := arraylist.Restore[int](dec)
	require.NoError(t, err)
	assert.True(t, r.Equal(l))
	assert.Equal(t, 3, r.Capacity())
}

func TestLinkedListAndSetRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.codec")
	defer teardown()
	//
	l := linkedlist.Of("x", "y", "z")
	data, err := Marshal[string](l)
	require.NoError(t, err)
	dec, err := NewDecoder[string](data)
	require.NoError(t, err)
	r, err := linkedlist.Restore[string](dec)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, r.ToSlice())
	//
	s := hashset.NewWith[string](hashset.NewLinkedGodsMap[string, struct{}]())
	s.AddAll(l)
	data, err = Marshal[string](s)
	require.NoError(t, err)
	dec, err = NewDecoder[string](data)
	require.NoError(t, err)
	rs, err := hashset.Restore[string](dec, hashset.NewLinkedGodsMap[string, struct{}]())
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, rs.ToSlice())
}

func TestRejectInvalidState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.codec")
	defer teardown()
	//
	docs := map[string]string{
		"negative size":      "kind: arraylist\nsize: -1\ncapacity: 4\nelements: []\n",
		"negative capacity":  "kind: arraylist\nsize: 0\ncapacity: -4\nelements: []\n",
		"capacity too small": "kind: arraylist\nsize: 2\ncapacity: 1\nelements: [1, 2]\n",
		"count mismatch":     "kind: arraylist\nsize: 3\ncapacity: 4\nelements: [1, 2]\n",
		"wrong kind":         "kind: hashset\nsize: 0\nelements: []\n",
	}
	for name, doc := range docs {
		dec, err := NewDecoder[int]([]byte(doc))
		require.NoError(t, err, name)
		_, err = arraylist.Restore[int](dec)
		assert.ErrorIs(t, err, gocoll.ErrIllegalArgument, name)
		var rerr *gocoll.RestoreError
		assert.ErrorAs(t, err, &rerr, name)
	}
	//
	dec, err := NewDecoder[string]([]byte("kind: hashset\nsize: 2\nelements: [a, a]\n"))
	require.NoError(t, err)
	_, err = hashset.Restore[string](dec, hashset.NewGodsMap[string, struct{}]())
	assert.ErrorIs(t, err, gocoll.ErrIllegalArgument, "duplicates")
	//
	_, err = NewDecoder[int]([]byte("kind: [unbalanced"))
	assert.ErrorIs(t, err, gocoll.ErrIllegalArgument)
	//
	_, err = NewDecoder[int]([]byte("kind: arraylist\nsize: 1\nelements: [one]\n"))
	assert.ErrorIs(t, err, gocoll.ErrIllegalArgument)
	var terr *yaml.TypeError
	if assert.ErrorAs(t, err, &terr, "parser error should stay inspectable") {
		assert.NotEmpty(t, terr.Errors)
	}
}

func TestEncoderProtocol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.codec")
	defer teardown()
	//
	enc := &Encoder[int]{}
	assert.ErrorIs(t, enc.WriteElement(1), gocoll.ErrIllegalState)
	require.NoError(t, enc.WriteHeader(gocoll.Header{Kind: "test", Size: 1}))
	assert.ErrorIs(t, enc.WriteHeader(gocoll.Header{}), gocoll.ErrIllegalState)
	require.NoError(t, enc.WriteElement(7))
	assert.Equal(t, []int{7}, enc.Document().Elements)
}
