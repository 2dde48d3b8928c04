// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValCacheCursor(t *testing.T) {
	v := NewValCache(NewIntSet([2]int{2, 4}, [2]int{7, 7}).Values())
	require.Equal(t, 4, v.Size())
	require.Equal(t, 1, v.Width())

	// freshly built caches point at the smallest value
	require.True(t, v.Ok())
	require.Equal(t, 2, v.Val())

	var forward []int
	for ; v.Ok(); v.Next() {
		forward = append(forward, v.Val())
	}
	require.Equal(t, []int{2, 3, 4, 7}, forward)
	require.False(t, v.Ok())

	v.Last()
	var backward []int
	for ; v.Ok(); v.Prev() {
		backward = append(backward, v.Min())
	}
	require.Equal(t, []int{7, 4, 3, 2}, backward)

	v.Reset()
	require.Equal(t, 2, v.Max())
	require.Equal(t, 0, v.Index())

	v.Last()
	pos := v.Index()
	v.Prev()
	v.Prev()
	require.Equal(t, 3, v.Val())
	v.Seek(pos)
	require.Equal(t, 7, v.Val(), "seek must restore the saved position")

	v.Finish()
	require.False(t, v.Ok())
	v.Seek(pos)
	require.True(t, v.Ok(), "a finished cursor can be repositioned")
}

func TestValCacheEmpty(t *testing.T) {
	v := NewValCache(NewIntSet().Values())
	require.Equal(t, 0, v.Size())
	require.False(t, v.Ok())
	v.Last()
	require.False(t, v.Ok())
}
