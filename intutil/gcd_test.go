package intutil_test

import (
	"testing"

	"github.com/katalvlaran/hetbuilder/intutil"
	"github.com/stretchr/testify/require"
)

func TestGCDList(t *testing.T) {
	cases := []struct {
		name string
		xs   []int64
		want int64
	}{
		{"all zero", []int64{0, 0, 0}, 0},
		{"empty", nil, 0},
		{"single", []int64{7}, 7},
		{"mixed signs", []int64{-12, 18, -6}, 6},
		{"coprime", []int64{1, 0, 0, 1}, 1},
		{"eight entries", []int64{2, 0, 1, 0, 0, 2, 0, 1}, 1},
		{"factor two in M only", []int64{2, 0, 0, 4, 1, 0, 0, 1}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, intutil.GCDList(c.xs...))
		})
	}
}

func TestDet2(t *testing.T) {
	require.Equal(t, int64(1), intutil.Det2(intutil.Mat2{{1, 0}, {0, 1}}))
	require.Equal(t, int64(4), intutil.Det2(intutil.Mat2{{2, 0}, {0, 2}}))
	require.Equal(t, int64(-2), intutil.Det2(intutil.Mat2{{0, 1}, {2, 0}}))
}

func TestDet3(t *testing.T) {
	require.Equal(t, int64(1), intutil.Det3(intutil.Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	require.Equal(t, int64(1), intutil.Det3(intutil.Lift2To3(intutil.Mat2{{1, 0}, {0, 1}})))
	require.Equal(t, int64(4), intutil.Det3(intutil.Lift2To3(intutil.Mat2{{2, 0}, {0, 2}})))
}
