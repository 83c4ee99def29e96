package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_Order(t *testing.T) {
	order, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, order)
}

func TestTopoSort_Independent(t *testing.T) {
	order, err := topoSort(3, func(int) []int { return nil })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)

	order, err = topoSort(0, nil)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestTopoSort_Errors(t *testing.T) {
	_, err := topoSort(2, func(i int) []int {
		if i == 0 {
			return []int{1}
		}

		return []int{0}
	})
	require.EqualError(t, err, "cycle detected")

	_, err = topoSort(1, func(int) []int { return []int{5} })
	require.Error(t, err)
}
