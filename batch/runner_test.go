package batch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerCountsOutcomes(t *testing.T) {
	report := Runner{}.Run(5, func(i int) error {
		if i%2 == 1 {
			return errors.New("boom")
		}
		return nil
	})

	assert.Equal(t, 3, report.Success)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 5, report.Total())
	assert.InDelta(t, 60.0, report.SuccessRate(), 0.01)
}

func TestRunnerEmptyBatch(t *testing.T) {
	report := Runner{}.Run(0, func(i int) error {
		t.Fatal("work called on empty batch")
		return nil
	})

	assert.Equal(t, 0, report.Total())
	assert.Equal(t, 0.0, report.SuccessRate())
}

func TestRunnerVisitsEveryIndexInOrder(t *testing.T) {
	var visited []int
	Runner{}.Run(4, func(i int) error {
		visited = append(visited, i)
		return nil
	})

	assert.Equal(t, []int{0, 1, 2, 3}, visited)
}
