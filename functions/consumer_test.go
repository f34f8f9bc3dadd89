package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_AndThen(t *testing.T) {
	var visited []string
	record := func(prefix string) Consumer[string, *parseError] {
		return func(input string) *parseError {
			visited = append(visited, prefix+input)
			return nil
		}
	}

	err := record("a:").AndThen(record("b:")).Accept("1")
	assert.Nil(t, err)
	assert.Equal(t, []string{"a:1", "b:1"}, visited)
}

func TestConsumer_AndThen_FailureSkipsAfter(t *testing.T) {
	failure := &parseError{input: "c"}
	afterCalls := 0

	c := Consumer[int, *parseError](func(int) *parseError {
		return failure
	}).AndThen(func(int) *parseError {
		afterCalls++
		return nil
	})

	assert.Same(t, failure, c(1))
	assert.Zero(t, afterCalls)
}

func TestLiftConsumer(t *testing.T) {
	sum := 0
	c := LiftConsumer[*parseError](FromConsumer(func(i int) { sum += i }))

	assert.Nil(t, c(2))
	assert.Nil(t, c(3))
	assert.Equal(t, 5, sum)
}

func TestBiConsumer_AndThen(t *testing.T) {
	m := make(map[string]int)
	put := FromBiConsumer(func(k string, v int) { m[k] = v })
	double := FromBiConsumer(func(k string, v int) { m[k+k] = v * 2 })

	err := put.AndThen(double).Accept("a", 1)
	assert.Nil(t, err)
	assert.Equal(t, map[string]int{"a": 1, "aa": 2}, m)
}

func TestBiConsumer_AndThen_FailureSkipsAfter(t *testing.T) {
	failure := &parseError{input: "bi"}
	afterCalls := 0

	c := BiConsumer[int, int, *parseError](func(int, int) *parseError {
		return failure
	}).AndThen(func(int, int) *parseError {
		afterCalls++
		return nil
	})

	assert.Same(t, failure, c(1, 2))
	assert.Zero(t, afterCalls)
}
