package gotopic_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.kardinal.ai/coretech/gotopic"
)

// Route runs against concurrent mutations and must only ever observe whole tables.
func TestRouter_ConcurrentRouteAndMutations(t *testing.T) {
	router := newTopicRouter(t)

	require.NoError(t, router.Bind("stable", "payment.#"))

	const writers = 4
	const readers = 8
	const iterations = 500

	var wg sync.WaitGroup

	for w := 0; w < writers; w++ {
		wg.Add(1)

		go func(w int) {
			defer wg.Done()

			queue := fmt.Sprintf("writer-%d", w)

			for i := 0; i < iterations; i++ {
				assert.NoError(t, router.Bind(queue, "#.error"))
				router.Unbind(queue, "#.error")
			}
		}(w)
	}

	for r := 0; r < readers; r++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := 0; i < iterations; i++ {
				queues, err := router.Route("payment.error")
				if !assert.NoError(t, err) {
					return
				}

				assert.Contains(t, queues, "stable")
				assert.LessOrEqual(t, len(queues), writers+1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, []gotopic.Binding{{Queue: "stable", Pattern: "payment.#"}}, router.Bindings())
}

func TestRouter_ConcurrentBindsAreAllApplied(t *testing.T) {
	router := newTopicRouter(t)

	const queues = 50

	var wg sync.WaitGroup

	for i := 0; i < queues; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			assert.NoError(t, router.Bind(fmt.Sprintf("queue-%02d", i), "orders.*"))
		}(i)
	}

	wg.Wait()

	matched, err := router.Route("orders.created")
	require.NoError(t, err)
	assert.Len(t, matched, queues)
	assert.IsIncreasing(t, matched)
}
