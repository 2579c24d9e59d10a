package gotopic_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.kardinal.ai/coretech/gotopic"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSetup_FromStruct(t *testing.T) {
	router := newTopicRouter(t)

	config := gotopic.TopologyConfig{
		Exchanges: []gotopic.ExchangeConfig{
			{Name: "payments", Type: gotopic.ExchangeTypeTopic, Persisted: true},
			{Name: "shipping", Type: gotopic.ExchangeTypeDirect},
		},
		Queues: []gotopic.QueueConfig{
			{
				Name:    "payment-events",
				Durable: true,
				Bindings: []gotopic.BindingConfig{
					{RoutingKey: "payment.*", Exchange: "payments"},
					{RoutingKey: "shipping.label", Exchange: "shipping"},
				},
			},
			{
				Name: "payment-errors",
				Bindings: []gotopic.BindingConfig{
					{RoutingKey: "#.error"},
				},
			},
		},
	}

	require.NoError(t, gotopic.Setup(router, config))

	assert.Equal(t, []gotopic.Binding{
		{Queue: "payment-errors", Pattern: "#.error"},
		{Queue: "payment-events", Pattern: "payment.*"},
	}, router.Bindings())

	queues, err := router.Route("payment.error")
	require.NoError(t, err)
	assert.Equal(t, []string{"payment-errors", "payment-events"}, queues)
}

func TestSetup_ExchangeTypeMismatch(t *testing.T) {
	router := newTopicRouter(t)

	err := gotopic.Setup(router, gotopic.TopologyConfig{
		Exchanges: []gotopic.ExchangeConfig{{Name: "payments", Type: gotopic.ExchangeTypeFanout}},
	})

	assert.ErrorIs(t, err, gotopic.ErrExchangeTypeMismatch)
}

func TestSetup_InvalidPattern(t *testing.T) {
	router := newTopicRouter(t)

	err := gotopic.Setup(router, gotopic.TopologyConfig{
		Queues: []gotopic.QueueConfig{
			{Name: "first", Bindings: []gotopic.BindingConfig{{RoutingKey: "payment.#"}}},
			{Name: "broken", Bindings: []gotopic.BindingConfig{{RoutingKey: "payment.#.#"}}},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, gotopic.ErrInvalidPattern)
	assert.Contains(t, err.Error(), "broken")

	// Bindings applied before the failure are kept.
	assert.Equal(t, []gotopic.Binding{{Queue: "first", Pattern: "payment.#"}}, router.Bindings())
}

func TestSetup_NilRouter(t *testing.T) {
	assert.ErrorIs(t, gotopic.Setup(nil, gotopic.TopologyConfig{}), gotopic.ErrNilRouter)
	assert.ErrorIs(t, gotopic.SetupFromDefinitions(nil, "definitions.json"), gotopic.ErrNilRouter)
}

func TestSetupFromYML(t *testing.T) {
	path := writeFile(t, "topology.yml", `
exchanges:
  - name: payments
    type: topic
    persisted: true
queues:
  - name: payment-events
    durable: true
    bindings:
      - routing_key: payment.*
        exchange: payments
  - name: payment-errors
    bindings:
      - routing_key: "#.error"
        exchange: payments
`)

	router := newTopicRouter(t)

	require.NoError(t, gotopic.SetupFromYML(router, path))

	queues, err := router.Route("payment.system.error")
	require.NoError(t, err)
	assert.Equal(t, []string{"payment-errors"}, queues)
}

func TestSetupFromYML_Errors(t *testing.T) {
	router := newTopicRouter(t)

	assert.Error(t, gotopic.SetupFromYML(router, filepath.Join(t.TempDir(), "missing.yml")))
	assert.Error(t, gotopic.SetupFromYML(router, writeFile(t, "broken.yml", "queues: [")))
}

func TestSetupFromDefinitions(t *testing.T) {
	path := writeFile(t, "definitions.json", `{
  "exchanges": [
    {"name": "payments", "vhost": "/", "type": "topic", "durable": true, "auto_delete": false, "internal": false, "arguments": {}},
    {"name": "audit", "vhost": "/", "type": "fanout", "durable": true, "auto_delete": false, "internal": false, "arguments": {}}
  ],
  "queues": [
    {"name": "payment-events", "vhost": "/", "durable": true, "auto_delete": false, "arguments": {}},
    {"name": "payment-errors", "vhost": "/", "durable": true, "auto_delete": false, "arguments": {}}
  ],
  "bindings": [
    {"source": "payments", "vhost": "/", "destination": "payment-events", "destination_type": "queue", "routing_key": "payment.*", "arguments": {}},
    {"source": "payments", "vhost": "/", "destination": "payment-errors", "destination_type": "queue", "routing_key": "#.error", "arguments": {}},
    {"source": "payments", "vhost": "/", "destination": "audit", "destination_type": "exchange", "routing_key": "#", "arguments": {}},
    {"source": "audit", "vhost": "/", "destination": "audit-log", "destination_type": "queue", "routing_key": "", "arguments": {}}
  ]
}`)

	router := newTopicRouter(t)

	require.NoError(t, gotopic.SetupFromDefinitions(router, path))

	assert.Equal(t, []gotopic.Binding{
		{Queue: "payment-errors", Pattern: "#.error"},
		{Queue: "payment-events", Pattern: "payment.*"},
	}, router.Bindings())
}

func TestSetupFromDefinitions_Errors(t *testing.T) {
	router := newTopicRouter(t)

	assert.Error(t, gotopic.SetupFromDefinitions(router, filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, gotopic.SetupFromDefinitions(router, writeFile(t, "broken.json", "{")))

	mismatch := writeFile(t, "mismatch.json", `{"exchanges": [{"name": "payments", "type": "direct"}]}`)
	assert.ErrorIs(t, gotopic.SetupFromDefinitions(router, mismatch), gotopic.ErrExchangeTypeMismatch)
}
