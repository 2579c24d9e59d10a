package gotopic

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const destinationTypeQueue = "queue"

// Setup binds the router from a TopologyConfig. Only bindings targeting the router's exchange are applied, a binding
// with an empty exchange targets the router's exchange. Setup stops at the first failing binding.
func Setup(router Router, config TopologyConfig) error {
	if router == nil {
		return ErrNilRouter
	}

	// An exchange declared under the router's name must be of the router's kind.
	for _, exchange := range config.Exchanges {
		if err := checkExchange(router, exchange.Name, exchange.Type); err != nil {
			return err
		}
	}

	for _, queue := range config.Queues {
		for _, binding := range queue.Bindings {
			if binding.Exchange != "" && binding.Exchange != router.Name() {
				continue
			}

			if err := router.Bind(queue.Name, binding.RoutingKey); err != nil {
				return fmt.Errorf("bind queue %s with %q: %w", queue.Name, binding.RoutingKey, err)
			}
		}
	}

	return nil
}

// SetupFromYML loads a TopologyConfig from a YAML file and applies it through Setup.
func SetupFromYML(router Router, path string) error {
	config, err := loadYmlFileFromPath(path)
	if err != nil {
		return err
	}

	return Setup(router, *config)
}

// SetupFromDefinitions loads a RabbitMQ definitions.json file and binds every queue bound to the router's exchange.
func SetupFromDefinitions(router Router, path string) error {
	if router == nil {
		return ErrNilRouter
	}

	definitions, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	def := new(SchemaDefinitions)

	// We parse the definitions.json file into the corresponding struct.
	if err = json.Unmarshal(definitions, def); err != nil {
		return err
	}

	for _, exchange := range def.Exchanges {
		if err = checkExchange(router, exchange.Name, ExchangeType(exchange.Type)); err != nil {
			return err
		}
	}

	for _, binding := range def.Bindings {
		if binding.Source != router.Name() {
			continue
		}

		// Exchange to exchange bindings are not routed by this router.
		if binding.DestinationType != "" && binding.DestinationType != destinationTypeQueue {
			continue
		}

		if err = router.Bind(binding.Destination, binding.RoutingKey); err != nil {
			return fmt.Errorf("bind queue %s with %q: %w", binding.Destination, binding.RoutingKey, err)
		}
	}

	return nil
}

func loadYmlFileFromPath(path string) (*TopologyConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	config := TopologyConfig{}

	if err = yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func checkExchange(router Router, name string, kind ExchangeType) error {
	if name != router.Name() || kind == "" || kind == router.Kind() {
		return nil
	}

	return fmt.Errorf("%w: exchange %s is %s, router is %s", ErrExchangeTypeMismatch, name, kind, router.Kind())
}
