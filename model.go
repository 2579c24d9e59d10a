package gotopic

// Binding is a live association of a queue with a pattern.
type Binding struct {
	Queue   string
	Pattern string
}

// TopologyConfig declares exchanges and queues along with their bindings.
type TopologyConfig struct {
	Exchanges []ExchangeConfig `yaml:"exchanges"`
	Queues    []QueueConfig    `yaml:"queues"`
}

type ExchangeConfig struct {
	Name      string       `yaml:"name"`
	Type      ExchangeType `yaml:"type"`
	Persisted bool         `yaml:"persisted"`
}

type QueueConfig struct {
	Name      string          `yaml:"name"`
	Durable   bool            `yaml:"durable"`
	Exclusive bool            `yaml:"exclusive"`
	Bindings  []BindingConfig `yaml:"bindings"`
}

type BindingConfig struct {
	RoutingKey string `yaml:"routing_key"`
	Exchange   string `yaml:"exchange"`
}

// SchemaDefinitions is the part of a RabbitMQ definitions export describing the topology.
type SchemaDefinitions struct {
	Exchanges []struct {
		Name       string                 `json:"name"`
		Vhost      string                 `json:"vhost"`
		Type       string                 `json:"type"`
		Durable    bool                   `json:"durable"`
		AutoDelete bool                   `json:"auto_delete"`
		Internal   bool                   `json:"internal"`
		Arguments  map[string]interface{} `json:"arguments"`
	} `json:"exchanges"`
	Queues []struct {
		Name       string                 `json:"name"`
		Vhost      string                 `json:"vhost"`
		Durable    bool                   `json:"durable"`
		AutoDelete bool                   `json:"auto_delete"`
		Arguments  map[string]interface{} `json:"arguments"`
	} `json:"queues"`
	Bindings []struct {
		Source          string                 `json:"source"`
		Vhost           string                 `json:"vhost"`
		Destination     string                 `json:"destination"`
		DestinationType string                 `json:"destination_type"`
		RoutingKey      string                 `json:"routing_key"`
		Arguments       map[string]interface{} `json:"arguments"`
	} `json:"bindings"`
}
