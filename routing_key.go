package gotopic

import "strings"

// ParseRoutingKey splits a concrete topic routing key into its segments.
// Empty keys, empty segments and wildcard segments are rejected.
func ParseRoutingKey(routingKey string) ([]string, error) {
	return parseRoutingKey(routingKey, ExchangeTypeTopic)
}

func parseRoutingKey(routingKey string, kind ExchangeType) ([]string, error) {
	// Fanout exchanges never look at the routing key.
	if kind == ExchangeTypeFanout {
		return nil, nil
	}

	if routingKey == "" {
		return nil, &InvalidRoutingKeyError{RoutingKey: routingKey, Reason: reasonEmpty}
	}

	words := strings.Split(routingKey, delimiter)

	for _, word := range words {
		if word == "" {
			return nil, &InvalidRoutingKeyError{RoutingKey: routingKey, Reason: reasonEmptySegment}
		}

		if kind == ExchangeTypeTopic && (word == singleWildcard || word == multiWildcard) {
			return nil, &InvalidRoutingKeyError{RoutingKey: routingKey, Reason: reasonWildcardInKey}
		}
	}

	return words, nil
}
