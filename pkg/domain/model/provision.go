package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/psdemo/pkg/domain/types"
)

// TopicConfig declares a topic and the subscriptions attached to it, in the same shape the
// emulator bootstrap uses: [{"name": "my-topic", "subscriptions": ["my-subscription"]}]
type TopicConfig struct {
	Name          types.TopicID          `json:"name"`
	Subscriptions []types.SubscriptionID `json:"subscriptions"`
}

func ParseTopicConfigs(data []byte) ([]TopicConfig, error) {
	var configs []TopicConfig
	if err := json.Unmarshal(data, &configs); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidConfig.Wrap(err), "failed to parse Pub/Sub configuration").With("config", string(data))
	}

	for _, cfg := range configs {
		if cfg.Name == "" {
			return nil, goerr.Wrap(types.ErrInvalidConfig, "topic name is required").With("config", string(data))
		}
		for _, sub := range cfg.Subscriptions {
			if sub == "" {
				return nil, goerr.Wrap(types.ErrInvalidConfig, "subscription name is empty").With("topic", cfg.Name)
			}
		}
	}

	return configs, nil
}
