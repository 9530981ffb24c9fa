package types

const AppVersion = "v0.1.0"

type (
	ProjectID      string
	TopicID        string
	SubscriptionID string
)

func (x ProjectID) String() string      { return string(x) }
func (x TopicID) String() string        { return string(x) }
func (x SubscriptionID) String() string { return string(x) }

// DefaultPubSubURL is the production endpoint used when no broker URL is configured.
const DefaultPubSubURL = "pubsub.googleapis.com:443"
