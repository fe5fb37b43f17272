package pubsub

// Supported Pub/Sub providers.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

const localSubscription = "projects/local/subscriptions/account-events-sub"
