package params

type WebDaemonConfig struct {
	ListenerConfig
	// DefaultCodeLength is used when a request does not ask for a
	// specific precision.
	DefaultCodeLength int
	// MaxCoverCells caps s2 coverings returned by the API.
	MaxCoverCells int
}

func DefaultWebListenerConfig() ListenerConfig {
	return ListenerConfig{
		Network: "tcp",
		Address: "localhost:3000",
	}
}

func DefaultWebDaemonConfig() *WebDaemonConfig {
	return &WebDaemonConfig{
		ListenerConfig:    DefaultWebListenerConfig(),
		DefaultCodeLength: 10,
		MaxCoverCells:     8,
	}
}
