package configs

// Kafka configures publishing of tracked interaction events. Publishing
// is disabled when Brokers is empty.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"ad-interactions"`
}

// Enabled reports whether brokers and a topic were configured.
func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0 && c.Topic != ""
}
