package scene

import (
	"fmt"
	"strings"
)

// Override is a single key=value pair, usually from a repeatable -set flag.
type Override struct {
	Key   string
	Value string
}

// Overrides implements flag.Value for repeated key=value flags.
type Overrides []Override

func (l *Overrides) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, 0, len(*l))
	for _, kv := range *l {
		parts = append(parts, kv.Key+"="+kv.Value)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (l *Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, Override{Key: key, Value: strings.TrimSpace(val)})
	return nil
}

// Apply sets every override on cfg in order. Unlike FromMap it stops at the
// first value that fails to parse.
func (l Overrides) Apply(cfg *Config) error {
	for _, kv := range l {
		if err := cfg.Set(kv.Key, kv.Value); err != nil {
			return fmt.Errorf("-set %s=%s: %w", kv.Key, kv.Value, err)
		}
	}
	return nil
}
