package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockGenerator is a stand-in for local development and tests. It produces a
// fully structured article without calling any external model.
type MockGenerator struct{}

func (MockGenerator) Generate(_ context.Context, topic string) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n\n", strings.TrimSpace(topic))
	sb.WriteString("Introduction:\n")
	fmt.Fprintf(&sb, "This is a placeholder article about %s, generated without a model.\n\n", topic)
	sb.WriteString("Key Concepts:\n")
	sb.WriteString("- First concept\n")
	sb.WriteString("- Second concept\n\n")
	sb.WriteString("Practical Examples:\n")
	sb.WriteString("- Example 1: try the mock provider\n")
	sb.WriteString("- Example 2: switch to a real provider in config.json\n\n")
	sb.WriteString("Further Reading:\n")
	sb.WriteString("- A textbook on the topic\n\n")
	sb.WriteString("Summary:\n")
	fmt.Fprintf(&sb, "A short overview of %s.\n", topic)
	return sb.String(), nil
}
