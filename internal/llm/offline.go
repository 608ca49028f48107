package llm

import (
	"context"
	"fmt"
)

const offlineTemplate = "MOCK RESPONSE: You asked: '%s'. Please set OPENAI_API_KEY for real answers."

// OfflineClient answers without any network call. It is used when no provider key is configured.
type OfflineClient struct{}

// NewOfflineClient returns the mock-mode client.
func NewOfflineClient() *OfflineClient {
	return &OfflineClient{}
}

// Complete echoes the user turn verbatim inside a fixed template. It never fails.
func (OfflineClient) Complete(_ context.Context, _, user string) (string, error) {
	return fmt.Sprintf(offlineTemplate, user), nil
}
