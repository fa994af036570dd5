// Package generator turns one parsed function signature into its two bridge
// artifacts: the backend command wrapper and the WASM client stub bundle.
// Generation is a pure transformation; it never fails for a well-formed
// signature and holds no state between invocations.
package generator

import (
	"fmt"

	"github.com/NexRX/tauri-bridge/internal/models"
)

// Generator implements the dual emitter
type Generator struct{}

// New creates a new code generator instance
func New() *Generator {
	return &Generator{}
}

// GenerateBridge produces the backend and client artifacts for one signature
func (g *Generator) GenerateBridge(sig *models.FunctionSignature) (*models.GeneratedBridge, error) {
	if sig == nil {
		return nil, fmt.Errorf("signature cannot be nil")
	}
	if sig.Name == "" {
		return nil, fmt.Errorf("signature has no function name")
	}

	backend, err := g.generateBackend(sig)
	if err != nil {
		return nil, fmt.Errorf("failed to generate backend artifact for %s: %w", sig.Name, err)
	}

	client, err := g.generateClient(sig)
	if err != nil {
		return nil, fmt.Errorf("failed to generate client artifact for %s: %w", sig.Name, err)
	}

	return &models.GeneratedBridge{
		FunctionName: sig.Name,
		Backend:      backend,
		Client:       client,
	}, nil
}
