package notify

import (
	"context"

	"go.uber.org/zap"
)

// Nop is the transport used when no messaging channel is configured
// (stub mode). It logs and succeeds.
type Nop struct {
	Log *zap.Logger
}

func (n Nop) SendPhoto(_ context.Context, photoURL string) error {
	n.Log.Debug("notify stub: skipping photo", zap.String("photo", photoURL))
	return nil
}

func (n Nop) SendMessage(_ context.Context, text string, _ MessageOptions) error {
	n.Log.Debug("notify stub: skipping message", zap.Int("len", len(text)))
	return nil
}
