package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// NodeID is the unique identifier for the run lock Graft node.
const NodeID graft.ID = "adapter.lock"

func init() {
	graft.Register(graft.Node[ports.RunLock]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RunLock, error) {
			return New(domain.DefaultLockPath()), nil
		},
	})
}
