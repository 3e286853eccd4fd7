package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			l := New().(*Logger)
			// The status log is best effort; the run proceeds without it.
			if err := l.AttachFile(domain.DefaultLogPath()); err != nil {
				l.Warn("status log disabled: " + err.Error())
			}
			return l, nil
		},
	})
}
