package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pymk-dev/pymk/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"github.com/pymk-dev/pymk/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/pymk-dev/pymk/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"github.com/pymk-dev/pymk/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/pymk-dev/pymk/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(executor, prober, tel, log), nil
		},
	})
}
