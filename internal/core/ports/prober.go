package ports

import "github.com/pymk-dev/pymk/internal/core/domain"

// Prober evaluates step preconditions against externally observed state.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe reports whether the precondition holds. The error is non-nil
	// exactly when the returned presence is PresenceError.
	Probe(pre *domain.Precondition) (domain.Presence, error)
}
