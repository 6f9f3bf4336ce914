package ports

// Changelog is the append-only record of completed actions. It is owned by
// the caller and passed explicitly into the runner; entries are never read
// back by the tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=changelog.go -destination=mocks/mock_changelog.go -package=mocks
type Changelog interface {
	// Append adds one human-readable line describing a completed action.
	Append(line string) error
}
