package ports

import "github.com/Calvin-Zhu01/agent-guard/internal/domain"

// Navigator is the navigation collaborator: it reports the current location
// and accepts programmatic transitions. Push must make the pushed target
// visible through Current immediately, even when the transition itself
// completes asynchronously; the pipeline's 401 path relies on that to stay
// idempotent under concurrent failures.
type Navigator interface {
	Current() domain.Target
	Push(target domain.Target)
}
