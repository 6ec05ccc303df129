package application

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

// Decision is the guard's verdict on one transition. Exactly one of Admit or
// Redirect applies; Title is only set on admission.
type Decision struct {
	Admit    bool
	Redirect *domain.Target
	Title    string
}

// GuardService gates every view transition. A protected view is only ever
// admitted with both a credential and a verified identity present at the
// moment of admission.
type GuardService struct {
	session *SessionService
	logger  *zap.Logger
}

func NewGuardService(session *SessionService, logger *zap.Logger) *GuardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuardService{session: session, logger: logger}
}

// Resolve runs the transition algorithm for a requested target. Hydration
// suspends the caller until the identity fetch resolves; there is no guard
// timeout beyond the pipeline's transport timeout.
func (g *GuardService) Resolve(ctx context.Context, target domain.Target) Decision {
	route, known := domain.LookupRoute(target.Path)
	if !known {
		// Unknown paths land on the dashboard, mirroring a catch-all route.
		return g.redirect(target, domain.Target{Path: domain.HomePath})
	}

	if !route.RequiresAuth {
		if g.session.IsAuthenticated() && route.Path == domain.LoginPath {
			return g.redirect(target, domain.Target{Path: domain.HomePath})
		}
		return g.admit(route)
	}

	if !g.session.IsAuthenticated() {
		return g.redirect(target, loginTarget(target))
	}

	if g.session.Identity() == nil {
		user, err := g.session.FetchIdentity(ctx)
		if err != nil || user == nil {
			return g.redirect(target, loginTarget(target))
		}
	}

	if route.RedirectTo != "" {
		return g.redirect(target, domain.Target{Path: route.RedirectTo})
	}
	return g.admit(route)
}

func (g *GuardService) admit(route domain.Route) Decision {
	g.logger.Debug("transition admitted", zap.String("path", route.Path))
	return Decision{Admit: true, Title: domain.DocumentTitle(route.Title)}
}

func (g *GuardService) redirect(from domain.Target, to domain.Target) Decision {
	g.logger.Debug("transition redirected",
		zap.String("from", from.FullPath()),
		zap.String("to", to.FullPath()))
	return Decision{Redirect: &to}
}

// loginTarget builds the login redirect, preserving the originally requested
// full path so the user can be returned after re-login. The root path is not
// worth preserving.
func loginTarget(requested domain.Target) domain.Target {
	target := domain.Target{Path: domain.LoginPath}
	if fullPath := requested.FullPath(); fullPath != "/" {
		target.Query = url.Values{"redirect": []string{fullPath}}
	}
	return target
}
