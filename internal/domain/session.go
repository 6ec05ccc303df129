package domain

// State-store keys for the three persisted session artifacts. The names are
// kept stable across releases so an upgraded client still finds the previous
// session; they must not collide with any cached domain data.
const (
	CredentialStateKey = "agentguard_token"
	IdentityStateKey   = "agentguard_user"
	LedgerStateKey     = "agentguard_tags"
)
