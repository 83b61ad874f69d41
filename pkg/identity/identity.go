package identity

import "net/http"

// Trusted identity headers, set exclusively by the api-gateway after token
// validation. Backend services read them as ground truth and must never
// accept them from external clients; the gateway strips inbound copies
// before forwarding.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// Identity is the (subject, role) pair for the current request. It lives
// only for the request's lifetime and is never persisted.
type Identity struct {
	Subject string
	Role    string
}

// FromHeader reads the trusted identity headers. Missing headers yield
// empty fields, which every RBAC decision treats as "no access".
func FromHeader(h http.Header) Identity {
	return Identity{
		Subject: h.Get(HeaderUserID),
		Role:    h.Get(HeaderUserRole),
	}
}

func (id Identity) Authenticated() bool {
	return id.Subject != "" && id.Role != ""
}
