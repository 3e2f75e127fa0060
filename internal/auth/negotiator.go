// Package auth negotiates credentials for remote transports.
//
// The negotiator is a pure function from a credential request to a
// credential. The transport adapter may call it several times during one
// network operation, each time with a narrower set of allowed mechanisms.
package auth

import (
	"strings"
)

// Mechanisms is a set of authentication mechanisms the transport accepts
type Mechanisms uint8

const (
	// UserPassPlaintext is username/password (or token) over HTTP basic auth
	UserPassPlaintext Mechanisms = 1 << iota
	// SSHKey is a key held by the platform's SSH agent
	SSHKey
	// UsernameOnly supplies just a username
	UsernameOnly
)

const (
	// DefaultTokenUser is the username sent with a token when the URL carries none
	DefaultTokenUser = "x-access-token"
	// DefaultSSHUser is the username used when the URL carries none
	DefaultSSHUser = "git"
)

// Has reports whether every mechanism in m2 is in m
func (m Mechanisms) Has(m2 Mechanisms) bool {
	return m2 != 0 && m&m2 == m2
}

// Without returns m with m2 removed
func (m Mechanisms) Without(m2 Mechanisms) Mechanisms {
	return m &^ m2
}

func (m Mechanisms) String() string {
	var parts []string
	if m.Has(UserPassPlaintext) {
		parts = append(parts, "userpass")
	}
	if m.Has(SSHKey) {
		parts = append(parts, "ssh-key")
	}
	if m.Has(UsernameOnly) {
		parts = append(parts, "username")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Request is one authentication attempt asked for by the transport
type Request struct {
	URL string
	// UsernameHint is the username embedded in the URL, empty when absent
	UsernameHint string
	Allowed      Mechanisms
}

// Kind identifies the type of a Credential
type Kind int

const (
	// KindDefault is the engine's anonymous credential
	KindDefault Kind = iota
	// KindUserPass is a plaintext username and password
	KindUserPass
	// KindSSHAgent asks the SSH agent for a key for Username
	KindSSHAgent
	// KindUsername is a bare username
	KindUsername
)

func (k Kind) String() string {
	switch k {
	case KindUserPass:
		return "userpass"
	case KindSSHAgent:
		return "ssh-agent"
	case KindUsername:
		return "username"
	default:
		return "default"
	}
}

// Credential is the negotiator's answer to a Request
type Credential struct {
	Kind     Kind
	Username string
	Password string
}

// Mechanism returns the mechanism the credential satisfies, zero for the default credential
func (c Credential) Mechanism() Mechanisms {
	switch c.Kind {
	case KindUserPass:
		return UserPassPlaintext
	case KindSSHAgent:
		return SSHKey
	case KindUsername:
		return UsernameOnly
	default:
		return 0
	}
}

// Negotiator resolves a Request to a Credential
type Negotiator func(Request) Credential

// NewNegotiator returns the fallback chain for an optional caller-supplied token.
// A blank token counts as absent.
func NewNegotiator(token string) Negotiator {
	token = strings.TrimSpace(token)
	return func(req Request) Credential {
		if token != "" && req.Allowed.Has(UserPassPlaintext) {
			username := req.UsernameHint
			if username == "" {
				username = DefaultTokenUser
			}
			return Credential{Kind: KindUserPass, Username: username, Password: token}
		}

		if req.Allowed.Has(SSHKey) && req.UsernameHint != "" {
			return Credential{Kind: KindSSHAgent, Username: req.UsernameHint}
		}

		if req.Allowed.Has(UsernameOnly) {
			username := req.UsernameHint
			if username == "" {
				username = DefaultSSHUser
			}
			return Credential{Kind: KindUsername, Username: username}
		}

		return Credential{Kind: KindDefault}
	}
}
