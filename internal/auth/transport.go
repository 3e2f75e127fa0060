package auth

import (
	"errors"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// MaxAttempts bounds the transport calls made while renegotiating credentials
const MaxAttempts = 3

// RequestFor derives the first credential request from a remote URL
func RequestFor(rawURL string) Request {
	req := Request{URL: rawURL}
	endpoint, err := transport.NewEndpoint(rawURL)
	if err != nil {
		return req
	}
	req.UsernameHint = endpoint.User
	switch endpoint.Protocol {
	case "http", "https":
		req.Allowed = UserPassPlaintext
	case "ssh":
		req.Allowed = SSHKey | UsernameOnly
	}
	return req
}

// AuthMethod converts the credential into a go-git auth method.
// The default credential converts to nil (anonymous).
func (c Credential) AuthMethod() (transport.AuthMethod, error) {
	switch c.Kind {
	case KindUserPass:
		return &githttp.BasicAuth{Username: c.Username, Password: c.Password}, nil
	case KindSSHAgent, KindUsername:
		// go-git cannot send a bare username, so both go through the agent
		agentAuth, err := gitssh.NewSSHAgentAuth(c.Username)
		if err != nil {
			return nil, err
		}
		return agentAuth, nil
	default:
		return nil, nil
	}
}

// key identifies credentials that produce the same auth method
func (c Credential) key() string {
	switch c.Kind {
	case KindUserPass:
		return "userpass:" + c.Username
	case KindSSHAgent, KindUsername:
		return "ssh:" + c.Username
	default:
		return "default"
	}
}

// IsAuthRejection reports whether a transport error means the credential was refused
func IsAuthRejection(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, transport.ErrAuthenticationRequired) || errors.Is(err, transport.ErrAuthorizationFailed) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "unable to authenticate") || strings.Contains(msg, "no supported methods remain")
}

// WithCredentials runs op with credentials negotiated for rawURL.
// When the transport rejects a credential, the rejected mechanism is removed
// and the negotiator is asked again. It stops on success, on any other
// error, after the anonymous attempt, or after MaxAttempts calls to op.
func WithCredentials(rawURL string, negotiate Negotiator, op func(transport.AuthMethod) error) error {
	req := RequestFor(rawURL)
	tried := make(map[string]bool)

	var lastErr error
	for attempts := 0; attempts < MaxAttempts; {
		cred := negotiate(req)
		if tried[cred.key()] {
			if cred.Kind == KindDefault {
				break
			}
			req.Allowed = req.Allowed.Without(cred.Mechanism())
			continue
		}
		tried[cred.key()] = true

		method, err := cred.AuthMethod()
		if err != nil {
			// No agent available; degrade to anonymous
			method = nil
		}

		attempts++
		lastErr = op(method)
		if lastErr == nil || !IsAuthRejection(lastErr) {
			return lastErr
		}
		if cred.Kind == KindDefault {
			return lastErr
		}
		req.Allowed = req.Allowed.Without(cred.Mechanism())
	}
	return lastErr
}
