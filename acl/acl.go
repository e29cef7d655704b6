// Package acl evaluates per-room admission policy against caller
// identities. Patterns are anchored regular expressions over the
// canonical user@host identity form; pattern semantics beyond that are
// whatever the configuration supplies.
package acl

import (
	"fmt"
	"regexp"

	"confgw/domain"
	"confgw/errors"
)

type Mode string

const (
	// AllowThenDeny admits a caller iff it matches the allow pattern and
	// does not match the deny pattern.
	AllowThenDeny Mode = "allow,deny"
	// DenyOnly rejects a caller iff it matches the deny pattern and does
	// not match the allow pattern; everything else is admitted.
	DenyOnly Mode = "deny,allow"
)

// ParseMode maps a configuration string onto a policy mode. Anything
// that is not the allow,deny form falls back to default-allow, matching
// the room configuration contract.
func ParseMode(s string) Mode {
	if Mode(s) == AllowThenDeny {
		return AllowThenDeny
	}
	return DenyOnly
}

// Matcher is a compiled set of identity patterns. A nil Matcher never
// matches, which makes the zero Policy a default-allow DenyOnly policy.
type Matcher struct {
	patterns []*regexp.Regexp
}

func CompileMatcher(patterns ...string) (*Matcher, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	m := &Matcher{}
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			return nil, fmt.Errorf("bad identity pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

func (m *Matcher) Match(identity string) bool {
	if m == nil {
		return false
	}
	for _, re := range m.patterns {
		if re.MatchString(identity) {
			return true
		}
	}
	return false
}

type Policy struct {
	Mode  Mode
	Allow *Matcher
	Deny  *Matcher
}

// Admits applies the two-mode contract to one caller identity.
func (p Policy) Admits(identity string) bool {
	switch p.Mode {
	case AllowThenDeny:
		return p.Allow.Match(identity) && !p.Deny.Match(identity)
	default:
		return !(p.Deny.Match(identity) && !p.Allow.Match(identity))
	}
}

// Provider resolves the policy configured for a room. Providers return
// the zero Policy (default-allow) for rooms without stored configuration.
type Provider interface {
	PolicyFor(room domain.RoomAddress) Policy
}

// StaticPolicies is a fixed in-memory Provider keyed by room address.
type StaticPolicies map[string]Policy

func (s StaticPolicies) PolicyFor(room domain.RoomAddress) Policy {
	return s[room.String()]
}

type Engine struct {
	provider Provider
}

func NewEngine(provider Provider) *Engine {
	return &Engine{provider: provider}
}

// Validate checks the caller against the room's policy.
// Returns errors.ErrACLDenied on denial.
func (e *Engine) Validate(room domain.RoomAddress, caller domain.URI) error {
	if e.provider.PolicyFor(room).Admits(caller.Identity()) {
		return nil
	}
	return errors.ErrACLDenied
}
