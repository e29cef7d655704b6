package acl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"confgw/domain"
	"confgw/errors"
)

func matcher(t *testing.T, patterns ...string) *Matcher {
	t.Helper()
	m, err := CompileMatcher(patterns...)
	require.NoError(t, err)
	return m
}

func TestCompileMatcher_BadPattern(t *testing.T) {
	req := require.New(t)

	_, err := CompileMatcher("[unclosed")
	req.Error(err)
}

func TestMatcher_Anchored(t *testing.T) {
	req := require.New(t)

	m := matcher(t, ".*@example.org")
	req.True(m.Match("alice@example.org"))
	// The pattern must cover the whole identity, not a substring.
	req.False(m.Match("alice@example.org.evil.net"))
}

func TestMatcher_NilNeverMatches(t *testing.T) {
	req := require.New(t)

	var m *Matcher
	req.False(m.Match("anyone@anywhere"))
}

func TestPolicy_AllowThenDeny(t *testing.T) {
	req := require.New(t)

	p := Policy{
		Mode:  AllowThenDeny,
		Allow: matcher(t, ".*@example.org"),
		Deny:  matcher(t, "mallory@example.org"),
	}

	req.True(p.Admits("alice@example.org"))
	req.False(p.Admits("mallory@example.org"))
	req.False(p.Admits("eve@elsewhere.net"))
}

func TestPolicy_DenyOnly(t *testing.T) {
	req := require.New(t)

	p := Policy{
		Mode:  DenyOnly,
		Allow: matcher(t, "mallory@partner.net"),
		Deny:  matcher(t, ".*@partner.net"),
	}

	// Unknown identities are admitted by default.
	req.True(p.Admits("alice@example.org"))
	// Deny applies unless allow rescues the identity.
	req.False(p.Admits("bob@partner.net"))
	req.True(p.Admits("mallory@partner.net"))
}

func TestPolicy_ZeroValueAdmitsEveryone(t *testing.T) {
	req := require.New(t)

	req.True(Policy{}.Admits("anyone@anywhere"))
}

func TestParseMode(t *testing.T) {
	req := require.New(t)

	req.Equal(AllowThenDeny, ParseMode("allow,deny"))
	req.Equal(DenyOnly, ParseMode("deny,allow"))
	req.Equal(DenyOnly, ParseMode(""))
	req.Equal(DenyOnly, ParseMode("whatever"))
}

func TestEngine_Validate(t *testing.T) {
	req := require.New(t)

	room := domain.RoomAddress{User: "conf", Host: "example.org"}
	provider := StaticPolicies{
		room.String(): {
			Mode:  AllowThenDeny,
			Allow: matcher(t, "alice@example.org"),
		},
	}
	engine := NewEngine(provider)

	alice := domain.URI{Scheme: "sip", User: "alice", Host: "example.org"}
	bob := domain.URI{Scheme: "sip", User: "bob", Host: "example.org"}

	req.NoError(engine.Validate(room, alice))
	req.ErrorIs(engine.Validate(room, bob), errors.ErrACLDenied)

	// Rooms without a configured policy default to allow.
	other := domain.RoomAddress{User: "open", Host: "example.org"}
	req.NoError(engine.Validate(other, bob))
}
