package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"confgw/errors"
)

func TestParseURI_Full(t *testing.T) {
	req := require.New(t)

	u, err := ParseURI("sip:alice@example.org:5061;transport=tls")
	req.NoError(err)
	req.Equal("sip", u.Scheme)
	req.Equal("alice", u.User)
	req.Equal("example.org", u.Host)
	req.Equal(5061, u.Port)
	req.Equal("tls", u.Parameters["transport"])
	req.Equal("alice@example.org", u.Identity())
}

func TestParseURI_AngleBracketsAndCase(t *testing.T) {
	req := require.New(t)

	u, err := ParseURI("<SIP:Bob@EXAMPLE.ORG>")
	req.NoError(err)
	req.Equal("sip", u.Scheme)
	req.Equal("Bob", u.User)
	req.Equal("example.org", u.Host)
	req.Equal(0, u.Port)
}

func TestParseURI_DropsPassword(t *testing.T) {
	req := require.New(t)

	u, err := ParseURI("sip:carol:secret@example.org")
	req.NoError(err)
	req.Equal("carol", u.User)
	req.Equal("carol@example.org", u.Identity())
}

func TestParseURI_MissingScheme(t *testing.T) {
	req := require.New(t)

	_, err := ParseURI("alice@example.org")
	req.ErrorIs(err, errors.ErrMissingScheme)
}

func TestParseURI_Malformed(t *testing.T) {
	req := require.New(t)

	for _, raw := range []string{"", "sip:alice@", "sip:alice@example.org:notaport", "sip:alice@example.org:70000"} {
		_, err := ParseURI(raw)
		req.Error(err, "input %q", raw)
	}
}

func TestRoomAddressOf_StripsEverythingButIdentity(t *testing.T) {
	req := require.New(t)

	u, err := ParseURI("sips:conf@rooms.example.org:5061;transport=tls")
	req.NoError(err)

	addr := RoomAddressOf(u)
	req.Equal("conf@rooms.example.org", addr.String())
	req.False(addr.IsZero())
}

func TestHeaderIdentity(t *testing.T) {
	req := require.New(t)

	h := Header{DisplayName: "Alice", URI: URI{Scheme: "sip", User: "alice", Host: "example.org"}}
	req.Equal("Alice <alice@example.org>", h.Identity())

	h.DisplayName = ""
	req.Equal("alice@example.org", h.Identity())
}

func TestReferToMethod(t *testing.T) {
	req := require.New(t)

	req.Equal("invite", ReferTo{Target: "sip:bob@example.org"}.Method())
	req.Equal("bye", ReferTo{Target: "sip:bob@example.org", Parameters: map[string]string{"method": "BYE"}}.Method())
}
