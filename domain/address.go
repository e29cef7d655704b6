// Package domain contains core concepts of the conference gateway.
// No runtime, protocol, or storage logic should be added here.
package domain

import (
	"fmt"
	"strconv"
	"strings"

	"confgw/errors"
)

// RoomAddress is the canonical user@host key identifying one conference.
// Equality is exact string match after canonicalization.
type RoomAddress struct {
	User string
	Host string
}

func (a RoomAddress) String() string {
	return a.User + "@" + a.Host
}

func (a RoomAddress) IsZero() bool {
	return a.User == "" && a.Host == ""
}

// RoomAddressOf canonicalizes a URI down to its registry key,
// dropping scheme, port and parameters.
func RoomAddressOf(u URI) RoomAddress {
	return RoomAddress{User: u.User, Host: u.Host}
}

// URI is a parsed protocol address: scheme:user@host[:port][;param=value].
type URI struct {
	Scheme     string
	User       string
	Host       string
	Port       int
	Parameters map[string]string
}

func (u URI) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteByte(':')
	if u.User != "" {
		b.WriteString(u.User)
		b.WriteByte('@')
	}
	b.WriteString(u.Host)
	if u.Port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.Port))
	}
	for k, v := range u.Parameters {
		b.WriteByte(';')
		b.WriteString(k)
		if v != "" {
			b.WriteByte('=')
			b.WriteString(v)
		}
	}
	return b.String()
}

// Identity is the canonical user@host form used for ACL matching and
// participant ledger keys.
func (u URI) Identity() string {
	return u.User + "@" + u.Host
}

// ParseURI parses sip:user@host:port;key=value forms. Angle brackets are
// stripped. A missing scheme is an error; callers that allow scheme-less
// targets apply their default before parsing.
func ParseURI(raw string) (URI, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	if s == "" {
		return URI{}, fmt.Errorf("%w: empty input", errors.ErrMalformedURI)
	}

	scheme, rest, ok := strings.Cut(s, ":")
	if !ok || scheme == "" || strings.ContainsAny(scheme, "@;") {
		return URI{}, fmt.Errorf("%w: %q", errors.ErrMissingScheme, raw)
	}

	u := URI{Scheme: strings.ToLower(scheme)}

	rest, params := splitParameters(rest)
	u.Parameters = params

	if user, hostport, ok := strings.Cut(rest, "@"); ok {
		// Drop any password component, it has no meaning here.
		user, _, _ = strings.Cut(user, ":")
		u.User = user
		rest = hostport
	}

	host, portStr, hasPort := strings.Cut(rest, ":")
	if host == "" {
		return URI{}, fmt.Errorf("%w: no host in %q", errors.ErrMalformedURI, raw)
	}
	u.Host = strings.ToLower(host)
	if hasPort {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return URI{}, fmt.Errorf("%w: bad port in %q", errors.ErrMalformedURI, raw)
		}
		u.Port = port
	}
	return u, nil
}

func splitParameters(s string) (string, map[string]string) {
	base, rest, ok := strings.Cut(s, ";")
	if !ok {
		return s, nil
	}
	params := make(map[string]string)
	for _, p := range strings.Split(rest, ";") {
		if p == "" {
			continue
		}
		k, v, _ := strings.Cut(p, "=")
		params[strings.ToLower(k)] = v
	}
	return base, params
}

// Header is a parsed address header: optional display name plus URI.
type Header struct {
	DisplayName string
	URI         URI
}

// Identity renders the header the way a human would read it,
// "Name <user@host>" when a display name is present.
func (h Header) Identity() string {
	if h.DisplayName != "" {
		return fmt.Sprintf("%s <%s>", h.DisplayName, h.URI.Identity())
	}
	return h.URI.Identity()
}

// ReferTo carries the raw transfer target of a call-transfer request.
// Target may omit its scheme and may be wrapped in angle brackets;
// Parameters carries header parameters such as method=bye.
type ReferTo struct {
	Target     string
	Parameters map[string]string
}

// Method returns the requested transfer method, defaulting to invite.
func (r ReferTo) Method() string {
	if m, ok := r.Parameters["method"]; ok && m != "" {
		return strings.ToLower(m)
	}
	return "invite"
}

// Request carries the addressing material of one inbound protocol request.
// Header pointers are nil when the request did not carry the header.
type Request struct {
	URI        URI
	From       *Header
	To         *Header
	ReferTo    *ReferTo
	ReferredBy string
}
