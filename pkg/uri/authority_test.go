package uri

import (
	"errors"
	"testing"
)

func TestParseAuthorityHostAndPort(t *testing.T) {
	tests := []struct {
		authority string
		host      string
		hasPort   bool
		port      uint16
	}{
		{"www.example.com", "www.example.com", false, 0},
		{"www.example.com:8080", "www.example.com", true, 8080},
		{"www.example.com:0", "www.example.com", true, 0},
		{"www.example.com:", "www.example.com", false, 0},
		{"", "", false, 0},
		{"[::1]:443", "::1", true, 443},
		{"[v7.:]:80", "v7.:", true, 80},
		{"1.2.3.4", "1.2.3.4", false, 0},
	}
	for _, tt := range tests {
		parsed, err := ParseAuthority(tt.authority)
		if err != nil {
			t.Errorf("ParseAuthority(%q) failed: %v", tt.authority, err)
			continue
		}
		if string(parsed.Host()) != tt.host {
			t.Errorf("ParseAuthority(%q) host = %q, want %q", tt.authority, parsed.Host(), tt.host)
		}
		if parsed.HasPort() != tt.hasPort {
			t.Errorf("ParseAuthority(%q) hasPort = %v, want %v", tt.authority, parsed.HasPort(), tt.hasPort)
		}
		if tt.hasPort && parsed.Port() != tt.port {
			t.Errorf("ParseAuthority(%q) port = %d, want %d", tt.authority, parsed.Port(), tt.port)
		}
	}
}

func TestParseAuthorityUserinfo(t *testing.T) {
	parsed, err := ParseAuthority("joe@www.example.com")
	if err != nil {
		t.Fatalf("ParseAuthority failed: %v", err)
	}
	if !parsed.HasUserinfo() || string(parsed.Userinfo()) != "joe" {
		t.Errorf("userinfo = %q (present=%v), want \"joe\"", parsed.Userinfo(), parsed.HasUserinfo())
	}

	parsed, err = ParseAuthority("@www.example.com")
	if err != nil {
		t.Fatalf("ParseAuthority failed: %v", err)
	}
	if !parsed.HasUserinfo() || len(parsed.Userinfo()) != 0 {
		t.Error("expected empty-but-present userinfo")
	}

	parsed, err = ParseAuthority("www.example.com")
	if err != nil {
		t.Fatalf("ParseAuthority failed: %v", err)
	}
	if parsed.HasUserinfo() {
		t.Error("unexpected userinfo")
	}
}

func TestParseAuthorityErrors(t *testing.T) {
	tests := []struct {
		authority string
		err       error
	}{
		{"www.example.com:spam", ErrIllegalPortNumber},
		{"www.example.com:65536", ErrIllegalPortNumber},
		{"{@www.example.com", ErrIllegalCharacter},
		{"www}example.com", ErrIllegalCharacter},
		{"[::1]x", ErrIllegalCharacter},
		{"[::1", ErrTruncatedHost},
		{"[vX.:]", ErrIllegalCharacter},
		{"[v7.^]", ErrIllegalCharacter},
		{"%4", ErrTruncatedHost},
		{"%GG", ErrIllegalPercentEncoding},
	}
	for _, tt := range tests {
		if _, err := ParseAuthority(tt.authority); !errors.Is(err, tt.err) {
			t.Errorf("ParseAuthority(%q): expected %v, got %v", tt.authority, tt.err, err)
		}
	}
}

func TestAuthorityString(t *testing.T) {
	tests := []struct {
		userinfo *string
		host     string
		port     *uint16
		expected string
	}{
		{nil, "www.example.com", nil, "www.example.com"},
		{strptr("bob"), "www.example.com", portptr(8080), "bob@www.example.com:8080"},
		{strptr(""), "www.example.com", nil, "@www.example.com"},
		{nil, "::1", nil, "[::1]"},
		{nil, "fFfF::1", nil, "[ffff::1]"},
		{nil, "v7.:", nil, "[v7.:]"},
		{strptr("b b"), "www.e ample.com", nil, "b%20b@www.e%20ample.com"},
	}
	for _, tt := range tests {
		authority := &Authority{}
		if tt.userinfo != nil {
			authority.SetUserinfo([]byte(*tt.userinfo))
		}
		authority.SetHostString(tt.host)
		if tt.port != nil {
			authority.SetPort(*tt.port)
		}
		if authority.String() != tt.expected {
			t.Errorf("String() = %q, want %q", authority.String(), tt.expected)
		}
	}
}

func TestAuthorityEquals(t *testing.T) {
	parse := func(s string) *Authority {
		t.Helper()
		parsed, err := ParseAuthority(s)
		if err != nil {
			t.Fatalf("ParseAuthority(%q) failed: %v", s, err)
		}
		return parsed
	}
	if !parse("bob@example.com:80").Equals(parse("bob@EXAMPLE.com:80")) {
		t.Error("expected case-insensitive host equality")
	}
	if parse("example.com").Equals(parse("example.com:80")) {
		t.Error("expected port presence to matter")
	}
	if parse("example.com:80").Equals(parse("example.com:81")) {
		t.Error("expected differing ports to be unequal")
	}
	if parse("example.com").Equals(parse("@example.com")) {
		t.Error("expected userinfo presence to matter")
	}
}

func TestAuthorityClearers(t *testing.T) {
	authority, err := ParseAuthority("bob@example.com:80")
	if err != nil {
		t.Fatalf("ParseAuthority failed: %v", err)
	}
	authority.ClearPort()
	authority.ClearUserinfo()
	if authority.HasPort() || authority.HasUserinfo() {
		t.Error("clearers left components present")
	}
	if authority.String() != "example.com" {
		t.Errorf("String() = %q, want \"example.com\"", authority.String())
	}
}
