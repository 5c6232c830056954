// SPDX-License-Identifier: MPL-2.0

package podman

import (
	"strings"
	"testing"
)

func TestRedactPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		message  string
		password string
		want     string
	}{
		{
			name:     "equals separator",
			message:  `command "podman login reg -u u -p=SECRET123" failed`,
			password: "SECRET123",
			want:     `command "podman login reg -u u -p=**********" failed`,
		},
		{
			name:     "comma separator",
			message:  "exec [login, reg, -u, u, -p,SECRET123] failed",
			password: "SECRET123",
			want:     "exec [login, reg, -u, u, -p=**********] failed",
		},
		{
			name:     "space separator",
			message:  "podman login reg -u u -p SECRET123: exit status 125",
			password: "SECRET123",
			want:     "podman login reg -u u -p=**********: exit status 125",
		},
		{
			name:     "occurrence at start",
			message:  "-p=SECRET123 was rejected",
			password: "SECRET123",
			want:     "-p=********** was rejected",
		},
		{
			name:     "occurrence at end",
			message:  "rejected flag -p=SECRET123",
			password: "SECRET123",
			want:     "rejected flag -p=**********",
		},
		{
			name:     "repeated occurrences",
			message:  "-p=SECRET123 then again -p=SECRET123",
			password: "SECRET123",
			want:     "-p=********** then again -p=**********",
		},
		{
			name:     "bare password without flag",
			message:  "server echoed SECRET123 in its response",
			password: "SECRET123",
			want:     "server echoed ********** in its response",
		},
		{
			name:     "regex metacharacters treated literally",
			message:  `login failed: -p=p@ss.*+?w0rd rejected`,
			password: "p@ss.*+?w0rd",
			want:     `login failed: -p=********** rejected`,
		},
		{
			name:     "password with forward slash",
			message:  "error from podman login -p=p@ss/w0rd",
			password: "p@ss/w0rd",
			want:     "error from podman login -p=**********",
		},
		{
			name:     "empty password leaves message alone",
			message:  "no credentials supplied",
			password: "",
			want:     "no credentials supplied",
		},
		{
			name:     "password absent from message",
			message:  "connection refused",
			password: "SECRET123",
			want:     "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RedactPassword(tt.message, tt.password)
			if got != tt.want {
				t.Errorf("RedactPassword() = %q, want %q", got, tt.want)
			}
			if tt.password != "" && strings.Contains(got, tt.password) {
				t.Errorf("scrubbed message still contains the password: %q", got)
			}
		})
	}
}

func TestRedactPassword_NeverLeaksAnyPassword(t *testing.T) {
	t.Parallel()

	// Passwords chosen to stress substitution machinery: regex
	// metacharacters, replacement-pattern syntax, separators.
	passwords := []string{
		".*+?",
		"$1$2",
		`\k<name>`,
		"a,b=c d",
		"-p=nested",
		"**********x",
		"ünïcödé-пароль",
	}

	for _, password := range passwords {
		msg := "failed: podman login reg -u u -p=" + password + " and raw " + password + " too"
		got := RedactPassword(msg, password)
		if strings.Contains(got, password) {
			t.Errorf("password %q survives redaction: %q", password, got)
		}
	}
}
