// SPDX-License-Identifier: MPL-2.0

package podman

import "strings"

// passwordMask replaces redacted password material in diagnostic text.
const passwordMask = "**********"

// passwordFlagSeparators are the separator forms podman has been observed
// to echo between the -p flag and its value when it reprints a failed
// command line.
var passwordFlagSeparators = []string{"=", ",", " "}

// RedactPassword irreversibly removes every occurrence of the literal
// password from a diagnostic message. Flag-shaped occurrences (-p=, -p,,
// -p followed by a space) collapse to "-p=**********"; any remaining bare
// occurrence becomes "**********". The password is treated as a literal
// substring, never compiled into a pattern, so passwords containing regex
// metacharacters are redacted like any other.
//
// An empty password returns the message unchanged: there is no secret to
// remove, and replacing the empty string would corrupt the text.
func RedactPassword(message, password string) string {
	if password == "" {
		return message
	}
	for _, sep := range passwordFlagSeparators {
		message = strings.ReplaceAll(message, "-p"+sep+password, "-p="+passwordMask)
	}
	return strings.ReplaceAll(message, password, passwordMask)
}
