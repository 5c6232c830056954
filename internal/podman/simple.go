// SPDX-License-Identifier: MPL-2.0

package podman

// The fixed-shape commands. Each is a straight mapping from a small set of
// required strings to an argument vector; the only validation is that the
// required strings are non-empty.

// NewTagCommand assembles: <binary> [global flags] tag <hash> <fullName>
func NewTagCommand(global GlobalOptions, imageHash, fullImageName string, delegate Delegate) (*Command, error) {
	if err := requireValue("tag", "image hash", imageHash); err != nil {
		return nil, err
	}
	if err := requireValue("tag", "full image name", fullImageName); err != nil {
		return nil, err
	}

	args := append(global.Args(), "tag", imageHash, fullImageName)
	return newCommand(global, args, delegate), nil
}

// NewSaveCommand assembles: <binary> [global flags] save -o <archive> <fullName>
//
// Save is not an export: the archive is a tarball holding every layer as a
// separate directory.
func NewSaveCommand(global GlobalOptions, archiveName, fullImageName string, delegate Delegate) (*Command, error) {
	if err := requireValue("save", "archive name", archiveName); err != nil {
		return nil, err
	}
	if err := requireValue("save", "full image name", fullImageName); err != nil {
		return nil, err
	}

	args := append(global.Args(), "save", "-o", archiveName, fullImageName)
	return newCommand(global, args, delegate), nil
}

// NewPushCommand assembles: <binary> [global flags] push <fullName>
func NewPushCommand(global GlobalOptions, fullImageName string, delegate Delegate) (*Command, error) {
	if err := requireValue("push", "full image name", fullImageName); err != nil {
		return nil, err
	}

	args := append(global.Args(), "push", fullImageName)
	return newCommand(global, args, delegate), nil
}

// NewVersionCommand assembles: <binary> [global flags] version
func NewVersionCommand(global GlobalOptions, delegate Delegate) *Command {
	args := append(global.Args(), "version")
	return newCommand(global, args, delegate)
}

// NewRemoveImageCommand assembles: <binary> [global flags] rmi <fullName>
func NewRemoveImageCommand(global GlobalOptions, fullImageName string, delegate Delegate) (*Command, error) {
	if err := requireValue("rmi", "full image name", fullImageName); err != nil {
		return nil, err
	}

	args := append(global.Args(), "rmi", fullImageName)
	return newCommand(global, args, delegate), nil
}

// NewLoginCommand assembles: <binary> [global flags] login <registry> -u <username> -p=<password>
//
// The assembled argv necessarily contains the raw password; redaction of
// failure messages is the Executor's responsibility, since the builder's
// output is the very string that must later be protected.
func NewLoginCommand(global GlobalOptions, creds RegistryCredentials, delegate Delegate) (*Command, error) {
	if err := requireValue("login", "registry", creds.Registry); err != nil {
		return nil, err
	}
	if err := requireValue("login", "username", creds.Username); err != nil {
		return nil, err
	}
	if err := requireValue("login", "password", creds.Password); err != nil {
		return nil, err
	}

	args := append(global.Args(), "login", creds.Registry, "-u", creds.Username, "-p="+creds.Password)
	return newCommand(global, args, delegate), nil
}
