// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"podforge/internal/issue"

	"github.com/spf13/cobra"
)

var (
	loginUsername string

	loginCmd = &cobra.Command{
		Use:   "login [registry]",
		Short: "Log in to a container registry",
		Long: `Log in to a container registry.

The password is never accepted on the command line. Set it through the
PODFORGE_REGISTRY_PASSWORD environment variable or the registry section
of the config file. If podman rejects the credentials, the password is
scrubbed from the reported error before it is logged or displayed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := ""
			if len(args) == 1 {
				registry = args[0]
			}

			creds := cfg.Credentials(registry)
			if loginUsername != "" {
				creds.Username = loginUsername
			}
			if creds.Password == "" {
				renderIssue(issue.LoginFailedId)
				return fmt.Errorf("no registry password configured; set PODFORGE_REGISTRY_PASSWORD")
			}

			exec := newExecutor()
			if err := requirePodman(exec); err != nil {
				return err
			}
			if err := exec.Login(cmd.Context(), creds); err != nil {
				renderIssue(issue.LoginFailedId)
				return err
			}
			fmt.Printf("%s Logged in to %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(creds.Registry))
			return nil
		},
	}
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "registry username")
}
