// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show podforge and podman versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", TitleStyle.Render("podforge"), getVersionString())

		exec := newExecutor()
		if !exec.Available() {
			fmt.Println(SubtitleStyle.Render("podman: not found in PATH"))
			return nil
		}
		lines, err := exec.Version(cmd.Context())
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(SubtitleStyle.Render(line))
		}
		return nil
	},
}
