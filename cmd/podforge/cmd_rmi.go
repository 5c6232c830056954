// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmiCmd = &cobra.Command{
	Use:   "rmi <full-name>",
	Short: "Remove an image from local storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exec := newExecutor()
		if err := requirePodman(exec); err != nil {
			return err
		}
		if err := exec.RemoveLocalImage(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("%s Removed %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(args[0]))
		return nil
	},
}
