// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag <image-hash> <full-name>",
	Short: "Tag a built image with a fully qualified name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exec := newExecutor()
		if err := requirePodman(exec); err != nil {
			return err
		}
		if err := exec.Tag(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s Tagged %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(args[1]))
		return nil
	},
}
