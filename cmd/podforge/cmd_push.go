// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"podforge/internal/issue"

	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push <full-name>",
	Short: "Push an image to its registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exec := newExecutor()
		if err := requirePodman(exec); err != nil {
			return err
		}
		if err := exec.Push(cmd.Context(), args[0]); err != nil {
			renderIssue(issue.PushFailedId)
			return err
		}
		fmt.Printf("%s Pushed %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(args[0]))
		return nil
	},
}
