// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	saveOutput string

	saveCmd = &cobra.Command{
		Use:   "save <full-name>",
		Short: "Save an image to a local archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec := newExecutor()
			if err := requirePodman(exec); err != nil {
				return err
			}
			if err := exec.Save(cmd.Context(), saveOutput, args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Saved %s to %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(args[0]), ImageStyle.Render(saveOutput))
			return nil
		},
	}
)

func init() {
	saveCmd.Flags().StringVarP(&saveOutput, "output", "o", "", "archive file to write")
	_ = saveCmd.MarkFlagRequired("output")
}
