// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"podforge/pkg/forgefile"

	"github.com/spf13/cobra"
)

var (
	initForce bool
	initName  string

	// initCmd creates a starter forgefile
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a starter forgefile in the current directory",
		Long: `Create a starter forgefile in the current directory.

The generated forgefile builds the local Containerfile, names the image
after the current directory, and tags it "latest". Edit it and run
'podforge build'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing forgefile")
	initCmd.Flags().StringVar(&initName, "name", "", "image name (default: current directory name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := forgefile.DefaultName
	if len(args) > 0 {
		filename = args[0]
	}

	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file %q already exists. Use --force to overwrite", filename)
	}

	name := initName
	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		name = filepath.Base(wd)
	}

	data, err := forgefile.Marshal(&forgefile.Forgefile{
		Image: forgefile.ImageSpec{
			Name: name,
			Tags: []string{"latest"},
		},
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit the forgefile: add tags, build args, a registry")
	fmt.Println("  2. Run 'podforge docs' for the full reference")
	fmt.Println("  3. Run 'podforge build' to build and tag the image")

	return nil
}
