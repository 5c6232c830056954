// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"podforge/internal/issue"
	"podforge/internal/podman"
	"podforge/pkg/forgefile"

	"github.com/spf13/cobra"
)

var (
	buildFile    string
	buildPush    bool
	buildSave    string
	buildNoCache bool

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build the image described by the forgefile",
		Long: `Build the image described by the forgefile, tag it with every
configured tag, and optionally save or push the result.

The pipeline is: podman build, then podman tag once per configured tag,
then (with --save) podman save, then (with --push) podman push once per
tag. The build's image hash is taken from the last line of podman's
output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd)
		},
	}
)

func init() {
	buildCmd.Flags().StringVarP(&buildFile, "file", "f", forgefile.DefaultName, "forgefile to build from")
	buildCmd.Flags().BoolVar(&buildPush, "push", false, "push every tagged name after building")
	buildCmd.Flags().StringVar(&buildSave, "save", "", "save the image to the given archive after building")
	buildCmd.Flags().BoolVar(&buildNoCache, "no-cache", false, "build without using cached layers")
}

func runBuild(cmd *cobra.Command) error {
	ff, err := loadForgefile(buildFile)
	if err != nil {
		return err
	}

	exec := newExecutor()
	if err := requirePodman(exec); err != nil {
		return err
	}

	spec := buildSpecFrom(ff)
	if buildNoCache {
		spec.NoCache = true
	}

	ctx := cmd.Context()
	lines, err := exec.Build(ctx, spec)
	if err != nil {
		renderIssue(issue.BuildFailedId)
		return err
	}

	hash, ok := podman.ImageHash(lines)
	if !ok && !dryRun {
		return fmt.Errorf("podman build produced no output; cannot determine image hash")
	}
	if dryRun {
		logger.Info("dry run: skipping tag, save and push")
		return nil
	}
	fmt.Printf("%s Built image %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(hash))

	names := ff.FullNames()
	for _, name := range names {
		if err := exec.Tag(ctx, hash, name); err != nil {
			return err
		}
		fmt.Printf("%s Tagged %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(name))
	}

	if buildSave != "" {
		if err := exec.Save(ctx, buildSave, names[0]); err != nil {
			return err
		}
		fmt.Printf("%s Saved %s to %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(names[0]), ImageStyle.Render(buildSave))
	}

	if buildPush {
		for _, name := range names {
			if err := exec.Push(ctx, name); err != nil {
				renderIssue(issue.PushFailedId)
				return err
			}
			fmt.Printf("%s Pushed %s\n", SuccessStyle.Render("✓"), ImageStyle.Render(name))
		}
	}

	return nil
}

// buildSpecFrom translates the forgefile image description into the
// podman build spec.
func buildSpecFrom(ff *forgefile.Forgefile) podman.BuildSpec {
	args := make([]podman.BuildArg, 0, len(ff.Image.Args))
	for _, a := range ff.Image.Args {
		args = append(args, podman.BuildArg{Name: a.Name, Value: a.Value})
	}
	return podman.BuildSpec{
		ContainerFile: ff.Image.ContainerFileOrDefault(),
		Format:        podman.ImageFormat(ff.Image.FormatOrDefault()),
		NoCache:       ff.Image.NoCache,
		Squash:        ff.Image.Squash,
		SquashAll:     ff.Image.SquashAll,
		Layers:        ff.Image.Layers,
		Pull:          ff.Image.Pull,
		PullAlways:    ff.Image.PullAlways,
		Platform:      ff.Image.Platform,
		BuildArgs:     args,
	}
}

// loadForgefile loads and validates a forgefile, surfacing guidance for
// the two common failure modes (missing file, unparseable file).
func loadForgefile(path string) (*forgefile.Forgefile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		renderIssue(issue.ForgefileNotFoundId)
		return nil, issue.NewErrorContext().
			WithOperation("load forgefile").
			WithResource(path).
			WithSuggestion("create a forgefile.toml next to your Containerfile").
			WithSuggestion("or point at one with --file").
			Wrap(err).
			BuildError()
	}

	ff, err := forgefile.Load(path)
	if err != nil {
		renderIssue(issue.ForgefileParseErrorId)
		return nil, issue.NewErrorContext().
			WithOperation("parse forgefile").
			WithResource(path).
			WithSuggestion("run 'podforge docs' for the forgefile reference").
			Wrap(err).
			BuildError()
	}
	return ff, nil
}

// requirePodman fails fast when the podman binary cannot be resolved.
// Dry runs never touch the binary, so they skip the check.
func requirePodman(exec *podman.Executor) error {
	if dryRun || exec.Available() {
		return nil
	}
	renderIssue(issue.PodmanNotFoundId)
	global := currentGlobalOptions()
	return fmt.Errorf("podman binary %q not found in PATH", global.BinaryOrDefault())
}

// renderIssue prints the guidance card for an issue to stderr. Rendering
// problems are ignored; guidance is best-effort.
func renderIssue(id issue.Id) {
	if rendered, err := issue.Lookup(id).Render("dark"); err == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
}
