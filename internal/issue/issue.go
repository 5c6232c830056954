// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known failure category.
type Id int

const (
	PodmanNotFoundId Id = iota + 1
	ForgefileNotFoundId
	ForgefileParseErrorId
	BuildFailedId
	LoginFailedId
	PushFailedId
)

type (
	// MarkdownMsg is Markdown guidance rendered to the terminal.
	MarkdownMsg string

	// HttpLink points at external documentation for an issue.
	HttpLink string

	// Issue is one known failure category with rendered guidance.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue guidance with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	podmanNotFoundIssue = &Issue{
		id: PodmanNotFoundId,
		mdMsg: `
# podman was not found

podforge drives the podman CLI; it needs a podman binary on the PATH
(or one configured explicitly).

## Things you can try
- Install podman: https://podman.io/docs/installation
- Point podforge at an existing binary:
~~~
$ podforge build --podman-binary /opt/podman/bin/podman
~~~
- Or set it once in the config:
~~~toml
[podman]
binary = "/opt/podman/bin/podman"
~~~`,
		docLinks: []HttpLink{"https://podman.io/docs/installation"},
	}

	forgefileNotFoundIssue = &Issue{
		id: ForgefileNotFoundId,
		mdMsg: `
# No forgefile found

podforge looked for a forgefile.toml in the current directory and did
not find one.

## Things you can try
- Create a minimal forgefile:
~~~toml
[image]
name = "team/app"
tags = ["latest"]
~~~
- Or point at one explicitly:
~~~
$ podforge build -f path/to/forgefile.toml
~~~`,
	}

	forgefileParseErrorIssue = &Issue{
		id: ForgefileParseErrorId,
		mdMsg: `
# The forgefile could not be parsed

The file exists but is not a valid forgefile.

## Things you can try
- Check the TOML syntax: unclosed strings and misplaced tables are the
  usual suspects.
- image.name and at least one entry in image.tags are required.
- Build arguments are an array of tables, one per argument:
~~~toml
[[image.args]]
name = "GIT_SHA"
value = "abc123"
~~~`,
	}

	buildFailedIssue = &Issue{
		id: BuildFailedId,
		mdMsg: `
# The image build failed

podman build exited with an error. The captured output above usually
names the failing Containerfile instruction.

## Things you can try
- Check the Containerfile syntax for errors.
- Ensure base images are reachable (try: podman pull <base-image>).
- Retry without cache: podforge build --no-cache.`,
	}

	loginFailedIssue = &Issue{
		id: LoginFailedId,
		mdMsg: `
# Registry login failed

podman login was rejected. The password has been removed from the
diagnostic output.

## Things you can try
- Verify the username and the registry host.
- Re-export the credentials:
~~~
$ export PODFORGE_REGISTRY_USERNAME=...
$ export PODFORGE_REGISTRY_PASSWORD=...
~~~
- Registries with self-signed certificates need tls_verify = "false".`,
	}

	pushFailedIssue = &Issue{
		id: PushFailedId,
		mdMsg: `
# The image push failed

podman push exited with an error.

## Things you can try
- Log in first: podforge login <registry>.
- Verify the image exists locally (podman images).
- Check that the registry path in the forgefile matches your account.`,
	}

	registry = map[Id]*Issue{
		PodmanNotFoundId:      podmanNotFoundIssue,
		ForgefileNotFoundId:   forgefileNotFoundIssue,
		ForgefileParseErrorId: forgefileParseErrorIssue,
		BuildFailedId:         buildFailedIssue,
		LoginFailedId:         loginFailedIssue,
		PushFailedId:          pushFailedIssue,
	}
)

// Lookup returns the Issue for an Id, or nil when the Id is unknown.
func Lookup(id Id) *Issue {
	return registry[id]
}

// Ids returns all registered issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(registry)
	slices.Sort(ids)
	return ids
}
