// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ExceptionsMalformedId
	WorkspaceLoadFailedId
	RootNotFoundId
	GitListingFailedId
	SourceReadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown in the "See also" section
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the modlint configuration file.

## Configuration file locations:
- Linux: ~/.config/modlint/modlint.cue
- macOS: ~/Library/Application Support/modlint/modlint.cue
- Windows: %APPDATA%\modlint\modlint.cue
- Or a modlint.cue file in the current directory

## Things you can try:
- Create a default configuration:
~~~
$ modlint config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/modlint/modlint.cue
~~~

## Example configuration:
~~~cue
extension:       "lean"
exceptions_file: "scripts/style-exceptions.txt"
use_git:         true

style: {
  max_line_length: 100
}
~~~`,
	}

	exceptionsMalformedIssue = &Issue{
		id: ExceptionsMalformedId,
		mdMsg: `
# Malformed exception table!

The exception file could not be parsed. Every non-comment line must have
exactly four fields separated by " : ":

~~~
<file path> : <line number> : <rule kind> : <message>
~~~

## Common issues:
- A missing field or a stray colon
- A line number that is not a positive integer
- A rule kind containing spaces or ":"
- Two records with the same file, line, and kind

## Things you can try:
- Check the reported line in the exception file
- Regenerate the table from the current findings:
~~~
$ modlint check --update-exceptions
~~~`,
	}

	workspaceLoadFailedIssue = &Issue{
		id: WorkspaceLoadFailedId,
		mdMsg: `
# Failed to load the workspace manifest!

The workspace manifest could not be read or parsed.

## Things you can try:
- Check that the manifest exists at the configured path
  (default: workspace.toml in the current directory)
- Check the TOML syntax; every library needs a name:
~~~toml
name = "Sampleland"

[[lib]]
name = "Sampleland"

[[lib]]
name = "Cache"
~~~

- Point modlint at a different manifest:
~~~
$ modlint libs --manifest path/to/workspace.toml
~~~`,
	}

	rootNotFoundIssue = &Issue{
		id: RootNotFoundId,
		mdMsg: `
# Root directory not found!

The directory to lint does not exist or is not a directory.

## Things you can try:
- Check the spelling of the root argument:
~~~
$ modlint check Sampleland
~~~

- Run modlint from the repository root, where the library
  directories live
- List the workspace libraries to see the known roots:
~~~
$ modlint libs
~~~`,
	}

	gitListingFailedIssue = &Issue{
		id: GitListingFailedId,
		mdMsg: `
# Git file listing failed!

modlint asked git for the tracked source files and the command failed.

## Common causes:
- The working directory is not inside a git repository
- git is not installed or not on PATH

## Things you can try:
- Run modlint from inside the repository
- Fall back to a plain directory walk:
~~~
$ modlint check --no-git
~~~

- Or disable git listing permanently in your configuration:
~~~cue
use_git: false
~~~`,
	}

	sourceReadFailedIssue = &Issue{
		id: SourceReadFailedId,
		mdMsg: `
# Failed to read a source file!

A file reported by discovery could not be read when linting started.

## Common causes:
- The file was deleted or renamed mid-run
- A permission problem on the file or one of its parent directories

## Things you can try:
- Re-run the check; transient renames resolve themselves
- Check permissions on the reported path
- If the file is gone for good, commit the deletion so the
  git listing no longer reports it`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		exceptionsMalformedIssue.Id(): exceptionsMalformedIssue,
		workspaceLoadFailedIssue.Id(): workspaceLoadFailedIssue,
		rootNotFoundIssue.Id():        rootNotFoundIssue,
		gitListingFailedIssue.Id():    gitListingFailedIssue,
		sourceReadFailedIssue.Id():    sourceReadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
