package cratedocs

import (
	"context"
	"fmt"
)

// CommandLookupCrateDocs is the only command the relay understands.
const CommandLookupCrateDocs = "lookup_crate_docs"

// DefaultCrateName is looked up when a command names no crate.
const DefaultCrateName = "tokio"

// DefaultDocsBaseURL is the documentation host crate pages are fetched from.
const DefaultDocsBaseURL = "https://docs.rs"

// Command is a single request sent to the relay.
type Command struct {
	Command string `json:"command"`
	Args    *Args  `json:"args,omitempty"`
}

// Validate returns an error if the command is not recognized.
func (c *Command) Validate() error {
	if c.Command != CommandLookupCrateDocs {
		return Errorf(EINVALID, "Unknown command")
	}
	return nil
}

// CrateName returns the crate the command refers to, falling back to
// DefaultCrateName when no name was supplied.
func (c *Command) CrateName() string {
	return c.Args.Crate()
}

// Args carries the optional arguments of a command.
type Args struct {
	CrateName *string `json:"crateName,omitempty"`
}

// Crate returns the requested crate name or DefaultCrateName if the args,
// the field, or its value are absent. It is safe to call on a nil *Args.
func (a *Args) Crate() string {
	if a == nil || a.CrateName == nil || *a.CrateName == "" {
		return DefaultCrateName
	}
	return *a.CrateName
}

// DocsURL returns the docs page URL of a crate on the given host.
//
// The name is interpolated as-is. Names containing '/', '?', '#' or '..'
// produce URLs pointing elsewhere on the host.
func DocsURL(baseURL, name string) string {
	return fmt.Sprintf("%s/%s/latest/%s/index.html", baseURL, name, name)
}

// CommandService executes relay commands.
type CommandService interface {
	// Execute runs the command and returns its response.
	// Returns EINVALID for unknown commands, EUNAVAILABLE when the docs host
	// cannot be reached and EUPSTREAM when it answers with a non-2xx status.
	Execute(ctx context.Context, cmd *Command) (*Response, error)
}
