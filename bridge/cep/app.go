package cep

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
)

type app struct {
	c *Client
}

var _ bridge.App = (*app)(nil)

// CurrentProject implements [bridge.App].
func (a *app) CurrentProject(ctx context.Context) (bridge.Project, error) {
	resp, err := a.c.get(ctx, appHandle, "project")
	if err != nil {
		return nil, err
	}
	if resp.Handle == "" {
		return nil, nil
	}
	return &project{c: a.c, handle: resp.Handle}, nil
}

// Projects implements [bridge.App].
func (a *app) Projects(ctx context.Context) ([]bridge.Project, error) {
	resp, err := a.c.get(ctx, appHandle, "projects")
	if err != nil {
		return nil, err
	}

	projects := make([]bridge.Project, 0, len(resp.Handles))
	for _, h := range resp.Handles {
		projects = append(projects, &project{c: a.c, handle: h})
	}
	return projects, nil
}

// ImportFiles implements [bridge.App]. The target bin must be a handle
// obtained through this bridge.
func (a *app) ImportFiles(ctx context.Context, paths []string, suppressUI bool, target bridge.ProjectItem, importAsNumberedStills bool) error {
	item, ok := target.(*projectItem)
	if !ok {
		return fmt.Errorf("target bin is not a cep bridge handle: %T", target)
	}

	_, err := a.c.call(ctx, appHandle, "project.importFiles",
		paths, suppressUI, handleArg{Handle: item.handle}, importAsNumberedStills)
	return err
}
