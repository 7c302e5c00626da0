// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

// Package bridgetest provides an in-memory implementation of the bridge
// interfaces for tests.
//
// The fake reproduces the host quirks the adapter has to guard against:
// child slots may hold nil, imports may silently do nothing or add
// something that is not a clip, and the current project or active
// sequence may be absent. Tests assemble a project tree from the
// exported structs and hand [Host] to the code under test.
package bridgetest

import (
	"context"
	"path/filepath"

	"github.com/studiopipe/go-premiere/bridge"
)

// Host is an in-memory [bridge.App].
type Host struct {
	// Current is the project returned by CurrentProject; nil means no
	// project is open.
	Current *Project

	// Open is the project list returned by Projects.
	Open []*Project

	// ImportErr, when set, is returned by ImportFiles.
	ImportErr error

	// ImportFunc, when set, replaces the default import behavior
	// (appending one clip child per path). Use it to simulate imports
	// that do nothing or add unexpected children.
	ImportFunc func(target *Item, path string)
}

var _ bridge.App = (*Host)(nil)

// CurrentProject implements [bridge.App].
func (h *Host) CurrentProject(_ context.Context) (bridge.Project, error) {
	if h.Current == nil {
		return nil, nil
	}
	return h.Current, nil
}

// Projects implements [bridge.App].
func (h *Host) Projects(_ context.Context) ([]bridge.Project, error) {
	projects := make([]bridge.Project, 0, len(h.Open))
	for _, p := range h.Open {
		projects = append(projects, p)
	}
	return projects, nil
}

// ImportFiles implements [bridge.App].
func (h *Host) ImportFiles(_ context.Context, paths []string, _ bool, target bridge.ProjectItem, _ bool) error {
	if h.ImportErr != nil {
		return h.ImportErr
	}

	item := target.(*Item)
	for _, path := range paths {
		if h.ImportFunc != nil {
			h.ImportFunc(item, path)
			continue
		}
		item.Children = append(item.Children, NewClip(filepath.Base(path), path))
	}
	return nil
}
