// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

// Package premiere wraps the host application's object graph (projects,
// bins, clips, timelines, tracks, track items) in a small set of typed
// wrappers for use inside a pipeline integration.
//
// Every wrapper forwards to a [bridge] handle supplied by the caller;
// this package performs no work of its own beyond reshaping results and
// guarding a few known host quirks. In particular, child and track
// collections are always walked by index up to a reported count, never
// through host-native iteration, which is documented to return null
// entries or loop forever on some projects.
//
// Entry points take the bridge explicitly ([CurrentProject],
// [NewSession]); there is no package-level session state.
package premiere
