package cep

import "encoding/json"

// evalRequest is one member access or method call addressed to a
// host-side object.
type evalRequest struct {
	// ID is a unique request id, echoed back by the endpoint.
	ID string `json:"id"`
	// Handle addresses the host-side object; the application object is
	// addressed as "app".
	Handle string `json:"handle,omitempty"`
	// Member is the member path to read, write or call, e.g. "name",
	// "children.numItems" or "getMediaPath".
	Member string `json:"member"`
	// Kind is "get", "set" or "call".
	Kind string `json:"kind"`
	// Args holds set values or call arguments.
	Args []any `json:"args,omitempty"`
}

// evalResponse carries either a scalar result, a handle (or handle
// list) for object results, or an error. An object-typed member that
// evaluated to null comes back with an empty handle and no error.
type evalResponse struct {
	Result  json.RawMessage `json:"result,omitempty"`
	Handle  string          `json:"handle,omitempty"`
	Handles []string        `json:"handles,omitempty"`
	Error   *evalError      `json:"error,omitempty"`
}

type evalError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleArg passes a host-side object as a call argument.
type handleArg struct {
	Handle string `json:"$handle"`
}
