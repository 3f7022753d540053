// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow handlers to distinguish
// between failure scenarios without inspecting driver error strings:
// ErrMemberExists maps to a 400 response, ErrMemberNotFound and
// ErrEntryNotFound to 404 responses.
package repository

import "errors"

// ErrMemberExists is returned when inserting a member whose name already
// exists. The unique constraint violation is translated here so the raw
// driver error never reaches the handler layer.
var ErrMemberExists = errors.New("member already exists")

// ErrMemberNotFound is returned when an operation references a member id
// that does not resolve to a row in the members table.
var ErrMemberNotFound = errors.New("member not found")

// ErrEntryNotFound is returned when deleting a weekly or monthly stat row
// that does not exist for the current period.
var ErrEntryNotFound = errors.New("entry not found")
