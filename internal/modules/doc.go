// Package modules contains the self-contained application features.
//
// Each subdirectory is a module that implements the `module.Module` interface.
// Modules are listed in `internal/app/modules.go`; the server registers their
// services in the container, then boots their routes under the site group.
package modules
