// Package catalog keeps a named registry of built hierarchy trees and
// serializes mutation against reads. The engine itself does no locking;
// the catalog is the host-application layer that provides it for the CLI
// and the query server.
//
// Trees enter the catalog by loading manifest files. A Watcher can keep
// catalog entries in sync with their manifests on disk.
package catalog
