// Package catalog resolves catalog searches against the in-memory vehicle
// store: query string normalization and its inverse, filtering, sorting,
// pagination, and the option lists that feed the filter UI.
//
// Everything here is a pure function of its arguments and safe to call
// concurrently over a shared, read-only vehicle slice.
package catalog
