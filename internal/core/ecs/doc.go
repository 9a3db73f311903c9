// Package ecs is a small entity-component-system runtime.
//
// Entities are built with a Builder and admitted into a World, after which
// their set of component types is fixed. Systems declare the component types
// they need; the World keeps, per registered system, the identifiers of the
// entities that carry all of them, updating that cache on every admission,
// removal and registration. RunSystem walks one system's cache in ascending
// identifier order and calls the system once per entity.
//
// Component access is borrow-checked per component: any number of shared
// views, or one exclusive view, may be alive at a time. A conflicting
// request panics with a *BorrowError.
package ecs
