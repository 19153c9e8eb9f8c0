// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (such as
// verification requests, extracted document fields and registry entities) and
// are intentionally free of infrastructure concerns so they can be shared
// across packages.
package domain
