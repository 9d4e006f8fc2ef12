// Package domain contains the core domain model for smtcat.
//
// The domain is format- and persistence-agnostic: it does not depend on the
// S-expression reader, the filesystem, or any UI. Infra/adapters map into/from
// these types.
package domain
