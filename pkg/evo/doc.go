// Package evo provides the domain types and pagination helpers for working
// with the Seequent Evo APIs.
//
// # Overview
//
// The evo package defines the read-only records returned by the Evo services
// (Organization, Hub, Workspace, FileMetadata, ObjectMetadata), the
// Environment scope triple used for file and object queries, and a generic
// offset/limit Pager. Concrete service clients live in internal/client and
// are wired together by the evo CLI; this package carries everything a
// consumer of the listings needs.
//
// # Pagination
//
// Evo list endpoints page with limit/offset and report the overall item
// count on every response. Pager turns any such endpoint into a lazy
// sequence of batches:
//
//	pager := evo.NewPager(ctx, func(ctx context.Context, limit, offset int) (*evo.Page[evo.Workspace], error) {
//	  return client.ListWorkspaces(ctx, limit, offset)
//	}, evo.DefaultPageSize)
//
//	for pager.HasNext() {
//	  batch, err := pager.NextPage()
//	  if err != nil { /* handle error */ }
//	  _ = batch
//	}
//
// or collect everything at once with FetchAll.
//
// # Errors
//
// Service errors are represented by APIError and ResponseError. Helpers such
// as IsNotFound, IsUnauthorized, and IsForbidden make it easy to branch on
// common cases.
package evo
