// Package server provides HTTP routing, middleware, and the artist directory API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Artist Directory API
//
// [ArtistHandler] exposes profile resolution, partial updates, stats, generated
// catalogs, and genre recommendations under /api/artists/{id}, plus the
// popularity chart under /api/charts/popular.
//
// Every response uses a uniform JSON envelope carrying a success flag, the
// payload, an error message, and the storage tier that served the read.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
