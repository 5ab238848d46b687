// Package middleware groups the HTTP middleware for the Fiber application.
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a per-request ID stored in the context and echoed in X-Ray-ID.
package middleware
