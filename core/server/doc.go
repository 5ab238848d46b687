// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the API key checked by the auth
// middleware and the read/write timeouts handed to Fiber.
package server
