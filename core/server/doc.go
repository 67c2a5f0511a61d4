// Package server holds the HTTP server configuration for the reporting
// surface.
//
// The serve command handles server startup; this package only defines the
// configuration structure (listen port and default row window for the
// latest-assets view) so core/config can embed it.
package server
