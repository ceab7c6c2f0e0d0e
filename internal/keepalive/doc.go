// Package keepalive periodically requests a URL so that hosting platforms
// which idle inactive services keep this one warm. The usual target is the
// service's own /api/ping route.
package keepalive
