// Package http exposes the portal's REST surface: the public content and
// catalog reads, the contact form, and the token-guarded admin mutations.
package http
