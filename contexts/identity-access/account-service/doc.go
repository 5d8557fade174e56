// Package accountservice manages the people behind the award program:
// self-service registration for authors and evaluators, profile updates,
// administrative deletion, and the credential check the transport layer uses
// to resolve a principal. Admin accounts are never self-registered and never
// deleted.
package accountservice
