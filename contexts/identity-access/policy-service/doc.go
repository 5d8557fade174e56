// Package policy implements the Principal & Policy module inside the
// identity-access context.
//
// The module owns the central authorization decision point: given an
// authenticated principal, an action, and a resource descriptor it returns an
// allow/deny decision with a machine-readable reason. The decision function is
// pure; the application layer only adds denial logging and the error-based
// guard the other modules consume through their own ports.
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Other modules depend on the guard through primitive-typed ports wired in
//   bootstrap, never by importing this package from their domain/application.
package policy
