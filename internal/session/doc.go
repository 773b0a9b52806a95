// Package session holds the shared state of collaborative editing sessions:
// document text, language tag, and the set of attached member handles.
//
// The Store is the single synchronization point of the system. Nothing
// outside it mutates session state, and all cross-connection effects flow
// through its operations. Member handles are opaque comparable values so the
// store stays independent of any transport.
package session
