// Package relay moves document edits between the clients of a collaborative
// session over websockets.
//
// A connection arrives unbound. Its first meaningful event is a join naming
// a session id; on success the relay registers the connection with the
// session store and answers with an init event carrying the current document
// and language. From then on, code_change events update the store and fan
// out as code_update to every other member, and language_change events fan
// out as language_update to every member including the sender. The sender is
// excluded from edit echoes because editors apply their own keystrokes
// locally; an echoed edit would fight the cursor.
//
// Conflict handling is deliberately last-writer-wins: edits are applied in
// the order the store receives them and each replaces the document wholesale.
// There is no operational transform or CRDT merging.
//
// Every cross-connection effect goes through the session store. Per-member
// delivery is a non-blocking enqueue into a buffered channel drained by a
// dedicated write goroutine; a member whose buffer fills up is disconnected
// rather than allowed to stall the session.
package relay
