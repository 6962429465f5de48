// Package reconcile drives an interactive physical count against the expected
// inventory.
//
// # State Machine
//
// A Session consumes operator tokens one at a time:
//
//  1. An empty token ends the session.
//  2. A token naming a known space becomes the current space.
//  3. Before any space is chosen, other tokens are ignored with a warning.
//  4. Anything else is an item code, resolved through the matcher:
//     - unknown codes ask for a label and become foreign records (count -1);
//     - foreign records seen again ask for a label and count down;
//     - inventory records count up, and a second sighting asks for a label.
//
// An empty label discards the scan without touching the store. Scans outside
// the expected space (per matcher.Equivalent) are annotated on the record.
//
// # Input and Presentation
//
// Tokens come from an InputReader and notices go to a Console, so a session
// runs the same against a terminal, a barcode scanner or a scripted test.
package reconcile
