// Package matcher resolves operator input against the loaded inventory and
// the space equivalence table.
//
// Codes resolve to record indexes through the record store's padding-tolerant
// lookup. Tokens are spaces when the equivalence table knows them. Two space
// names are equivalent under a permissive rule that tolerates abbreviations,
// reordered words and the naming drift between the inventory system and the
// signs on the doors.
package matcher
