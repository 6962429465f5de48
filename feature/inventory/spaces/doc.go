// Package spaces holds the space equivalence table: canonical space names as
// the inventory system spells them, each with the friendlier alias used on
// the floor.
//
// The table answers two questions. IsKnownSpace decides whether an operator
// token names a space at all (substring match on names and aliases, ignoring
// case), and Alias feeds the equivalence heuristic of the matcher package.
// Without a table no token is ever a space.
package spaces
