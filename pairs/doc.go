// Package pairs provides the persistence-pairs result container.
//
// A persistence pair (birth, death) marks the lifespan of a topological
// feature: the feature appears when cell `birth` enters the filtration and
// disappears when cell `death` enters. Pairs containers are produced by one
// reduction run (or a file load) and own their data independently of the
// matrix that produced them.
package pairs
