// Package variant decides where the typed stream deliberately diverges
// from the draft and tracks every divergence until it is corrected.
//
// For each word the engine draws from the seeded PRNG: with the
// configured error rate it picks an adjacent-key typo, an adjacent
// letter swap, a doubled space, or a synonym/tense swap from a closed
// table. Supplied phrase alternatives are taken whenever their original
// text begins at the current position. Each divergence is recorded as an
// Outstanding correction with a fix horizon and a placement constraint;
// the assembler owns the queue and drains it.
package variant
