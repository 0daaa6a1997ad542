// Package domain contains the core entities of the word-guessing game: the
// Russian/English word pair, the difficulty tiers and the request shapes the
// generator accepts. It is independent of the language model and of any
// delivery mechanism.
package domain
