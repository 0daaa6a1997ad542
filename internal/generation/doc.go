// Package generation turns prompts into validated word pairs. It owns the
// generate-then-validate pipeline: build a prompt, call the language model
// (LLM) through a TextGenerator, parse and sanitize the JSON answer and, for
// batches, run a second validation round-trip that filters the candidates.
//
// The package holds no state between calls. Concrete model backends (Gemini)
// live in internal/platform and implement TextGenerator.
package generation
