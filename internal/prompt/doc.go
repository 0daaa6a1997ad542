// Package prompt renders the natural-language instructions sent to the
// language model: single-pair generation, batch generation and batch
// validation. Rendering is pure and never fails; missing inputs render as
// empty placeholders.
package prompt
