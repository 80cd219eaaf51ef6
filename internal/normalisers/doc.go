// Package normalisers provides implementations of the Normaliser interface.
// A normaliser turns raw input bytes into the UTF-8 text the decoration
// engine consumes.
package normalisers
