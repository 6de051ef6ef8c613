// Package token provides tokenization support for JSON record documents.
//
// [Tokenize] is a function for tokenizing bytes. Tokens carry positions
// into the source document so that parse and inference diagnostics can
// report line and column information.
package token
