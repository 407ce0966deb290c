// Package httpwire parses and serializes whole HTTP/1.1 messages held in
// memory, with full support for the field value grammar: comma-separated
// lists, quoted strings with backslash escaping and nested comments.
//
// Parsing is zero-copy: a parsed message references the buffer it was read
// from, so the buffer must stay alive and unmodified for as long as the
// message is in use. Serialization reproduces a parsed message byte for
// byte, normalized spacing after colons and commas aside.
//
// Messages are built either directly, via NewRequest and NewResponse, or
// fluently, via BuildRequest and BuildResponse.
package httpwire
