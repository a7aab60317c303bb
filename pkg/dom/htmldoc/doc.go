// Package htmldoc implements dom.Document over golang.org/x/net/html trees so
// forms rendered on the server can be bound, driven, and re-serialised without
// a browser. Lookups are XPath queries via htmlquery.
package htmldoc
