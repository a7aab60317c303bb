// Package binding implements the naming convention that ties a declarative
// form to its markup. Given a form identifier and a list of field names it
// derives the ids of the input element and the error slot for every field.
//
// The convention is bit-exact and shared with the rendered markup:
//
//	input id = {inputPrefix}{field}   (contact-form -> contact-email)
//	error id = {errorPrefix}{field}   (error-email)
//
// A Convention is a plain value; resolving ids never touches a document, so
// callers can unit-test their markup contract without a DOM.
package binding
