// Package contact instantiates the form engine for the site contact form: a
// modal form posting name, email, phone and message to the contact endpoint.
package contact
