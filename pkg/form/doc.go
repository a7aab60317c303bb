// Package form drives the asynchronous submission lifecycle of HTML forms that
// are described declaratively by formconfig.Config.
//
// An Instance binds to a document through the naming convention of package
// binding, collects the configured field values, posts them as JSON and maps
// the server response back onto the page: inline field errors, one
// notification and, on success, a reset form and a closed host container.
//
//	reg := form.NewRegistry(
//		form.WithClient(client),
//		form.WithNamespace(ns),
//		form.WithDocument(doc),
//	)
//	inst, err := reg.Register(formconfig.Config{
//		Name:     "ContactForm",
//		Endpoint: "/api/v1/contact",
//		FormID:   "contact-form",
//		Fields:   []string{"name", "email", "phone", "message"},
//	})
//	outcome, err := inst.Submit(ctx, form.NewEvent())
package form
