// Package library loads named multiline templates from YAML or TOML files.
//
// A library file is a document with a templates table mapping snippet names
// to template bodies. Templates use the same {} placeholder syntax as
// multiline.Fill:
//
//	# snippets.yaml
//	templates:
//	  handler: |
//	    func {}(w http.ResponseWriter, r *http.Request) {
//	        {}
//	    }
//
// The format is chosen by file extension: .yaml and .yml decode with
// gopkg.in/yaml.v3, .toml with github.com/BurntSushi/toml.
//
// # Loading and rendering
//
//	lib, err := library.Load("snippets.yaml")
//	out, err := lib.Render("handler", "getUser", body)
//
// Every template is validated at load time, so a template that violates
// the one-placeholder-per-line rule is rejected before it can be rendered.
//
// # Schema
//
// Schema returns a JSON schema for the document format, suitable for
// editor validation of snippet files:
//
//	data, _ := json.MarshalIndent(library.Schema(), "", "  ")
//
// # Watching
//
// Watch reloads a library file whenever it changes on disk:
//
//	libs, errs, err := library.Watch(ctx, "snippets.yaml")
//	for lib := range libs {
//	    // use the fresh library
//	}
package library
