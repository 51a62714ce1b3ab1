/*
Package yamldoc builds structured documents in Go code and renders them as
YAML text with a fixed, reviewable layout. It is meant for generated files
that humans read and diff, such as CI workflow definitions and UI
snapshots, where the exact placement of blank lines and comments matters.

The package offers two ways to assemble a document.

1. The Builder

Begin runs a function that adds statements to a Scope. A key binding adds a
map entry; a bare item adds a sequence element. Nested blocks build nested
maps and sequences, and ordinary Go control flow decides which statements
are added:

	doc, err := yamldoc.Begin(func(s *yamldoc.Scope) {
		s.Key("name").Is("Prepare Xcode")
		s.Key("runs").IsBlock(func(s *yamldoc.Scope) {
			s.Key("using").Is("composite")
			s.Key("steps").IsValue(yamldoc.Each(steps, func(s *yamldoc.Scope, st Step) {
				s.Key("name").Is(st.Name)
				s.Key("run").Is(st.Run)
			}))
		})
		s.Key("author").Is(author).Comment("Shown on the marketplace page")
	})
	if err != nil {
		// handle error
	}

A scope must contain only key bindings or only bare items. Mixing them,
leaving a scope empty, repeating a key, or attaching a comment before any
statement makes Begin return a *MalformedDocumentError.

Binding statements made inside a loop go into the same map. To build a
sequence of maps, give every element its own block with Each or with
ItemBlock inside the loop.

2. Conversion from Go values

FromValue turns structs, maps, slices and scalars into a node using
reflection and `yaml` struct tags. The result can be placed in a builder
scope with Raw, or passed to NewDocument.

Encoding

Encode renders a Document. It never fails and always produces the same text
for the same document:

	fmt.Print(yamldoc.Encode(doc))

Functional options such as Indent and WrapComments adjust the output.
*/
package yamldoc
