package workflow

import (
	"strconv"

	"github.com/zuhlke/go-yamldoc"
)

// Input is an input parameter of an action.
type Input struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Required    bool   `toml:"required"`
	Default     string `toml:"default"`
}

// Output is an output of an action.
type Output struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Value       string `toml:"value"`
}

// Runs describes how an action is executed: a composite action lists steps,
// a JavaScript or Docker action names its entry point.
type Runs struct {
	Using string `toml:"using"`
	Main  string `toml:"main"`
	Image string `toml:"image"`
	Steps []Step `toml:"steps"`

	Comments map[string]string `toml:"comments"`
}

// Action is an action metadata file (action.yml).
type Action struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Author      string   `toml:"author"`
	Inputs      []Input  `toml:"inputs"`
	Outputs     []Output `toml:"outputs"`
	Runs        Runs     `toml:"runs"`

	// Comments maps a top-level key, such as "runs", to a comment written
	// above it.
	Comments map[string]string `toml:"comments"`
}

// Document builds the action's document tree.
func (a Action) Document() (*yamldoc.Document, error) {
	return yamldoc.Begin(func(s *yamldoc.Scope) {
		text(s, a.Comments, "name", a.Name)
		text(s, a.Comments, "description", a.Description)
		text(s, a.Comments, "author", a.Author)
		if len(a.Inputs) > 0 {
			st := s.Key("inputs").IsBlock(func(s *yamldoc.Scope) {
				for _, in := range a.Inputs {
					s.Key(in.Name).IsBlock(func(s *yamldoc.Scope) {
						s.Key("description").Is(in.Description)
						s.Key("required").Is(strconv.FormatBool(in.Required))
						if in.Default != "" {
							s.Key("default").Is(in.Default)
						}
					})
				}
			})
			comment(st, a.Comments, "inputs")
		}
		if len(a.Outputs) > 0 {
			st := s.Key("outputs").IsBlock(func(s *yamldoc.Scope) {
				for _, out := range a.Outputs {
					s.Key(out.Name).IsBlock(func(s *yamldoc.Scope) {
						s.Key("description").Is(out.Description)
						if out.Value != "" {
							s.Key("value").Is(out.Value)
						}
					})
				}
			})
			comment(st, a.Comments, "outputs")
		}
		st := s.Key("runs").IsBlock(func(s *yamldoc.Scope) {
			r := a.Runs
			text(s, r.Comments, "using", r.Using)
			text(s, r.Comments, "main", r.Main)
			text(s, r.Comments, "image", r.Image)
			steps(s, r.Comments, r.Steps)
		})
		comment(st, a.Comments, "runs")
	})
}

// Encode renders the action.
func (a Action) Encode(opts ...yamldoc.Option) (string, error) {
	doc, err := a.Document()
	if err != nil {
		return "", err
	}
	return yamldoc.Encode(doc, opts...), nil
}
