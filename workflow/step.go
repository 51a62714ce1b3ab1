package workflow

import (
	"github.com/zuhlke/go-yamldoc"
)

// Param is a named value in a step's "with" or "env" block. Params are kept
// in a slice so they render in the order they were declared.
type Param struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// Step is a single step of a job or composite action.
type Step struct {
	ID               string  `toml:"id"`
	Name             string  `toml:"name"`
	If               string  `toml:"if"`
	Uses             string  `toml:"uses"`
	With             []Param `toml:"with"`
	Run              string  `toml:"run"`
	Shell            string  `toml:"shell"`
	WorkingDirectory string  `toml:"working-directory"`
	Env              []Param `toml:"env"`

	// Comments maps a step key, such as "shell", to a comment written
	// above it.
	Comments map[string]string `toml:"comments"`
}

// comment attaches the comment registered for key, if any.
func comment(st *yamldoc.Statement, comments map[string]string, key string) {
	if c, ok := comments[key]; ok {
		st.Comment(c)
	}
}

// text binds key to v unless v is empty.
func text(s *yamldoc.Scope, comments map[string]string, key, v string) {
	if v == "" {
		return
	}
	comment(s.Key(key).Is(v), comments, key)
}

// params binds key to a map of ps unless ps is empty.
func params(s *yamldoc.Scope, comments map[string]string, key string, ps []Param) {
	if len(ps) == 0 {
		return
	}
	st := s.Key(key).IsBlock(func(s *yamldoc.Scope) {
		for _, p := range ps {
			s.Key(p.Name).Is(p.Value)
		}
	})
	comment(st, comments, key)
}

func (st Step) build(s *yamldoc.Scope) {
	text(s, st.Comments, "id", st.ID)
	text(s, st.Comments, "name", st.Name)
	text(s, st.Comments, "if", st.If)
	text(s, st.Comments, "uses", st.Uses)
	params(s, st.Comments, "with", st.With)
	text(s, st.Comments, "run", st.Run)
	text(s, st.Comments, "shell", st.Shell)
	text(s, st.Comments, "working-directory", st.WorkingDirectory)
	params(s, st.Comments, "env", st.Env)
}

// steps binds "steps" to one map per step. Each step gets its own scope so
// that keys never repeat within a map.
func steps(s *yamldoc.Scope, comments map[string]string, ss []Step) {
	if len(ss) == 0 {
		return
	}
	st := s.Key("steps").IsValue(yamldoc.Each(ss, func(s *yamldoc.Scope, step Step) {
		step.build(s)
	}))
	comment(st, comments, "steps")
}
