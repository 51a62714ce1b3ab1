package workflow

import (
	"strconv"

	"github.com/zuhlke/go-yamldoc"
	"github.com/zuhlke/go-yamldoc/ast"
)

// Trigger is an event that starts a workflow. A trigger without filters is
// rendered as an empty map.
type Trigger struct {
	Event    string   `toml:"event"`
	Branches []string `toml:"branches"`
	Tags     []string `toml:"tags"`
	Paths    []string `toml:"paths"`
	Cron     []string `toml:"cron"`
}

// Job is a job of a workflow.
type Job struct {
	ID             string   `toml:"id"`
	Name           string   `toml:"name"`
	RunsOn         string   `toml:"runs-on"`
	Needs          []string `toml:"needs"`
	If             string   `toml:"if"`
	TimeoutMinutes int      `toml:"timeout-minutes"`
	Permissions    []Param  `toml:"permissions"`
	Env            []Param  `toml:"env"`
	Steps          []Step   `toml:"steps"`

	Comments map[string]string `toml:"comments"`
}

// Workflow is a workflow file (.github/workflows/*.yml).
type Workflow struct {
	Name        string    `toml:"name"`
	On          []Trigger `toml:"on"`
	Permissions []Param   `toml:"permissions"`
	Env         []Param   `toml:"env"`
	Jobs        []Job     `toml:"jobs"`

	Comments map[string]string `toml:"comments"`
}

func list(s *yamldoc.Scope, key string, items []string) {
	if len(items) == 0 {
		return
	}
	s.Key(key).IsBlock(func(s *yamldoc.Scope) {
		for _, it := range items {
			s.Item(it)
		}
	})
}

func (tr Trigger) build(s *yamldoc.Scope) {
	if len(tr.Branches)+len(tr.Tags)+len(tr.Paths)+len(tr.Cron) == 0 {
		s.Key(tr.Event).IsValue(yamldoc.Raw(ast.NewMap()))
		return
	}
	if len(tr.Cron) > 0 {
		s.Key(tr.Event).IsValue(yamldoc.Each(tr.Cron, func(s *yamldoc.Scope, cron string) {
			s.Key("cron").Is(cron)
		}))
		return
	}
	s.Key(tr.Event).IsBlock(func(s *yamldoc.Scope) {
		list(s, "branches", tr.Branches)
		list(s, "tags", tr.Tags)
		list(s, "paths", tr.Paths)
	})
}

func (j Job) build(s *yamldoc.Scope) {
	text(s, j.Comments, "name", j.Name)
	text(s, j.Comments, "runs-on", j.RunsOn)
	if len(j.Needs) > 0 {
		st := s.Key("needs").IsBlock(func(s *yamldoc.Scope) {
			for _, n := range j.Needs {
				s.Item(n)
			}
		})
		comment(st, j.Comments, "needs")
	}
	text(s, j.Comments, "if", j.If)
	if j.TimeoutMinutes > 0 {
		text(s, j.Comments, "timeout-minutes", strconv.Itoa(j.TimeoutMinutes))
	}
	params(s, j.Comments, "permissions", j.Permissions)
	params(s, j.Comments, "env", j.Env)
	steps(s, j.Comments, j.Steps)
}

// Document builds the workflow's document tree.
func (w Workflow) Document() (*yamldoc.Document, error) {
	return yamldoc.Begin(func(s *yamldoc.Scope) {
		text(s, w.Comments, "name", w.Name)
		if len(w.On) > 0 {
			st := s.Key("on").IsBlock(func(s *yamldoc.Scope) {
				for _, tr := range w.On {
					tr.build(s)
				}
			})
			comment(st, w.Comments, "on")
		}
		params(s, w.Comments, "permissions", w.Permissions)
		params(s, w.Comments, "env", w.Env)
		if len(w.Jobs) > 0 {
			st := s.Key("jobs").IsBlock(func(s *yamldoc.Scope) {
				for _, j := range w.Jobs {
					s.Key(j.ID).IsBlock(j.build)
				}
			})
			comment(st, w.Comments, "jobs")
		}
	})
}

// Encode renders the workflow.
func (w Workflow) Encode(opts ...yamldoc.Option) (string, error) {
	doc, err := w.Document()
	if err != nil {
		return "", err
	}
	return yamldoc.Encode(doc, opts...), nil
}
