// Package workflow renders GitHub Actions files, both action metadata
// (action.yml) and workflows, through the yamldoc builder.
//
// Definitions are plain structs that can be decoded from TOML with
// ParseAction and ParseWorkflow. Keys are written in the order GitHub's
// documentation lists them, and a Comments map on each struct attaches a
// comment above any of its keys:
//
//	step := workflow.Step{
//		Run:      "make test",
//		Shell:    "bash",
//		Comments: map[string]string{"shell": "Composite steps must declare a shell"},
//	}
package workflow
