package workflow

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ParseAction decodes an action definition from TOML. Keys that do not map
// to a field are reported as an error.
func ParseAction(data []byte) (Action, error) {
	var a Action
	if err := decode(data, &a); err != nil {
		return Action{}, err
	}
	return a, nil
}

// ParseWorkflow decodes a workflow definition from TOML. Keys that do not map
// to a field are reported as an error.
func ParseWorkflow(data []byte) (Workflow, error) {
	var w Workflow
	if err := decode(data, &w); err != nil {
		return Workflow{}, err
	}
	return w, nil
}

func decode(data []byte, v any) error {
	md, err := toml.Decode(string(data), v)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}
