// Package snapshot exports captured UI accessibility trees as documents.
package snapshot

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/zuhlke/go-yamldoc"
)

var json = jsoniter.Config{
	EscapeHTML:            false,
	DisallowUnknownFields: true,
}.Froze()

// namespace is the UUID namespace element and snapshot IDs are derived in.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/zuhlke/go-yamldoc/snapshot"))

// Frame is the on-screen rectangle of an element, in points.
type Frame struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Element is a node of an accessibility tree.
type Element struct {
	// ID is assigned on export and ignored on input.
	ID         string    `json:"-" yaml:"id"`
	Type       string    `json:"type" yaml:"type"`
	Identifier string    `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Label      string    `json:"label,omitempty" yaml:"label,omitempty"`
	Value      string    `json:"value,omitempty" yaml:"value,omitempty"`
	Traits     []string  `json:"traits,omitempty" yaml:"traits,omitempty"`
	Frame      *Frame    `json:"frame,omitempty" yaml:"frame,omitempty"`
	Children   []Element `json:"children,omitempty" yaml:"children,omitempty"`
}

// Parse decodes a JSON capture of an accessibility tree.
func Parse(data []byte) (Element, error) {
	var root Element
	if err := json.Unmarshal(data, &root); err != nil {
		return Element{}, err
	}
	if root.Type == "" {
		return Element{}, fmt.Errorf("root element has no type")
	}
	return root, nil
}

// AssignIDs returns a copy of root in which every element carries a stable
// ID. The ID is derived from the element's identifier, or from its position
// in the tree when the identifier is empty or already taken.
func AssignIDs(root Element) Element {
	seen := map[string]bool{}
	return assign(root, "root", seen)
}

func assign(e Element, path string, seen map[string]bool) Element {
	key := "path:" + path
	if e.Identifier != "" && !seen[e.Identifier] {
		seen[e.Identifier] = true
		key = "identifier:" + e.Identifier
	}
	e.ID = uuid.NewSHA1(namespace, []byte(key)).String()

	if e.Children != nil {
		children := make([]Element, len(e.Children))
		for i, c := range e.Children {
			children[i] = assign(c, path+".children["+strconv.Itoa(i)+"]", seen)
		}
		e.Children = children
	}
	return e
}

// Count returns the number of elements in the tree rooted at e.
func Count(e Element) int {
	n := 1
	for _, c := range e.Children {
		n += Count(c)
	}
	return n
}

// Document builds the snapshot document for root under name.
func Document(name string, root Element) (*yamldoc.Document, error) {
	root = AssignIDs(root)
	doc, err := yamldoc.Begin(func(s *yamldoc.Scope) {
		s.Key("name").Is(name)
		s.Key("id").Is(uuid.NewSHA1(namespace, []byte("snapshot:"+name)).String())
		s.Key("elements").Is(strconv.Itoa(Count(root)))
		s.Key("root").IsValue(yamldoc.Val(root))
	})
	if err != nil {
		return nil, err
	}
	return doc.WithHeadComment("UI snapshot " + strconv.Quote(name)), nil
}

// Export renders the snapshot document for root under name.
func Export(name string, root Element, opts ...yamldoc.Option) (string, error) {
	doc, err := Document(name, root)
	if err != nil {
		return "", err
	}
	return yamldoc.Encode(doc, opts...), nil
}
