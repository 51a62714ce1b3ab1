package snapshot_test

import (
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zuhlke/go-yamldoc/snapshot"
)

func prepareXcode() snapshot.Element {
	return snapshot.Element{
		Type:  "application",
		Label: "Prepare",
		Frame: &snapshot.Frame{Width: 390, Height: 844},
		Children: []snapshot.Element{
			{
				Type:       "button",
				Identifier: "start",
				Label:      "Start build",
				Traits:     []string{"button", "enabled"},
				Frame:      &snapshot.Frame{X: 16, Y: 760, Width: 358, Height: 44},
			},
			{
				Type:  "staticText",
				Label: "Status: idle",
				Value: "idle",
			},
		},
	}
}

func TestExport_Golden(t *testing.T) {
	out, err := snapshot.Export("Prepare Xcode", prepareXcode())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "prepare_xcode", []byte(out))
}

func TestExport_ValidYAML(t *testing.T) {
	out, err := snapshot.Export("Prepare Xcode", prepareXcode())
	require.NoError(t, err)

	var v struct {
		Elements int              `yaml:"elements"`
		Root     snapshot.Element `yaml:"root"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	require.Equal(t, 3, v.Elements)
	require.Equal(t, "Status: idle", v.Root.Children[1].Label)
	require.Equal(t, 358.0, v.Root.Children[0].Frame.Width)
}

func TestAssignIDs(t *testing.T) {
	root := prepareXcode()
	a := snapshot.AssignIDs(root)
	b := snapshot.AssignIDs(root)

	require.Empty(t, root.ID, "input must not be modified")
	require.Empty(t, root.Children[0].ID, "input must not be modified")
	require.Equal(t, a, b)
	require.NotEqual(t, a.ID, a.Children[0].ID)
	require.NotEqual(t, a.Children[0].ID, a.Children[1].ID)

	t.Run("Identifier survives moves", func(t *testing.T) {
		moved := prepareXcode()
		moved.Children[0], moved.Children[1] = moved.Children[1], moved.Children[0]
		require.Equal(t, a.Children[0].ID, snapshot.AssignIDs(moved).Children[1].ID)
	})

	t.Run("Duplicate identifiers fall back to the path", func(t *testing.T) {
		dup := snapshot.Element{Type: "list", Children: []snapshot.Element{
			{Type: "cell", Identifier: "row"},
			{Type: "cell", Identifier: "row"},
		}}
		got := snapshot.AssignIDs(dup)
		require.NotEqual(t, got.Children[0].ID, got.Children[1].ID)
	})
}

func TestCount(t *testing.T) {
	require.Equal(t, 1, snapshot.Count(snapshot.Element{Type: "window"}))
	require.Equal(t, 3, snapshot.Count(prepareXcode()))
}

func TestParse(t *testing.T) {
	data, err := os.ReadFile("testdata/prepare_xcode.json")
	require.NoError(t, err)

	root, err := snapshot.Parse(data)
	require.NoError(t, err)
	require.Equal(t, prepareXcode(), root)

	tests := []struct {
		name  string
		input string
		err   string
	}{
		{"Unknown field", `{"type": "window", "colour": "red"}`, "colour"},
		{"Missing type", `{"label": "x"}`, "root element has no type"},
		{"Not JSON", `type: window`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := snapshot.Parse([]byte(tt.input))
			require.Error(t, err)
			if tt.err != "" {
				require.ErrorContains(t, err, tt.err)
			}
		})
	}
}
