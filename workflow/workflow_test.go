package workflow_test

import (
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zuhlke/go-yamldoc"
	"github.com/zuhlke/go-yamldoc/workflow"
)

func prepareXcode() workflow.Action {
	return workflow.Action{
		Name:        "Prepare Xcode",
		Description: "Selects the Xcode version used by the build",
		Inputs: []workflow.Input{{
			Name:        "xcode-version",
			Description: "Xcode version to select",
			Required:    true,
			Default:     "15.4",
		}},
		Runs: workflow.Runs{
			Using: "composite",
			Steps: []workflow.Step{{
				Name:     "Select Xcode",
				Run:      "sudo xcode-select --switch /Applications/Xcode_${{ inputs.xcode-version }}.app",
				Shell:    "bash",
				Comments: map[string]string{"shell": "Composite steps must declare a shell"},
			}},
		},
	}
}

func ci() workflow.Workflow {
	return workflow.Workflow{
		Name: "CI",
		On: []workflow.Trigger{
			{Event: "push", Branches: []string{"main"}},
			{Event: "pull_request"},
			{Event: "schedule", Cron: []string{"0 6 * * 1"}},
		},
		Env: []workflow.Param{{Name: "GO_VERSION", Value: "1.25"}},
		Jobs: []workflow.Job{
			{
				ID:             "test",
				Name:           "Test",
				RunsOn:         "ubuntu-latest",
				TimeoutMinutes: 15,
				Steps: []workflow.Step{
					{Uses: "actions/checkout@v4"},
					{Uses: "actions/setup-go@v5", With: []workflow.Param{{Name: "go-version", Value: "${{ env.GO_VERSION }}"}}},
					{Name: "Test", Run: "go test ./...\ngo vet ./...\n"},
				},
			},
			{
				ID:     "release",
				RunsOn: "ubuntu-latest",
				Needs:  []string{"test"},
				If:     "github.ref == 'refs/heads/main'",
				Steps:  []workflow.Step{{Run: "make release"}},
			},
		},
		Comments: map[string]string{"jobs": "Release only runs after the tests pass"},
	}
}

func TestGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	action, err := prepareXcode().Encode()
	require.NoError(t, err)
	g.Assert(t, "prepare_xcode", []byte(action))

	wf, err := ci().Encode()
	require.NoError(t, err)
	g.Assert(t, "ci", []byte(wf))
}

func TestEncode_ValidYAML(t *testing.T) {
	out, err := ci().Encode()
	require.NoError(t, err)

	var v struct {
		On   map[string]any `yaml:"on"`
		Jobs map[string]struct {
			Needs []string         `yaml:"needs"`
			Steps []map[string]any `yaml:"steps"`
		} `yaml:"jobs"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	require.Len(t, v.On, 3)
	require.Len(t, v.Jobs["test"].Steps, 3)
	require.Equal(t, "go test ./...\ngo vet ./...\n", v.Jobs["test"].Steps[2]["run"])
	require.Equal(t, []string{"test"}, v.Jobs["release"].Needs)
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		encode func() (string, error)
		path   string
	}{
		{
			name: "Action without runs",
			encode: func() (string, error) {
				return workflow.Action{Name: "empty"}.Encode()
			},
			path: "runs",
		},
		{
			name: "Duplicate job ids",
			encode: func() (string, error) {
				job := workflow.Job{ID: "build", RunsOn: "ubuntu-latest", Steps: []workflow.Step{{Run: "make"}}}
				return workflow.Workflow{Name: "dup", Jobs: []workflow.Job{job, job}}.Encode()
			},
			path: "jobs",
		},
		{
			name: "Step without keys",
			encode: func() (string, error) {
				return workflow.Workflow{Jobs: []workflow.Job{{ID: "build", Steps: []workflow.Step{{}}}}}.Encode()
			},
			path: "jobs.build.steps[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.encode()
			require.Error(t, err)
			require.Empty(t, out)
			require.ErrorIs(t, err, yamldoc.ErrMalformedDocument)

			var merr *yamldoc.MalformedDocumentError
			require.True(t, errors.As(err, &merr))
			require.Equal(t, tt.path, merr.Path)
		})
	}
}

func TestParseAction(t *testing.T) {
	data, err := os.ReadFile("testdata/prepare_xcode.toml")
	require.NoError(t, err)

	a, err := workflow.ParseAction(data)
	require.NoError(t, err)
	require.Equal(t, prepareXcode(), a)
}

func TestParse_UnknownKeys(t *testing.T) {
	_, err := workflow.ParseAction([]byte("nmae = \"typo\"\n"))
	require.ErrorContains(t, err, "nmae")

	_, err = workflow.ParseWorkflow([]byte("name = \"CI\"\n[[jobs]]\nid = \"x\"\nruns_on = \"linux\"\n"))
	require.ErrorContains(t, err, "jobs.runs_on")
}
