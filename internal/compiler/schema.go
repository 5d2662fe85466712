package compiler

// Catalog is the decoded command catalog (commands.yaml).
type Catalog struct {
	Name     string    `mapstructure:"name"`
	Commands []Command `mapstructure:"commands"`
}

// Command is one named, composable pipeline in the catalog.
type Command struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`

	// OnFailure selects the series policy: "stop" (default) aborts on the
	// first failing step, "continue" attempts every step.
	OnFailure string         `mapstructure:"on_failure"`
	Bind      map[string]any `mapstructure:"bind"`
	Steps     []Step         `mapstructure:"steps"`
}

// Step is a node of a command pipeline. Exactly one of Tool, Steps or
// AnyOf provides the action; Repeat and Bind wrap it.
type Step struct {
	Tool  string            `mapstructure:"tool"`
	With  map[string]any    `mapstructure:"with"`
	Remap map[string]string `mapstructure:"remap"`

	Steps []Step `mapstructure:"steps"`
	AnyOf []Step `mapstructure:"any_of"`

	Repeat *RepeatField   `mapstructure:"repeat"`
	Bind   map[string]any `mapstructure:"bind"`
}

// RepeatField is the YAML form of a repeat factor: a fixed count or the
// name of an extras field resolved at execution time.
type RepeatField struct {
	Count *int   `mapstructure:"count"`
	Extra string `mapstructure:"extra"`
}

const (
	FailurePolicyStop     = "stop"
	FailurePolicyContinue = "continue"
)
