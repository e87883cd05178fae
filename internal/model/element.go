package model

// ElementInfo is one entry in a screen inventory: enough to address the
// control again and decide how to interact with it. Properties the control
// does not expose degrade to zero values rather than failing the scan.
type ElementInfo struct {
	Address    string `yaml:"address"              json:"address"`
	Type       string `yaml:"type"                 json:"type"` // raw scripting type
	Kind       Kind   `yaml:"kind"                 json:"kind"`
	Name       string `yaml:"name,omitempty"       json:"name,omitempty"`
	Text       string `yaml:"text,omitempty"       json:"text,omitempty"`
	Changeable bool   `yaml:"changeable,omitempty" json:"changeable,omitempty"`
}
