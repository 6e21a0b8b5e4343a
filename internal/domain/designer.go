package domain

import "io"

var _ DesignProducer = (*UiUxDesigner)(nil)

// UiUxDesigner produces wireframes, designs and prototypes.
type UiUxDesigner struct {
	*Role
}

// NewUiUxDesigner creates a designer.
func NewUiUxDesigner(name string, level Level) *UiUxDesigner {
	return &UiUxDesigner{Role: NewRole(name, LabelDesigner, level)}
}

func (d *UiUxDesigner) Greeting() string {
	return d.Role.Greeting() + " I love to design user interfaces."
}

func (d *UiUxDesigner) Introduce(w io.Writer) error {
	return introduce(w, d.Greeting())
}

func (d *UiUxDesigner) CreateWireframes() string         { return "Create Wireframes" }
func (d *UiUxDesigner) CreateDesign() string             { return "Create Design" }
func (d *UiUxDesigner) CreatePrototypes() string         { return "Create Prototypes" }
func (d *UiUxDesigner) CreateSystemArchitecture() string { return "Create System Architecture" }

func (d *UiUxDesigner) Actions() []Action {
	return []Action{
		{Name: "CreateWireframes", Run: d.CreateWireframes},
		{Name: "CreateDesign", Run: d.CreateDesign},
		{Name: "CreatePrototypes", Run: d.CreatePrototypes},
		{Name: "CreateSystemArchitecture", Run: d.CreateSystemArchitecture},
	}
}
