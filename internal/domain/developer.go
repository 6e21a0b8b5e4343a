package domain

import "io"

var (
	_ PullRequestFlow  = (*Developer)(nil)
	_ ServerBuilder    = (*BackEnd)(nil)
	_ InterfaceBuilder = (*FrontEnd)(nil)
	_ ServerBuilder    = (*FullStack)(nil)
	_ InterfaceBuilder = (*FullStack)(nil)
)

// Developer is a role with the pull request workflow.
type Developer struct {
	*Role
}

// NewDeveloper creates a generic developer.
func NewDeveloper(name string, level Level) *Developer {
	return newDeveloper(name, LabelDeveloper, level)
}

func newDeveloper(name, roleLabel string, level Level) *Developer {
	return &Developer{Role: NewRole(name, roleLabel, level)}
}

func (d *Developer) CreateIntegration() string { return "Integrate Frontend and Backend" }
func (d *Developer) CreatePR() string          { return "Create Pull Request" }
func (d *Developer) OnReview() string          { return "Review Pull Request" }
func (d *Developer) OnTesting() string         { return "QA Testing" }
func (d *Developer) RejectPR() string          { return "Reject Pull Request" }
func (d *Developer) ApprovePR() string         { return "Approve Pull Request" }
func (d *Developer) CreateDeployment() string  { return "Deploy Application" }

// Actions lists the pull request workflow.
func (d *Developer) Actions() []Action {
	return pullRequestActions(d)
}

// BackEnd builds servers, databases and business logic.
type BackEnd struct {
	*Developer
}

// NewBackEnd creates a backend developer.
func NewBackEnd(name string, level Level) *BackEnd {
	return &BackEnd{Developer: newDeveloper(name, LabelBackEnd, level)}
}

func (b *BackEnd) Greeting() string {
	return b.Role.Greeting() + " I love to create backend systems."
}

func (b *BackEnd) Introduce(w io.Writer) error {
	return introduce(w, b.Greeting())
}

func (b *BackEnd) SetUpServer() string         { return "Set Up Server" }
func (b *BackEnd) CreateDb() string            { return "Create Database" }
func (b *BackEnd) CreateBusinessLogic() string { return "Create Business Logic" }

// Actions lists backend work first, then the pull request workflow.
func (b *BackEnd) Actions() []Action {
	return append(serverActions(b), pullRequestActions(b)...)
}

// FrontEnd builds user interfaces.
type FrontEnd struct {
	*Developer
}

// NewFrontEnd creates a frontend developer.
func NewFrontEnd(name string, level Level) *FrontEnd {
	return &FrontEnd{Developer: newDeveloper(name, LabelFrontEnd, level)}
}

func (f *FrontEnd) Greeting() string {
	return f.Role.Greeting() + " I love to create beautiful user interfaces."
}

func (f *FrontEnd) Introduce(w io.Writer) error {
	return introduce(w, f.Greeting())
}

func (f *FrontEnd) CreateUi() string    { return "Implement UI Components" }
func (f *FrontEnd) CreateUx() string    { return "Implement User Interactions" }
func (f *FrontEnd) CreateStyle() string { return "Implement Styling" }

// Actions lists frontend work first, then the pull request workflow.
func (f *FrontEnd) Actions() []Action {
	return append(interfaceActions(f), pullRequestActions(f)...)
}

// FullStack owns a BackEnd and a FrontEnd and forwards their work to them.
type FullStack struct {
	*Developer
	backEnd  *BackEnd
	frontEnd *FrontEnd
}

// NewFullStack creates a fullstack developer.
func NewFullStack(name string, level Level) *FullStack {
	return &FullStack{
		Developer: newDeveloper(name, LabelFullStack, level),
		backEnd:   NewBackEnd(name, level),
		frontEnd:  NewFrontEnd(name, level),
	}
}

func (fs *FullStack) Greeting() string {
	return fs.Role.Greeting() + " I love to create fullstack applications."
}

func (fs *FullStack) Introduce(w io.Writer) error {
	return introduce(w, fs.Greeting())
}

func (fs *FullStack) SetUpServer() string         { return fs.backEnd.SetUpServer() }
func (fs *FullStack) CreateDb() string            { return fs.backEnd.CreateDb() }
func (fs *FullStack) CreateBusinessLogic() string { return fs.backEnd.CreateBusinessLogic() }
func (fs *FullStack) CreateUi() string            { return fs.frontEnd.CreateUi() }
func (fs *FullStack) CreateUx() string            { return fs.frontEnd.CreateUx() }
func (fs *FullStack) CreateStyle() string         { return fs.frontEnd.CreateStyle() }

// Actions lists backend, then frontend work, then the pull request workflow.
func (fs *FullStack) Actions() []Action {
	actions := serverActions(fs)
	actions = append(actions, interfaceActions(fs)...)
	return append(actions, pullRequestActions(fs)...)
}

func pullRequestActions(p PullRequestFlow) []Action {
	return []Action{
		{Name: "CreateIntegration", Run: p.CreateIntegration},
		{Name: "CreatePR", Run: p.CreatePR},
		{Name: "OnReview", Run: p.OnReview},
		{Name: "OnTesting", Run: p.OnTesting},
		{Name: "RejectPR", Run: p.RejectPR},
		{Name: "ApprovePR", Run: p.ApprovePR},
		{Name: "CreateDeployment", Run: p.CreateDeployment},
	}
}

func serverActions(s ServerBuilder) []Action {
	return []Action{
		{Name: "SetUpServer", Run: s.SetUpServer},
		{Name: "CreateDb", Run: s.CreateDb},
		{Name: "CreateBusinessLogic", Run: s.CreateBusinessLogic},
	}
}

func interfaceActions(i InterfaceBuilder) []Action {
	return []Action{
		{Name: "CreateUi", Run: i.CreateUi},
		{Name: "CreateUx", Run: i.CreateUx},
		{Name: "CreateStyle", Run: i.CreateStyle},
	}
}
