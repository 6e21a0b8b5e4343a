package domain

import (
	"bytes"
	"testing"
	"time"

	"team-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntroduce(t *testing.T) {
	tests := []struct {
		name     string
		member   Member
		expected string
	}{
		{"developer", NewDeveloper("Ann", LevelSenior), "Hi, my name is Ann and I am a Developer."},
		{"backend", NewBackEnd("Ann", LevelSenior), "Hi, my name is Ann and I am a BackEnd Developer. I love to create backend systems."},
		{"frontend", NewFrontEnd("Ann", LevelSenior), "Hi, my name is Ann and I am a FrontEnd Developer. I love to create beautiful user interfaces."},
		{"fullstack", NewFullStack("Ann", LevelSenior), "Hi, my name is Ann and I am a FullStack Developer. I love to create fullstack applications."},
		{"designer", NewUiUxDesigner("Ann", LevelJunior), "Hi, my name is Ann and I am a UI/UX Designer. I love to design user interfaces."},
		{"tester", NewQaTester("Ann", LevelSenior), "Hi, my name is Ann and I am a QA Tester. I love to test user interfaces."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.member.Introduce(&buf))
			assert.Equal(t, tt.expected+"\n", buf.String())
			assert.Equal(t, tt.expected, tt.member.Greeting())
		})
	}
}

func TestFrontEnd_Example(t *testing.T) {
	ann := NewFrontEnd("Ann", LevelSenior)

	var buf bytes.Buffer
	require.NoError(t, ann.Introduce(&buf))
	assert.Contains(t, buf.String(), "Ann")
	assert.Contains(t, buf.String(), "FrontEnd Developer")
	assert.Equal(t, "Implement UI Components", ann.CreateUi())
}

func TestActionPhrases(t *testing.T) {
	dev := NewDeveloper("A", LevelJunior)
	backEnd := NewBackEnd("B", LevelJunior)
	frontEnd := NewFrontEnd("C", LevelJunior)
	fullStack := NewFullStack("D", LevelJunior)
	designer := NewUiUxDesigner("E", LevelJunior)
	tester := NewQaTester("F", LevelJunior)

	tests := []struct {
		got      string
		expected string
	}{
		{dev.CreateIntegration(), "Integrate Frontend and Backend"},
		{dev.CreatePR(), "Create Pull Request"},
		{dev.OnReview(), "Review Pull Request"},
		{dev.OnTesting(), "QA Testing"},
		{dev.RejectPR(), "Reject Pull Request"},
		{dev.ApprovePR(), "Approve Pull Request"},
		{dev.CreateDeployment(), "Deploy Application"},
		{backEnd.SetUpServer(), "Set Up Server"},
		{backEnd.CreateDb(), "Create Database"},
		{backEnd.CreateBusinessLogic(), "Create Business Logic"},
		{backEnd.CreatePR(), "Create Pull Request"},
		{frontEnd.CreateUi(), "Implement UI Components"},
		{frontEnd.CreateUx(), "Implement User Interactions"},
		{frontEnd.CreateStyle(), "Implement Styling"},
		{fullStack.SetUpServer(), "Set Up Server"},
		{fullStack.CreateDb(), "Create Database"},
		{fullStack.CreateBusinessLogic(), "Create Business Logic"},
		{fullStack.CreateUi(), "Implement UI Components"},
		{fullStack.CreateUx(), "Implement User Interactions"},
		{fullStack.CreateStyle(), "Implement Styling"},
		{fullStack.ApprovePR(), "Approve Pull Request"},
		{designer.CreateWireframes(), "Create Wireframes"},
		{designer.CreateDesign(), "Create Design"},
		{designer.CreatePrototypes(), "Create Prototypes"},
		{designer.CreateSystemArchitecture(), "Create System Architecture"},
		{tester.RunUnitTests(), "Run Unit Tests"},
		{tester.RunIntegrationTests(), "Run Integration Tests"},
		{tester.RunPerformanceTests(), "Run Performance Tests"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.got)
	}
}

func TestActions(t *testing.T) {
	tests := []struct {
		name     string
		member   Member
		expected []string
	}{
		{"developer", NewDeveloper("A", LevelJunior), []string{
			"CreateIntegration", "CreatePR", "OnReview", "OnTesting", "RejectPR", "ApprovePR", "CreateDeployment",
		}},
		{"backend", NewBackEnd("A", LevelJunior), []string{
			"SetUpServer", "CreateDb", "CreateBusinessLogic",
			"CreateIntegration", "CreatePR", "OnReview", "OnTesting", "RejectPR", "ApprovePR", "CreateDeployment",
		}},
		{"designer", NewUiUxDesigner("A", LevelJunior), []string{
			"CreateWireframes", "CreateDesign", "CreatePrototypes", "CreateSystemArchitecture",
		}},
		{"tester", NewQaTester("A", LevelJunior), []string{
			"RunUnitTests", "RunIntegrationTests", "RunPerformanceTests",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ActionNames(tt.member))
		})
	}

	assert.Len(t, NewFullStack("A", LevelJunior).Actions(), 13)
}

func TestCapabilities(t *testing.T) {
	members := []Member{
		NewDeveloper("A", LevelJunior),
		NewBackEnd("A", LevelJunior),
		NewFrontEnd("A", LevelJunior),
		NewFullStack("A", LevelJunior),
		NewUiUxDesigner("A", LevelJunior),
		NewQaTester("A", LevelJunior),
	}

	var servers, interfaces, pullRequests, designs, testers int
	for _, m := range members {
		if _, ok := m.(ServerBuilder); ok {
			servers++
		}
		if _, ok := m.(InterfaceBuilder); ok {
			interfaces++
		}
		if _, ok := m.(PullRequestFlow); ok {
			pullRequests++
		}
		if _, ok := m.(DesignProducer); ok {
			designs++
		}
		if _, ok := m.(TestRunner); ok {
			testers++
		}
	}

	assert.Equal(t, 2, servers)
	assert.Equal(t, 2, interfaces)
	assert.Equal(t, 4, pullRequests)
	assert.Equal(t, 1, designs)
	assert.Equal(t, 1, testers)
}

func TestPerformAction(t *testing.T) {
	fullStack := NewFullStack("John Doe", LevelSenior)

	phrase, err := PerformAction(fullStack, "createux")
	require.NoError(t, err)
	assert.Equal(t, "Implement User Interactions", phrase)

	phrase, err = PerformAction(fullStack, " CreateDeployment ")
	require.NoError(t, err)
	assert.Equal(t, "Deploy Application", phrase)

	_, err = PerformAction(NewQaTester("Bo", LevelJunior), "CreateUi")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidValue(err))
	assert.Equal(t, "Invalid value. Allowed values: RunUnitTests, RunIntegrationTests, RunPerformanceTests", errors.GetUserMessage(err))
}

func TestNewMember(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			member, err := NewMember(kind, "Ann", LevelMiddle)
			require.NoError(t, err)
			assert.Equal(t, kind, KindOf(member))
			assert.Equal(t, "Ann", member.Name())
			assert.Equal(t, LevelMiddle, member.Level())
		})
	}

	_, err := NewMember(RoleKind("manager"), "Ann", LevelMiddle)
	assert.True(t, errors.IsInvalidValue(err))
}

func TestNewTeamMember(t *testing.T) {
	hired := time.Date(2024, 10, 24, 9, 0, 0, 0, time.UTC)

	tm, err := NewTeamMember(KindDesigner, "Eve", LevelJunior, hired)
	require.NoError(t, err)
	assert.Equal(t, KindDesigner, tm.Kind)
	assert.Equal(t, "UI/UX Designer", tm.Member.RoleLabel())
	assert.Equal(t, hired, tm.HiredAt)
	assert.Equal(t, "Eve", tm.Member.Name())

	_, err = NewTeamMember(RoleKind(""), "Eve", LevelJunior, hired)
	assert.Error(t, err)
}

func TestFullStack_SetLevelOnlyTouchesItself(t *testing.T) {
	fullStack := NewFullStack("Dan", LevelJunior)

	require.NoError(t, fullStack.SetLevel("Senior"))
	assert.Equal(t, "Name: Dan\nRole: FullStack Developer\nExperience: Senior", fullStack.Details())
}

func TestFindAction(t *testing.T) {
	action, err := FindAction(NewUiUxDesigner("Eve", LevelJunior), "CREATEDESIGN")
	require.NoError(t, err)
	assert.Equal(t, "CreateDesign", action.Name)
	assert.Equal(t, "Create Design", action.Run())

	_, err = FindAction(NewRole("Eve", LabelDesigner, LevelJunior), "CreateDesign")
	assert.Equal(t, "Invalid value. Allowed values: ", errors.GetUserMessage(err))
}
