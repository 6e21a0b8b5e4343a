package domain

import "io"

var _ TestRunner = (*QaTester)(nil)

// QaTester runs the test suites.
type QaTester struct {
	*Role
}

// NewQaTester creates a tester.
func NewQaTester(name string, level Level) *QaTester {
	return &QaTester{Role: NewRole(name, LabelTester, level)}
}

func (q *QaTester) Greeting() string {
	return q.Role.Greeting() + " I love to test user interfaces."
}

func (q *QaTester) Introduce(w io.Writer) error {
	return introduce(w, q.Greeting())
}

func (q *QaTester) RunUnitTests() string        { return "Run Unit Tests" }
func (q *QaTester) RunIntegrationTests() string { return "Run Integration Tests" }
func (q *QaTester) RunPerformanceTests() string { return "Run Performance Tests" }

func (q *QaTester) Actions() []Action {
	return []Action{
		{Name: "RunUnitTests", Run: q.RunUnitTests},
		{Name: "RunIntegrationTests", Run: q.RunIntegrationTests},
		{Name: "RunPerformanceTests", Run: q.RunPerformanceTests},
	}
}
