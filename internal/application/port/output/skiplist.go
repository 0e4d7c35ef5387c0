package output

// SkipListPort stores the names of companies the agent gave up on.
type SkipListPort interface {
	Append(company string) error
	List() ([]string, error)
	Path() string
}
