package project

// Progress receives user-facing notifications while scaffolding.
type Progress interface {
	// Step announces the start of a phase.
	Step(msg string)
	// FileWritten acknowledges one generated file, relative to the directory
	// being populated.
	FileWritten(rel string)
}

type nopProgress struct{}

func (nopProgress) Step(string)        {}
func (nopProgress) FileWritten(string) {}
