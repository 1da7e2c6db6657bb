package sections

// Splitter is the sectioning state machine. The zero value is ready to use.
type Splitter struct {
	state    State
	lineNum  int
	sections Sections
}

// NewSplitter returns a Splitter in the BeforeFirst state.
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Feed advances the machine by one line.
func (s *Splitter) Feed(line string) error {
	s.lineNum++

	if IsBlank(line) {
		switch s.state {
		case InFirst:
			s.state = BeforeSecond
		case InSecond:
			s.state = Done
		}
		return nil
	}

	switch s.state {
	case BeforeFirst:
		s.state = InFirst
		s.sections.First = append(s.sections.First, line)
	case InFirst:
		s.sections.First = append(s.sections.First, line)
	case BeforeSecond:
		s.state = InSecond
		s.sections.Second = append(s.sections.Second, line)
	case InSecond:
		s.sections.Second = append(s.sections.Second, line)
	case Done:
		return &StructureError{LineNum: s.lineNum, Line: line}
	}
	return nil
}

// State returns the current state.
func (s *Splitter) State() State {
	return s.state
}

// LineNum returns the number of lines fed so far.
func (s *Splitter) LineNum() int {
	return s.lineNum
}

// Sections returns the lines collected so far.
func (s *Splitter) Sections() *Sections {
	return &s.sections
}
