package holder

func (s *unitTestSuite) Test_Resolve_Defined() {
	h := New[string]()

	ok := h.Set("Hello") || h.Set("World")
	s.Assert().True(ok)

	val, err := h.Resolve(ok)
	s.Require().NoError(err)
	s.Assert().Equal("Hello", val)
}

func (s *unitTestSuite) Test_Resolve_Undefined() {
	h := New[string]()

	ok := h.Set("") || h.Set("")
	s.Assert().False(ok)

	_, err := h.Resolve(ok)
	s.Assert().ErrorIs(err, ErrNotDefined)
}

func (s *unitTestSuite) Test_Resolve_ExplicitNone() {
	h := New[string]()

	ok := h.Set("") || h.SetNone()
	s.Assert().True(ok, "SetNone should make the chain count as defined")

	val, err := h.Resolve(ok)
	s.Require().NoError(err, "deliberate emptiness is not a failure")
	s.Assert().Equal("", val)
}

// Mirrors the canonical short-circuit scenario: two candidate widgets,
// but only the first should ever be constructed.
func (s *unitTestSuite) Test_Resolve_ShortCircuit() {
	const initial = 7 // zero would be hard to tell apart from defaults

	counter := initial
	makeWidget := func() widget {
		w := widget{id: counter}
		counter++
		return w
	}

	h := New[widget]()
	ok := h.Set(makeWidget()) || h.Set(makeWidget())

	w, err := h.Resolve(ok)
	s.Require().NoError(err)
	s.Assert().Equal(initial, w.id, "the first widget should win")
	s.Assert().Equal(initial+1, counter, "only one widget should be made")
}

func (s *unitTestSuite) Test_ResultFor() {
	h := New[string]()

	ok := h.Set("value")

	result := h.ResultFor(ok)
	s.Require().False(result.IsError())
	s.Assert().Equal("value", result.MustGet())

	ok = h.Set("")

	result = h.ResultFor(ok)
	s.Require().True(result.IsError())
	s.Assert().ErrorIs(result.Error(), ErrNotDefined)
}
