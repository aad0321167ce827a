package holder

import (
	"github.com/samber/lo"

	"github.com/mongodb-labs/holder/option"
)

type widget struct {
	id int
}

func (s *unitTestSuite) Test_SetAndValue() {
	h := New[*widget]()
	w := lo.ToPtr(widget{id: 42})

	s.Assert().True(h.Set(w), "non-nil pointer should count as set")
	s.Assert().Same(w, h.Value(), "Value() should return the same instance")

	val, isSet := h.Get()
	s.Assert().True(isSet)
	s.Assert().Same(w, val)
}

func (s *unitTestSuite) Test_Set_Empty() {
	h := Of("seed")

	s.Assert().False(h.Set(""), "zero value should count as empty")
	s.Assert().False(h.IsSet())
	s.Assert().Equal("", h.Value(), "failed Set should still overwrite")
}

func (s *unitTestSuite) Test_SetNone() {
	h := Of("something")

	s.Assert().True(h.SetNone(), "SetNone should always report success")
	s.Assert().False(h.IsSet())
	s.Assert().Equal("", h.Value())
}

func (s *unitTestSuite) Test_SetElem() {
	h := Of("seed")

	s.Assert().False(h.SetElem(nil, 0), "nil slice")
	s.Assert().False(h.IsSet(), "nil slice should empty the holder")

	vals := []string{"", "beta", "gamma"}

	s.Assert().True(h.SetElem(vals, 1))
	s.Assert().Equal("beta", h.Value())

	s.Assert().False(h.SetElem(vals, 0), "empty element")
	s.Assert().False(h.IsSet())

	s.Assert().False(h.SetElem(vals, 3), "index past the end")
	s.Assert().False(h.SetElem(vals, -1), "negative index")
}

func (s *unitTestSuite) Test_Equal() {
	s.Assert().True(Of("x").Equal(Of("x")))
	s.Assert().False(Of("x").Equal(Of("y")))
	s.Assert().True(New[string]().Equal(New[string]()), "two empties are equal")
	s.Assert().False(New[string]().Equal(Of("x")), "empty never equals populated")
	s.Assert().True(
		(*Holder[string])(nil).Equal(New[string]()),
		"nil holder compares as empty",
	)

	s.Assert().True(
		Of([]int{1, 2}).Equal(Of([]int{1, 2})),
		"contents compare deeply",
	)
}

func (s *unitTestSuite) Test_String() {
	s.Assert().Equal("42", Of(42).String())
	s.Assert().Equal("<empty>", New[int]().String())
	s.Assert().Equal("<empty>", Of("").String())
}

func (s *unitTestSuite) Test_ToOption() {
	s.Assert().True(
		Of("x").ToOption().Equals(option.Some("x")),
	)
	s.Assert().True(
		New[string]().ToOption().Equals(option.None[string]()),
	)
}

func (s *unitTestSuite) Test_SetOption() {
	h := Of("seed")

	s.Assert().False(h.SetOption(option.None[string]()))
	s.Assert().False(h.IsSet(), "None should empty the holder")

	s.Assert().True(h.SetOption(option.Some("restored")))
	s.Assert().Equal("restored", h.Value())
}
