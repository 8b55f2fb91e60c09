package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hargrim/skirmish/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "battle report not found",
			expected: "NOT_FOUND: battle report not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "illegal relationship error",
			code:     errors.CodeIllegalRelationship,
			message:  "hero cannot carry the anvil",
			expected: "ILLEGAL_RELATIONSHIP: hero cannot carry the anvil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("battle report not found").
		WithMeta("report_id", "123").
		WithMeta("hero_id", "456")

	s.Assert().Equal("123", err.Meta["report_id"])
	s.Assert().Equal("456", err.Meta["hero_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("random source exhausted")
	wrapped := errors.Wrap(baseErr, "failed to roll initiative")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to roll initiative", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "battle report not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("battle report not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("fight already resolved")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeFailedPrecondition, "battle cannot restart")

	s.Assert().Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Assert().Equal("battle cannot restart", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"InvalidIdentifier", func() *errors.Error { return errors.InvalidIdentifier("test") }, errors.CodeInvalidIdentifier},
		{"DuplicateIdentifier", func() *errors.Error { return errors.DuplicateIdentifier("test") }, errors.CodeDuplicateIdentifier},
		{"IllegalRelationship", func() *errors.Error { return errors.IllegalRelationship("test") }, errors.CodeIllegalRelationship},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestNullTarget() {
	err := errors.NullTarget("attack target is required")
	s.Assert().Equal(errors.CodeNullTarget, err.Code)
	s.Assert().Equal("attack target is required", err.Message)
	s.Assert().True(errors.IsNullTarget(err))
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("battle report %s not found", "123")
	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("battle report 123 not found", err.Message)

	err2 := errors.InvalidArgumentf("invalid damage: %d", 25)
	s.Assert().Equal(errors.CodeInvalidArgument, err2.Code)
	s.Assert().Equal("invalid damage: 25", err2.Message)

	err3 := errors.InvalidIdentifierf("id %d is not divisible by 6", 17)
	s.Assert().Equal(errors.CodeInvalidIdentifier, err3.Code)
	s.Assert().Equal("id 17 is not divisible by 6", err3.Message)

	err4 := errors.IllegalRelationshipf("item %d would overload the pack", 42)
	s.Assert().Equal(errors.CodeIllegalRelationship, err4.Code)
	s.Assert().Equal("item 42 would overload the pack", err4.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("test")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	invalidErr := errors.InvalidArgument("test")
	relationshipErr := errors.IllegalRelationship("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().True(errors.IsNotFound(wrappedErr))
	s.Assert().False(errors.IsNotFound(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(notFoundErr))

	s.Assert().True(errors.IsIllegalRelationship(relationshipErr))
	s.Assert().False(errors.IsIllegalRelationship(invalidErr))
}

func (s *ErrorsTestSuite) TestIdentifierHelpers() {
	dupErr := errors.DuplicateIdentifier("id 12 already issued")
	badErr := errors.InvalidIdentifier("id 13 fails the weapon rule")

	s.Assert().True(errors.IsDuplicateIdentifier(dupErr))
	s.Assert().False(errors.IsDuplicateIdentifier(badErr))

	s.Assert().True(errors.IsInvalidIdentifier(badErr))
	s.Assert().False(errors.IsInvalidIdentifier(dupErr))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.NotFound("test").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal("value", errors.GetMeta(err)["key"])
	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}
