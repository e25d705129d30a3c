package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"rutcheck/internal/validation/metrics"
	dErrors "rutcheck/pkg/domain-errors"
	"rutcheck/pkg/requestcontext"
	"rutcheck/pkg/rut"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	metrics *metrics.Metrics
	service *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithRequestID(context.Background(), "test-request")
	s.metrics = metrics.New(prometheus.NewRegistry())

	svc, err := New(rut.DefaultPolicy(), nil, s.metrics, WithMaxBatchSize(3))
	require.NoError(s.T(), err)
	s.service = svc
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestNew_RejectsInvertedPolicy() {
	_, err := New(rut.Policy{MinBody: 10, MaxBody: 5}, nil, nil)
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func (s *ServiceSuite) TestValidate() {
	assert.True(s.T(), s.service.Validate(s.ctx, "12.345.678-5", false))
	assert.False(s.T(), s.service.Validate(s.ctx, "12.345.678-0", false))
	assert.False(s.T(), s.service.Validate(s.ctx, "", false))

	assert.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.Operations.WithLabelValues("validate", metrics.ResultValid)))
	assert.Equal(s.T(), 2.0, testutil.ToFloat64(s.metrics.Operations.WithLabelValues("validate", metrics.ResultInvalid)))
}

func (s *ServiceSuite) TestValidate_RangeUsesServicePolicy() {
	svc, err := New(rut.Policy{MinBody: 20_000_000, MaxBody: 30_000_000, OrganizationThreshold: 50_000_000}, nil, nil)
	require.NoError(s.T(), err)

	assert.True(s.T(), svc.Validate(s.ctx, "12.345.678-5", false))
	assert.False(s.T(), svc.Validate(s.ctx, "12.345.678-5", true))
	assert.True(s.T(), svc.Validate(s.ctx, "22.222.222-2", true))
}

func (s *ServiceSuite) TestParse() {
	id, err := s.service.Parse(s.ctx, "9.007.881-k")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), rut.ID{Body: 9007881, Digits: "9007881", Check: "K", Normalized: "9007881K"}, id)

	_, err = s.service.Parse(s.ctx, "ABC123")
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInvalidInput))
	assert.True(s.T(), errors.Is(err, rut.ErrInvalidFormat))

	de, ok := dErrors.As(err)
	require.True(s.T(), ok)
	assert.NotContains(s.T(), de.Message, "ABC123", "client message must not echo the input")
}

func (s *ServiceSuite) TestFormat() {
	dotted, err := s.service.Format(s.ctx, "123456785", true)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "12.345.678-5", dotted)

	compact, err := s.service.Format(s.ctx, "123456785", false)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "12345678-5", compact)

	_, err = s.service.Format(s.ctx, "", true)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInvalidInput))
	assert.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.Operations.WithLabelValues("format", metrics.ResultError)))
}

func (s *ServiceSuite) TestClean() {
	cleaned, err := s.service.Clean(s.ctx, " 12.345.678-k ")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "12345678K", cleaned)

	_, err = s.service.Clean(s.ctx, "...")
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestCheckCharacter() {
	check, err := s.service.CheckCharacter(s.ctx, 12345678)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "5", check)

	_, err = s.service.CheckCharacter(s.ctx, 0)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestValidateBatch() {
	results, err := s.service.ValidateBatch(s.ctx, []string{"12.345.678-5", "12.345.678-0", "x"}, false)
	require.NoError(s.T(), err)
	require.Len(s.T(), results, 3)
	assert.True(s.T(), results[0].Valid)
	assert.False(s.T(), results[1].Valid)
	assert.False(s.T(), results[2].Valid)

	assert.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.BatchItems.WithLabelValues(metrics.ResultValid)))
	assert.Equal(s.T(), 2.0, testutil.ToFloat64(s.metrics.BatchItems.WithLabelValues(metrics.ResultInvalid)))
}

func (s *ServiceSuite) TestValidateBatch_Empty() {
	results, err := s.service.ValidateBatch(s.ctx, nil, false)
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), results)
	assert.Empty(s.T(), results)
}

func (s *ServiceSuite) TestValidateBatch_TooLarge() {
	_, err := s.service.ValidateBatch(s.ctx, []string{"a", "b", "c", "d"}, false)
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestGenerate() {
	out, err := s.service.Generate(s.ctx, 10_000_000, 10_000_100)
	require.NoError(s.T(), err)
	assert.True(s.T(), s.service.Validate(s.ctx, out, true))

	_, err = s.service.Generate(s.ctx, 5, 1)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestClassify() {
	org := s.service.Classify(s.ctx, "76.123.456-0")
	assert.True(s.T(), org.Parsed)
	assert.True(s.T(), org.Organizational)
	assert.Equal(s.T(), 76123456, org.ID.Body)

	person := s.service.Classify(s.ctx, "12.345.678-5")
	assert.True(s.T(), person.Parsed)
	assert.False(s.T(), person.Organizational)

	bad := s.service.Classify(s.ctx, "invalid")
	assert.False(s.T(), bad.Parsed)
	assert.False(s.T(), bad.Organizational)

	assert.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.Classifications.WithLabelValues("organization")))
	assert.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.Classifications.WithLabelValues("person")))
	assert.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.Classifications.WithLabelValues("unparseable")))
}

func TestClassify_UsesConfiguredThreshold(t *testing.T) {
	policy := rut.DefaultPolicy()
	policy.OrganizationThreshold = 10_000_000
	svc, err := New(policy, nil, nil)
	require.NoError(t, err)

	res := svc.Classify(context.Background(), "12.345.678-5")
	assert.True(t, res.Parsed)
	assert.True(t, res.Organizational)
}
