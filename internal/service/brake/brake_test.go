package brake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"gitee.com/flycash/varsling-platform/internal/pkg/health"
	repomocks "gitee.com/flycash/varsling-platform/internal/repository/mocks"
)

func TestBrakeSuite(t *testing.T) {
	suite.Run(t, new(BrakeTestSuite))
}

type BrakeTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	repo   *repomocks.MockVarslingRepository
	brakes *repomocks.MockBrakeRepository
	svc    Service
}

func (s *BrakeTestSuite) SetupTest() {
	health.Reset()
	s.ctrl = gomock.NewController(s.T())
	s.repo = repomocks.NewMockVarslingRepository(s.ctrl)
	s.brakes = repomocks.NewMockBrakeRepository(s.ctrl)
	s.svc = NewService(s.repo, s.brakes)
}

func (s *BrakeTestSuite) TearDownTest() {
	s.ctrl.Finish()
	health.Reset()
}

func (s *BrakeTestSuite) TestStoppedLeserFraLager() {
	s.brakes.EXPECT().Stopped(gomock.Any()).Return(true, nil)

	stopped, err := s.svc.Stopped(context.Background())
	require.NoError(s.T(), err)
	assert.True(s.T(), stopped)
}

func (s *BrakeTestSuite) TestTurnOnOgTurnOff() {
	s.brakes.EXPECT().TurnOn(gomock.Any(), "manuell stopp").Return(nil)
	s.brakes.EXPECT().TurnOff(gomock.Any()).Return(nil)

	require.NoError(s.T(), s.svc.TurnOn(context.Background(), "manuell stopp"))
	require.NoError(s.T(), s.svc.TurnOff(context.Background()))
}

func (s *BrakeTestSuite) TestTomDatabaseUtloserBrems() {
	s.repo.EXPECT().CountVarsler(gomock.Any()).Return(int64(0), nil)
	s.brakes.EXPECT().TurnOn(gomock.Any(), gomock.Any()).Return(nil)

	err := s.svc.DetectEmptyDatabase(context.Background())
	require.NoError(s.T(), err)
	assert.False(s.T(), health.Alive())
}

func (s *BrakeTestSuite) TestIkkeTomDatabaseGjoerIngenting() {
	s.repo.EXPECT().CountVarsler(gomock.Any()).Return(int64(42), nil)

	err := s.svc.DetectEmptyDatabase(context.Background())
	require.NoError(s.T(), err)
	assert.True(s.T(), health.Alive())
}

func (s *BrakeTestSuite) TestTellefeilPropagerer() {
	s.repo.EXPECT().CountVarsler(gomock.Any()).Return(int64(0), errors.New("db unavailable"))

	err := s.svc.DetectEmptyDatabase(context.Background())
	require.Error(s.T(), err)
	assert.True(s.T(), health.Alive())
}
