package projector

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/errs"
	"gitee.com/flycash/varsling-platform/internal/event/hendelse"
	repomocks "gitee.com/flycash/varsling-platform/internal/repository/mocks"
)

func TestProjectorSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ProjectorTestSuite))
}

type ProjectorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	repo       *repomocks.MockVarslingRepository
	hardDelete *repomocks.MockHardDeleteRepository
	projector  *Projector

	varselID       uuid.UUID
	notifikasjonID uuid.UUID
}

func (s *ProjectorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repomocks.NewMockVarslingRepository(s.ctrl)
	s.hardDelete = repomocks.NewMockHardDeleteRepository(s.ctrl)
	s.projector = NewProjector(s.repo, s.hardDelete)

	s.varselID = uuid.Must(uuid.NewV4())
	s.notifikasjonID = uuid.Must(uuid.NewV4())
}

func (s *ProjectorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAlleTyperRegistrert 每个事件类型都必须有处理函数，
// 新增类型却忘了注册是最容易犯的错误
func (s *ProjectorTestSuite) TestAlleTyperRegistrert() {
	registered := s.projector.Dispatcher().Registered()
	assert.ElementsMatch(s.T(), hendelse.Alle(), registered)
}

func (s *ProjectorTestSuite) beskjedOpprettet() *hendelse.BeskjedOpprettet {
	return &hendelse.BeskjedOpprettet{
		HendelseID:        uuid.Must(uuid.NewV4()),
		NotifikasjonID:    s.notifikasjonID,
		Virksomhetsnummer: "912345678",
		ProdusentID:       "produsent-1",
		KildeAppNavn:      "fager",
		Merkelapp:         "inntektsmelding",
		EksterneVarsler: []hendelse.EksterntVarsel{
			{
				VarselID:    s.varselID,
				VarselType:  domain.VarselTypeSMS,
				Mobilnummer: "+4740000001",
				SmsTekst:    "Du har fått en ny beskjed",
				Sendevindu:  domain.SendevinduLoepende,
			},
		},
	}
}

func (s *ProjectorTestSuite) TestBeskjedOpprettetInsererOgKoelegger() {
	t := s.T()
	evt := s.beskjedOpprettet()

	s.repo.EXPECT().InsertVarsel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v domain.EksternVarsel) error {
			assert.Equal(t, s.varselID, v.VarselID)
			assert.Equal(t, s.notifikasjonID, v.NotifikasjonID)
			assert.Equal(t, domain.VarselTilstandNy, v.Tilstand)
			return nil
		})
	s.repo.EXPECT().EnqueueJob(gomock.Any(), s.varselID).Return(nil)

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(t, err)
}

func (s *ProjectorTestSuite) TestDuplikatHendelseErIdempotent() {
	// 重复投递：插入撞主键也要补入队，
	// 上一次处理可能在插入和入队之间崩了
	evt := s.beskjedOpprettet()

	s.repo.EXPECT().InsertVarsel(gomock.Any(), gomock.Any()).Return(errs.ErrVarselDuplicate)
	s.repo.EXPECT().EnqueueJob(gomock.Any(), s.varselID).Return(nil)

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(s.T(), err)
}

func (s *ProjectorTestSuite) TestOpprettetMedHardDeleteSkedulerer() {
	t := s.T()
	evt := s.beskjedOpprettet()
	slettes := time.Now().Add(30 * 24 * time.Hour)
	evt.HardDeleteAt = &slettes
	evt.GrupperingsID = "sak-42"

	s.repo.EXPECT().InsertVarsel(gomock.Any(), gomock.Any()).Return(nil)
	s.repo.EXPECT().EnqueueJob(gomock.Any(), s.varselID).Return(nil)
	s.hardDelete.EXPECT().Skeduler(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry domain.SkedulertHardDelete) error {
			assert.Equal(t, s.notifikasjonID, entry.AggregateID)
			assert.Equal(t, domain.AggregateTypeBeskjed, entry.AggregateType)
			assert.True(t, entry.BeregnetSlettetidspunkt.Equal(slettes))
			assert.Equal(t, "sak-42", entry.Grupperingsid)
			return nil
		})

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(t, err)
}

func (s *ProjectorTestSuite) TestVellykketKvittererOgFjernerJobb() {
	evt := &hendelse.EksterntVarselVellykket{
		HendelseID:     uuid.Must(uuid.NewV4()),
		NotifikasjonID: s.notifikasjonID,
		VarselID:       s.varselID,
		RaaRespons:     []byte(`{"status":"OK"}`),
	}

	s.repo.EXPECT().FindVarsel(gomock.Any(), s.varselID).
		Return(domain.EksternVarsel{VarselID: s.varselID}, nil)
	s.repo.EXPECT().MarkKvittert(gomock.Any(), s.varselID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, resp domain.AltinnResponse) error {
			assert.True(s.T(), resp.Ok)
			return nil
		})
	s.repo.EXPECT().DeleteJob(gomock.Any(), s.varselID).Return(nil)

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(s.T(), err)
}

func (s *ProjectorTestSuite) TestFeiletKvittererMedFeilkode() {
	evt := &hendelse.EksterntVarselFeilet{
		HendelseID:     uuid.Must(uuid.NewV4()),
		NotifikasjonID: s.notifikasjonID,
		VarselID:       s.varselID,
		AltinnFeilkode: "30308",
		Feilmelding:    "mangler kontaktinformasjon",
	}

	s.repo.EXPECT().FindVarsel(gomock.Any(), s.varselID).
		Return(domain.EksternVarsel{VarselID: s.varselID}, nil)
	s.repo.EXPECT().MarkKvittert(gomock.Any(), s.varselID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, resp domain.AltinnResponse) error {
			assert.False(s.T(), resp.Ok)
			assert.Equal(s.T(), "30308", resp.Feilkode)
			return nil
		})
	s.repo.EXPECT().DeleteJob(gomock.Any(), s.varselID).Return(nil)

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(s.T(), err)
}

func (s *ProjectorTestSuite) TestKvitteringForSlettetVarselIgnoreres() {
	evt := &hendelse.EksterntVarselVellykket{
		HendelseID:     uuid.Must(uuid.NewV4()),
		NotifikasjonID: s.notifikasjonID,
		VarselID:       s.varselID,
	}

	s.repo.EXPECT().FindVarsel(gomock.Any(), s.varselID).
		Return(domain.EksternVarsel{}, errs.ErrVarselNotFound)

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(s.T(), err)
}

func (s *ProjectorTestSuite) TestHardDeleteRydderOppAltState() {
	evt := &hendelse.HardDelete{
		HendelseID: uuid.Must(uuid.NewV4()),
		AggregatID: s.notifikasjonID,
		DeletedAt:  time.Now(),
	}

	s.repo.EXPECT().HardDeleteNotifikasjon(gomock.Any(), s.notifikasjonID).Return(nil)
	s.hardDelete.EXPECT().Fjern(gomock.Any(), s.notifikasjonID).Return(nil)

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(s.T(), err)
}

func (s *ProjectorTestSuite) TestHardDeleteAvSakKaskaderer() {
	annenNotifikasjon := uuid.Must(uuid.NewV4())
	sakID := uuid.Must(uuid.NewV4())
	evt := &hendelse.HardDelete{
		HendelseID:    uuid.Must(uuid.NewV4()),
		AggregatID:    sakID,
		Merkelapp:     "inntektsmelding",
		GrupperingsID: "sak-42",
		DeletedAt:     time.Now(),
	}

	s.hardDelete.EXPECT().FindNotifikasjonerForSak(gomock.Any(), "inntektsmelding", "sak-42").
		Return([]domain.SkedulertHardDelete{
			{AggregateID: s.notifikasjonID, AggregateType: domain.AggregateTypeBeskjed},
			{AggregateID: annenNotifikasjon, AggregateType: domain.AggregateTypeOppgave},
		}, nil)
	s.repo.EXPECT().HardDeleteNotifikasjon(gomock.Any(), s.notifikasjonID).Return(nil)
	s.hardDelete.EXPECT().Fjern(gomock.Any(), s.notifikasjonID).Return(nil)
	s.repo.EXPECT().HardDeleteNotifikasjon(gomock.Any(), annenNotifikasjon).Return(nil)
	s.hardDelete.EXPECT().Fjern(gomock.Any(), annenNotifikasjon).Return(nil)
	s.repo.EXPECT().HardDeleteNotifikasjon(gomock.Any(), sakID).Return(nil)
	s.hardDelete.EXPECT().Fjern(gomock.Any(), sakID).Return(nil)

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(s.T(), err)
}

func (s *ProjectorTestSuite) TestSoftDeleteErNoop() {
	evt := &hendelse.SoftDelete{
		HendelseID: uuid.Must(uuid.NewV4()),
		AggregatID: s.notifikasjonID,
		DeletedAt:  time.Now(),
	}

	err := s.projector.Handle(context.Background(), evt, hendelse.Metadata{Timestamp: time.Now()})
	require.NoError(s.T(), err)
}
