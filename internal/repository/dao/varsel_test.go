//go:build e2e

package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"gitee.com/flycash/varsling-platform/internal/errs"
	"gitee.com/flycash/varsling-platform/internal/repository/dao"
	testioc "gitee.com/flycash/varsling-platform/internal/test/ioc"
)

func TestEksternVarselDAOSuite(t *testing.T) {
	suite.Run(t, new(EksternVarselDAOTestSuite))
}

type EksternVarselDAOTestSuite struct {
	suite.Suite
	db     *gorm.DB
	dao    dao.EksternVarselDAO
	jobDAO dao.JobQueueDAO
}

func (s *EksternVarselDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDBAndTables()
	s.dao = dao.NewEksternVarselDAO(s.db)
	s.jobDAO = dao.NewJobQueueDAO(s.db)
}

func (s *EksternVarselDAOTestSuite) TearDownTest() {
	s.db.Exec("TRUNCATE TABLE `ekstern_varsel_kontaktinfo`")
	s.db.Exec("TRUNCATE TABLE `job_queue`")
}

func (s *EksternVarselDAOTestSuite) smsVarsel(varselID, notifikasjonID string) dao.EksternVarselKontaktinfo {
	return dao.EksternVarselKontaktinfo{
		VarselID:          varselID,
		NotifikasjonID:    notifikasjonID,
		ProdusentID:       "produsent-1",
		Virksomhetsnummer: "811076732",
		VarselType:        "SMS",
		Mobilnummer:       "+4740000000",
		SmsTekst:          "Du har fått en ny oppgave",
		Sendevindu:        "LOEPENDE",
	}
}

func (s *EksternVarselDAOTestSuite) TestInsert() {
	t := s.T()
	ctx := context.Background()

	data := s.smsVarsel("7b9bffda-7c54-4a0c-96a1-3bd045731201", "9e5f8a00-22c7-4d7e-8f4a-b40457310001")
	err := s.dao.Insert(ctx, data)
	assert.NoError(t, err)

	stored, err := s.dao.GetByVarselID(ctx, data.VarselID)
	assert.NoError(t, err)
	assert.Equal(t, data.NotifikasjonID, stored.NotifikasjonID)
	assert.Equal(t, data.Mobilnummer, stored.Mobilnummer)
	assert.Equal(t, "NY", stored.Tilstand)
	assert.Nil(t, stored.SendeStatus)
	assert.NotZero(t, stored.Ctime)
	assert.NotZero(t, stored.Utime)
}

func (s *EksternVarselDAOTestSuite) TestInsertDuplicate() {
	t := s.T()
	ctx := context.Background()

	data := s.smsVarsel("7b9bffda-7c54-4a0c-96a1-3bd045731202", "9e5f8a00-22c7-4d7e-8f4a-b40457310002")
	err := s.dao.Insert(ctx, data)
	assert.NoError(t, err)

	err = s.dao.Insert(ctx, data)
	assert.ErrorIs(t, err, errs.ErrVarselDuplicate)
}

func (s *EksternVarselDAOTestSuite) TestGetByVarselIDNotFound() {
	t := s.T()
	_, err := s.dao.GetByVarselID(context.Background(), "7b9bffda-7c54-4a0c-96a1-3bd045731203")
	assert.ErrorIs(t, err, errs.ErrVarselNotFound)
}

func (s *EksternVarselDAOTestSuite) TestMarkSendt() {
	t := s.T()
	ctx := context.Background()

	data := s.smsVarsel("7b9bffda-7c54-4a0c-96a1-3bd045731204", "9e5f8a00-22c7-4d7e-8f4a-b40457310004")
	err := s.dao.Insert(ctx, data)
	assert.NoError(t, err)

	sendeStatus := "FEIL"
	feilkode := "30308"
	feilmelding := "mottaker mangler kontaktinfo"
	raw := `{"feilkode":"30308"}`
	sendt := time.Now().UnixMilli()
	err = s.dao.MarkSendt(ctx, dao.EksternVarselKontaktinfo{
		VarselID:       data.VarselID,
		SendeStatus:    &sendeStatus,
		AltinnFeilkode: &feilkode,
		Feilmelding:    &feilmelding,
		RaaRespons:     &raw,
		SendtTidspunkt: &sendt,
	})
	assert.NoError(t, err)

	stored, err := s.dao.GetByVarselID(ctx, data.VarselID)
	assert.NoError(t, err)
	assert.Equal(t, "SENDT", stored.Tilstand)
	assert.Equal(t, sendeStatus, *stored.SendeStatus)
	assert.Equal(t, feilkode, *stored.AltinnFeilkode)
	assert.Equal(t, feilmelding, *stored.Feilmelding)
	assert.Equal(t, sendt, *stored.SendtTidspunkt)
}

func (s *EksternVarselDAOTestSuite) TestMarkKvittert() {
	t := s.T()
	ctx := context.Background()

	data := s.smsVarsel("7b9bffda-7c54-4a0c-96a1-3bd045731205", "9e5f8a00-22c7-4d7e-8f4a-b40457310005")
	err := s.dao.Insert(ctx, data)
	assert.NoError(t, err)

	sendeStatus := "OK"
	err = s.dao.MarkKvittert(ctx, dao.EksternVarselKontaktinfo{
		VarselID:    data.VarselID,
		SendeStatus: &sendeStatus,
	})
	assert.NoError(t, err)

	stored, err := s.dao.GetByVarselID(ctx, data.VarselID)
	assert.NoError(t, err)
	assert.Equal(t, "KVITTERT", stored.Tilstand)
	assert.Equal(t, sendeStatus, *stored.SendeStatus)
}

func (s *EksternVarselDAOTestSuite) TestDeleteByNotifikasjonID() {
	t := s.T()
	ctx := context.Background()
	notifikasjonID := "9e5f8a00-22c7-4d7e-8f4a-b40457310006"

	varsler := []string{
		"7b9bffda-7c54-4a0c-96a1-3bd045731206",
		"7b9bffda-7c54-4a0c-96a1-3bd045731207",
	}
	for _, id := range varsler {
		err := s.dao.Insert(ctx, s.smsVarsel(id, notifikasjonID))
		assert.NoError(t, err)
		err = s.jobDAO.Enqueue(ctx, id)
		assert.NoError(t, err)
	}
	// 无关的通知不受影响
	other := s.smsVarsel("7b9bffda-7c54-4a0c-96a1-3bd045731208", "9e5f8a00-22c7-4d7e-8f4a-b40457310007")
	err := s.dao.Insert(ctx, other)
	assert.NoError(t, err)
	err = s.jobDAO.Enqueue(ctx, other.VarselID)
	assert.NoError(t, err)

	err = s.dao.DeleteByNotifikasjonID(ctx, notifikasjonID)
	assert.NoError(t, err)

	for _, id := range varsler {
		_, err := s.dao.GetByVarselID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrVarselNotFound)
	}
	jobs, err := s.jobDAO.JobQueueCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), jobs)

	_, err = s.dao.GetByVarselID(ctx, other.VarselID)
	assert.NoError(t, err)
}

func (s *EksternVarselDAOTestSuite) TestFindVarselIDsForNotifikasjon() {
	t := s.T()
	ctx := context.Background()
	notifikasjonID := "9e5f8a00-22c7-4d7e-8f4a-b40457310008"

	expected := []string{
		"7b9bffda-7c54-4a0c-96a1-3bd045731209",
		"7b9bffda-7c54-4a0c-96a1-3bd045731210",
	}
	for _, id := range expected {
		err := s.dao.Insert(ctx, s.smsVarsel(id, notifikasjonID))
		assert.NoError(t, err)
	}

	ids, err := s.dao.FindVarselIDsForNotifikasjon(ctx, notifikasjonID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, expected, ids)

	cnt, err := s.dao.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
}
