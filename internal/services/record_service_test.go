package services

import (
	"context"
	"errors"
	"testing"

	"growe/internal/common"
	"growe/internal/models"
	"growe/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockDocumentRepository[T repositories.Document] struct {
	mock.Mock
}

func (m *MockDocumentRepository[T]) Insert(ctx context.Context, doc T) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockDocumentRepository[T]) FindBy(ctx context.Context, field, value string) (T, error) {
	args := m.Called(ctx, field, value)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockDocumentRepository[T]) Replace(ctx context.Context, id string, doc T) error {
	args := m.Called(ctx, id, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository[T]) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type RecordServiceTestSuite struct {
	suite.Suite
	dealRepo    *MockDocumentRepository[*models.Deal]
	threePLRepo *MockDocumentRepository[*models.ThreePL]
	deals       RecordService[*models.Deal]
	threePLs    RecordService[*models.ThreePL]
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.dealRepo = &MockDocumentRepository[*models.Deal]{}
	suite.threePLRepo = &MockDocumentRepository[*models.ThreePL]{}
	suite.dealRepo.Test(suite.T())
	suite.threePLRepo.Test(suite.T())

	validator := common.NewValidator()
	suite.deals = NewRecordService[*models.Deal](suite.dealRepo, validator)
	suite.threePLs = NewRecordService[*models.ThreePL](suite.threePLRepo, validator)
}

func (suite *RecordServiceTestSuite) TearDownTest() {
	suite.dealRepo.AssertExpectations(suite.T())
	suite.threePLRepo.AssertExpectations(suite.T())
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}

func (suite *RecordServiceTestSuite) TestCreate_AssignsIDAndDefaults() {
	ctx := context.Background()
	suite.threePLRepo.On("Insert", ctx, mock.AnythingOfType("*models.ThreePL")).Return(nil)

	created, err := suite.threePLs.Create(ctx, &models.ThreePL{
		CompanyName:    "Acme Logistics",
		PrimaryContact: "Jane Doe",
		Email:          "jane@acme.com",
		Phone:          "555-0100",
	})
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), created.ID)
	assert.NotNil(suite.T(), created.CreatedAt)
	assert.Equal(suite.T(), models.ThreePLStatusNew, created.Status)
	assert.Equal(suite.T(), []string{}, created.Services)
	assert.Equal(suite.T(), []string{}, created.RegionsCovered)
	assert.Zero(suite.T(), created.NumberOfLocations)
}

func (suite *RecordServiceTestSuite) TestCreate_ClientIDIgnored() {
	ctx := context.Background()
	suite.dealRepo.On("Insert", ctx, mock.AnythingOfType("*models.Deal")).Return(nil)

	deal := &models.Deal{ThreePLID: "t1", DealName: "Q3 overflow"}
	deal.SetID("client-chosen")

	created, err := suite.deals.Create(ctx, deal)
	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), "client-chosen", created.ID)
	assert.Equal(suite.T(), models.DealStageNew, created.Stage)
}

func (suite *RecordServiceTestSuite) TestCreate_MissingRequiredField() {
	_, err := suite.threePLs.Create(context.Background(), &models.ThreePL{
		CompanyName:    "Acme Logistics",
		PrimaryContact: "Jane Doe",
		Phone:          "555-0100",
	})

	verr, ok := common.IsValidationError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "field required", verr.Fields["email"])
	suite.threePLRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestCreate_InvalidEnum() {
	_, err := suite.deals.Create(context.Background(), &models.Deal{
		ThreePLID: "t1",
		DealName:  "Bad stage",
		Stage:     "Pending",
	})

	verr, ok := common.IsValidationError(err)
	require.True(suite.T(), ok)
	assert.Contains(suite.T(), verr.Fields["stage"], "In Negotiation")
}

func (suite *RecordServiceTestSuite) TestCreate_AcceptsStageWithSpace() {
	ctx := context.Background()
	suite.dealRepo.On("Insert", ctx, mock.AnythingOfType("*models.Deal")).Return(nil)

	created, err := suite.deals.Create(ctx, &models.Deal{
		ThreePLID: "t1",
		DealName:  "Negotiating",
		Stage:     models.DealStageInNegotiation,
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DealStageInNegotiation, created.Stage)
}

func (suite *RecordServiceTestSuite) TestCreate_StoreError() {
	ctx := context.Background()
	suite.dealRepo.On("Insert", ctx, mock.Anything).Return(errors.New("write failed"))

	_, err := suite.deals.Create(ctx, &models.Deal{ThreePLID: "t1", DealName: "x"})
	assert.EqualError(suite.T(), err, "write failed")
}

func (suite *RecordServiceTestSuite) TestUpdate_KeepsPathID() {
	ctx := context.Background()
	suite.dealRepo.On("Replace", ctx, "deal-7", mock.MatchedBy(func(d *models.Deal) bool {
		return d.ID == "deal-7" && d.Stage == models.DealStageWon
	})).Return(nil)

	deal := &models.Deal{ThreePLID: "t1", DealName: "Closed", Stage: models.DealStageWon}
	deal.SetID("body-id")

	err := suite.deals.Update(ctx, "deal-7", deal)
	assert.NoError(suite.T(), err)
}

func (suite *RecordServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	suite.dealRepo.On("Replace", ctx, "missing", mock.Anything).Return(common.ErrNotFound)

	err := suite.deals.Update(ctx, "missing", &models.Deal{ThreePLID: "t1", DealName: "x"})
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *RecordServiceTestSuite) TestUpdate_BlankID() {
	err := suite.deals.Update(context.Background(), "  ", &models.Deal{ThreePLID: "t1", DealName: "x"})
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *RecordServiceTestSuite) TestList_PassesThrough() {
	ctx := context.Background()
	stored := []*models.Deal{{DealName: "a"}, {DealName: "b"}}
	suite.dealRepo.On("List", ctx).Return(stored, nil)

	deals, err := suite.deals.List(ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored, deals)
}
