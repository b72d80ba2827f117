package industry_test

import (
	"context"
	"database/sql"
	"testing"

	"biztime/internal/industry"
	industryMock "biztime/internal/industry/mock"
	"biztime/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   industry.Service
	repo      *industryMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := industryMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	svc := industry.NewService(gdb, repo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string { return &s }

func TestIndustryService_List(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("groups company codes under each industry", func(t *testing.T) {
		deps.redismock.ExpectGet(industry.IndustryAllKey).RedisNil()

		deps.repo.EXPECT().
			FindAllWithCompanies(ctx).
			Return([]industry.IndustryCompanyRow{
				{Code: "tech", Industry: "Technology", CompCode: strPtr("apple")},
				{Code: "tech", Industry: "Technology", CompCode: strPtr("ibm")},
				{Code: "acct", Industry: "Accounting", CompCode: nil},
			}, nil)

		resp, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "tech", resp[0].Code)
		assert.Equal(t, []string{"apple", "ibm"}, resp[0].Companies)
		assert.Equal(t, "acct", resp[1].Code)
		assert.Empty(t, resp[1].Companies)
		assert.NotNil(t, resp[1].Companies)
	})

	t.Run("cache hit skips the repo", func(t *testing.T) {
		deps.redismock.ExpectGet(industry.IndustryAllKey).
			SetVal(`[{"code":"tech","industry":"Technology","companies":["apple"]}]`)

		resp, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, []string{"apple"}, resp[0].Companies)
	})
}

func TestIndustryService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ind *industry.Industry) error {
				assert.Equal(t, "tech", ind.Code)
				return nil
			})
		deps.redismock.ExpectDel(industry.IndustryAllKey).SetVal(1)

		resp, err := deps.service.Create(ctx, industry.CreateIndustryRequest{
			Code: "tech", Industry: "Technology",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Technology", resp.Industry)
	})

	t.Run("duplicate code surfaces as a constraint violation", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "industries_pkey"})

		_, err := deps.service.Create(ctx, industry.CreateIndustryRequest{
			Code: "tech", Industry: "Technology",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPStatus)
	})
}

func TestIndustryService_Associate(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("links an existing company to an existing industry", func(t *testing.T) {
		deps.repo.EXPECT().IndustryExists(ctx, "tech").Return(true, nil)
		deps.repo.EXPECT().CompanyExists(ctx, "apple").Return(true, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().
			CreateAssociation(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, assoc *industry.CompanyIndustry) error {
				assert.Equal(t, "tech", assoc.IndCode)
				assert.Equal(t, "apple", assoc.CompCode)
				return nil
			})
		deps.redismock.ExpectDel(industry.IndustryAllKey).SetVal(1)

		resp, err := deps.service.Associate(ctx, "tech", industry.AssociateCompanyRequest{
			CompCode: "apple",
		})

		assert.NoError(t, err)
		assert.Equal(t, "tech", resp.IndCode)
		assert.Equal(t, "apple", resp.CompCode)
	})

	t.Run("unknown industry is a 404 before any write", func(t *testing.T) {
		deps.repo.EXPECT().IndustryExists(ctx, "ghost").Return(false, nil)

		_, err := deps.service.Associate(ctx, "ghost", industry.AssociateCompanyRequest{
			CompCode: "apple",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
		assert.Equal(t, "Can't find industry with code 'ghost'", appErr.Message)
	})

	t.Run("unknown company is a 404 before any write", func(t *testing.T) {
		deps.repo.EXPECT().IndustryExists(ctx, "tech").Return(true, nil)
		deps.repo.EXPECT().CompanyExists(ctx, "ghost").Return(false, nil)

		_, err := deps.service.Associate(ctx, "tech", industry.AssociateCompanyRequest{
			CompCode: "ghost",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
		assert.Equal(t, "Can't find company with code 'ghost'", appErr.Message)
	})

	t.Run("duplicate association surfaces as a constraint violation", func(t *testing.T) {
		deps.repo.EXPECT().IndustryExists(ctx, "tech").Return(true, nil)
		deps.repo.EXPECT().CompanyExists(ctx, "apple").Return(true, nil)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().
			CreateAssociation(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "companies_industries_pkey"})

		_, err := deps.service.Associate(ctx, "tech", industry.AssociateCompanyRequest{
			CompCode: "apple",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPStatus)
	})
}
