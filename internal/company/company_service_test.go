package company_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"biztime/internal/company"
	companyMock "biztime/internal/company/mock"
	"biztime/internal/shared/apperror"
	"biztime/internal/shared/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   company.Service
	repo      *companyMock.MockRepository
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
	repo := companyMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	svc := company.NewService(gdb, repo, dbRedis)

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

func TestCompanyService_List(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("cache hit serves from redis without touching the repo", func(t *testing.T) {
		expectedResp := []company.CompanyResponse{
			{Code: "apple", Name: "Apple"},
			{Code: "ibm", Name: "IBM"},
		}
		jsonResp, _ := json.Marshal(expectedResp)

		deps.redismock.ExpectGet(company.CompanyAllKey).SetVal(string(jsonResp))
		deps.repo.EXPECT().FindAll(gomock.Any()).Times(0)

		resp, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "apple", resp[0].Code)
	})

	t.Run("cache miss reads the repo and fills redis", func(t *testing.T) {
		deps.redismock.ExpectGet(company.CompanyAllKey).RedisNil()

		comps := []company.Company{
			{Code: "apple", Name: "Apple", Description: "Maker of OSX."},
		}
		deps.repo.EXPECT().
			FindAll(ctx).
			Return(comps, nil).
			Times(1)

		expected := []company.CompanyResponse{
			{Code: "apple", Name: "Apple", Description: "Maker of OSX."},
		}
		jsonData, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(company.CompanyAllKey, jsonData, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Apple", resp[0].Name)
	})

	t.Run("database error is returned", func(t *testing.T) {
		deps.redismock.ExpectGet(company.CompanyAllKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db connection error")).
			Times(1)

		resp, err := deps.service.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestCompanyService_Get(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("assembles company, invoices and industry names", func(t *testing.T) {
		addDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		deps.repo.EXPECT().
			FindByCode(ctx, "apple").
			Return(&company.Company{Code: "apple", Name: "Apple", Description: "Maker of OSX."}, nil)
		deps.repo.EXPECT().
			FindInvoices(ctx, "apple").
			Return([]company.CompanyInvoice{
				{ID: 1, Amt: 100, Paid: false, AddDate: addDate},
			}, nil)
		deps.repo.EXPECT().
			FindIndustryNames(ctx, "apple").
			Return([]string{"Technology"}, nil)

		resp, err := deps.service.Get(ctx, "apple")

		assert.NoError(t, err)
		assert.Equal(t, "apple", resp.Code)
		assert.Len(t, resp.Invoices, 1)
		assert.Equal(t, 1, resp.Invoices[0].ID)
		assert.Nil(t, resp.Invoices[0].PaidDate)
		assert.Equal(t, []string{"Technology"}, resp.Industries)
	})

	t.Run("empty invoice and industry lists are still a valid company", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByCode(ctx, "lonely").
			Return(&company.Company{Code: "lonely", Name: "Lonely Corp"}, nil)
		deps.repo.EXPECT().
			FindInvoices(ctx, "lonely").
			Return(nil, nil)
		deps.repo.EXPECT().
			FindIndustryNames(ctx, "lonely").
			Return(nil, nil)

		resp, err := deps.service.Get(ctx, "lonely")

		assert.NoError(t, err)
		assert.NotNil(t, resp.Invoices)
		assert.Empty(t, resp.Invoices)
		assert.NotNil(t, resp.Industries)
		assert.Empty(t, resp.Industries)
	})

	t.Run("unknown code maps to 404 with the code in the message", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByCode(ctx, "BADCODE").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Get(ctx, "BADCODE")

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
		assert.Equal(t, "Can't find company with code 'BADCODE'", appErr.Message)
	})
}

func TestCompanyService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("uses the supplied code when present", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, comp *company.Company) error {
				assert.Equal(t, "apple", comp.Code)
				return nil
			})
		deps.redismock.ExpectDel(company.CompanyAllKey, cache.IndustryAllKey).SetVal(2)

		resp, err := deps.service.Create(ctx, company.CreateCompanyRequest{
			Code: "apple", Name: "Apple", Description: "Maker of OSX.",
		})

		assert.NoError(t, err)
		assert.Equal(t, "apple", resp.Code)
	})

	t.Run("slugifies the name when no code is supplied", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, comp *company.Company) error {
				assert.Equal(t, "testcomp2", comp.Code)
				return nil
			})
		deps.redismock.ExpectDel(company.CompanyAllKey, cache.IndustryAllKey).SetVal(2)

		resp, err := deps.service.Create(ctx, company.CreateCompanyRequest{
			Name: "testComp2", Description: "Second test company.",
		})

		assert.NoError(t, err)
		assert.Equal(t, "testcomp2", resp.Code)
		assert.Equal(t, "testComp2", resp.Name)
	})

	t.Run("repo error rolls back", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := deps.service.Create(ctx, company.CreateCompanyRequest{
			Code: "apple", Name: "Apple",
		})

		assert.Error(t, err)
	})
}

func TestCompanyService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("the body code becomes the new identity", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			UpdateByCode(ctx, "apple", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, comp *company.Company) (int64, error) {
				assert.Equal(t, "apple-inc", comp.Code)
				return 1, nil
			})
		deps.redismock.ExpectDel(company.CompanyAllKey, cache.IndustryAllKey).SetVal(2)

		resp, err := deps.service.Update(ctx, "apple", company.UpdateCompanyRequest{
			Code: "apple-inc", Name: "Apple Inc", Description: "Renamed.",
		})

		assert.NoError(t, err)
		assert.Equal(t, "apple-inc", resp.Code)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("no matched row maps to 404 on the lookup code", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			UpdateByCode(ctx, "ghost", gomock.Any()).
			Return(int64(0), nil)

		_, err := deps.service.Update(ctx, "ghost", company.UpdateCompanyRequest{
			Code: "ghost", Name: "Ghost",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
		assert.Equal(t, "Can't find company with code 'ghost'", appErr.Message)
	})
}

func TestCompanyService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success drops both listing caches", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			DeleteByCode(ctx, "apple").
			Return(int64(1), nil)
		// The industry listing embeds company codes, so the cascade delete
		// must stale it alongside the company listing.
		deps.redismock.ExpectDel(company.CompanyAllKey, cache.IndustryAllKey).SetVal(2)

		err := deps.service.Delete(ctx, "apple")

		assert.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repeat delete maps to 404", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			DeleteByCode(ctx, "apple").
			Return(int64(0), nil)

		err := deps.service.Delete(ctx, "apple")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})
}
