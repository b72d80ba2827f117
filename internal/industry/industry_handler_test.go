package industry_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"biztime/internal/industry"
	industryerrors "biztime/internal/industry/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeIndustryService struct {
	listFn      func(ctx context.Context) ([]industry.IndustryWithCompanies, error)
	createFn    func(ctx context.Context, req industry.CreateIndustryRequest) (industry.IndustryResponse, error)
	associateFn func(ctx context.Context, indCode string, req industry.AssociateCompanyRequest) (industry.AssociationResponse, error)
}

func (f *fakeIndustryService) List(ctx context.Context) ([]industry.IndustryWithCompanies, error) {
	return f.listFn(ctx)
}

func (f *fakeIndustryService) Create(ctx context.Context, req industry.CreateIndustryRequest) (industry.IndustryResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeIndustryService) Associate(ctx context.Context, indCode string, req industry.AssociateCompanyRequest) (industry.AssociationResponse, error) {
	return f.associateFn(ctx, indCode, req)
}

func setupIndustryRouter(svc industry.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	industry.RegisterRoutes(r.Group(""), industry.NewHandler(svc))
	return r
}

func performRequest(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndustryHandler_List(t *testing.T) {
	svc := &fakeIndustryService{
		listFn: func(ctx context.Context) ([]industry.IndustryWithCompanies, error) {
			return []industry.IndustryWithCompanies{
				{Code: "tech", Industry: "Technology", Companies: []string{"apple", "ibm"}},
				{Code: "acct", Industry: "Accounting", Companies: []string{}},
			}, nil
		},
	}
	r := setupIndustryRouter(svc)

	w := performRequest(r, http.MethodGet, "/industries", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	// Bare array, no wrapping key.
	assert.JSONEq(t, `[
		{"code": "tech", "industry": "Technology", "companies": ["apple", "ibm"]},
		{"code": "acct", "industry": "Accounting", "companies": []}
	]`, w.Body.String())
}

func TestIndustryHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeIndustryService{
			createFn: func(ctx context.Context, req industry.CreateIndustryRequest) (industry.IndustryResponse, error) {
				return industry.IndustryResponse{Code: req.Code, Industry: req.Industry}, nil
			},
		}
		r := setupIndustryRouter(svc)

		w := performRequest(r, http.MethodPost, "/industries",
			[]byte(`{"code": "tech", "industry": "Technology"}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{
			"industry": {"code": "tech", "industry": "Technology"}
		}`, w.Body.String())
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		svc := &fakeIndustryService{
			createFn: func(ctx context.Context, req industry.CreateIndustryRequest) (industry.IndustryResponse, error) {
				t.Fatal("service must not be called on a validation failure")
				return industry.IndustryResponse{}, nil
			},
		}
		r := setupIndustryRouter(svc)

		w := performRequest(r, http.MethodPost, "/industries", []byte(`{"code": "tech"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})
}

func TestIndustryHandler_Associate(t *testing.T) {
	t.Run("wraps the new link in an association array", func(t *testing.T) {
		svc := &fakeIndustryService{
			associateFn: func(ctx context.Context, indCode string, req industry.AssociateCompanyRequest) (industry.AssociationResponse, error) {
				assert.Equal(t, "tech", indCode)
				return industry.AssociationResponse{IndCode: indCode, CompCode: req.CompCode}, nil
			},
		}
		r := setupIndustryRouter(svc)

		w := performRequest(r, http.MethodPost, "/industries/tech",
			[]byte(`{"comp_code": "apple"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"association": [{"ind_code": "tech", "comp_code": "apple"}]
		}`, w.Body.String())
	})

	t.Run("unknown industry yields the error envelope", func(t *testing.T) {
		svc := &fakeIndustryService{
			associateFn: func(ctx context.Context, indCode string, req industry.AssociateCompanyRequest) (industry.AssociationResponse, error) {
				return industry.AssociationResponse{}, industryerrors.NotFound(indCode)
			},
		}
		r := setupIndustryRouter(svc)

		w := performRequest(r, http.MethodPost, "/industries/ghost",
			[]byte(`{"comp_code": "apple"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{
			"error": {"message": "Can't find industry with code 'ghost'", "status": 404}
		}`, w.Body.String())
	})
}
