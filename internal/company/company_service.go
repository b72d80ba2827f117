package company

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	companyerrors "biztime/internal/company/errors"
	"biztime/internal/shared/cache"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const CompanyAllKey = cache.CompanyAllKey

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	Get(ctx context.Context, code string) (CompanyDetailResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, lookupCode string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, code string) error
}

type service struct {
	db   *gorm.DB
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) List(ctx context.Context) ([]CompanyResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, CompanyAllKey).Result()
		if err == nil {
			var resp []CompanyResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent cache misses into one query.
	v, err, _ := s.sf.Do(CompanyAllKey, func() (interface{}, error) {
		comps, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(comps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, CompanyAllKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]CompanyResponse), nil
}

// Get assembles the composite detail: company row, its invoices, and the
// names of its associated industries. The 404 decision rides on the company
// lookup alone; empty invoice or industry lists are valid.
func (s *service) Get(ctx context.Context, code string) (CompanyDetailResponse, error) {
	comp, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyDetailResponse{}, companyerrors.NotFound(code)
		}
		return CompanyDetailResponse{}, err
	}

	invs, err := s.repo.FindInvoices(ctx, code)
	if err != nil {
		return CompanyDetailResponse{}, err
	}

	industries, err := s.repo.FindIndustryNames(ctx, code)
	if err != nil {
		return CompanyDetailResponse{}, err
	}

	detail := CompanyDetailResponse{
		Code:        comp.Code,
		Name:        comp.Name,
		Description: comp.Description,
		Invoices:    make([]InvoiceSummary, 0, len(invs)),
		Industries:  industries,
	}
	for _, inv := range invs {
		detail.Invoices = append(detail.Invoices, InvoiceSummary{
			ID:       inv.ID,
			Amt:      inv.Amt,
			Paid:     inv.Paid,
			AddDate:  inv.AddDate,
			PaidDate: inv.PaidDate,
		})
	}
	if detail.Industries == nil {
		detail.Industries = []string{}
	}

	return detail, nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = Slugify(req.Name)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return CompanyResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	comp := &Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, comp); err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return CompanyResponse{}, err
	}

	s.invalidateListCache(ctx)

	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, lookupCode string, req UpdateCompanyRequest) (CompanyResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return CompanyResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	comp := &Company{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}

	rows, err := qtx.UpdateByCode(ctx, lookupCode, comp)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		return CompanyResponse{}, companyerrors.NotFound(lookupCode)
	}

	if err := tx.Commit().Error; err != nil {
		return CompanyResponse{}, err
	}

	s.invalidateListCache(ctx)

	return mapToResponse(*comp), nil
}

func (s *service) Delete(ctx context.Context, code string) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.DeleteByCode(ctx, code)
	if err != nil {
		return err
	}
	if rows == 0 {
		return companyerrors.NotFound(code)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	return nil
}

// invalidateListCache drops both listing keys: the industry listing embeds
// company codes, so a create, rename, or cascade delete here stales it too.
func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CompanyAllKey, cache.IndustryAllKey).Err(); err != nil {
		log.Printf("ERROR: failed to invalidate cache for keys %s, %s: %v",
			CompanyAllKey, cache.IndustryAllKey, err)
	}
}

func mapToResponse(comp Company) CompanyResponse {
	return CompanyResponse{
		Code:        comp.Code,
		Name:        comp.Name,
		Description: comp.Description,
	}
}

func mapToListResponse(comps []Company) []CompanyResponse {
	res := make([]CompanyResponse, len(comps))
	for i, comp := range comps {
		res[i] = mapToResponse(comp)
	}
	return res
}
