package industry

import (
	"context"
	"encoding/json"
	"log"
	"time"

	companyerrors "biztime/internal/company/errors"
	industryerrors "biztime/internal/industry/errors"
	"biztime/internal/shared/cache"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const IndustryAllKey = cache.IndustryAllKey

//go:generate mockgen -source=industry_service.go -destination=mock/industry_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]IndustryWithCompanies, error)
	Create(ctx context.Context, req CreateIndustryRequest) (IndustryResponse, error)
	Associate(ctx context.Context, indCode string, req AssociateCompanyRequest) (AssociationResponse, error)
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

func (s *service) List(ctx context.Context) ([]IndustryWithCompanies, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, IndustryAllKey).Result()
		if err == nil {
			var resp []IndustryWithCompanies
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(IndustryAllKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllWithCompanies(ctx)
		if err != nil {
			return nil, err
		}

		resp := groupByIndustry(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, IndustryAllKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]IndustryWithCompanies), nil
}

func (s *service) Create(ctx context.Context, req CreateIndustryRequest) (IndustryResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return IndustryResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ind := &Industry{
		Code:     req.Code,
		Industry: req.Industry,
	}

	if err := qtx.Create(ctx, ind); err != nil {
		return IndustryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return IndustryResponse{}, err
	}

	s.invalidateListCache(ctx)

	return IndustryResponse{Code: ind.Code, Industry: ind.Industry}, nil
}

// Associate links an existing company to an existing industry. Both sides
// are checked first so an unknown code yields a real 404; a concurrent
// delete between the check and the insert still surfaces as a store error.
func (s *service) Associate(ctx context.Context, indCode string, req AssociateCompanyRequest) (AssociationResponse, error) {
	exists, err := s.repo.IndustryExists(ctx, indCode)
	if err != nil {
		return AssociationResponse{}, err
	}
	if !exists {
		return AssociationResponse{}, industryerrors.NotFound(indCode)
	}

	exists, err = s.repo.CompanyExists(ctx, req.CompCode)
	if err != nil {
		return AssociationResponse{}, err
	}
	if !exists {
		return AssociationResponse{}, companyerrors.NotFound(req.CompCode)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return AssociationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	assoc := &CompanyIndustry{
		CompCode: req.CompCode,
		IndCode:  indCode,
	}

	if err := qtx.CreateAssociation(ctx, assoc); err != nil {
		return AssociationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return AssociationResponse{}, err
	}

	s.invalidateListCache(ctx)

	return AssociationResponse{IndCode: assoc.IndCode, CompCode: assoc.CompCode}, nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, IndustryAllKey).Err(); err != nil {
		log.Printf("ERROR: failed to invalidate cache for key %s: %v", IndustryAllKey, err)
	}
}

func groupByIndustry(rows []IndustryCompanyRow) []IndustryWithCompanies {
	res := make([]IndustryWithCompanies, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		i, ok := index[row.Code]
		if !ok {
			i = len(res)
			index[row.Code] = i
			res = append(res, IndustryWithCompanies{
				Code:      row.Code,
				Industry:  row.Industry,
				Companies: []string{},
			})
		}
		if row.CompCode != nil {
			res[i].Companies = append(res[i].Companies, *row.CompCode)
		}
	}

	return res
}
