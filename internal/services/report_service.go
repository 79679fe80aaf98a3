package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:overview"
	dashboardCacheTTL = 60 * time.Second
	activeClientDays  = 90
	topServicesLimit  = 5
)

// ReportService assembles the dashboard payload from the repositories and
// the segmentation snapshot.
type ReportService struct {
	orderRepo    *repository.OrderRepository
	clientRepo   *repository.ClientRepository
	cashRepo     *repository.CashRepository
	segmentation *SegmentationService
	redis        *redis.Client
	logger       *logrus.Logger
}

func NewReportService(
	orderRepo *repository.OrderRepository,
	clientRepo *repository.ClientRepository,
	cashRepo *repository.CashRepository,
	segmentation *SegmentationService,
	redisClient *redis.Client,
	logger *logrus.Logger,
) *ReportService {
	return &ReportService{
		orderRepo:    orderRepo,
		clientRepo:   clientRepo,
		cashRepo:     cashRepo,
		segmentation: segmentation,
		redis:        redisClient,
		logger:       logger,
	}
}

// Dashboard builds the dashboard payload. Cached for a minute; the numbers
// feed a polling UI and do not need to be exact to the second.
func (s *ReportService) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var cached models.DashboardResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	response, err := s.buildDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(response); err == nil {
			if err := s.redis.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				s.logger.WithError(err).Warn("Failed to cache dashboard")
			}
		}
	}
	return response, nil
}

func (s *ReportService) buildDashboard(ctx context.Context) (*models.DashboardResponse, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	overview := &models.DashboardOverview{}
	var err error

	if overview.RevenueToday, err = s.orderRepo.RevenueSince(startOfDay); err != nil {
		return nil, err
	}
	if overview.RevenueThisMonth, err = s.orderRepo.RevenueSince(startOfMonth); err != nil {
		return nil, err
	}
	if overview.OrdersToday, err = s.orderRepo.CountSince(startOfDay); err != nil {
		return nil, err
	}
	if overview.OrdersThisMonth, err = s.orderRepo.CountSince(startOfMonth); err != nil {
		return nil, err
	}
	if overview.TotalClients, err = s.clientRepo.Count(); err != nil {
		return nil, err
	}
	if overview.ActiveClients, err = s.clientRepo.CountActiveSince(now.AddDate(0, 0, -activeClientDays)); err != nil {
		return nil, err
	}

	byStatus, err := s.orderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	topServices, err := s.orderRepo.TopServices(topServicesLimit)
	if err != nil {
		return nil, err
	}

	balances, err := s.cashRepo.PointBalances()
	if err != nil {
		return nil, err
	}

	classification, err := s.segmentation.Classify(ctx)
	if err != nil {
		return nil, err
	}
	segments := make([]models.SegmentSummary, 0, len(classification.Segments))
	for _, seg := range classification.Segments {
		segments = append(segments, models.SegmentSummary{
			Key:          seg.Key,
			Name:         seg.Name,
			ClientsCount: seg.ClientsCount,
			Percentage:   seg.Percentage,
		})
	}

	return &models.DashboardResponse{
		Success:        true,
		Overview:       overview,
		OrdersByStatus: byStatus,
		TopServices:    topServices,
		PointBalances:  balances,
		Segments:       segments,
	}, nil
}
