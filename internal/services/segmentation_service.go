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
	segmentationCacheKey = "segmentation:snapshot"
	segmentationCacheTTL = 5 * time.Minute
)

// SegmentationService runs the RFM classification pass over the whole
// client base. Results are cached in Redis for a short window because
// the dashboard and the segment views poll the same snapshot.
type SegmentationService struct {
	clientRepo *repository.ClientRepository
	orderRepo  *repository.OrderRepository
	redis      *redis.Client
	logger     *logrus.Logger
}

func NewSegmentationService(clientRepo *repository.ClientRepository, orderRepo *repository.OrderRepository, redisClient *redis.Client, logger *logrus.Logger) *SegmentationService {
	return &SegmentationService{
		clientRepo: clientRepo,
		orderRepo:  orderRepo,
		redis:      redisClient,
		logger:     logger,
	}
}

// Classify returns the current segmentation snapshot, serving from cache
// when one is fresh enough.
func (s *SegmentationService) Classify(ctx context.Context) (*models.ClassificationResult, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	result, err := s.classifyFresh()
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, result)
	return result, nil
}

// Refresh drops the cached snapshot and recomputes.
func (s *SegmentationService) Refresh(ctx context.Context) (*models.ClassificationResult, error) {
	if s.redis != nil {
		if err := s.redis.Del(ctx, segmentationCacheKey).Err(); err != nil {
			s.logger.WithError(err).Warn("Failed to invalidate segmentation cache")
		}
	}
	return s.Classify(ctx)
}

func (s *SegmentationService) classifyFresh() (*models.ClassificationResult, error) {
	clients, err := s.clientRepo.ListAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}

	result := Classify(clients, orders, time.Now())

	s.logger.WithFields(logrus.Fields{
		"total_clients": result.TotalClients,
		"unclassified":  result.Unclassified,
	}).Info("Segmentation pass completed")
	return result, nil
}

func (s *SegmentationService) fromCache(ctx context.Context) *models.ClassificationResult {
	if s.redis == nil {
		return nil
	}
	raw, err := s.redis.Get(ctx, segmentationCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var result models.ClassificationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		s.logger.WithError(err).Warn("Failed to decode cached segmentation snapshot")
		return nil
	}
	return &result
}

func (s *SegmentationService) toCache(ctx context.Context, result *models.ClassificationResult) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, segmentationCacheKey, raw, segmentationCacheTTL).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to cache segmentation snapshot")
	}
}
