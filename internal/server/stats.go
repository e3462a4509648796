package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
	receiptspb "github.com/joseph-ayodele/receipts-pipeline/gen/proto/receipts/v1"
	"github.com/joseph-ayodele/receipts-pipeline/internal/export"
	"github.com/joseph-ayodele/receipts-pipeline/internal/repository"
	"github.com/joseph-ayodele/receipts-pipeline/internal/utils"
)

// StatsService is the read-only gRPC surface over the collections the
// pipeline produces.
type StatsService struct {
	receiptspb.UnimplementedReceiptStatsServiceServer
	extractions repository.ExtractionRepository
	items       repository.ItemRepository
	stats       repository.StatRepository
	exporter    *export.Service
	logger      *slog.Logger
}

func NewStatsService(extractions repository.ExtractionRepository, items repository.ItemRepository, stats repository.StatRepository, exporter *export.Service, logger *slog.Logger) *StatsService {
	return &StatsService{
		extractions: extractions,
		items:       items,
		stats:       stats,
		exporter:    exporter,
		logger:      logger,
	}
}

func parseAccountID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "account_id must be a UUID")
	}
	return id, nil
}

// scopeFor validates a stats scope: the reserved global scope or an account UUID.
func scopeFor(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", status.Error(codes.InvalidArgument, "scope is required")
	}
	if raw == constants.GlobalScope {
		return raw, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", status.Errorf(codes.InvalidArgument, "scope must be %q or an account UUID", constants.GlobalScope)
	}
	return id.String(), nil
}

func (s *StatsService) ListExtractions(ctx context.Context, req *receiptspb.ListExtractionsRequest) (*receiptspb.ListExtractionsResponse, error) {
	accountID, err := parseAccountID(req.GetAccountId())
	if err != nil {
		return nil, err
	}
	recs, err := s.extractions.ListByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("list extractions failed", "account_id", accountID, "error", err)
		return nil, status.Error(codes.Internal, "list extractions failed")
	}
	out := make([]*receiptspb.Extraction, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBExtraction(r))
	}
	return &receiptspb.ListExtractionsResponse{Extractions: out}, nil
}

func (s *StatsService) ListItems(ctx context.Context, req *receiptspb.ListItemsRequest) (*receiptspb.ListItemsResponse, error) {
	accountID, err := parseAccountID(req.GetAccountId())
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByAccount(ctx, accountID, strings.TrimSpace(req.GetItemKey()))
	if err != nil {
		s.logger.Error("list items failed", "account_id", accountID, "error", err)
		return nil, status.Error(codes.Internal, "list items failed")
	}
	out := make([]*receiptspb.ReceiptItem, 0, len(items))
	for _, it := range items {
		out = append(out, utils.ToPBItem(it))
	}
	return &receiptspb.ListItemsResponse{Items: out}, nil
}

func (s *StatsService) ListItemStats(ctx context.Context, req *receiptspb.ListItemStatsRequest) (*receiptspb.ListItemStatsResponse, error) {
	scope, err := scopeFor(req.GetScope())
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.ListByScope(ctx, scope)
	if err != nil {
		s.logger.Error("list stats failed", "scope", scope, "error", err)
		return nil, status.Error(codes.Internal, "list stats failed")
	}
	out := make([]*receiptspb.ItemStat, 0, len(stats))
	for _, st := range stats {
		out = append(out, utils.ToPBItemStat(st))
	}
	return &receiptspb.ListItemStatsResponse{Stats: out}, nil
}

func (s *StatsService) ExportItemStats(ctx context.Context, req *receiptspb.ExportItemStatsRequest) (*receiptspb.ExportItemStatsResponse, error) {
	scope, err := scopeFor(req.GetScope())
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.ExportItemStatsXLSX(ctx, scope)
	if err != nil {
		s.logger.Error("export failed", "scope", scope, "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &receiptspb.ExportItemStatsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("item-stats-%s-%s.xlsx", scope, time.Now().UTC().Format("20060102")),
	}, nil
}
