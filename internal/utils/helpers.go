package utils

import (
	"fmt"
	"time"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent"
	receiptspb "github.com/joseph-ayodele/receipts-pipeline/gen/proto/receipts/v1"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToExtraction(e *ent.Extraction) *entity.Extraction {
	return &entity.Extraction{
		ID:             e.ID,
		AccountID:      e.AccountID,
		Bucket:         e.Bucket,
		ObjectName:     e.ObjectName,
		Generation:     e.Generation,
		Metageneration: e.Metageneration,
		ContentType:    e.ContentType,
		Size:           e.Size,
		Status:         constants.ExtractionStatus(e.Status),
		FailureReason:  e.FailureReason,
		RawOutput:      e.RawOutput,
		ExtractedJSON:  e.ExtractedJSON,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToReceiptItem(e *ent.ReceiptItem) *entity.ReceiptItem {
	return &entity.ReceiptItem{
		ID:           e.ID,
		ExtractionID: e.ExtractionID,
		AccountID:    e.AccountID,
		LineIndex:    e.LineIndex,
		Name:         e.Name,
		ItemKey:      e.ItemKey,
		Quantity:     e.Quantity,
		UnitPrice:    e.UnitPrice,
		LineTotal:    e.LineTotal,
		PurchasedAt:  e.PurchasedAt,
	}
}

func ToItemStat(e *ent.ItemStat) *entity.ItemStat {
	return &entity.ItemStat{
		ID:         e.ID,
		Scope:      e.Scope,
		ItemKey:    e.ItemKey,
		Count:      e.Count,
		TotalSpend: e.TotalSpend,
		MinPrice:   e.MinPrice,
		MaxPrice:   e.MaxPrice,
		LastSeen:   e.LastSeen,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToPBExtraction(e *entity.Extraction) *receiptspb.Extraction {
	return &receiptspb.Extraction{
		Id:            e.ID.String(),
		AccountId:     e.AccountID.String(),
		Bucket:        e.Bucket,
		ObjectName:    e.ObjectName,
		Generation:    e.Generation,
		Status:        string(e.Status),
		FailureReason: strOrEmpty(e.FailureReason),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBItem(i *entity.ReceiptItem) *receiptspb.ReceiptItem {
	return &receiptspb.ReceiptItem{
		Id:           i.ID.String(),
		ExtractionId: i.ExtractionID.String(),
		AccountId:    i.AccountID.String(),
		LineIndex:    int32(i.LineIndex),
		Name:         i.Name,
		ItemKey:      i.ItemKey,
		Quantity:     i.Quantity,
		UnitPrice:    fmt.Sprintf("%.2f", i.UnitPrice),
		LineTotal:    fmt.Sprintf("%.2f", i.LineTotal),
		PurchasedAt:  i.PurchasedAt.Format("2006-01-02"),
	}
}

func ToPBItemStat(s *entity.ItemStat) *receiptspb.ItemStat {
	return &receiptspb.ItemStat{
		Scope:      s.Scope,
		ItemKey:    s.ItemKey,
		Count:      s.Count,
		TotalSpend: fmt.Sprintf("%.2f", s.TotalSpend),
		MinPrice:   fmt.Sprintf("%.2f", s.MinPrice),
		MaxPrice:   fmt.Sprintf("%.2f", s.MaxPrice),
		LastSeen:   s.LastSeen.Format("2006-01-02"),
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
