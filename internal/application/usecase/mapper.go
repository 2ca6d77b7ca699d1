package usecase

import (
	"fmt"

	"github.com/academix/ledger-service/internal/application/dto"
	"github.com/academix/ledger-service/internal/domain/model"
	"github.com/academix/ledger-service/internal/domain/valueobject"
)

// TopicLedgerDocuments is the Kafka topic carrying ledger document events.
const TopicLedgerDocuments = "academix.ledger.documents"

func linesFromDTO(in []dto.LineDTO) ([]valueobject.LedgerLine, error) {
	lines := make([]valueobject.LedgerLine, 0, len(in))
	for i, l := range in {
		line, err := valueobject.NewLedgerLine(l.AccountID, l.Debit, l.Credit, l.CostCenterID, l.Description)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func toDocumentResponse(doc model.LedgerDocument) dto.DocumentResponse {
	lines := make([]dto.LineDTO, 0, len(doc.Lines()))
	for _, l := range doc.Lines() {
		lines = append(lines, dto.LineDTO{
			AccountID:    l.AccountID(),
			Debit:        l.Debit(),
			Credit:       l.Credit(),
			CostCenterID: l.CostCenterID(),
			Description:  l.Description(),
		})
	}
	return dto.DocumentResponse{
		ID:          doc.ID(),
		TenantID:    doc.TenantID(),
		Kind:        string(doc.Kind()),
		Reference:   doc.Reference(),
		DocDate:     doc.DocDate(),
		Description: doc.Description(),
		Status:      string(doc.Status()),
		BranchID:    doc.BranchID(),
		Lines:       lines,
		CreatedBy:   doc.CreatedBy(),
		PostedBy:    doc.PostedBy(),
		PostedAt:    doc.PostedAt(),
		VoidedBy:    doc.VoidedBy(),
		VoidedAt:    doc.VoidedAt(),
		VoidReason:  doc.VoidReason(),
		Version:     doc.Version(),
		CreatedAt:   doc.CreatedAt(),
		UpdatedAt:   doc.UpdatedAt(),
	}
}

func toAccountResponse(a model.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:             a.ID(),
		Code:           a.Code().String(),
		Name:           a.Name(),
		Type:           string(a.Type()),
		NormalBalance:  string(a.NormalBalance()),
		ParentID:       a.ParentID(),
		OpeningBalance: a.OpeningBalance(),
		BranchID:       a.BranchID(),
		IsActive:       a.IsActive(),
	}
}
